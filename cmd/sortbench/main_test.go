package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanrat/sortbench"
	"github.com/lanrat/sortbench/csvfile"
)

// execute runs the root command with args and returns what it printed
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunNumbers(t *testing.T) {
	out, _, err := execute(t, "", "run", "5,3,8,1")
	require.NoError(t, err)

	for _, want := range []string{
		"Algoritmo", "Bubble Sort", "Quick Sort", "Merge Sort", "Heap Sort",
		sortbench.SeriesTime, sortbench.SeriesComparisons, sortbench.SeriesSwaps,
		"Tempo (pior caso): O(n log n), Espaço: O(1)",
		"Sorted values\n1\n3\n5\n8\n",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "warning")
}

func TestRunTexts(t *testing.T) {
	out, _, err := execute(t, "", "run", "--type", "textos", "--chart=false", "banana", "Apple", "cherry")
	require.NoError(t, err)
	assert.Contains(t, out, "Bubble Sort (Textos)")
	assert.Contains(t, out, "Apple\nbanana\ncherry\n")
	assert.NotContains(t, out, "█")
}

func TestRunFromStdin(t *testing.T) {
	out, _, err := execute(t, "9\n\n2\n", "run", "--sorted", "--chart=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Sorted values\n2\n9\n")
}

func TestRunFromFile(t *testing.T) {
	path := writeFile(t, "words.txt", "pear\n\nApple\n  fig  \n")
	out, _, err := execute(t, "", "run", "--type", "texts", "--file", path, "--algorithms", "merge")
	require.NoError(t, err)
	assert.Contains(t, out, "Apple\nfig\npear\n")
	assert.Contains(t, out, "Tempo (pior caso): O(n log n), Espaço: O(n)")
	assert.NotContains(t, out, "Bubble Sort")
}

func TestRunErrors(t *testing.T) {
	_, _, err := execute(t, "", "run", "--type", "images", "a.png")
	var unsupported *sortbench.UnsupportedDomainError
	require.ErrorAs(t, err, &unsupported)

	_, _, err = execute(t, "", "run", "1", "two", "3")
	var inputErr *sortbench.InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "two", inputErr.Token)

	_, _, err = execute(t, "", "run", " , ")
	require.ErrorIs(t, err, sortbench.ErrEmptyInput)

	_, _, err = execute(t, "", "run")
	require.ErrorIs(t, err, sortbench.ErrEmptyInput)

	var configErr *sortbench.ConfigError
	_, _, err = execute(t, "", "run", "--rank-by", "memory", "1")
	require.ErrorAs(t, err, &configErr)
	_, _, err = execute(t, "", "run", "--algorithms", "radix", "1")
	require.ErrorAs(t, err, &configErr)
	_, _, err = execute(t, "", "run", "--log-level", "loud", "1")
	require.ErrorAs(t, err, &configErr)

	_, _, err = execute(t, "", "run", "--file", filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunRanked(t *testing.T) {
	out, _, err := execute(t, "", "run", "--rank-by", "swaps", "--chart=false", "--sorted=false", "5", "3", "8", "1")
	require.NoError(t, err)

	// quick 3, bubble 4, heap 7, merge 8
	order := []string{"Quick Sort", "Bubble Sort", "Heap Sort", "Merge Sort"}
	last := -1
	for _, name := range order {
		i := strings.Index(out, name)
		require.Greater(t, i, last, "%s out of order in\n%s", name, out)
		last = i
	}
}

func TestRunCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	out, _, err := execute(t, "", "run", "--csv", path, "--parallel", "2", "4,2,9,1,1")
	require.NoError(t, err)
	assert.Contains(t, out, "results saved to "+path)

	results, err := csvfile.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.Equal(t, "Bubble Sort", results[0].Name)
	assert.Equal(t, uint64(10), results[0].Comparisons)
}

func TestRunMetrics(t *testing.T) {
	out, _, err := execute(t, "", "run", "--metrics", "--algorithms", "heap,quick", "3,1,2")
	require.NoError(t, err)
	assert.Contains(t, out, `sortbench_runs_total{algorithm="Heap Sort"} 1`)
	assert.Contains(t, out, `sortbench_runs_total{algorithm="Quick Sort"} 1`)
	assert.Contains(t, out, "sortbench_run_duration_milliseconds_bucket")
}

func TestRunConfigFile(t *testing.T) {
	path := writeFile(t, "sortbench.yaml", `
algorithms: [merge]
parallelism: 2
verify_permutation: true
log_level: debug
rank_by: comparisons
`)
	out, errOut, err := execute(t, "", "run", "--config", path, "7,3,5")
	require.NoError(t, err)
	assert.Contains(t, out, "Merge Sort")
	assert.NotContains(t, out, "Heap Sort")
	assert.Contains(t, out, "#", "rank_by adds the position column")
	assert.Contains(t, errOut, "algorithm finished", "log_level debug logs every run")

	out, _, err = execute(t, "", "run", "--config", path, "--algorithms", "heap", "--log-level", "off", "7,3,5")
	require.NoError(t, err)
	assert.Contains(t, out, "Heap Sort")
	assert.NotContains(t, out, "Merge Sort")

	_, _, err = execute(t, "", "run", "--config", filepath.Join(t.TempDir(), "none.yaml"), "1")
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := writeFile(t, "bad.yaml", "algorithms: {")
	_, _, err = execute(t, "", "run", "--config", bad, "1")
	var configErr *sortbench.ConfigError
	require.ErrorAs(t, err, &configErr)
}

func TestComplexityCmd(t *testing.T) {
	out, _, err := execute(t, "", "complexity", "quick", "Heap Sort (Textos)", "Shell Sort")
	require.NoError(t, err)
	assert.Contains(t, out, "quick: Tempo (pior caso): O(n²), Espaço: O(log n)\n")
	assert.Contains(t, out, "Heap Sort (Textos): Tempo (pior caso): O(n log n), Espaço: O(1)\n")
	assert.Contains(t, out, "Shell Sort: Complexidade não disponível\n")

	out, _, err = execute(t, "", "complexity")
	require.NoError(t, err)
	assert.Contains(t, out, "Bubble Sort")
	assert.Contains(t, out, "O(n²), Espaço: O(1)")
}

func TestAlgorithmsCmd(t *testing.T) {
	out, _, err := execute(t, "", "algorithms")
	require.NoError(t, err)
	assert.Equal(t, "Bubble Sort\nQuick Sort\nMerge Sort\nHeap Sort\n", out)
}

func TestBarLength(t *testing.T) {
	assert.Equal(t, 0, barLength(0, 10, 40))
	assert.Equal(t, 0, barLength(5, 0, 40))
	assert.Equal(t, 1, barLength(0.001, 10, 40))
	assert.Equal(t, 40, barLength(10, 10, 40))
	assert.Equal(t, 20, barLength(5, 10, 40))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "info")
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("shown")
	assert.Equal(t, "INFO\tshown\n", buf.String(), "console encoding without timestamps")

	for _, level := range []string{"off", "NONE"} {
		buf.Reset()
		logger, err = newLogger(&buf, level)
		require.NoError(t, err)
		logger.Error("dropped")
		assert.Empty(t, buf.String(), level)
	}

	_, err = newLogger(&buf, "loud")
	require.Error(t, err)
}
