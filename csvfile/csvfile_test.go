package csvfile_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanrat/sortbench"
	"github.com/lanrat/sortbench/csvfile"
	"github.com/lanrat/sortbench/tempfile"
)

var sample = []sortbench.Result{
	{Name: "Bubble Sort", ElapsedMs: 0.0125, Comparisons: 6, Swaps: 4},
	{Name: "Quick Sort (Textos)", ElapsedMs: 12.3456, Comparisons: 1234567, Swaps: 89},
	{Name: "Heap Sort", ElapsedMs: 0, Comparisons: 0, Swaps: 1},
}

func TestWriteFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, csvfile.Write(&buf, sample))

	want := "Algoritmo;Tempo (ms);Comparacoes;Trocas\n" +
		"Bubble Sort;0.013;6;4\n" +
		"Quick Sort (Textos);12.346;1234567;89\n" +
		"Heap Sort;0.000;0;1\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := csvfile.Write(&buf, nil)
	assert.ErrorIs(t, err, sortbench.ErrNoResults)
	assert.Zero(t, buf.Len())
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, csvfile.WriteFile(path, sample))

	got, err := csvfile.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, got, len(sample))
	for i, want := range sample {
		assert.Equal(t, want.Name, got[i].Name)
		assert.Equal(t, fmt.Sprintf("%.3f", want.ElapsedMs), fmt.Sprintf("%.3f", got[i].ElapsedMs))
		assert.Equal(t, want.Comparisons, got[i].Comparisons)
		assert.Equal(t, want.Swaps, got[i].Swaps)
	}
}

func TestRoundTripBatch(t *testing.T) {
	batch, err := sortbench.Ints(context.Background(), []int{9, 4, 7, 1, 3, 3, 0}, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, csvfile.Write(&buf, batch.Results))
	got, err := csvfile.Read(&buf)
	require.NoError(t, err)
	require.Len(t, got, len(batch.Results))
	for i, want := range batch.Results {
		assert.Equal(t, want.Name, got[i].Name)
		assert.Equal(t, fmt.Sprintf("%.3f", want.ElapsedMs), fmt.Sprintf("%.3f", got[i].ElapsedMs))
		assert.Equal(t, want.Metrics(), got[i].Metrics())
	}
}

func TestWriteFileEmptyDoesNotTouchDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	err := csvfile.WriteFile(path, []sortbench.Result{})
	require.ErrorIs(t, err, sortbench.ErrNoResults)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "results.csv")
	err := csvfile.WriteFile(path, sample)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestSaveAbortsOnCommitFailure(t *testing.T) {
	m := tempfile.Mock("results.csv", 0)
	m.CommitErr = errors.New("rename failed")
	err := csvfile.Save(m, sample)
	require.Error(t, err)
	assert.True(t, m.Aborted())
	assert.Nil(t, m.Committed())
}

func TestSaveAbortsOnEmpty(t *testing.T) {
	m := tempfile.Mock("results.csv", 0)
	err := csvfile.Save(m, nil)
	require.ErrorIs(t, err, sortbench.ErrNoResults)
	assert.True(t, m.Aborted())
}

func TestSaveCommits(t *testing.T) {
	m := tempfile.Mock("results.csv", 0)
	require.NoError(t, csvfile.Save(m, sample[:1]))
	assert.Equal(t, "Algoritmo;Tempo (ms);Comparacoes;Trocas\nBubble Sort;0.013;6;4\n", string(m.Committed()))
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"bad header", "Name;Time;Comparisons;Swaps\n"},
		{"bad time", "Algoritmo;Tempo (ms);Comparacoes;Trocas\nBubble Sort;fast;6;4\n"},
		{"negative count", "Algoritmo;Tempo (ms);Comparacoes;Trocas\nBubble Sort;0.100;-6;4\n"},
		{"short row", "Algoritmo;Tempo (ms);Comparacoes;Trocas\nBubble Sort;0.100;6\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := csvfile.Read(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}
