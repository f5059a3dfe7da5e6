package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lanrat/sortbench"
	"github.com/lanrat/sortbench/csvfile"
	"github.com/lanrat/sortbench/input"
	"github.com/lanrat/sortbench/telemetry"
)

// metricsNamespace prefixes every exported metric name
const metricsNamespace = "sortbench"

type runOptions struct {
	kind              string
	file              string
	algorithms        []string
	parallelism       int
	verifyPermutation bool
	rankBy            string
	csvPath           string
	metrics           bool
	chart             bool
	sorted            bool
	configPath        string
	logLevel          string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sortbench",
		Short:         "Compare classic sorting algorithms on your own data",
		Long:          "sortbench runs bubble, quick, merge and heap sort over a list of numbers or texts\nand reports the elapsed time, comparisons and swaps of every algorithm.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newComplexityCmd(), newAlgorithmsCmd())
	return root
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run [values...]",
		Short: "Sort the given values with every algorithm and report the results",
		Long: `Sort the given values with every algorithm and report the results.

Values are separated by commas or white space. Without arguments the values are
read from --file, one per line, or from standard input.`,
		Example: `  sortbench run 5,3,8,1
  sortbench run --type texts banana Apple cherry
  sortbench run --file numbers.txt --csv results.csv --rank-by swaps`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.configPath != "" {
				fc, err := loadConfig(opts.configPath)
				if err != nil {
					return err
				}
				fc.applyTo(cmd, opts)
			}
			return runBenchmark(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.kind, "type", "t", "numbers", "element type: numbers, texts or images")
	flags.StringVarP(&opts.file, "file", "f", "", "read values from a file, one per line")
	flags.StringSliceVarP(&opts.algorithms, "algorithms", "a", nil, "algorithms to run, in order (default all)")
	flags.IntVarP(&opts.parallelism, "parallel", "p", 1, "number of algorithms to run at once")
	flags.BoolVar(&opts.verifyPermutation, "verify-permutation", false, "also check that every output holds exactly the input values")
	flags.StringVar(&opts.rankBy, "rank-by", "", "order the table by time, comparisons or swaps")
	flags.StringVar(&opts.csvPath, "csv", "", "save the results as CSV to this path")
	flags.BoolVar(&opts.metrics, "metrics", false, "print the run metrics in Prometheus text format")
	flags.BoolVar(&opts.chart, "chart", true, "draw a bar chart of the results")
	flags.BoolVar(&opts.sorted, "sorted", true, "print the sorted values")
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error or off")
	return cmd
}

func runBenchmark(cmd *cobra.Command, opts *runOptions, args []string) error {
	kind, err := input.ParseKind(opts.kind)
	if err != nil {
		return err
	}
	if err := kind.Supported(); err != nil {
		return err
	}

	var rank *sortbench.Metric
	if opts.rankBy != "" {
		m, err := sortbench.ParseMetric(opts.rankBy)
		if err != nil {
			return err
		}
		rank = &m
	}

	config, err := opts.benchConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), opts.logLevel)
	if err != nil {
		return &sortbench.ConfigError{Field: "log-level", Value: opts.logLevel, Reason: err.Error()}
	}
	defer logger.Sync() //nolint:errcheck
	config.Logger = logger

	var collector *telemetry.Collector
	if opts.metrics {
		collector = telemetry.NewCollector(metricsNamespace)
		config.Observer = collector
	}

	data, err := readInput(cmd, kind, opts.file, args)
	if err != nil {
		return err
	}
	logger.Debug("input loaded", zap.Stringer("type", data.Kind), zap.Int("size", data.Len()))

	out := cmd.OutOrStdout()
	var results sortbench.Results
	switch data.Kind {
	case input.Texts:
		batch, err := sortbench.Strings(cmd.Context(), data.Strings, config)
		if err != nil {
			return err
		}
		results = batch.Results
		report(out, opts, rank, batch)
	default:
		batch, err := sortbench.Ints(cmd.Context(), data.Ints, config)
		if err != nil {
			return err
		}
		results = batch.Results
		report(out, opts, rank, batch)
	}

	if opts.csvPath != "" {
		if err := csvfile.WriteFile(opts.csvPath, results); err != nil {
			return err
		}
		fmt.Fprintln(out, styles.Muted.Render("results saved to "+opts.csvPath))
	}
	if collector != nil {
		fmt.Fprintln(out)
		if err := collector.WriteText(out); err != nil {
			return err
		}
	}
	return nil
}

// readInput takes the values from the arguments, the file or standard input, in that order
func readInput(cmd *cobra.Command, kind input.Kind, file string, args []string) (input.Data, error) {
	switch {
	case len(args) > 0:
		return input.Manual(kind, strings.Join(args, " "))
	case file != "":
		return input.ReadFile(kind, file)
	default:
		return input.Read(kind, cmd.InOrStdin())
	}
}

// report prints everything the user sees for one batch
func report[E any](w io.Writer, opts *runOptions, rank *sortbench.Metric, batch *sortbench.Batch[E]) {
	fmt.Fprintln(w, styles.Muted.Render("batch "+batch.ID))

	results := batch.Results
	if rank != nil {
		results = results.Rank(*rank)
	}
	fmt.Fprintln(w, renderTable(results, rank != nil))

	for _, warning := range batch.Warnings {
		fmt.Fprintln(w, styles.Warning.Render("warning: "+warning.String()))
	}

	if opts.chart {
		fmt.Fprintln(w)
		fmt.Fprint(w, renderChart(batch.Results.Series(), chartWidth))
	}
	if caption := batch.Results.Caption(); caption != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, styles.Caption.Render(caption))
	}
	if opts.sorted {
		fmt.Fprintln(w)
		fmt.Fprintln(w, styles.Title.Render("Sorted values"))
		fmt.Fprint(w, renderSorted(batch.Sorted))
	}
}

func newComplexityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complexity [algorithm...]",
		Short: "Show the worst case time and space complexity of algorithms",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, renderAlgorithms())
				return nil
			}
			for _, name := range args {
				description := sortbench.Complexity(name)
				if a, err := sortbench.ParseAlgorithm(name); err == nil {
					description = a.Complexity()
				}
				fmt.Fprintf(out, "%s: %s\n", name, description)
			}
			return nil
		},
	}
}

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the available algorithms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, a := range sortbench.Algorithms {
				fmt.Fprintln(cmd.OutOrStdout(), a)
			}
		},
	}
}
