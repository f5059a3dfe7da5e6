package sortbench

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Benchmark runs the configured sorting algorithms over inputs of one element domain.
// A Benchmark holds no per-run state and may be reused, including concurrently.
type Benchmark[E any] struct {
	domain  Domain[E]
	config  Config
	kernels func(Algorithm) Kernel[E]
}

// run is the outcome of a single algorithm over a private copy of the input
type run[E any] struct {
	result Result
	data   []E
	reason string // empty when the output verified
}

// New creates a Benchmark for domain. config can be nil to use the defaults,
// or only set the non-default values desired.
func New[E any](domain Domain[E], config *Config) (*Benchmark[E], error) {
	if domain.Compare == nil {
		return nil, &ConfigError{Field: "Domain", Value: nil, Reason: "compare function must not be nil"}
	}
	c := mergeConfig(config)
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &Benchmark[E]{domain: domain, config: *c, kernels: kernel[E]}, nil
}

// Ints runs a Benchmark over integer input using natural ascending order.
func Ints(ctx context.Context, input []int, config *Config) (*Batch[int], error) {
	b, err := New(IntDomain(), config)
	if err != nil {
		return nil, err
	}
	return b.Run(ctx, input)
}

// Strings runs a Benchmark over text input using case-insensitive order.
func Strings(ctx context.Context, input []string, config *Config) (*Batch[string], error) {
	b, err := New(TextDomain(), config)
	if err != nil {
		return nil, err
	}
	return b.Run(ctx, input)
}

// Name returns the display name of a within this benchmark's domain.
func (b *Benchmark[E]) Name(a Algorithm) string {
	return a.String() + b.domain.Suffix
}

// Run sorts a private copy of input with every configured algorithm and collects
// one Result per algorithm in configured order. input is never modified.
//
// A run whose output fails verification is reported in Batch.Warnings and does not
// stop the remaining algorithms. Run only returns an error when ctx is done before
// every algorithm has started; the partial batch is returned along with ctx.Err().
// Kernels themselves are not interruptible.
func (b *Benchmark[E]) Run(ctx context.Context, input []E) (*Batch[E], error) {
	batch := &Batch[E]{ID: uuid.NewString()}
	logger := b.config.Logger.With(zap.String("batch", batch.ID), zap.Int("size", len(input)))

	runs := make([]*run[E], len(b.config.Algorithms))
	var err error
	if b.config.Parallelism > 1 {
		err = b.runParallel(ctx, logger, input, runs)
	} else {
		err = b.runSequential(ctx, logger, input, runs)
	}

	for _, r := range runs {
		if r == nil {
			continue
		}
		batch.Results = append(batch.Results, r.result)
		if r.reason != "" {
			batch.Warnings = append(batch.Warnings, Warning{Algorithm: r.result.Name, Reason: r.reason})
			continue
		}
		if batch.Sorted == nil {
			batch.Sorted = r.data
		}
	}
	return batch, err
}

func (b *Benchmark[E]) runSequential(ctx context.Context, logger *zap.Logger, input []E, runs []*run[E]) error {
	for i, a := range b.config.Algorithms {
		if err := ctx.Err(); err != nil {
			return err
		}
		runs[i] = b.runOne(logger, a, input)
	}
	return nil
}

// runParallel runs up to Parallelism algorithms at once, every one with its own
// counter and working copy. runs keeps the configured order.
func (b *Benchmark[E]) runParallel(ctx context.Context, logger *zap.Logger, input []E, runs []*run[E]) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.config.Parallelism)
	for i, a := range b.config.Algorithms {
		i, a := i, a
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			runs[i] = b.runOne(logger, a, input)
			return nil
		})
	}
	return g.Wait()
}

// runOne clones input, times the kernel of a over the clone and verifies the output
func (b *Benchmark[E]) runOne(logger *zap.Logger, a Algorithm, input []E) *run[E] {
	name := b.Name(a)
	sortFunc := b.kernels(a)
	data := slices.Clone(input)

	var c Counter
	c.Reset()
	start := time.Now()
	sortFunc(data, b.domain.Compare, &c)
	elapsed := time.Since(start)

	r := &run[E]{result: NewResult(name, elapsed, c.Snapshot()), data: data}
	switch {
	case !IsSorted(data, b.domain.Compare):
		r.reason = "output is not in ascending order"
	case b.config.VerifyPermutation && !IsPermutation(input, data, b.domain.Compare):
		r.reason = "output is not a permutation of the input"
	}

	fields := []zap.Field{
		zap.String("algorithm", name),
		zap.Float64("elapsed_ms", r.result.ElapsedMs),
		zap.Uint64("comparisons", r.result.Comparisons),
		zap.Uint64("swaps", r.result.Swaps),
	}
	if r.reason != "" {
		logger.Warn("algorithm did not sort correctly", append(fields, zap.String("reason", r.reason))...)
	} else {
		logger.Debug("algorithm finished", fields...)
	}

	if b.config.Observer != nil {
		b.config.Observer.Observe(r.result, r.reason == "")
	}
	return r
}
