package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/mdbridge/internal/logging"
)

// Processor handles one file. Implementations must be safe for concurrent use.
type Processor interface {
	Process(ctx context.Context, path string) (*FileResult, error)
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc func(ctx context.Context, path string) (*FileResult, error)

// Process calls f.
func (f ProcessorFunc) Process(ctx context.Context, path string) (*FileResult, error) {
	return f(ctx, path)
}

// Runner feeds discovered files to a Processor through a worker pool.
type Runner struct {
	Processor Processor
}

// New creates a Runner for proc.
func New(proc Processor) *Runner {
	return &Runner{Processor: proc}
}

// Run discovers files under opts.Paths and processes them concurrently.
// Outcomes are returned in path order regardless of completion order.
// On cancellation the partial result is returned with the context error.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug("discovered files", logging.FieldFilesDiscovered, len(files))

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	for _, outcome := range r.processAll(ctx, files, opts.Jobs) {
		if outcome.Path != "" {
			result.accumulate(outcome)
		}
	}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}
	return result, nil
}

// processAll runs files through the processor on up to jobs goroutines.
// Each worker writes to its file's slot, so no ordering pass is needed.
// Slots for files never started keep an empty Path.
func (r *Runner) processAll(ctx context.Context, files []string, jobs int) []FileOutcome {
	outcomes := make([]FileOutcome, len(files))
	if len(files) == 0 {
		return outcomes
	}

	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	indexes := make(chan int)
	go func() {
		defer close(indexes)
		for i := range files {
			select {
			case <-ctx.Done():
				return
			case indexes <- i:
			}
		}
	}()

	logger := logging.FromContext(ctx)

	var wg sync.WaitGroup
	for range jobs {
		wg.Go(func() {
			for i := range indexes {
				if ctx.Err() != nil {
					continue
				}
				path := files[i]
				res, err := r.Processor.Process(ctx, path)
				if err != nil {
					logger.Debug("file failed", logging.FieldPath, path, logging.FieldError, err)
				}
				outcomes[i] = FileOutcome{Path: path, Result: res, Error: err}
			}
		})
	}
	wg.Wait()

	return outcomes
}
