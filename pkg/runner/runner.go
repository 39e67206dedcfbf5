package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/yaklabco/marklint/internal/logging"
	"github.com/yaklabco/marklint/pkg/engine"
	"github.com/yaklabco/marklint/pkg/fsutil"
)

// Runner processes many files concurrently through one Analyzer.
type Runner struct {
	analyzer *engine.Analyzer
}

// New creates a Runner over the given analyzer.
func New(analyzer *engine.Analyzer) *Runner {
	return &Runner{analyzer: analyzer}
}

// Run discovers files and processes them with a worker pool. Reports
// come back in path order regardless of completion order.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileReport, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileReport)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	reports := make(map[string]FileReport, len(files))
	for report := range outCh {
		reports[report.Path] = report
	}

	for _, path := range files {
		if report, ok := reports[path]; ok {
			result.accumulate(report)
		}
	}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}
	return result, nil
}

func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileReport, opts Options) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		report := r.processFile(ctx, path, opts)

		select {
		case <-ctx.Done():
			return
		case outCh <- report:
		}
	}
}

// processFile runs the analyze/fix loop for one file. In fix mode the
// file is re-analyzed after each applied batch until the output is
// stable or the pass limit is hit; the original is only replaced once,
// atomically, at the end.
func (r *Runner) processFile(ctx context.Context, path string, opts Options) FileReport {
	logger := logging.FromContext(ctx)
	report := FileReport{Path: path}

	original, err := os.ReadFile(path)
	if err != nil {
		report.Error = fmt.Errorf("read %s: %w", path, err)
		return report
	}

	content := original
	violations, err := r.analyzer.Analyze(ctx, path, content)
	if err != nil {
		report.Error = err
		return report
	}
	initialCount := len(violations)

	if opts.Fix {
		for pass := 0; pass < opts.maxPasses(); pass++ {
			fixable := engine.Fixable(violations)
			if len(fixable) == 0 {
				break
			}

			batch, err := engine.BuildFixBatch(violations, len(content))
			if err != nil {
				report.Error = fmt.Errorf("build fixes for %s: %w", path, err)
				return report
			}

			fixed, err := batch.Apply(content)
			if err != nil {
				report.Error = fmt.Errorf("apply fixes to %s: %w", path, err)
				return report
			}
			if bytes.Equal(fixed, content) {
				break
			}
			content = fixed

			violations, err = r.analyzer.Analyze(ctx, path, content)
			if err != nil {
				report.Error = err
				return report
			}
		}
	}

	if opts.Fix && !bytes.Equal(content, original) {
		if resolved := initialCount - len(violations); resolved > 0 {
			report.FixedCount = resolved
		}

		if opts.DryRun {
			logger.Info("would fix file", logging.FieldPath, path)
		} else {
			mode := fileMode(path)
			if err := fsutil.WriteAtomic(ctx, path, content, mode); err != nil {
				report.Error = fmt.Errorf("write %s: %w", path, err)
				return report
			}
			report.Written = true
			logger.Debug("fixed file", logging.FieldPath, path)
		}
	}

	report.Violations = violations
	return report
}

func fileMode(path string) os.FileMode {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Mode().Perm()
}
