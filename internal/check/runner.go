package check

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/astrophot/passband/internal/fixture"
	"github.com/astrophot/passband/internal/passband"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents one validation progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Runner coordinates filter-name validation runs.
type Runner struct {
	catalog            *passband.Catalog
	maxConcurrentFiles int

	checked int32
	failed  int32

	onProgress func(ProgressEvent)
}

// NewRunner creates a Runner over the given catalog. The onProgress
// callback receives every per-entry result; it may be nil. Callbacks for
// concurrent fixture files may arrive interleaved, so the callback must
// be safe for concurrent use (printing line-by-line is fine).
func NewRunner(catalog *passband.Catalog, onProgress func(ProgressEvent)) *Runner {
	return &Runner{
		catalog:            catalog,
		maxConcurrentFiles: 4,
		onProgress:         onProgress,
	}
}

// CheckNames validates raw filter names one by one. Each name either
// resolves to a canonical passband (Success) or fails with the parser's
// error (Error). Returns early with the context error on cancellation.
func (r *Runner) CheckNames(ctx context.Context, names []string) error {
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}

		pb, err := r.catalog.Parse(name)
		atomic.AddInt32(&r.checked, 1)
		if err != nil {
			atomic.AddInt32(&r.failed, 1)
			r.progress(ProgressEvent{
				Message: fmt.Sprintf("%q: %v", name, err),
				Level:   LevelError,
			})
			continue
		}

		r.progress(ProgressEvent{
			Message: fmt.Sprintf("%q -> %s", name, describe(pb)),
			Level:   LevelSuccess,
		})
	}
	return nil
}

// CheckFiles validates fixture files concurrently. Every entry's name
// must parse, and the parsed letter must match the letter the fixture
// expects. An unreadable or malformed file counts as one failure.
func (r *Runner) CheckFiles(ctx context.Context, paths []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.maxConcurrentFiles)

	for _, path := range paths {
		g.Go(func() error {
			return r.checkFile(ctx, path)
		})
	}

	return g.Wait()
}

// Counts returns how many entries were checked and how many failed.
func (r *Runner) Counts() (checked, failed int32) {
	return atomic.LoadInt32(&r.checked), atomic.LoadInt32(&r.failed)
}

func (r *Runner) checkFile(ctx context.Context, path string) error {
	entries, err := fixture.ReadFile(path)
	if err != nil {
		atomic.AddInt32(&r.checked, 1)
		atomic.AddInt32(&r.failed, 1)
		r.progress(ProgressEvent{
			Message: fmt.Sprintf("Error reading %s: %v", path, err),
			Level:   LevelError,
		})
		return nil // continue with the other files
	}

	r.progress(ProgressEvent{
		Message: fmt.Sprintf("Checking %s (%d entries)", path, len(entries)),
		Level:   LevelVerbose,
	})

	var failures int
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		atomic.AddInt32(&r.checked, 1)

		pb, err := r.catalog.Parse(e.Name)
		if err != nil {
			atomic.AddInt32(&r.failed, 1)
			failures++
			r.progress(ProgressEvent{
				Message: fmt.Sprintf("%s:%d: %q: %v", path, e.Line, e.Name, err),
				Level:   LevelError,
			})
			continue
		}
		if pb.Letter != e.Letter {
			atomic.AddInt32(&r.failed, 1)
			failures++
			r.progress(ProgressEvent{
				Message: fmt.Sprintf("%s:%d: %q resolved to letter %q, expected %q",
					path, e.Line, e.Name, pb.Letter, e.Letter),
				Level:   LevelError,
			})
			continue
		}

		r.progress(ProgressEvent{
			Message: fmt.Sprintf("%s:%d: %q -> %s", path, e.Line, e.Name, describe(pb)),
			Level:   LevelVerbose,
		})
	}

	if failures == 0 {
		r.progress(ProgressEvent{
			Message: fmt.Sprintf("%s: all %d entries OK", path, len(entries)),
			Level:   LevelSuccess,
		})
	} else {
		r.progress(ProgressEvent{
			Message: fmt.Sprintf("%s: %d of %d entries failed", path, failures, len(entries)),
			Level:   LevelWarning,
		})
	}

	return nil
}

func (r *Runner) progress(event ProgressEvent) {
	if r.onProgress != nil {
		r.onProgress(event)
	}
}

func describe(pb passband.Passband) string {
	if pb.System.Identified() {
		return fmt.Sprintf("letter %s, %s, %d nm", pb.Letter, pb.System, pb.Wavelength)
	}
	return fmt.Sprintf("letter %s, no system, %d nm", pb.Letter, pb.Wavelength)
}
