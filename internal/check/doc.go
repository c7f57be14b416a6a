// Package check runs batches of filter-name validations.
//
// The Runner takes raw filter names and fixture files, resolves each
// entry through the passband catalog, and reports what happened through
// a leveled progress callback, so the CLI and the TUI can render the same
// run their own way:
//
//	runner := check.NewRunner(passband.Default, func(ev check.ProgressEvent) {
//	    fmt.Println(ev.Message)
//	})
//	runner.CheckNames(ctx, []string{"Johnson V", "Gunn G"})
//	runner.CheckFiles(ctx, []string{"filters/Johnson"})
//	checked, failed := runner.Counts()
//
// Fixture files are checked concurrently; entries within a file are
// checked in order so failure reports carry stable line numbers.
package check
