package runner

import "github.com/yaklabco/marklint/pkg/engine"

// FileReport is the outcome for one processed file.
type FileReport struct {
	// Path is the absolute path of the file.
	Path string

	// Violations are the remaining violations after any fixing.
	Violations []engine.Violation

	// FixedCount is the number of violations resolved by applied fixes.
	FixedCount int

	// Written is true when the fixed content was written back.
	Written bool

	// Error is set when the file could not be processed.
	Error error
}

// Stats aggregates counts across a run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int
	FilesErrored    int
	FilesWithIssues int
	FilesModified   int

	ViolationsTotal   int
	ViolationsFixable int
	ViolationsFixed   int

	// BySeverity maps severity names to violation counts.
	BySeverity map[string]int
}

// Result is the aggregate outcome of a run, with files in path order.
type Result struct {
	Files []FileReport
	Stats Stats
}

// HasFailures reports whether any error-severity violations remain.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.BySeverity["error"] > 0
}

// HasIssues reports whether any violations remain.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.ViolationsTotal > 0
}

func newStats() Stats {
	return Stats{BySeverity: make(map[string]int)}
}

func (r *Result) accumulate(report FileReport) {
	r.Files = append(r.Files, report)

	if report.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.ViolationsFixed += report.FixedCount
	if report.Written {
		r.Stats.FilesModified++
	}
	if len(report.Violations) == 0 {
		return
	}

	r.Stats.FilesWithIssues++
	r.Stats.ViolationsTotal += len(report.Violations)
	for _, v := range report.Violations {
		if v.HasFix() {
			r.Stats.ViolationsFixable++
		}
		if v.Severity.Reportable() {
			r.Stats.BySeverity[string(v.Severity)]++
		}
	}
}
