// Package runner provides multi-file analysis orchestration: file
// discovery, a concurrent worker pool, and the per-file analyze/fix
// loop.
package runner

// DefaultMaxFixPasses bounds the analyze-fix-reanalyze loop. Fixes are
// idempotent, so the loop normally converges in two passes.
const DefaultMaxFixPasses = 3

// Options controls a multi-file run.
type Options struct {
	// Paths are the files or directories to process. Empty means the
	// working directory.
	Paths []string

	// WorkingDir resolves relative Paths. Empty means the process
	// working directory.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, leading dot)
	// treated as Markdown. Empty means DefaultExtensions().
	Extensions []string

	// ExcludeGlobs are patterns matched against slash-separated paths
	// relative to WorkingDir; matches are skipped.
	ExcludeGlobs []string

	// Jobs caps concurrent workers. Zero or negative means one worker
	// per CPU.
	Jobs int

	// Fix applies available fixes and rewrites changed files.
	Fix bool

	// DryRun computes fixes without writing anything.
	DryRun bool

	// MaxFixPasses bounds fix iterations per file. Zero means
	// DefaultMaxFixPasses.
	MaxFixPasses int
}

// DefaultExtensions returns the default Markdown file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

func (o Options) maxPasses() int {
	if o.MaxFixPasses <= 0 {
		return DefaultMaxFixPasses
	}
	return o.MaxFixPasses
}
