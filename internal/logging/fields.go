package logging

// Structured field keys shared across log call sites.
const (
	FieldError = "error"
	FieldPath  = "path"
	FieldRule  = "rule"

	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
