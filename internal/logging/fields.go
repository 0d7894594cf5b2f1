// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"
	FieldReason     = "reason"

	// Conversion fields.
	FieldDirection = "direction"
	FieldEngine    = "engine"
	FieldFlavor    = "flavor"
	FieldSource    = "source"
	FieldTarget    = "target"
	FieldBackup    = "backup"
	FieldDryRun    = "dry_run"
	FieldJobs      = "jobs"
	FieldStable    = "stable"
	FieldChanged   = "changed"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesWritten    = "files_written"
	FieldFilesUnstable   = "files_unstable"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
