package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/mdbridge/internal/configloader"
	"github.com/yaklabco/mdbridge/pkg/fsutil"
)

// Exit codes for mdbridge.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailures indicates the run completed but some files failed or
	// were not stable after a round trip.
	ExitFailures = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrUnstable is returned when a round-trip check finds unstable files.
	ErrUnstable = errors.New("round trip is not stable")

	// ErrFilesFailed is returned when some files could not be processed.
	ErrFilesFailed = errors.New("some files failed")

	// ErrUsage marks invalid command-line usage.
	ErrUsage = errors.New("invalid usage")
)

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	var validationErr *configloader.ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUnstable), errors.Is(err, ErrFilesFailed):
		return ExitFailures
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.As(err, &validationErr):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, fsutil.ErrTooLarge),
		errors.Is(err, fs.ErrNotExist),
		errors.Is(err, fs.ErrPermission):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

// IsQuiet reports whether err only signals an exit code and was already
// reported to the user.
func IsQuiet(err error) bool {
	return errors.Is(err, ErrUnstable) || errors.Is(err, ErrFilesFailed)
}
