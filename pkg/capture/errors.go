package capture

import "errors"

var (
	// ErrExportFailed matches every failed export regardless of mode.
	ErrExportFailed = errors.New("capture: export failed")
	// ErrInvalidSize is returned for a non-positive target size.
	ErrInvalidSize = errors.New("capture: width and height must be positive")
	// ErrUnknownMode is returned by ParseMode.
	ErrUnknownMode = errors.New("capture: unknown mode")
)

// ExportMessage is the user-facing message of every ExportError.
const ExportMessage = "export failed, please retry"

// ExportError wraps the cause of a failed export.
type ExportError struct {
	Mode Mode
	Err  error
}

func (e *ExportError) Error() string { return ExportMessage }

func (e *ExportError) Unwrap() error { return e.Err }

// Is reports whether target is ErrExportFailed.
func (e *ExportError) Is(target error) bool { return target == ErrExportFailed }
