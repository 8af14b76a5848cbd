package transfer

import "fmt"

// ExportError represents a failure serializing or writing a document.
type ExportError struct {
	Message string
	Cause   error
}

func (e *ExportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("export error: %s", e.Message)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}

// ImportError represents a rejected import. The caller's current document is
// never modified when one is returned.
type ImportError struct {
	Message string
	Cause   error
}

func (e *ImportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("import error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("import error: %s", e.Message)
}

func (e *ImportError) Unwrap() error {
	return e.Cause
}
