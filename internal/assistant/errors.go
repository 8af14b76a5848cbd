package assistant

import (
	"errors"
	"fmt"
)

// ErrUnavailable is returned when no API key is configured.
var ErrUnavailable = errors.New("assistant unavailable: no API key configured")

// AssistantError represents a failed assistant operation. The document is
// never modified when one is returned.
type AssistantError struct {
	Op      string
	Message string
	Cause   error
}

func (e *AssistantError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("assistant %s: %s: %v", e.Op, e.Message, e.Cause)
	}
	return fmt.Sprintf("assistant %s: %s", e.Op, e.Message)
}

func (e *AssistantError) Unwrap() error {
	return e.Cause
}
