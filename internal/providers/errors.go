package providers

import (
	"errors"
	"fmt"
)

// SourceUnavailableError marks a fetch collaborator as failed or timed out
// for the current cycle. The cycle runner recovers by reusing the last
// successful result from that source; it is never fatal.
type SourceUnavailableError struct {
	Source string
	Err    error
}

func (e *SourceUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("source %s unavailable: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("source %s unavailable", e.Source)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// AsSourceUnavailable attempts to unwrap an error into a SourceUnavailableError.
func AsSourceUnavailable(err error) (*SourceUnavailableError, bool) {
	var suErr *SourceUnavailableError
	if errors.As(err, &suErr) {
		return suErr, true
	}
	return nil, false
}
