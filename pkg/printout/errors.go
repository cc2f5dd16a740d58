// SPDX-License-Identifier: MPL-2.0

package printout

import "errors"

// ErrAborted is the sentinel wrapped by AbortError.
var ErrAborted = errors.New("aborted")

// AbortError signals that a critical report was rendered and the running task
// must stop. The message has already been written when it is returned.
type AbortError struct {
	Message string
}

// Error implements the error interface.
func (e *AbortError) Error() string {
	if e.Message == "" {
		return ErrAborted.Error()
	}
	return "aborted: " + e.Message
}

// Unwrap returns ErrAborted for errors.Is() compatibility.
func (e *AbortError) Unwrap() error { return ErrAborted }

// IsAbort reports whether err carries an abort signal.
func IsAbort(err error) bool { return errors.Is(err, ErrAborted) }
