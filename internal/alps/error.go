package alps

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrNoIdentity indicates no ALPS application id was found in the environment
	ErrNoIdentity = errors.New("no ALPS application id")

	// ErrNativeUnavailable indicates the binary was built without libalps support
	ErrNativeUnavailable = errors.New("ALPS native library support not compiled in")

	// ErrQueryFailed indicates the native service returned a failure status
	ErrQueryFailed = errors.New("ALPS query failed")

	// ErrReleased indicates a native buffer was used after it was released
	ErrReleased = errors.New("ALPS buffer already released")

	// ErrUnknownProperty indicates a property name that is not in the descriptor table
	ErrUnknownProperty = errors.New("unknown property")
)

// QueryError represents a failed call into the native ALPS service
type QueryError struct {
	Op      string // Native operation (e.g., "appinfo", "placement")
	Apid    Apid   // Application id the query was issued for
	Code    int    // Native error code
	Message string // Native error message (may be empty)
}

func (e *QueryError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("ALPS %s query for apid %d failed (code %d): %s",
			e.Op, e.Apid, e.Code, e.Message)
	}
	return fmt.Sprintf("ALPS %s query for apid %d failed (code %d)", e.Op, e.Apid, e.Code)
}

func (e *QueryError) Unwrap() error {
	return ErrQueryFailed
}

// NewQueryError creates a new QueryError
func NewQueryError(op string, apid Apid, code int, message string) *QueryError {
	return &QueryError{
		Op:      op,
		Apid:    apid,
		Code:    code,
		Message: message,
	}
}

// IsQueryError checks if an error is a QueryError
func IsQueryError(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe)
}
