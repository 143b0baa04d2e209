package errs

import (
	"fmt"
	"net/http"
)

// NewDatabaseError wraps a store-level failure with the operation and entity
// it happened on. The original cause stays reachable through Cause for logs.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrInternal,
		Details:    fmt.Sprintf("failed to %s %s", operation, entity),
		Cause:      cause,
	}
}
