package handler

import (
	"context"
	"database/sql/driver"
	"errors"
	"net/http"
)

// storeErrStatus maps an unexpected store error onto an HTTP status.
// Connection acquisition failures and timed-out calls are reported as 503 so
// clients can distinguish "try again" from a genuine server fault.  The
// underlying error text never reaches the client; callers log it instead.
func storeErrStatus(err error) int {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, driver.ErrBadConn) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
