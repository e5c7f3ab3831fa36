// Package handler exposes the HTTP handlers that map inbound requests onto
// the catalog, account and booking services.  Handlers bind JSON, call the
// store through narrow interfaces and serialize results; they own the
// translation from store errors to the HTTP error taxonomy.
package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Health verifies store connectivity and reports service liveness.  Load
// balancers and monitors probe this endpoint.
func Health(db *sql.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "store unavailable"})
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Connected successfully"})
	}
}
