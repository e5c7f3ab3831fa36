// Package handler adapts the application to on-demand function invocation
// (e.g. Vercel's Go runtime).  It contains no route or business logic of its
// own: the same app.New wiring used by cmd/server is built once per instance
// and every invocation is dispatched into it.
package handler

import (
	"log"
	"net/http"
	"sync"

	"github.com/BrianKhong-BK/vercel-fsaAPI/internal/app"
	"github.com/BrianKhong-BK/vercel-fsaAPI/internal/config"
)

var (
	once    sync.Once
	appInst *app.App
	initErr error
)

// Handler is the function entry point.  Instances are reused across
// invocations, so the app (and its connection pool) is built exactly once.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		appInst, initErr = app.New(config.Load())
		if initErr != nil {
			log.Printf("startup: %v", initErr)
		}
	})
	if initErr != nil {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}
	appInst.Echo().ServeHTTP(w, r)
}
