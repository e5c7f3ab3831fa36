// Package app assembles the application: store, repositories, handlers,
// middleware and routes.  Both deployment shapes build the same App and
// differ only in how they invoke it, so there is exactly one implementation
// of the request handling behind them.
package app

import (
	"database/sql"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/BrianKhong-BK/vercel-fsaAPI/internal/config"
	"github.com/BrianKhong-BK/vercel-fsaAPI/internal/database"
	"github.com/BrianKhong-BK/vercel-fsaAPI/internal/handler"
	"github.com/BrianKhong-BK/vercel-fsaAPI/internal/middleware"
	"github.com/BrianKhong-BK/vercel-fsaAPI/internal/repository"
	"github.com/BrianKhong-BK/vercel-fsaAPI/internal/router"
	"github.com/BrianKhong-BK/vercel-fsaAPI/internal/service"
)

// App owns the HTTP engine and the store handle.  The pool is created here
// and injected into every repository; nothing holds it as a global.
type App struct {
	echo *echo.Echo
	db   *sql.DB
}

// New connects to the store and wires the full application.
func New(cfg config.Config) (*App, error) {
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		return nil, err
	}

	movies := repository.NewMovieRepo(db)
	users := repository.NewUserRepo(db)
	bookings := repository.NewBookingRepo(db)

	catalog := handler.NewCatalogHandler(movies)
	auth := handler.NewAuthHandler(cfg, users)
	booking := handler.NewBookingHandler(bookings, service.NewQueuePublisher())

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	// Redis-backed middleware degrades to pass-through when Redis is down.
	rdb := config.NewRedisClient()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	router.Register(e, cfg, db, catalog, auth, booking)

	return &App{echo: e, db: db}, nil
}

// Echo exposes the underlying engine for serving.
func (a *App) Echo() *echo.Echo { return a.echo }

// Close releases the store pool.
func (a *App) Close() error { return a.db.Close() }
