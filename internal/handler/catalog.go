package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/BrianKhong-BK/vercel-fsaAPI/internal/model"
	"github.com/BrianKhong-BK/vercel-fsaAPI/internal/repository"
)

// CatalogStore is the read-only slice of the store the catalog endpoints
// need.  *repository.MovieRepo implements it.
type CatalogStore interface {
	ListAll(ctx context.Context) ([]model.Movie, error)
	GetByID(ctx context.Context, id uint64) (model.Movie, error)
	GetShowInfo(ctx context.Context, movieID uint64) (*repository.ShowInfo, error)
}

// CatalogHandler serves the movie and show browsing endpoints.
type CatalogHandler struct {
	Movies CatalogStore
}

func NewCatalogHandler(movies CatalogStore) *CatalogHandler {
	return &CatalogHandler{Movies: movies}
}

// GetMovies handles GET /movies and returns the full catalog.
func (h *CatalogHandler) GetMovies(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	movies, err := h.Movies.ListAll(ctx)
	if err != nil {
		c.Logger().Errorf("list movies: %v", err)
		return c.JSON(storeErrStatus(err), echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, movies)
}

// GetMovie handles GET /movie.  The movie id is taken from the movieId
// query parameter; a JSON body with the same field is still accepted for
// clients built against the old id-in-body shape.
func (h *CatalogHandler) GetMovie(c echo.Context) error {
	id, err := strconv.ParseUint(c.QueryParam("movieId"), 10, 64)
	if err != nil || id == 0 {
		var body struct {
			MovieID uint64 `json:"movieId"`
		}
		if bindErr := c.Bind(&body); bindErr != nil || body.MovieID == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "movieId is required"})
		}
		id = body.MovieID
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	m, err := h.Movies.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		c.Logger().Errorf("get movie %d: %v", id, err)
		return c.JSON(storeErrStatus(err), echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, m)
}

// GetShows handles GET /shows/:movieId and returns the movie together with
// its distinct screening dates and (date, time slot) pairs.  A movie with no
// shows at all is reported as not found.
func (h *CatalogHandler) GetShows(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("movieId"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	info, err := h.Movies.GetShowInfo(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no show found"})
		}
		c.Logger().Errorf("show info %d: %v", id, err)
		return c.JSON(storeErrStatus(err), echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, info)
}
