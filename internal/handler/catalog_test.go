package handler_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BrianKhong-BK/vercel-fsaAPI/internal/handler"
	"github.com/BrianKhong-BK/vercel-fsaAPI/internal/model"
	"github.com/BrianKhong-BK/vercel-fsaAPI/internal/repository"
)

// MockCatalogStore is a mock implementation of the CatalogStore interface.
type MockCatalogStore struct {
	mock.Mock
}

func (m *MockCatalogStore) ListAll(ctx context.Context) ([]model.Movie, error) {
	args := m.Called()
	return args.Get(0).([]model.Movie), args.Error(1)
}

func (m *MockCatalogStore) GetByID(ctx context.Context, id uint64) (model.Movie, error) {
	args := m.Called(id)
	return args.Get(0).(model.Movie), args.Error(1)
}

func (m *MockCatalogStore) GetShowInfo(ctx context.Context, movieID uint64) (*repository.ShowInfo, error) {
	args := m.Called(movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ShowInfo), args.Error(1)
}

func getContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGetMovies(t *testing.T) {
	store := new(MockCatalogStore)
	h := handler.NewCatalogHandler(store)

	store.On("ListAll").Return([]model.Movie{
		{ID: 1, Name: "Dune", Image: "dune.jpg"},
		{ID: 2, Name: "Arrival", Image: "arrival.jpg"},
	}, nil)

	c, rec := getContext("/movies")
	require.NoError(t, h.GetMovies(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got []model.Movie
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestGetMovieByQueryParam(t *testing.T) {
	store := new(MockCatalogStore)
	h := handler.NewCatalogHandler(store)

	store.On("GetByID", uint64(2)).Return(model.Movie{ID: 2, Name: "Arrival", Image: "arrival.jpg"}, nil)

	c, rec := getContext("/movie?movieId=2")
	require.NoError(t, h.GetMovie(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Arrival")
}

func TestGetMovieNotFound(t *testing.T) {
	store := new(MockCatalogStore)
	h := handler.NewCatalogHandler(store)

	store.On("GetByID", uint64(9)).Return(model.Movie{}, sql.ErrNoRows)

	c, rec := getContext("/movie?movieId=9")
	require.NoError(t, h.GetMovie(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetMovieMissingID(t *testing.T) {
	store := new(MockCatalogStore)
	h := handler.NewCatalogHandler(store)

	c, rec := getContext("/movie")
	require.NoError(t, h.GetMovie(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	store.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestGetShows(t *testing.T) {
	store := new(MockCatalogStore)
	h := handler.NewCatalogHandler(store)

	info := &repository.ShowInfo{
		Movie: model.Movie{ID: 1, Name: "Dune", Image: "dune.jpg"},
		Dates: []string{"2024-01-01", "2024-01-02"},
		Times: []model.ShowTime{
			{Date: "2024-01-01", TimeSlot: "18:00"},
			{Date: "2024-01-02", TimeSlot: "21:00"},
		},
	}
	store.On("GetShowInfo", uint64(1)).Return(info, nil)

	c, rec := getContext("/shows/1")
	c.SetPath("/shows/:movieId")
	c.SetParamNames("movieId")
	c.SetParamValues("1")

	require.NoError(t, h.GetShows(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got repository.ShowInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, info.Movie.Name, got.Movie.Name)
	assert.Equal(t, info.Dates, got.Dates)
	assert.Len(t, got.Times, 2)
}

func TestGetShowsNoShowFound(t *testing.T) {
	store := new(MockCatalogStore)
	h := handler.NewCatalogHandler(store)

	store.On("GetShowInfo", uint64(8)).Return(nil, sql.ErrNoRows)

	c, rec := getContext("/shows/8")
	c.SetPath("/shows/:movieId")
	c.SetParamNames("movieId")
	c.SetParamValues("8")

	require.NoError(t, h.GetShows(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
