package repository

import (
	"context"
	"database/sql"

	"github.com/BrianKhong-BK/vercel-fsaAPI/internal/model"
)

// MovieRepo provides read-only catalog queries over movies, shows and time
// slots.  The catalog is never mutated through this service, so the repo
// exposes no write methods.
type MovieRepo struct{ DB *sql.DB }

func NewMovieRepo(db *sql.DB) *MovieRepo { return &MovieRepo{DB: db} }

// ListAll returns every movie in the catalog.
func (r *MovieRepo) ListAll(ctx context.Context) ([]model.Movie, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name, image, COALESCE(metadata,'') FROM movies")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	movies := make([]model.Movie, 0)
	for rows.Next() {
		var m model.Movie
		if err := rows.Scan(&m.ID, &m.Name, &m.Image, &m.Metadata); err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

// GetByID fetches a single movie.  sql.ErrNoRows is returned when the id
// does not exist.
func (r *MovieRepo) GetByID(ctx context.Context, id uint64) (model.Movie, error) {
	var m model.Movie
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, image, COALESCE(metadata,'') FROM movies WHERE id=? LIMIT 1",
		id).Scan(&m.ID, &m.Name, &m.Image, &m.Metadata)
	return m, err
}

// ShowInfo aggregates everything the show-info endpoint returns for one
// movie: the movie itself, the distinct dates it screens on, and the
// (date, time_slot) pairs of its screenings.
type ShowInfo struct {
	Movie model.Movie      `json:"movie"`
	Dates []string         `json:"dates"`
	Times []model.ShowTime `json:"times"`
}

// GetShowInfo loads the show information for a movie.  It returns
// sql.ErrNoRows when no show exists for the movie at all.
func (r *MovieRepo) GetShowInfo(ctx context.Context, movieID uint64) (*ShowInfo, error) {
	var info ShowInfo
	// A movie without any show is reported as not found, matching the
	// endpoint contract rather than the movies table contents.
	err := r.DB.QueryRowContext(ctx,
		`SELECT DISTINCT m.id, m.name, m.image
		 FROM movies m JOIN shows s ON m.id = s.movie_id
		 WHERE s.movie_id = ?`, movieID).
		Scan(&info.Movie.ID, &info.Movie.Name, &info.Movie.Image)
	if err != nil {
		return nil, err
	}

	dateRows, err := r.DB.QueryContext(ctx,
		"SELECT DISTINCT date FROM shows WHERE movie_id = ? ORDER BY date", movieID)
	if err != nil {
		return nil, err
	}
	defer dateRows.Close()
	info.Dates = make([]string, 0)
	for dateRows.Next() {
		var d string
		if err := dateRows.Scan(&d); err != nil {
			return nil, err
		}
		info.Dates = append(info.Dates, d)
	}
	if err := dateRows.Err(); err != nil {
		return nil, err
	}

	timeRows, err := r.DB.QueryContext(ctx,
		`SELECT s.date, t.time_slot
		 FROM shows s JOIN times t ON s.time_id = t.id
		 WHERE s.movie_id = ? ORDER BY s.time_id`, movieID)
	if err != nil {
		return nil, err
	}
	defer timeRows.Close()
	info.Times = make([]model.ShowTime, 0)
	for timeRows.Next() {
		var st model.ShowTime
		if err := timeRows.Scan(&st.Date, &st.TimeSlot); err != nil {
			return nil, err
		}
		info.Times = append(info.Times, st)
	}
	return &info, timeRows.Err()
}
