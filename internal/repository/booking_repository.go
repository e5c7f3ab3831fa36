package repository

import (
	"context"
	"database/sql"

	"github.com/BrianKhong-BK/vercel-fsaAPI/internal/model"
)

// BookingRepo provides CRUD operations for seat bookings.  The no-double-
// booking invariant is enforced by the store itself: the bookings table
// carries a unique index over (movie_name, date, time, seat), so concurrent
// inserts for the same seat serialize inside MySQL and all but one fail with
// a duplicate-key error.  There is no check-then-insert window anywhere in
// this repo.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

// Create inserts a booking and populates its generated ID.  ErrSeatTaken is
// returned when the seat is already held for the same screening.  The write
// is committed before Create returns.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO bookings (email, seat, movie_name, date, time, user_id) VALUES (?,?,?,?,?,?)",
		b.Email, b.Seat, b.MovieName, b.Date, b.Time, b.UserID)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrSeatTaken
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return nil
}

// GetByID fetches a booking.  sql.ErrNoRows is returned when it does not exist.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (model.Booking, error) {
	var b model.Booking
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, email, seat, movie_name, date, time, user_id FROM bookings WHERE id=? LIMIT 1",
		id).Scan(&b.ID, &b.Email, &b.Seat, &b.MovieName, &b.Date, &b.Time, &b.UserID)
	return b, err
}

// ListByUser returns the user's bookings ordered by date together with the
// distinct movies those bookings reference.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, []model.BookedMovie, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, email, seat, movie_name, date, time, user_id FROM bookings WHERE user_id=? ORDER BY date",
		userID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()
	bookings := make([]model.Booking, 0)
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.Email, &b.Seat, &b.MovieName, &b.Date, &b.Time, &b.UserID); err != nil {
			return nil, nil, err
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	mrows, err := r.DB.QueryContext(ctx,
		`SELECT DISTINCT m.id, m.image, b.movie_name
		 FROM bookings b JOIN movies m ON b.movie_name = m.name
		 WHERE b.user_id = ?`, userID)
	if err != nil {
		return nil, nil, err
	}
	defer mrows.Close()
	movies := make([]model.BookedMovie, 0)
	for mrows.Next() {
		var m model.BookedMovie
		if err := mrows.Scan(&m.ID, &m.Image, &m.MovieName); err != nil {
			return nil, nil, err
		}
		movies = append(movies, m)
	}
	return bookings, movies, mrows.Err()
}

// Update replaces every mutable field of a booking inside a transaction.
// The row is locked first so a missing booking surfaces as sql.ErrNoRows
// rather than a zero-row update.  Moving a booking onto a seat that is
// already held for the target screening fails with ErrSeatTaken through the
// same unique index that guards Create.
func (r *BookingRepo) Update(ctx context.Context, id uint64, b *model.Booking) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var existing uint64
	if err := tx.QueryRowContext(ctx,
		"SELECT id FROM bookings WHERE id=? FOR UPDATE", id).Scan(&existing); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE bookings SET email=?, seat=?, movie_name=?, date=?, time=?, user_id=? WHERE id=?",
		b.Email, b.Seat, b.MovieName, b.Date, b.Time, b.UserID, id); err != nil {
		if isDuplicateKey(err) {
			return ErrSeatTaken
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	b.ID = id
	return nil
}

// Delete removes a booking.  sql.ErrNoRows is returned when no row matched,
// determined from the affected-row count rather than a separate pre-read.
func (r *BookingRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM bookings WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListBookedSeats returns the seats currently booked for one screening.
// The inverse of this set is the seats still available.
func (r *BookingRepo) ListBookedSeats(ctx context.Context, movieName, date, timeSlot string) ([]model.BookedSeat, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT seat, date, time FROM bookings WHERE movie_name=? AND date=? AND time=?",
		movieName, date, timeSlot)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	seats := make([]model.BookedSeat, 0)
	for rows.Next() {
		var s model.BookedSeat
		if err := rows.Scan(&s.Seat, &s.Date, &s.Time); err != nil {
			return nil, err
		}
		seats = append(seats, s)
	}
	return seats, rows.Err()
}
