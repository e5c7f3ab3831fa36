// Package queue defines the message payloads exchanged over the broker and
// the background consumer that records them.
package queue

import (
	"time"

	"github.com/google/uuid"

	"github.com/BrianKhong-BK/vercel-fsaAPI/internal/model"
)

const bookingQueueName = "booking.created"

// BookingCreatedEvent is published after a booking has been durably
// committed.  It carries enough information for downstream consumers to
// log or notify without querying the primary database.
type BookingCreatedEvent struct {
	EventID   string `json:"event_id"`
	BookingID uint64 `json:"booking_id"`
	UserID    uint64 `json:"user_id"`
	Email     string `json:"email"`
	MovieName string `json:"movie_name"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Seat      string `json:"seat"`
	CreatedAt string `json:"created_at"`
}

// NewBookingCreatedEvent builds the event for a committed booking.  Each
// event gets a fresh UUID so consumers can deduplicate redeliveries.
func NewBookingCreatedEvent(b model.Booking) BookingCreatedEvent {
	return BookingCreatedEvent{
		EventID:   uuid.New().String(),
		BookingID: b.ID,
		UserID:    b.UserID,
		Email:     b.Email,
		MovieName: b.MovieName,
		Date:      b.Date,
		Time:      b.Time,
		Seat:      b.Seat,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}
