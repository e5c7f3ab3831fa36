package model

// Booking mirrors the 'bookings' table.  The tuple (movie_name, date, time,
// seat) is covered by a unique index so that at most one live booking can
// hold a seat for a screening.
type Booking struct {
	ID        uint64 `json:"id"`
	Email     string `json:"email"`
	Seat      string `json:"seat"`
	MovieName string `json:"movie_name"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	UserID    uint64 `json:"user_id"`
}

// BookedSeat is one row of the taken-seat listing for a screening.
type BookedSeat struct {
	Seat string `json:"seat"`
	Date string `json:"date"`
	Time string `json:"time"`
}

// BookedMovie is a movie referenced by at least one of a user's bookings.
// It carries only the fields the booking list view needs.
type BookedMovie struct {
	ID        uint64 `json:"id"`
	Image     string `json:"image"`
	MovieName string `json:"movie_name"`
}
