// Package model defines the row types persisted by the application.  Each
// struct mirrors one table of the relational schema.  Dates and time slots
// are carried as opaque strings because the booking invariant compares them
// by equality only.
package model

// Movie mirrors the 'movies' table.  Movies are immutable after creation.
type Movie struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Metadata string `json:"metadata,omitempty"`
}
