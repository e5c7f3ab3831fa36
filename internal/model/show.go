package model

// Show mirrors the 'shows' table.  One row represents a single screening
// instance of a movie on a given date in a given time slot.
type Show struct {
	ID      uint64 `json:"id"`
	MovieID uint64 `json:"movie_id"`
	Date    string `json:"date"`
	TimeID  uint64 `json:"time_id"`
}

// TimeSlot mirrors the 'times' table.  Slots are shared across shows.
type TimeSlot struct {
	ID       uint64 `json:"id"`
	TimeSlot string `json:"time_slot"`
}

// ShowTime pairs a show date with its time slot label.  It is what the
// show-info endpoint returns for each screening of a movie.
type ShowTime struct {
	Date     string `json:"date"`
	TimeSlot string `json:"time_slot"`
}
