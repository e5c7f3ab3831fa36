// Package repository provides store access for movies, shows, users and
// bookings.  Sentinel errors defined here let handlers translate store
// failures into the HTTP error taxonomy without inspecting driver details.
// Missing rows are reported as sql.ErrNoRows straight from the driver.
package repository

import (
	"errors"
	"strings"
)

// ErrSeatTaken is returned when an insert or update would give a seat to a
// second live booking for the same screening.  Handlers should translate
// this into an HTTP 409 response.
var ErrSeatTaken = errors.New("seat already booked")

// ErrEmailExists is returned when a signup collides with an existing email.
var ErrEmailExists = errors.New("email already exists")

// ErrPhoneExists is returned when a signup collides with an existing phone number.
var ErrPhoneExists = errors.New("phone number already exists")

// isDuplicateKey reports whether err is a MySQL duplicate-entry error
// (error 1062).  The unique indexes on users and bookings surface through
// this check.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "1062")
}

// userDuplicateErr maps a duplicate-key error from the users table onto the
// sentinel for the column that collided.  The unique index names carry the
// column, so the error text distinguishes a phone collision from an email
// collision.
func userDuplicateErr(err error) error {
	if strings.Contains(strings.ToLower(err.Error()), "phone") {
		return ErrPhoneExists
	}
	return ErrEmailExists
}
