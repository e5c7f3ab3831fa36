package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The seat-conflict and signup-conflict responses both hinge on recognizing
// MySQL duplicate-key errors, so the mapping is tested against the exact
// message shapes the driver produces.

func TestIsDuplicateKey(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "booking seat collision",
			err:  errors.New("Error 1062 (23000): Duplicate entry 'Dune-2024-01-01-18:00-A1' for key 'uq_bookings_screening_seat'"),
			want: true,
		},
		{
			name: "user email collision",
			err:  errors.New("Error 1062 (23000): Duplicate entry 'a@x.com' for key 'uq_users_email'"),
			want: true,
		},
		{
			name: "connection failure",
			err:  errors.New("dial tcp 127.0.0.1:3306: connect: connection refused"),
			want: false,
		},
		{
			name: "foreign key violation",
			err:  errors.New("Error 1452 (23000): Cannot add or update a child row"),
			want: false,
		},
		{
			name: "nil",
			err:  nil,
			want: false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isDuplicateKey(tc.err))
		})
	}
}

func TestUserDuplicateErr(t *testing.T) {
	phone := errors.New("Error 1062 (23000): Duplicate entry '555-0001' for key 'uq_users_phone_number'")
	assert.Equal(t, ErrPhoneExists, userDuplicateErr(phone))

	email := errors.New("Error 1062 (23000): Duplicate entry 'a@x.com' for key 'uq_users_email'")
	assert.Equal(t, ErrEmailExists, userDuplicateErr(email))
}
