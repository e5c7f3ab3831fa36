package model

// User mirrors the 'users' table.  Email and phone number are unique.
// PasswordHash holds a bcrypt digest and must never be serialized into a
// response payload.
type User struct {
	ID           uint64 `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Username     string `json:"username"`
	PhoneNumber  string `json:"phone_number"`
}
