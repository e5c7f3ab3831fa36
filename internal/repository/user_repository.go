package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/BrianKhong-BK/vercel-fsaAPI/internal/model"
	"github.com/BrianKhong-BK/vercel-fsaAPI/internal/utils"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a new user and returns its ID.  The email and phone number
// are checked for uniqueness before insertion so the caller can report which
// field collided; the unique indexes on both columns remain the final word
// under concurrent signups, so a duplicate-key error from the insert itself
// is mapped back onto the matching sentinel.
func (r *UserRepo) Create(ctx context.Context, email, password, username, phone string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var exists int
	err := r.DB.QueryRowContext(ctx,
		"SELECT 1 FROM users WHERE email=? LIMIT 1", email).Scan(&exists)
	if err == nil {
		return 0, ErrEmailExists
	}
	if err != sql.ErrNoRows {
		return 0, err
	}
	err = r.DB.QueryRowContext(ctx,
		"SELECT 1 FROM users WHERE phone_number=? LIMIT 1", phone).Scan(&exists)
	if err == nil {
		return 0, ErrPhoneExists
	}
	if err != sql.ErrNoRows {
		return 0, err
	}

	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (email, password_hash, user_name, phone_number) VALUES (?,?,?,?)",
		email, hash, username, phone)
	if err != nil {
		if isDuplicateKey(err) {
			return 0, userDuplicateErr(err)
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, email, password_hash, user_name, phone_number FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Username, &u.PhoneNumber)
	return u, err
}
