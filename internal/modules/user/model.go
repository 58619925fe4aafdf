// README: User accounts and domain errors.
package user

import (
	"errors"
	"time"
)

var (
	ErrExists             = errors.New("user already exists")
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrBadRequest         = errors.New("bad request")
)

// User is an account that owns chat records. PasswordHash is a bcrypt hash;
// the plaintext password is never stored.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
