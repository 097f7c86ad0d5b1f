package domain

import (
	"context"
	"time"
)

// User represents a registered account, keyed by email. The password is
// stored as a salted hash and never serialized.
type User struct {
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUser returns a new User with the given credentials.
func NewUser(email, passwordHash, salt string, createdAt time.Time) *User {
	return &User{
		Email:        email,
		PasswordHash: passwordHash,
		Salt:         salt,
		CreatedAt:    createdAt,
	}
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues bearer tokens (e.g. JWT) bound to an email identity.
type TokenIssuer interface {
	Issue(email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a bearer token and returns the identity it is bound
// to. Stateless: verification requires no storage lookup.
type TokenVerifier interface {
	Verify(token string) (email string, err error)
}

// UserRepository defines the interface for credential storage.
// Create returns ErrDuplicateEmail when the email is already registered;
// GetByEmail returns ErrUserNotFound for unknown emails.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// AuthService defines registration and login. Both return a freshly issued
// bearer token on success and keep no server-side session state.
type AuthService interface {
	Register(ctx context.Context, email, password string) (token string, err error)
	Login(ctx context.Context, email, password string) (token string, err error)
}
