package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/go-items-api/internal/domain/entity"
)

var (
	// ErrNotFound is returned when a lookup matches no record.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a unique key is already taken.
	ErrAlreadyExists = errors.New("already exists")
)

// UserRepository defines the credential store. Create must rely on the
// backend's unique constraint on username, not on a prior lookup.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
