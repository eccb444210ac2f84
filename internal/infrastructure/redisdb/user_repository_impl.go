package redisdb

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-items-api/internal/domain/entity"
	"github.com/oksasatya/go-items-api/internal/domain/repository"
	"github.com/oksasatya/go-items-api/pkg/helpers"
)

type userRecord struct {
	Username       string `json:"username"`
	FullName       string `json:"full_name,omitempty"`
	HashedPassword string `json:"hashed_password"`
}

// UserRepository keeps one JSON value per user under <prefix>:<username>.
type UserRepository struct {
	rdb    *redis.Client
	prefix string
}

func NewUserRepository(rdb *redis.Client, prefix string) *UserRepository {
	return &UserRepository{rdb: rdb, prefix: prefix}
}

func (r *UserRepository) key(username string) string {
	return r.prefix + ":" + username
}

// Create writes with SET NX so two concurrent registrations cannot both win.
func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	ok, err := helpers.RedisSetJSONNX(ctx, r.rdb, r.key(u.Username), userRecord{
		Username:       u.Username,
		FullName:       u.FullName,
		HashedPassword: u.PasswordHash,
	})
	if err != nil {
		return fmt.Errorf("set user: %w", err)
	}
	if !ok {
		return repository.ErrAlreadyExists
	}
	return nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var rec userRecord
	found, err := helpers.RedisGetJSON(ctx, r.rdb, r.key(username), &rec)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if !found {
		return nil, repository.ErrNotFound
	}
	return &entity.User{Username: rec.Username, FullName: rec.FullName, PasswordHash: rec.HashedPassword}, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
