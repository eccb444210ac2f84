package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-items-api/internal/domain/entity"
	"github.com/oksasatya/go-items-api/internal/domain/repository"
)

const uniqueViolation = "23505"

type UserRepository struct {
	pool  *pgxpool.Pool
	table string
}

func NewUserRepository(pool *pgxpool.Pool, table string) *UserRepository {
	return &UserRepository{pool: pool, table: quoteIdent(table)}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	fullName := pgtype.Text{String: u.FullName, Valid: u.FullName != ""}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO `+r.table+` (username, full_name, password_hash)
		VALUES ($1, $2, $3)
	`, u.Username, fullName, u.PasswordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repository.ErrAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var (
		u        entity.User
		fullName pgtype.Text
	)
	row := r.pool.QueryRow(ctx, `
		SELECT username, full_name, password_hash
		FROM `+r.table+`
		WHERE username = $1
	`, username)

	if err := row.Scan(&u.Username, &fullName, &u.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	u.FullName = fullName.String
	return &u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
