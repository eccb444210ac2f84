package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-items-api/internal/domain/entity"
	"github.com/oksasatya/go-items-api/internal/domain/repository"
)

type ItemRepository struct {
	pool  *pgxpool.Pool
	table string
}

func NewItemRepository(pool *pgxpool.Pool, table string) *ItemRepository {
	return &ItemRepository{pool: pool, table: quoteIdent(table)}
}

func (r *ItemRepository) Insert(ctx context.Context, it *entity.Item) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO `+r.table+` (name, description) VALUES ($1, $2)`, it.Name, it.Description)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

func (r *ItemRepository) List(ctx context.Context) ([]entity.Item, error) {
	rows, err := r.pool.Query(ctx, `SELECT name, description FROM `+r.table+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select items: %w", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Item, error) {
		var it entity.Item
		err := row.Scan(&it.Name, &it.Description)
		return it, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan items: %w", err)
	}
	if items == nil {
		items = []entity.Item{}
	}
	return items, nil
}

// quoteIdent quotes a table name coming from configuration.
func quoteIdent(name string) string {
	return pgx.Identifier{strings.TrimSpace(name)}.Sanitize()
}

var _ repository.ItemRepository = (*ItemRepository)(nil)
