package repository

import (
	"context"

	"github.com/oksasatya/go-items-api/internal/domain/entity"
)

// ItemRepository defines the items collection.
type ItemRepository interface {
	Insert(ctx context.Context, it *entity.Item) error
	// List returns every item in best-effort insertion order.
	List(ctx context.Context) ([]entity.Item, error)
}
