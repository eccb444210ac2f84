package redisdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-items-api/internal/domain/entity"
	"github.com/oksasatya/go-items-api/internal/domain/repository"
)

// ItemRepository appends items to a single Redis list, which keeps insertion order.
type ItemRepository struct {
	rdb *redis.Client
	key string
}

func NewItemRepository(rdb *redis.Client, key string) *ItemRepository {
	return &ItemRepository{rdb: rdb, key: key}
}

func (r *ItemRepository) Insert(ctx context.Context, it *entity.Item) error {
	b, err := json.Marshal(it)
	if err != nil {
		return err
	}
	if err := r.rdb.RPush(ctx, r.key, b).Err(); err != nil {
		return fmt.Errorf("push item: %w", err)
	}
	return nil
}

func (r *ItemRepository) List(ctx context.Context) ([]entity.Item, error) {
	raw, err := r.rdb.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("range items: %w", err)
	}
	items := make([]entity.Item, 0, len(raw))
	for _, s := range raw {
		var it entity.Item
		if err := json.Unmarshal([]byte(s), &it); err != nil {
			return nil, fmt.Errorf("decode item: %w", err)
		}
		items = append(items, it)
	}
	return items, nil
}

var _ repository.ItemRepository = (*ItemRepository)(nil)
