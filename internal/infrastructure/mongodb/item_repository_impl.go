package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oksasatya/go-items-api/internal/domain/entity"
	"github.com/oksasatya/go-items-api/internal/domain/repository"
)

type ItemRepository struct {
	coll *mongo.Collection
}

func NewItemRepository(coll *mongo.Collection) *ItemRepository {
	return &ItemRepository{coll: coll}
}

func (r *ItemRepository) Insert(ctx context.Context, it *entity.Item) error {
	if _, err := r.coll.InsertOne(ctx, it); err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// List returns items in natural order with _id projected away.
func (r *ItemRepository) List(ctx context.Context) ([]entity.Item, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 0})
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find items: %w", err)
	}
	items := make([]entity.Item, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return items, nil
}

var _ repository.ItemRepository = (*ItemRepository)(nil)
