package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-items-api/internal/domain/entity"
	repo "github.com/oksasatya/go-items-api/internal/domain/repository"
)

type ItemService struct {
	Repo   repo.ItemRepository
	Logger *logrus.Logger
}

func NewItemService(repo repo.ItemRepository, logger *logrus.Logger) *ItemService {
	return &ItemService{Repo: repo, Logger: logger}
}

// Create stores the item and returns it unchanged.
func (s *ItemService) Create(ctx context.Context, it entity.Item) (entity.Item, error) {
	if err := s.Repo.Insert(ctx, &it); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("name", it.Name).Error("insert item failed")
		}
		return entity.Item{}, err
	}
	counters.Add("items_created", 1)
	return it, nil
}

func (s *ItemService) List(ctx context.Context) ([]entity.Item, error) {
	return s.Repo.List(ctx)
}
