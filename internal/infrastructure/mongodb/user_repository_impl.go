package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oksasatya/go-items-api/internal/domain/entity"
	"github.com/oksasatya/go-items-api/internal/domain/repository"
)

type userDocument struct {
	Username       string `bson:"username"`
	FullName       string `bson:"full_name,omitempty"`
	HashedPassword string `bson:"hashed_password"`
}

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(coll *mongo.Collection) *UserRepository {
	return &UserRepository{coll: coll}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	_, err := r.coll.InsertOne(ctx, userDocument{
		Username:       u.Username,
		FullName:       u.FullName,
		HashedPassword: u.PasswordHash,
	})
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var doc userDocument
	err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &entity.User{Username: doc.Username, FullName: doc.FullName, PasswordHash: doc.HashedPassword}, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
