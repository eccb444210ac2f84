package container

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-items-api/config"
	repo "github.com/oksasatya/go-items-api/internal/domain/repository"
	"github.com/oksasatya/go-items-api/internal/infrastructure/mongodb"
	pginfra "github.com/oksasatya/go-items-api/internal/infrastructure/postgres"
	"github.com/oksasatya/go-items-api/internal/infrastructure/redisdb"
	"github.com/oksasatya/go-items-api/pkg/helpers"
)

// Container holds the components constructed once at start-up. It is passed
// explicitly to the router; nothing here is package-level state.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	Hasher *helpers.PasswordHasher
	JWT    *helpers.JWTManager
	Users  repo.UserRepository
	Items  repo.ItemRepository

	closers []func() error
}

// New builds the container and opens the store selected by STORE_DRIVER.
func New(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: logger,
		Hasher: helpers.NewPasswordHasher(cfg.BcryptCost),
		JWT:    helpers.NewJWTManager(cfg.SecretKey, cfg.AccessTTL),
	}
	var err error
	switch cfg.StoreDriver {
	case config.DriverMongo:
		err = c.openMongo(ctx)
	case config.DriverPostgres:
		err = c.openPostgres(ctx)
	case config.DriverRedis:
		err = c.openRedis(ctx)
	default:
		err = fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	logger.WithField("driver", cfg.StoreDriver).Info("store ready")
	return c, nil
}

func (c *Container) openMongo(ctx context.Context) error {
	client, err := mongodb.NewClient(ctx, c.Config.MongoURL)
	if err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}
	c.closers = append(c.closers, func() error { return client.Disconnect(context.Background()) })

	db := client.Database(c.Config.DatabaseName)
	users := db.Collection(c.Config.UsersCollection)
	if err := mongodb.EnsureIndexes(ctx, users); err != nil {
		return fmt.Errorf("ensure mongo indexes: %w", err)
	}
	c.Users = mongodb.NewUserRepository(users)
	c.Items = mongodb.NewItemRepository(db.Collection(c.Config.ItemsCollection))
	return nil
}

func (c *Container) openPostgres(ctx context.Context) error {
	cfg := c.Config
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	c.closers = append(c.closers, func() error { pool.Close(); return nil })

	if err := pginfra.EnsureSchema(ctx, pool, cfg.UsersCollection, cfg.ItemsCollection); err != nil {
		return err
	}
	c.Users = pginfra.NewUserRepository(pool, cfg.UsersCollection)
	c.Items = pginfra.NewItemRepository(pool, cfg.ItemsCollection)
	return nil
}

func (c *Container) openRedis(ctx context.Context) error {
	cfg := c.Config
	rdb, err := helpers.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	c.closers = append(c.closers, rdb.Close)

	prefix := cfg.DatabaseName + ":"
	c.Users = redisdb.NewUserRepository(rdb, prefix+cfg.UsersCollection)
	c.Items = redisdb.NewItemRepository(rdb, prefix+cfg.ItemsCollection)
	return nil
}

// Close releases store connections in reverse order of opening.
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errs...)
}
