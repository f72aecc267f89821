package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/washify/laundry-market/internal/core/ports"
	"github.com/washify/laundry-market/internal/core/service"
	"github.com/washify/laundry-market/internal/infrastructure/storage"
	"github.com/washify/laundry-market/internal/infrastructure/storage/file"
	"github.com/washify/laundry-market/internal/infrastructure/storage/kvrepo"
	"github.com/washify/laundry-market/internal/infrastructure/storage/memory"
	storemongo "github.com/washify/laundry-market/internal/infrastructure/storage/mongo"
	storeredis "github.com/washify/laundry-market/internal/infrastructure/storage/redis"
	"github.com/washify/laundry-market/internal/pkg/config"
)

// app wires the selected storage backend to repositories and services.
// Every command runs through one of these, start to finish, synchronously.
type app struct {
	users  ports.UserService
	auth   ports.AuthService
	orders ports.OrderService
	chats  ports.ChatService

	// userRepo is used directly by seeding, which inserts complete demo
	// records (ratings included) rather than going through registration.
	userRepo *kvrepo.UserRepository

	closers []func(context.Context) error
}

func newApp(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*app, error) {
	a := &app{}

	var store storage.Store
	switch cfg.Store {
	case config.StoreMemory:
		store = memory.New()
	case config.StoreFile:
		fs, err := file.New(cfg.File.Dir)
		if err != nil {
			return nil, err
		}
		store = fs
	case config.StoreRedis:
		client, err := storeredis.Connect(ctx, storeredis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func(context.Context) error { return client.Close() })
		store = storeredis.NewStore(client)
	case config.StoreMongo:
		client, db, err := storemongo.Connect(ctx, storemongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Disconnect)
		store = storemongo.NewStore(db)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store)
	}

	a.userRepo = kvrepo.NewUserRepository(store)
	sessions := kvrepo.NewSessionStore(store)
	orders := kvrepo.NewOrderRepository(store)
	chats := kvrepo.NewChatRepository(store)

	a.users = service.NewUserService(a.userRepo, sessions, log)
	a.auth = service.NewAuthService(a.userRepo, sessions, log)
	a.orders = service.NewOrderService(orders, log)
	a.chats = service.NewChatService(chats, log)

	return a, nil
}

func (a *app) Close(ctx context.Context) {
	for _, close := range a.closers {
		_ = close(ctx)
	}
}
