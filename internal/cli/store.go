package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/trackhist/internal/config"
	"github.com/aretw0/trackhist/pkg/adapters/file"
	"github.com/aretw0/trackhist/pkg/adapters/memory"
	redisAdapter "github.com/aretw0/trackhist/pkg/adapters/redis"
	"github.com/aretw0/trackhist/pkg/ports"
)

// Persistence bundles the run store selected by the settings.
// Locker is nil for the in-memory store.
type Persistence struct {
	Store  ports.RunStore
	Locker ports.DistributedLocker
	Close  func() error
}

// OpenPersistence returns a Redis-backed store when redis.addr is set, a
// directory store when storeDir is set, an in-memory store otherwise.
// The Redis connection is checked with PING.
func OpenPersistence(ctx context.Context, s config.Settings, logger *slog.Logger) (*Persistence, error) {
	if s.Redis.Addr == "" && s.StoreDir != "" {
		logger.Debug("Using file run store", "dir", s.StoreDir)
		return &Persistence{
			Store: file.New(s.StoreDir),
			Close: func() error { return nil },
		}, nil
	}
	if s.Redis.Addr == "" {
		logger.Debug("Using in-memory run store")
		return &Persistence{
			Store: memory.NewStore(),
			Close: func() error { return nil },
		}, nil
	}

	prefix := s.Redis.Prefix
	if prefix == "" {
		prefix = redisAdapter.DefaultPrefix
	}
	store := redisAdapter.New(s.Redis.Addr, s.Redis.Password, s.Redis.DB,
		redisAdapter.WithTTL(s.Redis.TTL),
		redisAdapter.WithPrefix(prefix),
	)
	if err := store.Client().Ping(ctx).Err(); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", s.Redis.Addr, err)
	}

	logger.Info("Using Redis run store", "addr", s.Redis.Addr, "prefix", prefix, "ttl", s.Redis.TTL)
	return &Persistence{
		Store:  store,
		Locker: redisAdapter.NewLocker(store.Client(), prefix),
		Close:  store.Close,
	}, nil
}
