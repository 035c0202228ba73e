// Package app wires the data-access layer from configuration: storage
// backend, credential store, session resolver, executor and client.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/sma-mobile-sdk/internal/client"
	"github.com/noah-isme/sma-mobile-sdk/internal/credstore"
	"github.com/noah-isme/sma-mobile-sdk/internal/kvstore"
	"github.com/noah-isme/sma-mobile-sdk/internal/normalize"
	"github.com/noah-isme/sma-mobile-sdk/internal/session"
	"github.com/noah-isme/sma-mobile-sdk/internal/transport"
	"github.com/noah-isme/sma-mobile-sdk/pkg/config"
	"github.com/noah-isme/sma-mobile-sdk/pkg/metrics"
)

// App bundles the wired components.
type App struct {
	Client   *client.Client
	Store    *credstore.Store
	Resolver *session.Resolver
	Recorder *metrics.Recorder
}

// New builds the full stack from config.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	kv, err := newBackend(cfg)
	if err != nil {
		return nil, err
	}

	recorder := metrics.NewRecorder()
	store := credstore.New(kv, logger)
	resolver := session.New(store, logger)
	exec := transport.New(cfg.API, logger, recorder)
	norm := normalize.New(recorder)

	c := client.New(resolver, store, exec, norm, logger, client.WithDemoMode(cfg.Demo.Enabled))

	return &App{
		Client:   c,
		Store:    store,
		Resolver: resolver,
		Recorder: recorder,
	}, nil
}

func newBackend(cfg *config.Config) (kvstore.Store, error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendRedis:
		rdb, err := kvstore.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect redis storage: %w", err)
		}
		return kvstore.NewRedisStore(rdb, "sma"), nil
	case config.StorageBackendFile, "":
		return kvstore.NewFileStore(cfg.Storage.Dir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
