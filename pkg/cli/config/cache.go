package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/oncall-override/pkg/domain/interfaces"
	"github.com/secmon-lab/oncall-override/pkg/repository"
	"github.com/secmon-lab/oncall-override/pkg/service/directory"
	"github.com/urfave/cli/v3"
)

const (
	CacheBackendMemory    = "memory"
	CacheBackendFirestore = "firestore"
)

// Cache holds configuration of the directory listing cache
type Cache struct {
	Backend    string
	ProjectID  string
	DatabaseID string
	TTL        time.Duration
}

// Flags returns CLI flags for Cache configuration
func (c *Cache) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "cache-backend",
			Usage:       "Directory cache backend (memory, firestore)",
			Category:    "Cache",
			Value:       CacheBackendMemory,
			Sources:     cli.EnvVars("OVERRIDE_CACHE_BACKEND"),
			Destination: &c.Backend,
		},
		&cli.StringFlag{
			Name:        "firestore-project",
			Usage:       "GCP project ID for Firestore",
			Category:    "Cache",
			Sources:     cli.EnvVars("OVERRIDE_FIRESTORE_PROJECT"),
			Destination: &c.ProjectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database",
			Usage:       "Firestore database ID",
			Category:    "Cache",
			Value:       "(default)",
			Sources:     cli.EnvVars("OVERRIDE_FIRESTORE_DATABASE"),
			Destination: &c.DatabaseID,
		},
		&cli.DurationFlag{
			Name:        "cache-ttl",
			Usage:       "How long a fetched Rootly user listing is served",
			Category:    "Cache",
			Value:       directory.DefaultTTL,
			Sources:     cli.EnvVars("OVERRIDE_CACHE_TTL"),
			Destination: &c.TTL,
		},
	}
}

// Validate validates the cache configuration
func (c *Cache) Validate() error {
	switch c.Backend {
	case CacheBackendMemory, "":
	case CacheBackendFirestore:
		if c.ProjectID == "" {
			return goerr.New("firestore backend requires --firestore-project")
		}
	default:
		return goerr.New("invalid cache backend", goerr.V("backend", c.Backend))
	}
	if c.TTL <= 0 {
		return goerr.New("cache TTL must be positive", goerr.V("ttl", c.TTL))
	}
	return nil
}

// Configure creates the cache store for the selected backend
func (c *Cache) Configure(ctx context.Context) (interfaces.CacheStore, error) {
	if c.Backend != CacheBackendFirestore {
		ctxlog.From(ctx).Info("Using in-memory directory cache. It is not shared between replicas")
		return repository.NewMemory(), nil
	}

	store, err := repository.NewFirestore(ctx, c.ProjectID, c.DatabaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to init firestore",
			goerr.V("project", c.ProjectID),
			goerr.V("database", c.DatabaseID),
		)
	}
	return store, nil
}

// LogValue returns structured log value
func (c Cache) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", c.Backend),
		slog.String("project", c.ProjectID),
		slog.String("database", c.DatabaseID),
		slog.Duration("ttl", c.TTL),
	)
}
