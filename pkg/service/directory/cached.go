package directory

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/oncall-override/pkg/domain/interfaces"
	"github.com/secmon-lab/oncall-override/pkg/domain/model"
	"github.com/secmon-lab/oncall-override/pkg/domain/types"
	"github.com/secmon-lab/oncall-override/pkg/utils/metrics"
)

const (
	// CacheKey is the store key of the full user listing
	CacheKey = "rootly-users-v1"
	// DefaultTTL is how long a fetched listing is served without refetching
	DefaultTTL = 5 * time.Minute
	// RefreshDelay is added to the TTL before the warm-up refresh runs
	RefreshDelay = 10 * time.Second

	refreshTaskName = "directory-cache-refresh"
)

// Cached wraps a Directory with a read-through cache of ListUsers
type Cached struct {
	directory interfaces.Directory
	store     interfaces.CacheStore
	queue     interfaces.TaskQueue
	ttl       time.Duration
	now       func() time.Time
}

var _ interfaces.Directory = (*Cached)(nil)

// Option configures Cached
type Option func(*Cached)

// WithTTL sets the cache TTL
func WithTTL(ttl time.Duration) Option {
	return func(c *Cached) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock replaces the clock used to stamp fetched listings
func WithClock(now func() time.Time) Option {
	return func(c *Cached) {
		c.now = now
	}
}

// NewCached creates a cached directory
func NewCached(directory interfaces.Directory, store interfaces.CacheStore, queue interfaces.TaskQueue, opts ...Option) *Cached {
	c := &Cached{
		directory: directory,
		store:     store,
		queue:     queue,
		ttl:       DefaultTTL,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListUsers returns the cached listing while it is fresh. Otherwise it
// fetches, stores and schedules a refresh shortly after the new entry
// expires. When fetching fails a stale entry is served if one exists.
func (c *Cached) ListUsers(ctx context.Context) ([]*model.DirectoryUser, error) {
	logger := ctxlog.From(ctx)

	entry, fresh, err := c.store.Get(ctx, CacheKey)
	if err != nil {
		logger.Warn("Failed to read directory cache", "error", err)
		entry, fresh = nil, false
	}
	if entry != nil && fresh {
		metrics.DirectoryCacheLookups.WithLabelValues("hit").Inc()
		return entry.Users, nil
	}

	users, err := c.refresh(ctx)
	if err != nil {
		if entry != nil {
			metrics.DirectoryCacheLookups.WithLabelValues("stale").Inc()
			logger.Warn("Serving stale directory listing", "error", err, "fetchedAt", entry.FetchedAt)
			return entry.Users, nil
		}
		return nil, err
	}

	metrics.DirectoryCacheLookups.WithLabelValues("miss").Inc()
	c.queue.SubmitAfter(ctx, refreshTaskName, c.ttl+RefreshDelay, func(ctx context.Context) error {
		_, err := c.refresh(ctx)
		return err
	})

	return users, nil
}

// refresh fetches the listing and stores it. A store failure is logged and
// the fetched listing is still returned.
func (c *Cached) refresh(ctx context.Context) ([]*model.DirectoryUser, error) {
	users, err := c.directory.ListUsers(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch directory users")
	}

	entry := &model.CacheEntry{
		Users:     users,
		FetchedAt: c.now(),
	}
	if err := c.store.Put(ctx, CacheKey, entry, c.ttl); err != nil {
		ctxlog.From(ctx).Warn("Failed to store directory cache", "error", err)
	}

	ctxlog.From(ctx).Debug("Directory cache refreshed", "users", len(users))
	return users, nil
}

// FindUserByEmail is not cached
func (c *Cached) FindUserByEmail(ctx context.Context, email string) (*model.DirectoryUser, error) {
	return c.directory.FindUserByEmail(ctx, email)
}

// CreateOverride is not cached
func (c *Cached) CreateOverride(ctx context.Context, userID types.DirectoryUserID, scheduleID types.ScheduleID, start, end time.Time) (types.OverrideID, error) {
	return c.directory.CreateOverride(ctx, userID, scheduleID, start, end)
}
