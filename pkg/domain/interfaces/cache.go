package interfaces

import (
	"context"
	"time"

	"github.com/secmon-lab/oncall-override/pkg/domain/model"
)

// CacheStore keeps directory listings. Get returns the stored entry even
// when it is stale; fresh tells whether it is still within its TTL.
type CacheStore interface {
	Get(ctx context.Context, key string) (entry *model.CacheEntry, fresh bool, err error)
	Put(ctx context.Context, key string, entry *model.CacheEntry, ttl time.Duration) error
	Close() error
}
