package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/oncall-override/pkg/domain/interfaces"
	"github.com/secmon-lab/oncall-override/pkg/domain/model"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	directoryCacheCollection = "directory_cache"
)

// Firestore implements CacheStore with Firestore so that replicas share the
// directory listing
type Firestore struct {
	client *firestore.Client
	now    func() time.Time
}

var _ interfaces.CacheStore = (*Firestore)(nil)

// NewFirestore creates a new Firestore cache store
func NewFirestore(ctx context.Context, projectID, databaseID string) (*Firestore, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("project_id", projectID),
			goerr.V("database_id", databaseID))
	}

	// Fail fast on bad project or credentials
	_, err = client.Collection(directoryCacheCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore cache store initialized",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{
		client: client,
		now:    time.Now,
	}, nil
}

// Get returns the entry stored under key, or nil when there is none
func (f *Firestore) Get(ctx context.Context, key string) (*model.CacheEntry, bool, error) {
	if key == "" {
		return nil, false, goerr.New("cache key is empty")
	}

	doc, err := f.client.Collection(directoryCacheCollection).Doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, false, nil
		}
		return nil, false, goerr.Wrap(err, "failed to get cache entry from firestore", goerr.V("key", key))
	}

	var entry model.CacheEntry
	if err := doc.DataTo(&entry); err != nil {
		return nil, false, goerr.Wrap(err, "failed to decode cache entry", goerr.V("key", key))
	}

	return &entry, entry.IsFresh(f.now()), nil
}

// Put stores entry under key until ttl has passed since it was fetched
func (f *Firestore) Put(ctx context.Context, key string, entry *model.CacheEntry, ttl time.Duration) error {
	if key == "" {
		return goerr.New("cache key is empty")
	}
	if entry == nil {
		return goerr.New("cache entry is nil", goerr.V("key", key))
	}

	stored := *entry
	stored.ExpiresAt = stored.FetchedAt.Add(ttl)

	if _, err := f.client.Collection(directoryCacheCollection).Doc(key).Set(ctx, &stored); err != nil {
		return goerr.Wrap(err, "failed to save cache entry to firestore",
			goerr.V("key", key),
			goerr.V("users", len(entry.Users)))
	}

	return nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	if err := f.client.Close(); err != nil {
		return goerr.Wrap(err, "failed to close firestore client")
	}
	return nil
}
