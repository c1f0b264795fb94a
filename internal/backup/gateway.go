// Package backup moves snapshots between the local store and the per-user
// remote backup document, and runs the once-per-day backup trigger.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/daybook-app/daybook/pkg/types"
)

// DocumentStore is the remote document store holding one backup document per
// user. Get returns (nil, nil) when no document exists; only transport or
// auth failures surface as errors.
type DocumentStore interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// BackupKey returns the document key for a user's backup.
func BackupKey(uid string) string {
	return "users/" + uid + "/backup/data"
}

// RedisStore implements DocumentStore on a Redis server.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects a DocumentStore to the given Redis server.
func NewRedisStore(addr, password string, db int) *RedisStore {
	return &RedisStore{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

// Put overwrites the document at key.
func (r *RedisStore) Put(ctx context.Context, key string, data []byte) error {
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("putting %s: %w", key, err)
	}
	return nil
}

// Get returns the document at key, or (nil, nil) when none exists.
func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", key, err)
	}
	return data, nil
}

// Delete removes the document at key. Deleting a missing document succeeds.
func (r *RedisStore) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}

// Close releases the Redis connection.
func (r *RedisStore) Close() error { return r.client.Close() }

// Gateway uploads and downloads one snapshot document per authenticated user.
type Gateway struct {
	docs DocumentStore
	log  *zap.Logger
	now  func() time.Time
}

// NewGateway creates a Gateway over the given document store.
func NewGateway(docs DocumentStore, log *zap.Logger) *Gateway {
	return &Gateway{docs: docs, log: log, now: time.Now}
}

// Upload overwrites the user's backup document with the snapshot, stamping
// the upload time and a fresh revision id. Transport errors propagate to the
// caller; there is no automatic retry.
func (g *Gateway) Upload(ctx context.Context, uid string, snap *types.Snapshot) (*types.BackupDocument, error) {
	doc := &types.BackupDocument{
		Snapshot:       *snap,
		LastBackupDate: g.now().UTC().Format(time.RFC3339),
		RevisionID:     uuid.NewString(),
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshaling backup document: %w", err)
	}
	if err := g.docs.Put(ctx, BackupKey(uid), data); err != nil {
		return nil, err
	}
	g.log.Info("backup uploaded",
		zap.String("uid", uid),
		zap.String("revision", doc.RevisionID),
		zap.Int("checklists", len(snap.Checklists)),
		zap.Int("events", len(snap.Events)),
		zap.Int("pomodoros", len(snap.Pomodoros)),
	)
	return doc, nil
}

// Download fetches the user's backup document. A missing backup returns
// (nil, nil), never an error: absence is an expected state for fresh
// accounts, not a failure.
func (g *Gateway) Download(ctx context.Context, uid string) (*types.BackupDocument, error) {
	data, err := g.docs.Get(ctx, BackupKey(uid))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	var doc types.BackupDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidSnapshot, err)
	}
	return &doc, nil
}

// DeleteBackup removes the user's backup document.
func (g *Gateway) DeleteBackup(ctx context.Context, uid string) error {
	if err := g.docs.Delete(ctx, BackupKey(uid)); err != nil {
		return err
	}
	g.log.Info("backup deleted", zap.String("uid", uid))
	return nil
}
