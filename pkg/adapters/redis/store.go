package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/canopyhq/canopy/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Store implements ports.SnapshotStore using Redis. The latest snapshot
// lives under a fixed key; history is a capped list, newest first.
type Store struct {
	client  *backend.Client
	prefix  string
	ttl     time.Duration
	maxHist int64
}

type Option func(*Store)

// WithTTL sets the expiration for the latest-snapshot key.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// WithMaxHistory caps the history list length.
func WithMaxHistory(n int64) Option {
	return func(s *Store) {
		s.maxHist = n
	}
}

// New creates a Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client:  client,
		prefix:  "canopy:snapshot:",
		ttl:     0, // no expiration by default
		maxHist: 100,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) latestKey() string  { return s.prefix + "latest" }
func (s *Store) historyKey() string { return s.prefix + "history" }

// Save persists the snapshot as latest and prepends it to history.
func (s *Store) Save(ctx context.Context, snap *domain.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.latestKey(), data, s.ttl)
	pipe.LPush(ctx, s.historyKey(), data)
	pipe.LTrim(ctx, s.historyKey(), 0, s.maxHist-1)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Latest retrieves the most recently saved snapshot.
func (s *Store) Latest(ctx context.Context) (*domain.Snapshot, error) {
	val, err := s.client.Get(ctx, s.latestKey()).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &snap, nil
}

// History returns up to limit snapshots, newest first.
func (s *Store) History(ctx context.Context, limit int) ([]*domain.Snapshot, error) {
	if limit <= 0 || int64(limit) > s.maxHist {
		limit = int(s.maxHist)
	}

	vals, err := s.client.LRange(ctx, s.historyKey(), 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	out := make([]*domain.Snapshot, 0, len(vals))
	for _, val := range vals {
		var snap domain.Snapshot
		if err := json.Unmarshal([]byte(val), &snap); err != nil {
			return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
		}
		out = append(out, &snap)
	}
	return out, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
