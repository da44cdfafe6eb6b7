// Package profile persists the user's account card across sessions.
//
// The profile is client-side state with no backend endpoint: it lives in a
// local store selected by PROFILE_DRIVER ("file" keeps a JSON document under
// PROFILE_PATH, "redis" keeps it under a fixed key). A missing or corrupt
// stored profile falls back to the defaults rather than erroring.
package profile

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"stockpilot/app/models"
	"stockpilot/config"
	"stockpilot/pkg/logger"
	"stockpilot/pkg/storage"
)

// Store is the persistence port. Load returns (profile, true) when a saved
// profile exists and decodes, and (zero, false) otherwise.
type Store interface {
	Load(ctx context.Context) (models.UserProfile, bool)
	Save(ctx context.Context, p models.UserProfile) error
}

// Manager serves the current profile and writes edits through to its store.
type Manager struct {
	store Store
}

// NewManager wires a manager onto a store.
func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// FromConfig builds a manager with the configured driver.
func FromConfig() *Manager {
	switch config.ProfileDriver() {
	case "redis":
		return NewManager(NewRedisStore(redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr(),
			Password: config.RedisPassword(),
		})))
	default:
		return NewManager(NewFileStore(storage.NewLocal(config.ProfilePath())))
	}
}

// Current returns the saved profile, or the defaults when none was saved.
func (m *Manager) Current(ctx context.Context) models.UserProfile {
	if p, ok := m.store.Load(ctx); ok {
		return p
	}
	return models.DefaultProfile()
}

// Save persists edits. The caller's profile replaces the stored one wholesale.
func (m *Manager) Save(ctx context.Context, p models.UserProfile) error {
	if err := m.store.Save(ctx, p); err != nil {
		return fmt.Errorf("profile: save: %w", err)
	}
	return nil
}

// ------------------- file driver -------------------

const fileKey = "userProfile.json"

// FileStore keeps the profile as a JSON document on a storage.Disk.
type FileStore struct {
	disk storage.Disk
}

func NewFileStore(disk storage.Disk) *FileStore {
	return &FileStore{disk: disk}
}

func (s *FileStore) Load(_ context.Context) (models.UserProfile, bool) {
	if !s.disk.Exists(fileKey) {
		return models.UserProfile{}, false
	}
	raw, err := s.disk.Get(fileKey)
	if err != nil {
		logger.Warn("profile: read failed, using defaults", "error", err)
		return models.UserProfile{}, false
	}
	var p models.UserProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		logger.Warn("profile: stored profile is corrupt, using defaults", "error", err)
		return models.UserProfile{}, false
	}
	return p, true
}

func (s *FileStore) Save(_ context.Context, p models.UserProfile) error {
	raw, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return s.disk.Put(fileKey, raw)
}

// ------------------- redis driver -------------------

const redisKey = "stockpilot:user_profile"

// RedisStore keeps the profile under a fixed redis key, shared across
// machines that point at the same instance.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Load(ctx context.Context) (models.UserProfile, bool) {
	raw, err := s.rdb.Get(ctx, redisKey).Bytes()
	if err == redis.Nil {
		return models.UserProfile{}, false
	}
	if err != nil {
		logger.Warn("profile: redis read failed, using defaults", "error", err)
		return models.UserProfile{}, false
	}
	var p models.UserProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		logger.Warn("profile: stored profile is corrupt, using defaults", "error", err)
		return models.UserProfile{}, false
	}
	return p, true
}

func (s *RedisStore) Save(ctx context.Context, p models.UserProfile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, redisKey, raw, 0).Err()
}
