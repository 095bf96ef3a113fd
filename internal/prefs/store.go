// Package prefs persists per-user app state between sessions: the last used
// mode and the last map viewport. Losing either degrades UX, not
// correctness, so writes are best-effort and read failures fall back to
// defaults.
package prefs

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"medal-service/internal/models"
	"medal-service/internal/storage"
)

const (
	ModeRegistration = "registration"
	ModeExploration  = "exploration"

	// DefaultMode is what a user gets before ever saving a preference.
	DefaultMode = ModeExploration
)

// Store keeps user preferences in Redis with no expiration.
type Store struct {
	redis *storage.RedisClient
	log   *zap.SugaredLogger
}

// NewStore creates a preference Store.
func NewStore(redis *storage.RedisClient, log *zap.SugaredLogger) *Store {
	return &Store{redis: redis, log: log}
}

// SaveMode stores the user's app mode. Failures are logged only.
func (s *Store) SaveMode(ctx context.Context, userID, mode string) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Set(ctx, modeKey(userID), mode, 0); err != nil {
		s.log.Warnw("failed to save app mode", "user_id", userID, "error", err)
	}
}

// GetMode returns the user's saved mode, or the default when nothing valid
// is stored.
func (s *Store) GetMode(ctx context.Context, userID string) string {
	if s.redis == nil {
		return DefaultMode
	}
	mode, err := s.redis.Get(ctx, modeKey(userID))
	if err != nil {
		s.log.Warnw("failed to read app mode", "user_id", userID, "error", err)
		return DefaultMode
	}
	if mode == ModeRegistration || mode == ModeExploration {
		return mode
	}
	return DefaultMode
}

// SaveViewport stores the user's last map viewport. Failures are logged only.
func (s *Store) SaveViewport(ctx context.Context, userID string, viewport *models.MapViewport) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(viewport)
	if err != nil {
		s.log.Warnw("failed to encode viewport", "user_id", userID, "error", err)
		return
	}
	if err := s.redis.SetBytes(ctx, viewportKey(userID), data, 0); err != nil {
		s.log.Warnw("failed to save viewport", "user_id", userID, "error", err)
	}
}

// GetViewport returns the user's saved viewport, or nil when nothing valid
// is stored.
func (s *Store) GetViewport(ctx context.Context, userID string) *models.MapViewport {
	if s.redis == nil {
		return nil
	}
	data, err := s.redis.GetBytes(ctx, viewportKey(userID))
	if err != nil {
		s.log.Warnw("failed to read viewport", "user_id", userID, "error", err)
		return nil
	}
	if data == nil {
		return nil
	}

	var viewport models.MapViewport
	if err := json.Unmarshal(data, &viewport); err != nil {
		return nil
	}
	if viewport.LatitudeDelta <= 0 || viewport.LongitudeDelta <= 0 {
		return nil
	}
	return &viewport
}

func modeKey(userID string) string {
	return fmt.Sprintf("prefs:%s:app_mode", userID)
}

func viewportKey(userID string) string {
	return fmt.Sprintf("prefs:%s:map_state", userID)
}
