package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/okhapkin/go-match-sync/internal/adapter"
	"github.com/okhapkin/go-match-sync/internal/logger"
	"github.com/okhapkin/go-match-sync/internal/store"
	"github.com/okhapkin/go-match-sync/models"
)

type syncCoordinator struct {
	storages *store.ClientStorages
	gateway  adapter.RemoteGateway

	mu   sync.RWMutex
	mode models.SyncMode
}

// NewSyncCoordinator creates a coordinator that starts in online mode. The
// mode is owned by the coordinator instance, so tests can run several
// coordinators concurrently without shared global state.
func NewSyncCoordinator(storages *store.ClientStorages, gateway adapter.RemoteGateway) SyncService {
	return &syncCoordinator{
		storages: storages,
		gateway:  gateway,
		mode:     models.ModeOnline,
	}
}

func (c *syncCoordinator) PushOne(ctx context.Context, rec models.SwipeRecord) error {
	log := logger.FromContext(ctx)

	if _, err := c.gateway.SubmitSwipe(ctx, rec); err != nil {
		c.setMode(models.ModeOffline)
		// Recoverable: the record stays pending and becomes eligible
		// for the next PushAll pass.
		log.Warn().Err(err).
			Str("func", "syncCoordinator.PushOne").
			Int64("user_id", rec.UserID).
			Int64("target_user_id", rec.TargetUserID).
			Msg("swipe submission failed, record left pending")
		return nil
	}
	c.setMode(models.ModeOnline)

	if err := c.storages.SwipeRepository.MarkSynced(ctx, rec.UserID, rec.TargetUserID); err != nil {
		return fmt.Errorf("mark swipe synced (user_id=%d, target_user_id=%d): %w", rec.UserID, rec.TargetUserID, err)
	}

	return nil
}

func (c *syncCoordinator) PushAll(ctx context.Context) (models.SyncReport, error) {
	log := logger.FromContext(ctx)

	var report models.SyncReport

	pending, err := c.storages.SwipeRepository.GetUnsynced(ctx)
	if err != nil {
		return report, fmt.Errorf("get unsynced swipes: %w", err)
	}

	for _, rec := range pending {
		if ctxErr := ctx.Err(); ctxErr != nil {
			// A cancelled batch leaves the remaining records pending
			// for the next pass; nothing is partially written.
			return report, ctxErr
		}

		if _, err := c.gateway.SubmitSwipe(ctx, rec); err != nil {
			c.setMode(models.ModeOffline)
			report.Failed++
			log.Warn().Err(err).
				Str("func", "syncCoordinator.PushAll").
				Int64("user_id", rec.UserID).
				Int64("target_user_id", rec.TargetUserID).
				Msg("swipe submission failed, continuing with remaining records")
			continue
		}
		c.setMode(models.ModeOnline)

		if err := c.storages.SwipeRepository.MarkSynced(ctx, rec.UserID, rec.TargetUserID); err != nil {
			return report, fmt.Errorf("mark swipe synced (user_id=%d, target_user_id=%d): %w", rec.UserID, rec.TargetUserID, err)
		}
		report.Pushed++
	}

	log.Debug().
		Str("func", "syncCoordinator.PushAll").
		Int("pushed", report.Pushed).
		Int("failed", report.Failed).
		Msg("push pass finished")

	return report, nil
}

func (c *syncCoordinator) Pull(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	remote, err := c.gateway.FetchSwipes(ctx, userID)
	if err != nil {
		c.setMode(models.ModeOffline)
		return fmt.Errorf("fetch remote swipes for user %d: %w", userID, err)
	}
	c.setMode(models.ModeOnline)

	var merged int
	for _, rs := range remote {
		_, err := c.storages.SwipeRepository.GetByUserAndTarget(ctx, rs.UserID, rs.TargetUserID)
		if err == nil {
			// Local record wins over the remote view: a pending local
			// change must not be clobbered by stale remote data.
			continue
		}
		if !errors.Is(err, store.ErrSwipeNotFound) {
			return fmt.Errorf("check local swipe (user_id=%d, target_user_id=%d): %w", rs.UserID, rs.TargetUserID, err)
		}

		rec := models.SwipeRecord{
			ID:           rs.ID,
			UserID:       rs.UserID,
			TargetUserID: rs.TargetUserID,
			Action:       rs.Action,
			Timestamp:    rs.Timestamp,
			// The remote is the authority for records it handed us.
			Synced: true,
		}
		if err := c.storages.SwipeRepository.Save(ctx, rec); err != nil {
			return fmt.Errorf("save remote swipe (user_id=%d, target_user_id=%d): %w", rs.UserID, rs.TargetUserID, err)
		}
		merged++
	}

	log.Debug().
		Str("func", "syncCoordinator.Pull").
		Int64("user_id", userID).
		Int("fetched", len(remote)).
		Int("merged", merged).
		Msg("pull pass finished")

	return nil
}

func (c *syncCoordinator) RefreshProfiles(ctx context.Context) error {
	profiles, err := c.gateway.FetchProfiles(ctx)
	if err != nil {
		c.setMode(models.ModeOffline)
		return fmt.Errorf("fetch remote profiles: %w", err)
	}
	c.setMode(models.ModeOnline)

	if err := c.storages.ProfileRepository.SaveProfiles(ctx, profiles...); err != nil {
		return fmt.Errorf("save fetched profiles: %w", err)
	}

	return nil
}

func (c *syncCoordinator) Mode() models.SyncMode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

func (c *syncCoordinator) setMode(mode models.SyncMode) {
	c.mu.Lock()
	c.mode = mode
	c.mu.Unlock()
}
