package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/okhapkin/go-match-sync/internal/logger"
	"github.com/okhapkin/go-match-sync/internal/store"
	"github.com/okhapkin/go-match-sync/internal/utils"
	"github.com/okhapkin/go-match-sync/models"
)

type matchService struct {
	storages *store.ClientStorages
	sync     SyncService
	uuid     *utils.UUIDGenerator
}

func NewMatchService(storages *store.ClientStorages, syncService SyncService) MatchService {
	return &matchService{
		storages: storages,
		sync:     syncService,
		uuid:     utils.NewUUIDGenerator(),
	}
}

func (s *matchService) LikeUser(ctx context.Context, userID, targetUserID int64) (bool, error) {
	rec, err := s.recordSwipe(ctx, userID, targetUserID, models.ActionLike)
	if err != nil {
		return false, err
	}

	// Detection runs strictly after the local write completes, so each
	// device asserts a match only once its own side is durable.
	isMatch, err := s.detectMatch(ctx, userID, targetUserID)
	if err != nil {
		return false, err
	}

	if err = s.sync.PushOne(ctx, rec); err != nil {
		return false, fmt.Errorf("push like (user_id=%d, target_user_id=%d): %w", userID, targetUserID, err)
	}

	return isMatch, nil
}

func (s *matchService) DislikeUser(ctx context.Context, userID, targetUserID int64) error {
	rec, err := s.recordSwipe(ctx, userID, targetUserID, models.ActionDislike)
	if err != nil {
		return err
	}

	if err = s.sync.PushOne(ctx, rec); err != nil {
		return fmt.Errorf("push dislike (user_id=%d, target_user_id=%d): %w", userID, targetUserID, err)
	}

	return nil
}

func (s *matchService) GetMatches(ctx context.Context, userID int64) ([]models.ProfileRecord, error) {
	log := logger.FromContext(ctx)

	likes, err := s.storages.SwipeRepository.GetAllByUserAndAction(ctx, userID, models.ActionLike)
	if err != nil {
		return nil, fmt.Errorf("get likes for user %d: %w", userID, err)
	}

	var matches []models.ProfileRecord
	for _, like := range likes {
		mutual, err := s.detectMatch(ctx, userID, like.TargetUserID)
		if err != nil {
			return nil, err
		}
		if !mutual {
			continue
		}

		profile, err := s.storages.ProfileRepository.GetProfile(ctx, like.TargetUserID)
		if err != nil {
			if errors.Is(err, store.ErrProfileNotFound) {
				// Matched user's profile is not cached yet; it will
				// appear after the next profile refresh.
				log.Debug().
					Int64("user_id", userID).
					Int64("target_user_id", like.TargetUserID).
					Msg("match found but profile is not cached")
				continue
			}
			return nil, fmt.Errorf("get matched profile %d: %w", like.TargetUserID, err)
		}

		matches = append(matches, profile)
	}

	return matches, nil
}

func (s *matchService) GetPotentialMatches(ctx context.Context, userID int64) ([]models.ProfileRecord, error) {
	profiles, err := s.storages.ProfileRepository.GetAllProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("get cached profiles: %w", err)
	}

	swipes, err := s.storages.SwipeRepository.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get swipes for user %d: %w", userID, err)
	}

	swipedTargetIDs := make(map[int64]struct{}, len(swipes))
	for _, swipe := range swipes {
		swipedTargetIDs[swipe.TargetUserID] = struct{}{}
	}

	var candidates []models.ProfileRecord
	for _, profile := range profiles {
		if profile.UserID == userID {
			continue
		}
		if _, swiped := swipedTargetIDs[profile.UserID]; swiped {
			continue
		}
		candidates = append(candidates, profile)
	}

	return candidates, nil
}

// recordSwipe durably upserts a fresh decision for the pair. The new record
// always starts unsynced, replacing any previous decision entirely.
func (s *matchService) recordSwipe(ctx context.Context, userID, targetUserID int64, action models.SwipeAction) (models.SwipeRecord, error) {
	if userID == targetUserID {
		return models.SwipeRecord{}, ErrSelfSwipe
	}
	if !action.Valid() {
		return models.SwipeRecord{}, ErrInvalidSwipeAction
	}

	rec := models.SwipeRecord{
		ID:           s.uuid.Generate(),
		UserID:       userID,
		TargetUserID: targetUserID,
		Action:       action,
		Timestamp:    time.Now().UTC(),
		Synced:       false,
	}

	if err := s.storages.SwipeRepository.Save(ctx, rec); err != nil {
		return models.SwipeRecord{}, fmt.Errorf("save swipe (user_id=%d, target_user_id=%d): %w", userID, targetUserID, err)
	}

	return rec, nil
}

// detectMatch reports whether the reverse like-edge exists in the local
// store. It never consults the remote: each device answers from its own
// durable state and converges once both sides have pushed and pulled.
func (s *matchService) detectMatch(ctx context.Context, userID, likedUserID int64) (bool, error) {
	reverse, err := s.storages.SwipeRepository.GetByUserAndTarget(ctx, likedUserID, userID)
	if err != nil {
		if errors.Is(err, store.ErrSwipeNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("detect match (user_id=%d, liked_user_id=%d): %w", userID, likedUserID, err)
	}

	return reverse.Action == models.ActionLike, nil
}
