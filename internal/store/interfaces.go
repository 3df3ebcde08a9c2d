package store

import (
	"context"

	"github.com/okhapkin/go-match-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SwipeRepository is the durable local record of every swipe decision made on
// this device. At most one record exists per (user, target) pair; the store
// enforces this with a uniqueness constraint and an atomic upsert.
type SwipeRepository interface {
	// Save upserts a swipe record keyed by (UserID, TargetUserID). A
	// conflicting key replaces the entire row, including the Synced flag,
	// so a changed decision is always re-submitted to the remote.
	Save(ctx context.Context, rec models.SwipeRecord) error

	// GetByUserAndTarget returns the single record for the pair, or
	// ErrSwipeNotFound when no decision has been recorded.
	GetByUserAndTarget(ctx context.Context, userID, targetUserID int64) (models.SwipeRecord, error)

	// GetAllByUser returns every decision made by userID.
	GetAllByUser(ctx context.Context, userID int64) ([]models.SwipeRecord, error)

	// GetAllByUserAndAction returns every decision made by userID with the
	// given action.
	GetAllByUserAndAction(ctx context.Context, userID int64, action models.SwipeAction) ([]models.SwipeRecord, error)

	// GetUnsynced returns every record the remote has not yet accepted.
	GetUnsynced(ctx context.Context) ([]models.SwipeRecord, error)

	// MarkSynced flips the record's synced flag to true. Idempotent: a
	// no-op when the record is absent or already synced.
	MarkSynced(ctx context.Context, userID, targetUserID int64) error

	// DeleteAllByUser removes every decision made by userID.
	DeleteAllByUser(ctx context.Context, userID int64) error
}

// ProfileRepository is the durable local mirror of remote profile records,
// used to compute the candidate pool without network access.
type ProfileRepository interface {
	// SaveProfiles upserts the given profiles keyed by user ID.
	SaveProfiles(ctx context.Context, profiles ...models.ProfileRecord) error

	// GetProfile returns the cached profile for userID, or
	// ErrProfileNotFound when it is not cached.
	GetProfile(ctx context.Context, userID int64) (models.ProfileRecord, error)

	// GetAllProfiles returns every cached profile.
	GetAllProfiles(ctx context.Context) ([]models.ProfileRecord, error)

	// DeleteAllProfiles clears the cache.
	DeleteAllProfiles(ctx context.Context) error
}
