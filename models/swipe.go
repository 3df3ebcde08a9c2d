package models

import (
	"time"
)

// SwipeAction is the decision a user makes about another user's profile.
type SwipeAction string

const (
	// ActionLike marks a positive swipe decision.
	ActionLike SwipeAction = "like"
	// ActionDislike marks a negative swipe decision.
	ActionDislike SwipeAction = "dislike"
)

// Valid reports whether the action is one of the known swipe decisions.
func (a SwipeAction) Valid() bool {
	return a == ActionLike || a == ActionDislike
}

// SwipeRecord is a directed swipe decision from UserID toward TargetUserID,
// stored durably on the device. At most one record exists per
// (UserID, TargetUserID) pair; a later decision for the same pair replaces
// the earlier one entirely.
type SwipeRecord struct {
	// ID is the client-assigned unique identifier of the decision
	// (UUID, regenerated when the decision is replaced).
	ID string `json:"id"`

	// UserID is the user who made the decision.
	UserID int64 `json:"user_id"`

	// TargetUserID is the user the decision is about.
	TargetUserID int64 `json:"target_user_id"`

	// Action is the decision itself: like or dislike.
	Action SwipeAction `json:"action"`

	// Timestamp is when the decision was made on this device.
	Timestamp time.Time `json:"timestamp"`

	// Synced is true once the remote authority has accepted this record.
	// A replaced decision always resets Synced to false so it is
	// re-submitted on the next push.
	Synced bool `json:"synced"`
}

// TableName returns the name of the database table
// associated with the SwipeRecord model.
func (s SwipeRecord) TableName() string {
	return "swipes"
}

// RemoteSwipe is the wire representation of a swipe record held by the
// remote service. It carries no sync flag: everything fetched from the
// remote is by definition accepted there.
type RemoteSwipe struct {
	ID           string      `json:"id"`
	UserID       int64       `json:"user_id"`
	TargetUserID int64       `json:"target_user_id"`
	Action       SwipeAction `json:"action"`
	Timestamp    time.Time   `json:"timestamp"`
}
