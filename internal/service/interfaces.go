// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Khapkin

package service

import (
	"context"
	"time"

	"github.com/okhapkin/go-match-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// MatchService is the engine surface exposed to UI/presentation
// collaborators. Every operation works against the local store first; remote
// visibility of a decision is delayed, never required.
type MatchService interface {
	// LikeUser durably records a like from userID toward targetUserID,
	// reports whether the reverse like already exists locally (a match),
	// and then attempts remote submission. A failed submission leaves the
	// record pending and never affects the returned match result.
	LikeUser(ctx context.Context, userID, targetUserID int64) (bool, error)

	// DislikeUser durably records a dislike and attempts remote
	// submission the same way LikeUser does.
	DislikeUser(ctx context.Context, userID, targetUserID int64) error

	// GetMatches returns the cached profiles of every user with whom
	// userID has a mutual like.
	GetMatches(ctx context.Context, userID int64) ([]models.ProfileRecord, error)

	// GetPotentialMatches returns the candidate pool for userID: all
	// cached profiles minus the user's own and minus every already-swiped
	// target. The result carries no ordering guarantee.
	GetPotentialMatches(ctx context.Context, userID int64) ([]models.ProfileRecord, error)
}

// SyncService orchestrates the push of pending local swipes to the remote
// gateway and the pull of remote-origin swipes into the local store. All
// operations attempt the remote call regardless of the last known mode.
type SyncService interface {
	// PushOne submits a single freshly written record. On acceptance the
	// record is marked synced; on gateway failure it stays pending for
	// the next PushAll pass and the error is only logged. Returns an
	// error solely for local storage failures.
	PushOne(ctx context.Context, rec models.SwipeRecord) error

	// PushAll submits every pending record sequentially. A single
	// record's failure never aborts the rest of the batch; the report
	// carries independent success and failure counts.
	PushAll(ctx context.Context) (models.SyncReport, error)

	// Pull merges the remote swipe history for userID into the local
	// store. Records already known locally are left untouched; unknown
	// records are inserted as already-synced. Running Pull twice with the
	// same remote dataset yields the same store state.
	Pull(ctx context.Context, userID int64) error

	// RefreshProfiles replaces the local profile cache content with the
	// current remote profile set.
	RefreshProfiles(ctx context.Context) error

	// Mode reports the last known connectivity state. Advisory only:
	// consulted by UI collaborators, never gating push or pull.
	Mode() models.SyncMode
}

// SyncJob is a background worker that periodically runs a push-all and pull
// pass for the authenticated user.
type SyncJob interface {
	// Start launches the background sync goroutine. It syncs every
	// interval, defaulting to 5 minutes if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, userID int64, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}
