// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Khapkin

package adapter

import (
	"context"

	"github.com/okhapkin/go-match-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteGateway is the abstract swipe submission and fetch capability the
// engine requires from the remote matching service. Implementations report
// failure through error returns only; the local store stays authoritative
// whether or not the remote is reachable.
type RemoteGateway interface {
	// Login authenticates against the remote service and returns the
	// session token with the user identifier extracted from it.
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)

	// SubmitSwipe sends one swipe decision to the remote authority and
	// returns the identifier the remote stored it under.
	SubmitSwipe(ctx context.Context, rec models.SwipeRecord) (string, error)

	// FetchSwipes returns the remote swipe history for the given user.
	FetchSwipes(ctx context.Context, userID int64) ([]models.RemoteSwipe, error)

	// FetchProfiles returns the current remote profile set used to
	// refresh the local profile cache.
	FetchProfiles(ctx context.Context) ([]models.ProfileRecord, error)

	// SetToken installs a bearer token for subsequent authenticated calls.
	SetToken(token string)
}
