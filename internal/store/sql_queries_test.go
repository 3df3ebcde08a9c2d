// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Khapkin

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okhapkin/go-match-sync/models"
)

func Test_buildUpsertSwipeQuery(t *testing.T) {
	rec := models.SwipeRecord{
		ID:           "uuid-1",
		UserID:       1,
		TargetUserID: 2,
		Action:       models.ActionLike,
		Timestamp:    time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Synced:       false,
	}

	query, args, err := buildUpsertSwipeQuery(rec)
	require.NoError(t, err)

	require.Len(t, args, 6)
	assert.Equal(t, "uuid-1", args[0])
	assert.Equal(t, int64(1), args[1])
	assert.Equal(t, int64(2), args[2])
	assert.Equal(t, "like", args[3])
	assert.Equal(t, rec.Timestamp, args[4])
	assert.Equal(t, false, args[5])

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into swipes")
	require.Contains(t, q, "on conflict (user_id, target_user_id)")
	require.Contains(t, q, "do update set")

	// conflict resolution must replace every mutable column
	for _, c := range []string{"id", "action", "swiped_at", "synced"} {
		require.Contains(t, q, c+" ")
	}
}

func Test_buildSelectSwipeByPairQuery(t *testing.T) {
	query, args, err := buildSelectSwipeByPairQuery(1, 2)
	require.NoError(t, err)

	require.Len(t, args, 2)
	assert.Equal(t, int64(1), args[0])
	assert.Equal(t, int64(2), args[1])

	q := strings.ToLower(query)
	require.Contains(t, q, "select")
	require.Contains(t, q, "from swipes")
	require.Contains(t, q, "user_id = ?")
	require.Contains(t, q, "target_user_id = ?")

	for _, c := range swipeColumns {
		require.Contains(t, q, c)
	}
}

func Test_buildSelectSwipesByUserQuery(t *testing.T) {
	query, args, err := buildSelectSwipesByUserQuery(42)
	require.NoError(t, err)

	require.Len(t, args, 1)
	assert.Equal(t, int64(42), args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "from swipes")
	require.Contains(t, q, "user_id = ?")
	require.NotContains(t, q, "target_user_id = ?")
}

func Test_buildSelectSwipesByUserAndActionQuery(t *testing.T) {
	query, args, err := buildSelectSwipesByUserAndActionQuery(42, models.ActionLike)
	require.NoError(t, err)

	require.Len(t, args, 2)
	assert.Equal(t, int64(42), args[0])
	assert.Equal(t, "like", args[1])

	q := strings.ToLower(query)
	require.Contains(t, q, "user_id = ?")
	require.Contains(t, q, "action = ?")
}

func Test_buildSelectUnsyncedSwipesQuery(t *testing.T) {
	query, args, err := buildSelectUnsyncedSwipesQuery()
	require.NoError(t, err)

	require.Len(t, args, 1)
	assert.Equal(t, false, args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "from swipes")
	require.Contains(t, q, "synced = ?")
}

func Test_buildMarkSwipeSyncedQuery(t *testing.T) {
	query, args, err := buildMarkSwipeSyncedQuery(1, 2)
	require.NoError(t, err)

	// SET argument first, then the WHERE pair, then the pending guard
	require.Len(t, args, 4)
	assert.Equal(t, true, args[0])
	assert.Equal(t, int64(1), args[1])
	assert.Equal(t, int64(2), args[2])
	assert.Equal(t, false, args[3])

	q := strings.ToLower(query)
	require.Contains(t, q, "update swipes")
	require.Contains(t, q, "set synced = ?")
	require.Contains(t, q, "user_id = ?")
	require.Contains(t, q, "target_user_id = ?")
}

func Test_buildDeleteSwipesByUserQuery(t *testing.T) {
	query, args, err := buildDeleteSwipesByUserQuery(42)
	require.NoError(t, err)

	require.Len(t, args, 1)
	assert.Equal(t, int64(42), args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "delete from swipes")
	require.Contains(t, q, "user_id = ?")
}

func Test_buildUpsertProfileQuery(t *testing.T) {
	profile := models.ProfileRecord{UserID: 7, Name: "Alice", Gender: "female", Age: 29, Bio: "climbing"}

	query, args, err := buildUpsertProfileQuery(profile)
	require.NoError(t, err)

	require.Len(t, args, 5)
	assert.Equal(t, int64(7), args[0])
	assert.Equal(t, "Alice", args[1])

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into profiles")
	require.Contains(t, q, "on conflict (user_id)")
	require.Contains(t, q, "do update set")
}

func Test_buildProfileSelectQueries(t *testing.T) {
	query, args, err := buildSelectProfileQuery(7)
	require.NoError(t, err)
	require.Len(t, args, 1)
	assert.Equal(t, int64(7), args[0])
	require.Contains(t, strings.ToLower(query), "from profiles")
	require.Contains(t, strings.ToLower(query), "user_id = ?")

	query, args, err = buildSelectAllProfilesQuery()
	require.NoError(t, err)
	require.Empty(t, args)
	q := strings.ToLower(query)
	require.Contains(t, q, "from profiles")
	require.NotContains(t, q, "where")

	for _, c := range profileColumns {
		require.Contains(t, q, c)
	}
}

func Test_buildDeleteAllProfilesQuery(t *testing.T) {
	query, args, err := buildDeleteAllProfilesQuery()
	require.NoError(t, err)
	require.Empty(t, args)
	assert.Equal(t, "DELETE FROM profiles", query)
}
