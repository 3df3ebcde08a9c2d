// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Khapkin

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/okhapkin/go-match-sync/models"
)

var (
	swipeColumns   = []string{"id", "user_id", "target_user_id", "action", "swiped_at", "synced"}
	profileColumns = []string{"user_id", "name", "gender", "age", "bio"}
)

const upsertSwipeSuffix = `ON CONFLICT (user_id, target_user_id) DO UPDATE SET
		id        = excluded.id,
		action    = excluded.action,
		swiped_at = excluded.swiped_at,
		synced    = excluded.synced`

const upsertProfileSuffix = `ON CONFLICT (user_id) DO UPDATE SET
		name   = excluded.name,
		gender = excluded.gender,
		age    = excluded.age,
		bio    = excluded.bio`

// buildUpsertSwipeQuery builds the atomic replace-on-conflict insert that
// enforces the one-record-per-pair invariant.
func buildUpsertSwipeQuery(rec models.SwipeRecord) (string, []any, error) {
	return sq.Insert(rec.TableName()).
		Columns(swipeColumns...).
		Values(rec.ID, rec.UserID, rec.TargetUserID, string(rec.Action), rec.Timestamp, rec.Synced).
		Suffix(upsertSwipeSuffix).
		ToSql()
}

func buildSelectSwipeByPairQuery(userID, targetUserID int64) (string, []any, error) {
	return sq.Select(swipeColumns...).
		From("swipes").
		Where(sq.And{
			sq.Eq{"user_id": userID},
			sq.Eq{"target_user_id": targetUserID},
		}).
		ToSql()
}

func buildSelectSwipesByUserQuery(userID int64) (string, []any, error) {
	return sq.Select(swipeColumns...).
		From("swipes").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildSelectSwipesByUserAndActionQuery(userID int64, action models.SwipeAction) (string, []any, error) {
	return sq.Select(swipeColumns...).
		From("swipes").
		Where(sq.And{
			sq.Eq{"user_id": userID},
			sq.Eq{"action": string(action)},
		}).
		ToSql()
}

func buildSelectUnsyncedSwipesQuery() (string, []any, error) {
	return sq.Select(swipeColumns...).
		From("swipes").
		Where(sq.Eq{"synced": false}).
		ToSql()
}

// buildMarkSwipeSyncedQuery only touches rows still pending, which keeps the
// operation an idempotent no-op for absent or already-synced records.
func buildMarkSwipeSyncedQuery(userID, targetUserID int64) (string, []any, error) {
	return sq.Update("swipes").
		Set("synced", true).
		Where(sq.And{
			sq.Eq{"user_id": userID},
			sq.Eq{"target_user_id": targetUserID},
			sq.Eq{"synced": false},
		}).
		ToSql()
}

func buildDeleteSwipesByUserQuery(userID int64) (string, []any, error) {
	return sq.Delete("swipes").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildUpsertProfileQuery(profile models.ProfileRecord) (string, []any, error) {
	return sq.Insert(profile.TableName()).
		Columns(profileColumns...).
		Values(profile.UserID, profile.Name, profile.Gender, profile.Age, profile.Bio).
		Suffix(upsertProfileSuffix).
		ToSql()
}

func buildSelectProfileQuery(userID int64) (string, []any, error) {
	return sq.Select(profileColumns...).
		From("profiles").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildSelectAllProfilesQuery() (string, []any, error) {
	return sq.Select(profileColumns...).
		From("profiles").
		ToSql()
}

func buildDeleteAllProfilesQuery() (string, []any, error) {
	return sq.Delete("profiles").ToSql()
}
