// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Khapkin

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okhapkin/go-match-sync/internal/logger"
	"github.com/okhapkin/go-match-sync/models"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL builds a store DB from an existing *sql.DB (for tests).
func newDBFromSQL(db *sql.DB) *DB {
	return &DB{DB: db, logger: logger.Nop()}
}

func newSwipeRepo(t *testing.T, db *sql.DB) SwipeRepository {
	t.Helper()
	return NewSwipeRepository(newDBFromSQL(db), logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func testSwipe(userID, targetUserID int64, action models.SwipeAction, synced bool) models.SwipeRecord {
	return models.SwipeRecord{
		ID:           "uuid-1",
		UserID:       userID,
		TargetUserID: targetUserID,
		Action:       action,
		Timestamp:    time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Synced:       synced,
	}
}

func swipeRows(records ...models.SwipeRecord) *sqlmock.Rows {
	rows := sqlmock.NewRows(swipeColumns)
	for _, rec := range records {
		rows.AddRow(rec.ID, rec.UserID, rec.TargetUserID, string(rec.Action), rec.Timestamp, rec.Synced)
	}
	return rows
}

func TestSwipeRepository_Save(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newSwipeRepo(t, db)

	rec := testSwipe(1, 2, models.ActionLike, false)

	mock.ExpectExec("INSERT INTO swipes").
		WithArgs(rec.ID, rec.UserID, rec.TargetUserID, "like", rec.Timestamp, false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(testContext(), rec)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSwipeRepository_Save_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newSwipeRepo(t, db)

	mock.ExpectExec("INSERT INTO swipes").
		WillReturnError(errors.New("disk I/O error"))

	err := repo.Save(testContext(), testSwipe(1, 2, models.ActionLike, false))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.Contains(t, err.Error(), "failed to save swipe record")
}

func TestSwipeRepository_GetByUserAndTarget(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newSwipeRepo(t, db)

	want := testSwipe(1, 2, models.ActionLike, true)

	mock.ExpectQuery("SELECT (.+) FROM swipes").
		WithArgs(int64(1), int64(2)).
		WillReturnRows(swipeRows(want))

	got, err := repo.GetByUserAndTarget(testContext(), 1, 2)

	require.NoError(t, err)
	assert.Equal(t, want, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSwipeRepository_GetByUserAndTarget_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newSwipeRepo(t, db)

	mock.ExpectQuery("SELECT (.+) FROM swipes").
		WithArgs(int64(1), int64(99)).
		WillReturnRows(swipeRows())

	_, err := repo.GetByUserAndTarget(testContext(), 1, 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSwipeNotFound)
}

func TestSwipeRepository_GetAllByUser(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newSwipeRepo(t, db)

	first := testSwipe(1, 2, models.ActionLike, true)
	second := testSwipe(1, 3, models.ActionDislike, false)
	second.ID = "uuid-2"

	mock.ExpectQuery("SELECT (.+) FROM swipes").
		WithArgs(int64(1)).
		WillReturnRows(swipeRows(first, second))

	got, err := repo.GetAllByUser(testContext(), 1)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first, got[0])
	assert.Equal(t, second, got[1])
}

func TestSwipeRepository_GetAllByUser_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newSwipeRepo(t, db)

	mock.ExpectQuery("SELECT (.+) FROM swipes").
		WithArgs(int64(1)).
		WillReturnRows(swipeRows())

	got, err := repo.GetAllByUser(testContext(), 1)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSwipeRepository_GetAllByUserAndAction(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newSwipeRepo(t, db)

	like := testSwipe(1, 2, models.ActionLike, true)

	mock.ExpectQuery("SELECT (.+) FROM swipes").
		WithArgs(int64(1), "like").
		WillReturnRows(swipeRows(like))

	got, err := repo.GetAllByUserAndAction(testContext(), 1, models.ActionLike)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.ActionLike, got[0].Action)
}

func TestSwipeRepository_GetUnsynced(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newSwipeRepo(t, db)

	pending := testSwipe(1, 2, models.ActionLike, false)

	mock.ExpectQuery("SELECT (.+) FROM swipes").
		WithArgs(false).
		WillReturnRows(swipeRows(pending))

	got, err := repo.GetUnsynced(testContext())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].Synced)
}

func TestSwipeRepository_GetUnsynced_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newSwipeRepo(t, db)

	mock.ExpectQuery("SELECT (.+) FROM swipes").
		WillReturnError(errors.New("database is locked"))

	_, err := repo.GetUnsynced(testContext())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSwipeRepository_MarkSynced(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newSwipeRepo(t, db)

	mock.ExpectExec("UPDATE swipes").
		WithArgs(true, int64(1), int64(2), false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkSynced(testContext(), 1, 2)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSwipeRepository_MarkSynced_NoMatchingRow(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newSwipeRepo(t, db)

	// absent or already-synced records affect zero rows; still a success
	mock.ExpectExec("UPDATE swipes").
		WithArgs(true, int64(1), int64(99), false).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkSynced(testContext(), 1, 99)

	require.NoError(t, err)
}

func TestSwipeRepository_MarkSynced_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newSwipeRepo(t, db)

	mock.ExpectExec("UPDATE swipes").
		WillReturnError(errors.New("database is locked"))

	err := repo.MarkSynced(testContext(), 1, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSwipeRepository_DeleteAllByUser(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newSwipeRepo(t, db)

	mock.ExpectExec("DELETE FROM swipes").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	err := repo.DeleteAllByUser(testContext(), 1)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
