// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Khapkin

package store

import (
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okhapkin/go-match-sync/internal/logger"
	"github.com/okhapkin/go-match-sync/models"
)

func profileRows(profiles ...models.ProfileRecord) *sqlmock.Rows {
	rows := sqlmock.NewRows(profileColumns)
	for _, p := range profiles {
		rows.AddRow(p.UserID, p.Name, p.Gender, p.Age, p.Bio)
	}
	return rows
}

func TestProfileRepository_SaveProfiles(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProfileRepository(newDBFromSQL(db), logger.Nop())

	alice := models.ProfileRecord{UserID: 2, Name: "Alice", Gender: "female", Age: 29, Bio: "climbing"}
	bob := models.ProfileRecord{UserID: 3, Name: "Bob", Gender: "male", Age: 31}

	mock.ExpectExec("INSERT INTO profiles").
		WithArgs(alice.UserID, alice.Name, alice.Gender, alice.Age, alice.Bio).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO profiles").
		WithArgs(bob.UserID, bob.Name, bob.Gender, bob.Age, bob.Bio).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveProfiles(testContext(), alice, bob)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_SaveProfiles_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProfileRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec("INSERT INTO profiles").
		WillReturnError(errors.New("database is locked"))

	err := repo.SaveProfiles(testContext(), models.ProfileRecord{UserID: 2, Name: "Alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestProfileRepository_GetProfile(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProfileRepository(newDBFromSQL(db), logger.Nop())

	want := models.ProfileRecord{UserID: 2, Name: "Alice", Gender: "female", Age: 29, Bio: "climbing"}

	mock.ExpectQuery("SELECT (.+) FROM profiles").
		WithArgs(int64(2)).
		WillReturnRows(profileRows(want))

	got, err := repo.GetProfile(testContext(), 2)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProfileRepository_GetProfile_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProfileRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM profiles").
		WithArgs(int64(99)).
		WillReturnRows(profileRows())

	_, err := repo.GetProfile(testContext(), 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfileRepository_GetAllProfiles(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProfileRepository(newDBFromSQL(db), logger.Nop())

	alice := models.ProfileRecord{UserID: 2, Name: "Alice", Gender: "female", Age: 29}
	bob := models.ProfileRecord{UserID: 3, Name: "Bob", Gender: "male", Age: 31, Bio: "chess"}

	mock.ExpectQuery("SELECT (.+) FROM profiles").
		WillReturnRows(profileRows(alice, bob))

	got, err := repo.GetAllProfiles(testContext())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, alice, got[0])
	assert.Equal(t, bob, got[1])
}

func TestProfileRepository_GetAllProfiles_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProfileRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM profiles").
		WillReturnError(errors.New("database is locked"))

	_, err := repo.GetAllProfiles(testContext())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestProfileRepository_DeleteAllProfiles(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProfileRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec("DELETE FROM profiles").
		WillReturnResult(sqlmock.NewResult(0, 5))

	err := repo.DeleteAllProfiles(testContext())

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
