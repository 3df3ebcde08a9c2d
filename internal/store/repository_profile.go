package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/okhapkin/go-match-sync/internal/logger"
	"github.com/okhapkin/go-match-sync/models"
)

type profileRepository struct {
	*DB
	logger *logger.Logger
}

func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	return &profileRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *profileRepository) SaveProfiles(ctx context.Context, profiles ...models.ProfileRecord) error {
	log := logger.FromContext(ctx)

	for _, profile := range profiles {
		query, args, err := buildUpsertProfileQuery(profile)
		if err != nil {
			log.Err(err).
				Str("func", "profileRepository.SaveProfiles").
				Int64("user_id", profile.UserID).
				Msg("failed to build upsert query for profile record")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "profileRepository.SaveProfiles").
				Int64("user_id", profile.UserID).
				Msg("failed to execute upsert for profile record")
			return fmt.Errorf("%w: failed to save profile record (user_id=%d): %w", ErrExecutingStatement, profile.UserID, err)
		}
	}

	return nil
}

func (r *profileRepository) GetProfile(ctx context.Context, userID int64) (models.ProfileRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProfileQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "profileRepository.GetProfile").
			Int64("user_id", userID).
			Msg("failed to build select query for profile record")
		return models.ProfileRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var profile models.ProfileRecord
	row := r.DB.QueryRowContext(ctx, query, args...)

	scanErr := row.Scan(
		&profile.UserID,
		&profile.Name,
		&profile.Gender,
		&profile.Age,
		&profile.Bio,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.ProfileRecord{}, ErrProfileNotFound
		}
		log.Err(scanErr).
			Str("func", "profileRepository.GetProfile").
			Int64("user_id", userID).
			Msg("failed to scan profile record row")
		return models.ProfileRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return profile, nil
}

func (r *profileRepository) GetAllProfiles(ctx context.Context) ([]models.ProfileRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllProfilesQuery()
	if err != nil {
		log.Err(err).
			Str("func", "profileRepository.GetAllProfiles").
			Msg("failed to build select query for profile records")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "profileRepository.GetAllProfiles").
			Msg("failed to execute query for profile records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var profiles []models.ProfileRecord

	for rows.Next() {
		var profile models.ProfileRecord

		scanErr := rows.Scan(
			&profile.UserID,
			&profile.Name,
			&profile.Gender,
			&profile.Age,
			&profile.Bio,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "profileRepository.GetAllProfiles").
				Msg("failed to scan profile record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		profiles = append(profiles, profile)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "profileRepository.GetAllProfiles").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating profile record rows: %w", rowsErr)
	}

	return profiles, nil
}

func (r *profileRepository) DeleteAllProfiles(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAllProfilesQuery()
	if err != nil {
		log.Err(err).
			Str("func", "profileRepository.DeleteAllProfiles").
			Msg("failed to build delete query for profile records")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "profileRepository.DeleteAllProfiles").
			Msg("failed to execute delete for profile records")
		return fmt.Errorf("%w: failed to delete profile records: %w", ErrExecutingStatement, err)
	}

	return nil
}
