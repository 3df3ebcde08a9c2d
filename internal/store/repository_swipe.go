package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/okhapkin/go-match-sync/internal/logger"
	"github.com/okhapkin/go-match-sync/models"
)

type swipeRepository struct {
	*DB
	logger *logger.Logger
}

func NewSwipeRepository(db *DB, logger *logger.Logger) SwipeRepository {
	return &swipeRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *swipeRepository) Save(ctx context.Context, rec models.SwipeRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertSwipeQuery(rec)
	if err != nil {
		log.Err(err).
			Str("func", "swipeRepository.Save").
			Int64("user_id", rec.UserID).
			Int64("target_user_id", rec.TargetUserID).
			Msg("failed to build upsert query for swipe record")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "swipeRepository.Save").
			Int64("user_id", rec.UserID).
			Int64("target_user_id", rec.TargetUserID).
			Msg("failed to execute upsert for swipe record")
		return fmt.Errorf("%w: failed to save swipe record (user_id=%d, target_user_id=%d): %w",
			ErrExecutingStatement, rec.UserID, rec.TargetUserID, err)
	}

	return nil
}

func (r *swipeRepository) GetByUserAndTarget(ctx context.Context, userID, targetUserID int64) (models.SwipeRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSwipeByPairQuery(userID, targetUserID)
	if err != nil {
		log.Err(err).
			Str("func", "swipeRepository.GetByUserAndTarget").
			Int64("user_id", userID).
			Msg("failed to build select query for swipe record")
		return models.SwipeRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.DB.QueryRowContext(ctx, query, args...)

	rec, scanErr := scanSwipeRecord(row.Scan)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.SwipeRecord{}, ErrSwipeNotFound
		}
		log.Err(scanErr).
			Str("func", "swipeRepository.GetByUserAndTarget").
			Int64("user_id", userID).
			Int64("target_user_id", targetUserID).
			Msg("failed to scan swipe record row")
		return models.SwipeRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return rec, nil
}

func (r *swipeRepository) GetAllByUser(ctx context.Context, userID int64) ([]models.SwipeRecord, error) {
	query, args, err := buildSelectSwipesByUserQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.querySwipes(ctx, "swipeRepository.GetAllByUser", query, args...)
}

func (r *swipeRepository) GetAllByUserAndAction(ctx context.Context, userID int64, action models.SwipeAction) ([]models.SwipeRecord, error) {
	query, args, err := buildSelectSwipesByUserAndActionQuery(userID, action)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.querySwipes(ctx, "swipeRepository.GetAllByUserAndAction", query, args...)
}

func (r *swipeRepository) GetUnsynced(ctx context.Context) ([]models.SwipeRecord, error) {
	query, args, err := buildSelectUnsyncedSwipesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.querySwipes(ctx, "swipeRepository.GetUnsynced", query, args...)
}

func (r *swipeRepository) MarkSynced(ctx context.Context, userID, targetUserID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildMarkSwipeSyncedQuery(userID, targetUserID)
	if err != nil {
		log.Err(err).
			Str("func", "swipeRepository.MarkSynced").
			Int64("user_id", userID).
			Msg("failed to build mark-synced query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// Zero rows affected means the record is absent or already synced;
	// both are valid no-op outcomes.
	_, err = r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "swipeRepository.MarkSynced").
			Int64("user_id", userID).
			Int64("target_user_id", targetUserID).
			Msg("failed to execute mark-synced for swipe record")
		return fmt.Errorf("%w: failed to mark swipe record synced (user_id=%d, target_user_id=%d): %w",
			ErrExecutingStatement, userID, targetUserID, err)
	}

	return nil
}

func (r *swipeRepository) DeleteAllByUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSwipesByUserQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "swipeRepository.DeleteAllByUser").
			Int64("user_id", userID).
			Msg("failed to build delete query for swipe records")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "swipeRepository.DeleteAllByUser").
			Int64("user_id", userID).
			Msg("failed to execute delete for swipe records")
		return fmt.Errorf("%w: failed to delete swipe records (user_id=%d): %w", ErrExecutingStatement, userID, err)
	}

	return nil
}

func (r *swipeRepository) querySwipes(ctx context.Context, caller, query string, args ...any) ([]models.SwipeRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Msg("failed to execute query for swipe records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.SwipeRecord

	for rows.Next() {
		rec, scanErr := scanSwipeRecord(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", caller).
				Msg("failed to scan swipe record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		records = append(records, rec)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", caller).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating swipe record rows: %w", rowsErr)
	}

	return records, nil
}

func scanSwipeRecord(scan func(dest ...any) error) (models.SwipeRecord, error) {
	var rec models.SwipeRecord
	var action string

	err := scan(
		&rec.ID,
		&rec.UserID,
		&rec.TargetUserID,
		&action,
		&rec.Timestamp,
		&rec.Synced,
	)
	if err != nil {
		return models.SwipeRecord{}, err
	}

	rec.Action = models.SwipeAction(action)
	return rec, nil
}
