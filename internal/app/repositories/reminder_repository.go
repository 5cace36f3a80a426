package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/studysphere/backend/internal/app/models"
	"github.com/studysphere/backend/internal/pkg/apperrors"
	"github.com/studysphere/backend/internal/pkg/logger"
)

// ReminderRepository handles reminder database operations
type ReminderRepository struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// NewReminderRepository creates a new ReminderRepository
func NewReminderRepository(db *sql.DB) *ReminderRepository {
	return &ReminderRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

func (r *ReminderRepository) scanRows(rows *sql.Rows) ([]*models.Reminder, error) {
	reminders := []*models.Reminder{}
	for rows.Next() {
		rem := &models.Reminder{}
		if err := rows.Scan(&rem.ID, &rem.SubjectID, &rem.Message, &rem.RemindAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning reminder row")
			return nil, fmt.Errorf("error scanning reminder row: %w", err)
		}
		reminders = append(reminders, rem)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating reminder rows")
		return nil, fmt.Errorf("error iterating reminder rows: %w", err)
	}

	return reminders, nil
}

// Create persists a new reminder and returns its assigned id
func (r *ReminderRepository) Create(ctx context.Context, reminder *models.Reminder) (int64, error) {
	query, args, err := r.sb.Insert("reminders").
		Columns("subject_id", "message", "remind_at").
		Values(reminder.SubjectID, reminder.Message, reminder.RemindAt).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create reminder SQL")
		return 0, fmt.Errorf("failed to build create reminder query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create reminder query")
		return 0, fmt.Errorf("error creating reminder: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading created reminder id: %w", err)
	}

	return id, nil
}

// List retrieves all reminders in insertion order
func (r *ReminderRepository) List(ctx context.Context) ([]*models.Reminder, error) {
	query, args, err := r.sb.Select("id", "subject_id", "message", "remind_at").
		From("reminders").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list reminders SQL")
		return nil, fmt.Errorf("failed to build list reminders query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list reminders query")
		return nil, fmt.Errorf("error querying reminders: %w", err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

// ListBySubject retrieves a subject's reminders in insertion order
func (r *ReminderRepository) ListBySubject(ctx context.Context, subjectID int64) ([]*models.Reminder, error) {
	query, args, err := r.sb.Select("id", "subject_id", "message", "remind_at").
		From("reminders").
		Where(squirrel.Eq{"subject_id": subjectID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list reminders by subject SQL")
		return nil, fmt.Errorf("failed to build list reminders by subject query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("subjectID", subjectID).Msg("Error executing list reminders by subject query")
		return nil, fmt.Errorf("error querying reminders by subject: %w", err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

// Delete removes a reminder by ID
func (r *ReminderRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete("reminders").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete reminder SQL")
		return fmt.Errorf("failed to build delete reminder query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("reminderID", id).Msg("Error executing delete reminder query")
		return fmt.Errorf("error deleting reminder: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrReminderNotFound
	}

	return nil
}
