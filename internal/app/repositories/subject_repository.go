package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/studysphere/backend/internal/app/models"
	"github.com/studysphere/backend/internal/pkg/apperrors"
	"github.com/studysphere/backend/internal/pkg/logger"
)

// SubjectRepository handles subject database operations
type SubjectRepository struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// NewSubjectRepository creates a new SubjectRepository
func NewSubjectRepository(db *sql.DB) *SubjectRepository {
	return &SubjectRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// Create persists a new subject and returns its assigned id
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) (int64, error) {
	query, args, err := r.sb.Insert("subjects").
		Columns("name", "teacher").
		Values(subject.Name, subject.Teacher).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create subject SQL")
		return 0, fmt.Errorf("failed to build create subject query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create subject query")
		return 0, fmt.Errorf("error creating subject: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading created subject id: %w", err)
	}

	return id, nil
}

// GetByID retrieves a subject by ID
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	query, args, err := r.sb.Select("id", "name", "teacher").
		From("subjects").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get subject by ID SQL")
		return nil, fmt.Errorf("failed to build get subject query: %w", err)
	}

	subject := &models.Subject{}
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&subject.ID, &subject.Name, &subject.Teacher)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrSubjectNotFound
		}
		logger.Error().Err(err).Int64("subjectID", id).Msg("Error scanning subject row")
		return nil, fmt.Errorf("error getting subject by ID: %w", err)
	}

	return subject, nil
}

// List retrieves all subjects in insertion order
func (r *SubjectRepository) List(ctx context.Context) ([]*models.Subject, error) {
	query, args, err := r.sb.Select("id", "name", "teacher").
		From("subjects").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list subjects SQL")
		return nil, fmt.Errorf("failed to build list subjects query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list subjects query")
		return nil, fmt.Errorf("error querying subjects: %w", err)
	}
	defer rows.Close()

	subjects := []*models.Subject{}
	for rows.Next() {
		subject := &models.Subject{}
		if err := rows.Scan(&subject.ID, &subject.Name, &subject.Teacher); err != nil {
			logger.Error().Err(err).Msg("Error scanning subject row during list")
			return nil, fmt.Errorf("error scanning subject row: %w", err)
		}
		subjects = append(subjects, subject)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating subject rows")
		return nil, fmt.Errorf("error iterating subject rows: %w", err)
	}

	return subjects, nil
}

// Update overwrites name and teacher of an existing subject
func (r *SubjectRepository) Update(ctx context.Context, subject *models.Subject) error {
	query, args, err := r.sb.Update("subjects").
		SetMap(map[string]interface{}{
			"name":    subject.Name,
			"teacher": subject.Teacher,
		}).
		Where(squirrel.Eq{"id": subject.ID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update subject SQL")
		return fmt.Errorf("failed to build update subject query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("subjectID", subject.ID).Msg("Error executing update subject query")
		return fmt.Errorf("error updating subject: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrSubjectNotFound
	}

	return nil
}

// Delete removes a subject by ID. Children are not touched; orphaned
// announcements, materials, assignments and reminders stay retrievable.
func (r *SubjectRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete("subjects").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete subject SQL")
		return fmt.Errorf("failed to build delete subject query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("subjectID", id).Msg("Error executing delete subject query")
		return fmt.Errorf("error deleting subject: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrSubjectNotFound
	}

	return nil
}
