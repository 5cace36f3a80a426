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

// AssignmentRepository handles assignment database operations
type AssignmentRepository struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(db *sql.DB) *AssignmentRepository {
	return &AssignmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

func (r *AssignmentRepository) scanRows(rows *sql.Rows) ([]*models.Assignment, error) {
	assignments := []*models.Assignment{}
	for rows.Next() {
		a := &models.Assignment{}
		if err := rows.Scan(&a.ID, &a.SubjectID, &a.Title, &a.Instructions, &a.DueDate); err != nil {
			logger.Error().Err(err).Msg("Error scanning assignment row")
			return nil, fmt.Errorf("error scanning assignment row: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating assignment rows")
		return nil, fmt.Errorf("error iterating assignment rows: %w", err)
	}

	return assignments, nil
}

// Create persists a new assignment and returns its assigned id
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) (int64, error) {
	query, args, err := r.sb.Insert("assignments").
		Columns("subject_id", "title", "instructions", "due_date").
		Values(assignment.SubjectID, assignment.Title, assignment.Instructions, assignment.DueDate).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create assignment SQL")
		return 0, fmt.Errorf("failed to build create assignment query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create assignment query")
		return 0, fmt.Errorf("error creating assignment: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading created assignment id: %w", err)
	}

	return id, nil
}

// List retrieves all assignments in insertion order
func (r *AssignmentRepository) List(ctx context.Context) ([]*models.Assignment, error) {
	query, args, err := r.sb.Select("id", "subject_id", "title", "instructions", "due_date").
		From("assignments").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list assignments SQL")
		return nil, fmt.Errorf("failed to build list assignments query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list assignments query")
		return nil, fmt.Errorf("error querying assignments: %w", err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

// ListBySubject retrieves a subject's assignments in insertion order
func (r *AssignmentRepository) ListBySubject(ctx context.Context, subjectID int64) ([]*models.Assignment, error) {
	query, args, err := r.sb.Select("id", "subject_id", "title", "instructions", "due_date").
		From("assignments").
		Where(squirrel.Eq{"subject_id": subjectID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list assignments by subject SQL")
		return nil, fmt.Errorf("failed to build list assignments by subject query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("subjectID", subjectID).Msg("Error executing list assignments by subject query")
		return nil, fmt.Errorf("error querying assignments by subject: %w", err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

// Delete removes an assignment by ID
func (r *AssignmentRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete("assignments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete assignment SQL")
		return fmt.Errorf("failed to build delete assignment query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("assignmentID", id).Msg("Error executing delete assignment query")
		return fmt.Errorf("error deleting assignment: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAssignmentNotFound
	}

	return nil
}
