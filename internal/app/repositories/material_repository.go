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

// MaterialRepository handles material database operations
type MaterialRepository struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// NewMaterialRepository creates a new MaterialRepository
func NewMaterialRepository(db *sql.DB) *MaterialRepository {
	return &MaterialRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

func (r *MaterialRepository) scanRows(rows *sql.Rows) ([]*models.Material, error) {
	materials := []*models.Material{}
	for rows.Next() {
		m := &models.Material{}
		var uploaded string
		if err := rows.Scan(&m.ID, &m.SubjectID, &m.Title, &m.Description, &m.FileURL, &uploaded); err != nil {
			logger.Error().Err(err).Msg("Error scanning material row")
			return nil, fmt.Errorf("error scanning material row: %w", err)
		}
		dateUploaded, err := parseTime(uploaded)
		if err != nil {
			return nil, err
		}
		m.DateUploaded = dateUploaded
		materials = append(materials, m)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating material rows")
		return nil, fmt.Errorf("error iterating material rows: %w", err)
	}

	return materials, nil
}

// Create persists a new material and returns its assigned id.
// Description and FileURL may be nil and persist as NULL.
func (r *MaterialRepository) Create(ctx context.Context, material *models.Material) (int64, error) {
	query, args, err := r.sb.Insert("materials").
		Columns("subject_id", "title", "description", "file_url", "date_uploaded").
		Values(material.SubjectID, material.Title, material.Description, material.FileURL, formatTime(material.DateUploaded)).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create material SQL")
		return 0, fmt.Errorf("failed to build create material query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create material query")
		return 0, fmt.Errorf("error creating material: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading created material id: %w", err)
	}

	return id, nil
}

// List retrieves all materials, newest first
func (r *MaterialRepository) List(ctx context.Context) ([]*models.Material, error) {
	query, args, err := r.sb.Select("id", "subject_id", "title", "description", "file_url", "date_uploaded").
		From("materials").
		OrderBy("date_uploaded DESC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list materials SQL")
		return nil, fmt.Errorf("failed to build list materials query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list materials query")
		return nil, fmt.Errorf("error querying materials: %w", err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

// ListBySubject retrieves a subject's materials in insertion order
func (r *MaterialRepository) ListBySubject(ctx context.Context, subjectID int64) ([]*models.Material, error) {
	query, args, err := r.sb.Select("id", "subject_id", "title", "description", "file_url", "date_uploaded").
		From("materials").
		Where(squirrel.Eq{"subject_id": subjectID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list materials by subject SQL")
		return nil, fmt.Errorf("failed to build list materials by subject query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("subjectID", subjectID).Msg("Error executing list materials by subject query")
		return nil, fmt.Errorf("error querying materials by subject: %w", err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

// Delete removes a material by ID
func (r *MaterialRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete("materials").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete material SQL")
		return fmt.Errorf("failed to build delete material query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("materialID", id).Msg("Error executing delete material query")
		return fmt.Errorf("error deleting material: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrMaterialNotFound
	}

	return nil
}
