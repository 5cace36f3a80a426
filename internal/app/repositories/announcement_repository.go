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

// AnnouncementRepository handles announcement database operations
type AnnouncementRepository struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(db *sql.DB) *AnnouncementRepository {
	return &AnnouncementRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

func (r *AnnouncementRepository) scanRows(rows *sql.Rows) ([]*models.Announcement, error) {
	announcements := []*models.Announcement{}
	for rows.Next() {
		a := &models.Announcement{}
		var posted string
		if err := rows.Scan(&a.ID, &a.SubjectID, &a.Title, &a.Content, &posted); err != nil {
			logger.Error().Err(err).Msg("Error scanning announcement row")
			return nil, fmt.Errorf("error scanning announcement row: %w", err)
		}
		datePosted, err := parseTime(posted)
		if err != nil {
			return nil, err
		}
		a.DatePosted = datePosted
		announcements = append(announcements, a)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating announcement rows")
		return nil, fmt.Errorf("error iterating announcement rows: %w", err)
	}

	return announcements, nil
}

// Create persists a new announcement and returns its assigned id.
// DatePosted must already be stamped by the caller.
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) (int64, error) {
	query, args, err := r.sb.Insert("announcements").
		Columns("subject_id", "title", "content", "date_posted").
		Values(announcement.SubjectID, announcement.Title, announcement.Content, formatTime(announcement.DatePosted)).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create announcement SQL")
		return 0, fmt.Errorf("failed to build create announcement query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create announcement query")
		return 0, fmt.Errorf("error creating announcement: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading created announcement id: %w", err)
	}

	return id, nil
}

// GetByID retrieves an announcement by ID
func (r *AnnouncementRepository) GetByID(ctx context.Context, id int64) (*models.Announcement, error) {
	query, args, err := r.sb.Select("id", "subject_id", "title", "content", "date_posted").
		From("announcements").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get announcement by ID SQL")
		return nil, fmt.Errorf("failed to build get announcement query: %w", err)
	}

	a := &models.Announcement{}
	var posted string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.SubjectID, &a.Title, &a.Content, &posted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrAnnouncementNotFound
		}
		logger.Error().Err(err).Int64("announcementID", id).Msg("Error scanning announcement row")
		return nil, fmt.Errorf("error getting announcement by ID: %w", err)
	}

	a.DatePosted, err = parseTime(posted)
	if err != nil {
		return nil, err
	}

	return a, nil
}

// List retrieves all announcements, newest first
func (r *AnnouncementRepository) List(ctx context.Context) ([]*models.Announcement, error) {
	query, args, err := r.sb.Select("id", "subject_id", "title", "content", "date_posted").
		From("announcements").
		OrderBy("date_posted DESC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list announcements SQL")
		return nil, fmt.Errorf("failed to build list announcements query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list announcements query")
		return nil, fmt.Errorf("error querying announcements: %w", err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

// ListBySubject retrieves a subject's announcements in insertion order.
// An unknown subject yields an empty list, not an error.
func (r *AnnouncementRepository) ListBySubject(ctx context.Context, subjectID int64) ([]*models.Announcement, error) {
	query, args, err := r.sb.Select("id", "subject_id", "title", "content", "date_posted").
		From("announcements").
		Where(squirrel.Eq{"subject_id": subjectID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list announcements by subject SQL")
		return nil, fmt.Errorf("failed to build list announcements by subject query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("subjectID", subjectID).Msg("Error executing list announcements by subject query")
		return nil, fmt.Errorf("error querying announcements by subject: %w", err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

// Update overwrites title and content of an existing announcement.
// subject_id and date_posted are immutable.
func (r *AnnouncementRepository) Update(ctx context.Context, announcement *models.Announcement) error {
	query, args, err := r.sb.Update("announcements").
		SetMap(map[string]interface{}{
			"title":   announcement.Title,
			"content": announcement.Content,
		}).
		Where(squirrel.Eq{"id": announcement.ID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update announcement SQL")
		return fmt.Errorf("failed to build update announcement query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("announcementID", announcement.ID).Msg("Error executing update announcement query")
		return fmt.Errorf("error updating announcement: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAnnouncementNotFound
	}

	return nil
}

// Delete removes an announcement by ID. Its comments are left in place.
func (r *AnnouncementRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete("announcements").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete announcement SQL")
		return fmt.Errorf("failed to build delete announcement query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("announcementID", id).Msg("Error executing delete announcement query")
		return fmt.Errorf("error deleting announcement: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAnnouncementNotFound
	}

	return nil
}
