package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/studysphere/backend/internal/app/models"
	"github.com/studysphere/backend/internal/pkg/logger"
)

// CommentRepository handles comment database operations
type CommentRepository struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// Create persists a new comment and returns its assigned id
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) (int64, error) {
	query, args, err := r.sb.Insert("comments").
		Columns("announcement_id", "user", "content", "date_posted").
		Values(comment.AnnouncementID, comment.User, comment.Content, formatTime(comment.DatePosted)).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create comment SQL")
		return 0, fmt.Errorf("failed to build create comment query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create comment query")
		return 0, fmt.Errorf("error creating comment: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading created comment id: %w", err)
	}

	return id, nil
}

// ListByAnnouncement retrieves an announcement's comments in insertion
// order. An unknown announcement yields an empty list, not an error.
func (r *CommentRepository) ListByAnnouncement(ctx context.Context, announcementID int64) ([]*models.Comment, error) {
	query, args, err := r.sb.Select("id", "announcement_id", "user", "content", "date_posted").
		From("comments").
		Where(squirrel.Eq{"announcement_id": announcementID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list comments SQL")
		return nil, fmt.Errorf("failed to build list comments query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("announcementID", announcementID).Msg("Error executing list comments query")
		return nil, fmt.Errorf("error querying comments: %w", err)
	}
	defer rows.Close()

	comments := []*models.Comment{}
	for rows.Next() {
		c := &models.Comment{}
		var posted string
		if err := rows.Scan(&c.ID, &c.AnnouncementID, &c.User, &c.Content, &posted); err != nil {
			logger.Error().Err(err).Msg("Error scanning comment row")
			return nil, fmt.Errorf("error scanning comment row: %w", err)
		}
		datePosted, err := parseTime(posted)
		if err != nil {
			return nil, err
		}
		c.DatePosted = datePosted
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating comment rows")
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}

	return comments, nil
}
