package services

import (
	"context"
	"fmt"
	"time"

	"github.com/studysphere/backend/internal/app/models"
	"github.com/studysphere/backend/internal/app/repositories"
)

// CommentService defines the interface for comment-related operations
type CommentService interface {
	CreateComment(ctx context.Context, announcementID int64, user, content string) (*models.Comment, error)
	GetCommentsByAnnouncement(ctx context.Context, announcementID int64) ([]*models.Comment, error)
}

// commentServiceImpl implements the CommentService interface
type commentServiceImpl struct {
	commentRepo *repositories.CommentRepository
}

// NewCommentService creates a new comment service instance
func NewCommentService(commentRepo *repositories.CommentRepository) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
	}
}

// CreateComment stamps the posting time and persists the record. The
// announcement id is taken as-is, same as announcement creation.
func (s *commentServiceImpl) CreateComment(ctx context.Context, announcementID int64, user, content string) (*models.Comment, error) {
	comment := &models.Comment{
		AnnouncementID: announcementID,
		User:           user,
		Content:        content,
		DatePosted:     time.Now().UTC(),
	}

	id, err := s.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("error creating comment: %w", err)
	}

	comment.ID = id
	return comment, nil
}

// GetCommentsByAnnouncement retrieves all comments under an announcement
func (s *commentServiceImpl) GetCommentsByAnnouncement(ctx context.Context, announcementID int64) ([]*models.Comment, error) {
	comments, err := s.commentRepo.ListByAnnouncement(ctx, announcementID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving comments: %w", err)
	}
	return comments, nil
}
