package services

import (
	"context"
	"fmt"
	"time"

	"github.com/studysphere/backend/internal/app/models"
	"github.com/studysphere/backend/internal/app/repositories"
)

// AnnouncementService defines the interface for announcement-related operations
type AnnouncementService interface {
	CreateAnnouncement(ctx context.Context, subjectID int64, title, content string) (*models.Announcement, error)
	GetAnnouncementByID(ctx context.Context, id int64) (*models.Announcement, error)
	GetAllAnnouncements(ctx context.Context) ([]*models.Announcement, error)
	GetAnnouncementsBySubject(ctx context.Context, subjectID int64) ([]*models.Announcement, error)
	UpdateAnnouncement(ctx context.Context, id int64, title, content string) (*models.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id int64) error
}

// announcementServiceImpl implements the AnnouncementService interface
type announcementServiceImpl struct {
	announcementRepo *repositories.AnnouncementRepository
}

// NewAnnouncementService creates a new announcement service instance
func NewAnnouncementService(announcementRepo *repositories.AnnouncementRepository) AnnouncementService {
	return &announcementServiceImpl{
		announcementRepo: announcementRepo,
	}
}

// CreateAnnouncement stamps the posting time and persists the record.
// The subject is not checked for existence; an unknown subject id
// simply produces an orphaned announcement.
func (s *announcementServiceImpl) CreateAnnouncement(ctx context.Context, subjectID int64, title, content string) (*models.Announcement, error) {
	announcement := &models.Announcement{
		SubjectID:  subjectID,
		Title:      title,
		Content:    content,
		DatePosted: time.Now().UTC(),
	}

	id, err := s.announcementRepo.Create(ctx, announcement)
	if err != nil {
		return nil, fmt.Errorf("error creating announcement: %w", err)
	}

	announcement.ID = id
	return announcement, nil
}

// GetAnnouncementByID retrieves an announcement by ID
func (s *announcementServiceImpl) GetAnnouncementByID(ctx context.Context, id int64) (*models.Announcement, error) {
	return s.announcementRepo.GetByID(ctx, id)
}

// GetAllAnnouncements retrieves all announcements, newest first
func (s *announcementServiceImpl) GetAllAnnouncements(ctx context.Context) ([]*models.Announcement, error) {
	announcements, err := s.announcementRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving announcements: %w", err)
	}
	return announcements, nil
}

// GetAnnouncementsBySubject retrieves all announcements under a subject
func (s *announcementServiceImpl) GetAnnouncementsBySubject(ctx context.Context, subjectID int64) ([]*models.Announcement, error) {
	announcements, err := s.announcementRepo.ListBySubject(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving announcements by subject: %w", err)
	}
	return announcements, nil
}

// UpdateAnnouncement overwrites title and content, leaving subject_id
// and date_posted untouched, and returns the updated record.
func (s *announcementServiceImpl) UpdateAnnouncement(ctx context.Context, id int64, title, content string) (*models.Announcement, error) {
	announcement, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	announcement.Title = title
	announcement.Content = content
	if err := s.announcementRepo.Update(ctx, announcement); err != nil {
		return nil, err
	}

	return announcement, nil
}

// DeleteAnnouncement deletes an announcement by ID. Comments stay behind.
func (s *announcementServiceImpl) DeleteAnnouncement(ctx context.Context, id int64) error {
	return s.announcementRepo.Delete(ctx, id)
}
