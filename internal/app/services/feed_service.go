package services

import (
	"context"
	"fmt"

	"github.com/studysphere/backend/internal/app/models/dto"
	"github.com/studysphere/backend/internal/app/repositories"
)

// previewLength is how many characters of content/description make it
// into a feed preview. Counted in runes so multibyte text never gets
// cut mid-character.
const previewLength = 80

// FeedService computes the merged read-only views across resource types
type FeedService interface {
	LatestFeed(ctx context.Context) ([]dto.FeedItem, error)
	UpcomingDeadlines(ctx context.Context) ([]dto.DeadlineItem, error)
}

// feedServiceImpl implements the FeedService interface
type feedServiceImpl struct {
	announcementRepo *repositories.AnnouncementRepository
	materialRepo     *repositories.MaterialRepository
	assignmentRepo   *repositories.AssignmentRepository
	reminderRepo     *repositories.ReminderRepository
}

// NewFeedService creates a new feed service instance
func NewFeedService(
	announcementRepo *repositories.AnnouncementRepository,
	materialRepo *repositories.MaterialRepository,
	assignmentRepo *repositories.AssignmentRepository,
	reminderRepo *repositories.ReminderRepository,
) FeedService {
	return &feedServiceImpl{
		announcementRepo: announcementRepo,
		materialRepo:     materialRepo,
		assignmentRepo:   assignmentRepo,
		reminderRepo:     reminderRepo,
	}
}

// truncatePreview returns the first previewLength runes of s
func truncatePreview(s string) string {
	runes := []rune(s)
	if len(runes) > previewLength {
		return string(runes[:previewLength])
	}
	return s
}

// LatestFeed merges announcements and materials into one list:
// every announcement first, then every material. Items are not
// re-sorted by date across the two groups.
func (s *feedServiceImpl) LatestFeed(ctx context.Context) ([]dto.FeedItem, error) {
	announcements, err := s.announcementRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error building latest feed: %w", err)
	}

	materials, err := s.materialRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error building latest feed: %w", err)
	}

	feed := make([]dto.FeedItem, 0, len(announcements)+len(materials))

	for _, a := range announcements {
		feed = append(feed, dto.FeedItem{
			Type:       dto.FeedItemTypeAnnouncement,
			Title:      a.Title,
			Preview:    truncatePreview(a.Content),
			Subject:    a.SubjectID,
			DatePosted: a.DatePosted,
		})
	}

	for _, m := range materials {
		preview := ""
		if m.Description != nil {
			preview = truncatePreview(*m.Description)
		}
		feed = append(feed, dto.FeedItem{
			Type:       dto.FeedItemTypeMaterial,
			Title:      m.Title,
			Preview:    preview,
			Subject:    m.SubjectID,
			DatePosted: m.DateUploaded,
		})
	}

	return feed, nil
}

// UpcomingDeadlines merges assignments and reminders: every assignment
// first, then every reminder. Despite the name, nothing filters out
// past dates; due_date and remind_at are opaque strings.
func (s *feedServiceImpl) UpcomingDeadlines(ctx context.Context) ([]dto.DeadlineItem, error) {
	assignments, err := s.assignmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error building deadlines feed: %w", err)
	}

	reminders, err := s.reminderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error building deadlines feed: %w", err)
	}

	deadlines := make([]dto.DeadlineItem, 0, len(assignments)+len(reminders))

	for _, a := range assignments {
		deadlines = append(deadlines, dto.DeadlineItem{
			Type:    dto.DeadlineTypeAssignment,
			Title:   a.Title,
			DueDate: a.DueDate,
			Subject: a.SubjectID,
		})
	}

	for _, r := range reminders {
		deadlines = append(deadlines, dto.DeadlineItem{
			Type:    dto.DeadlineTypeReminder,
			Title:   r.Message,
			DueDate: r.RemindAt,
			Subject: r.SubjectID,
		})
	}

	return deadlines, nil
}
