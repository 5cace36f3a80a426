package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/studysphere/backend/internal/app/models"
	"github.com/studysphere/backend/internal/app/models/dto"
)

func TestFeedService_LatestFeed_AnnouncementsBeforeMaterials(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewFeedService(repos.AnnouncementRepository, repos.MaterialRepository, repos.AssignmentRepository, repos.ReminderRepository)
	ctx := context.Background()

	base := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)

	// the material is newer than both announcements but still comes last
	_, err := repos.AnnouncementRepository.Create(ctx, &models.Announcement{
		SubjectID: 1, Title: "older", Content: "older content", DatePosted: base,
	})
	assert.NoError(t, err)
	_, err = repos.AnnouncementRepository.Create(ctx, &models.Announcement{
		SubjectID: 1, Title: "newer", Content: "newer content", DatePosted: base.Add(time.Hour),
	})
	assert.NoError(t, err)
	_, err = repos.MaterialRepository.Create(ctx, &models.Material{
		SubjectID: 2, Title: "slides", Description: strPtr("week one slides"), DateUploaded: base.Add(2 * time.Hour),
	})
	assert.NoError(t, err)

	feed, err := svc.LatestFeed(ctx)
	assert.NoError(t, err)
	assert.Len(t, feed, 3)

	assert.Equal(t, dto.FeedItemTypeAnnouncement, feed[0].Type)
	assert.Equal(t, "newer", feed[0].Title)
	assert.Equal(t, dto.FeedItemTypeAnnouncement, feed[1].Type)
	assert.Equal(t, "older", feed[1].Title)
	assert.Equal(t, dto.FeedItemTypeMaterial, feed[2].Type)
	assert.Equal(t, "slides", feed[2].Title)
	assert.Equal(t, "week one slides", feed[2].Preview)
	assert.Equal(t, int64(2), feed[2].Subject)
}

func TestFeedService_LatestFeed_PreviewTruncation(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewFeedService(repos.AnnouncementRepository, repos.MaterialRepository, repos.AssignmentRepository, repos.ReminderRepository)
	ctx := context.Background()

	long := strings.Repeat("ü", 100)
	_, err := repos.AnnouncementRepository.Create(ctx, &models.Announcement{
		SubjectID: 1, Title: "long", Content: long, DatePosted: time.Now().UTC(),
	})
	assert.NoError(t, err)

	feed, err := svc.LatestFeed(ctx)
	assert.NoError(t, err)
	assert.Len(t, feed, 1)
	assert.Equal(t, strings.Repeat("ü", 80), feed[0].Preview)
	assert.Len(t, []rune(feed[0].Preview), 80)
}

func TestFeedService_LatestFeed_NilDescriptionBecomesEmptyPreview(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewFeedService(repos.AnnouncementRepository, repos.MaterialRepository, repos.AssignmentRepository, repos.ReminderRepository)
	ctx := context.Background()

	_, err := repos.MaterialRepository.Create(ctx, &models.Material{
		SubjectID: 1, Title: "bare upload", DateUploaded: time.Now().UTC(),
	})
	assert.NoError(t, err)

	feed, err := svc.LatestFeed(ctx)
	assert.NoError(t, err)
	assert.Len(t, feed, 1)
	assert.Equal(t, "", feed[0].Preview)
}

func TestFeedService_LatestFeed_Empty(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewFeedService(repos.AnnouncementRepository, repos.MaterialRepository, repos.AssignmentRepository, repos.ReminderRepository)

	feed, err := svc.LatestFeed(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, feed)
	assert.Empty(t, feed)
}

func TestFeedService_UpcomingDeadlines_AssignmentsBeforeReminders(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewFeedService(repos.AnnouncementRepository, repos.MaterialRepository, repos.AssignmentRepository, repos.ReminderRepository)
	ctx := context.Background()

	_, err := repos.ReminderRepository.Create(ctx, &models.Reminder{
		SubjectID: 1, Message: "Bring calculator", RemindAt: "2020-01-01",
	})
	assert.NoError(t, err)
	_, err = repos.AssignmentRepository.Create(ctx, &models.Assignment{
		SubjectID: 2, Title: "Problem set", DueDate: "someday",
	})
	assert.NoError(t, err)

	deadlines, err := svc.UpcomingDeadlines(ctx)
	assert.NoError(t, err)
	assert.Len(t, deadlines, 2)

	assert.Equal(t, dto.DeadlineTypeAssignment, deadlines[0].Type)
	assert.Equal(t, "Problem set", deadlines[0].Title)
	assert.Equal(t, "someday", deadlines[0].DueDate)
	assert.Equal(t, int64(2), deadlines[0].Subject)

	// past dates are not filtered out; remind_at is carried verbatim
	assert.Equal(t, dto.DeadlineTypeReminder, deadlines[1].Type)
	assert.Equal(t, "Bring calculator", deadlines[1].Title)
	assert.Equal(t, "2020-01-01", deadlines[1].DueDate)
}
