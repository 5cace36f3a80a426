package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/studysphere/backend/internal/pkg/apperrors"
)

func TestAnnouncementService_CreateStampsPostedDate(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewAnnouncementService(repos.AnnouncementRepository)
	ctx := context.Background()

	before := time.Now().UTC()
	announcement, err := svc.CreateAnnouncement(ctx, 1, "Welcome", "First lecture is Monday.")
	after := time.Now().UTC()
	assert.NoError(t, err)

	assert.False(t, announcement.DatePosted.Before(before))
	assert.False(t, announcement.DatePosted.After(after))

	stored, err := svc.GetAnnouncementByID(ctx, announcement.ID)
	assert.NoError(t, err)
	assert.True(t, stored.DatePosted.Equal(announcement.DatePosted))
}

func TestAnnouncementService_CreateDoesNotCheckSubject(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewAnnouncementService(repos.AnnouncementRepository)
	ctx := context.Background()

	// subject 999 does not exist; the record is stored anyway
	announcement, err := svc.CreateAnnouncement(ctx, 999, "Orphan", "No parent subject.")
	assert.NoError(t, err)
	assert.Equal(t, int64(999), announcement.SubjectID)
}

func TestAnnouncementService_UpdatePreservesPostedDateAndSubject(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewAnnouncementService(repos.AnnouncementRepository)
	ctx := context.Background()

	created, err := svc.CreateAnnouncement(ctx, 5, "Draft", "draft body")
	assert.NoError(t, err)

	updated, err := svc.UpdateAnnouncement(ctx, created.ID, "Final", "final body")
	assert.NoError(t, err)
	assert.Equal(t, "Final", updated.Title)
	assert.Equal(t, "final body", updated.Content)
	assert.Equal(t, int64(5), updated.SubjectID)
	assert.True(t, updated.DatePosted.Equal(created.DatePosted))
}

func TestAnnouncementService_UpdateMissing(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewAnnouncementService(repos.AnnouncementRepository)

	_, err := svc.UpdateAnnouncement(context.Background(), 404, "t", "c")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
