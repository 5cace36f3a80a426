package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/studysphere/backend/internal/app/models"
)

func TestCommentRepository_CreateAndListByAnnouncement(t *testing.T) {
	repo := NewCommentRepository(newTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	comments, err := repo.ListByAnnouncement(ctx, 1)
	assert.NoError(t, err)
	assert.NotNil(t, comments)
	assert.Empty(t, comments)

	_, err = repo.Create(ctx, &models.Comment{AnnouncementID: 1, User: "ayse", Content: "thanks!", DatePosted: now})
	assert.NoError(t, err)
	_, err = repo.Create(ctx, &models.Comment{AnnouncementID: 2, User: "mehmet", Content: "elsewhere", DatePosted: now})
	assert.NoError(t, err)
	_, err = repo.Create(ctx, &models.Comment{AnnouncementID: 1, User: "zeynep", Content: "noted", DatePosted: now})
	assert.NoError(t, err)

	comments, err = repo.ListByAnnouncement(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, comments, 2)
	assert.Equal(t, "ayse", comments[0].User)
	assert.Equal(t, "zeynep", comments[1].User)
	assert.True(t, comments[0].DatePosted.Equal(now))
}
