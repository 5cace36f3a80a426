package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/studysphere/backend/internal/app/models"
	"github.com/studysphere/backend/internal/pkg/apperrors"
)

func TestAssignmentRepository_CreateAndList(t *testing.T) {
	repo := NewAssignmentRepository(newTestDB(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, &models.Assignment{
		SubjectID: 1,
		Title:     "Problem set 1",
		DueDate:   "2024-10-01",
	})
	assert.NoError(t, err)

	_, err = repo.Create(ctx, &models.Assignment{
		SubjectID:    2,
		Title:        "Essay",
		Instructions: strPtr("At least 2000 words."),
		DueDate:      "next friday",
	})
	assert.NoError(t, err)

	assignments, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, assignments, 2)
	assert.Equal(t, id, assignments[0].ID)
	assert.Nil(t, assignments[0].Instructions)
	assert.Equal(t, "2024-10-01", assignments[0].DueDate)
	assert.Equal(t, "At least 2000 words.", *assignments[1].Instructions)
	assert.Equal(t, "next friday", assignments[1].DueDate)
}

func TestAssignmentRepository_ListBySubject(t *testing.T) {
	repo := NewAssignmentRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.Assignment{SubjectID: 1, Title: "a", DueDate: "d"})
	assert.NoError(t, err)
	_, err = repo.Create(ctx, &models.Assignment{SubjectID: 2, Title: "b", DueDate: "d"})
	assert.NoError(t, err)

	assignments, err := repo.ListBySubject(ctx, 2)
	assert.NoError(t, err)
	assert.Len(t, assignments, 1)
	assert.Equal(t, "b", assignments[0].Title)
}

func TestAssignmentRepository_Delete(t *testing.T) {
	repo := NewAssignmentRepository(newTestDB(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, &models.Assignment{SubjectID: 1, Title: "tmp", DueDate: "d"})
	assert.NoError(t, err)

	assert.NoError(t, repo.Delete(ctx, id))
	assert.ErrorIs(t, repo.Delete(ctx, id), apperrors.ErrResourceNotFound)
}
