package services

import (
	"context"
	"fmt"

	"github.com/studysphere/backend/internal/app/models"
	"github.com/studysphere/backend/internal/app/repositories"
)

// AssignmentService defines the interface for assignment-related operations
type AssignmentService interface {
	CreateAssignment(ctx context.Context, subjectID int64, title string, instructions *string, dueDate string) (*models.Assignment, error)
	GetAllAssignments(ctx context.Context) ([]*models.Assignment, error)
	GetAssignmentsBySubject(ctx context.Context, subjectID int64) ([]*models.Assignment, error)
	DeleteAssignment(ctx context.Context, id int64) error
}

// assignmentServiceImpl implements the AssignmentService interface
type assignmentServiceImpl struct {
	assignmentRepo *repositories.AssignmentRepository
}

// NewAssignmentService creates a new assignment service instance
func NewAssignmentService(assignmentRepo *repositories.AssignmentRepository) AssignmentService {
	return &assignmentServiceImpl{
		assignmentRepo: assignmentRepo,
	}
}

// CreateAssignment persists a new assignment. The due date is stored
// verbatim; nothing checks that it parses as a date.
func (s *assignmentServiceImpl) CreateAssignment(ctx context.Context, subjectID int64, title string, instructions *string, dueDate string) (*models.Assignment, error) {
	assignment := &models.Assignment{
		SubjectID:    subjectID,
		Title:        title,
		Instructions: instructions,
		DueDate:      dueDate,
	}

	id, err := s.assignmentRepo.Create(ctx, assignment)
	if err != nil {
		return nil, fmt.Errorf("error creating assignment: %w", err)
	}

	assignment.ID = id
	return assignment, nil
}

// GetAllAssignments retrieves all assignments
func (s *assignmentServiceImpl) GetAllAssignments(ctx context.Context) ([]*models.Assignment, error) {
	assignments, err := s.assignmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving assignments: %w", err)
	}
	return assignments, nil
}

// GetAssignmentsBySubject retrieves all assignments under a subject
func (s *assignmentServiceImpl) GetAssignmentsBySubject(ctx context.Context, subjectID int64) ([]*models.Assignment, error) {
	assignments, err := s.assignmentRepo.ListBySubject(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving assignments by subject: %w", err)
	}
	return assignments, nil
}

// DeleteAssignment deletes an assignment by ID
func (s *assignmentServiceImpl) DeleteAssignment(ctx context.Context, id int64) error {
	return s.assignmentRepo.Delete(ctx, id)
}
