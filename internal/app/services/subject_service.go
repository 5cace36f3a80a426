package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/studysphere/backend/internal/app/models"
	"github.com/studysphere/backend/internal/app/repositories"
	"github.com/studysphere/backend/internal/pkg/apperrors"
)

// SubjectService defines the interface for subject-related operations
type SubjectService interface {
	CreateSubject(ctx context.Context, name, teacher string) (*models.Subject, error)
	GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error)
	GetAllSubjects(ctx context.Context) ([]*models.Subject, error)
	UpdateSubject(ctx context.Context, id int64, name, teacher string) (*models.Subject, error)
	DeleteSubject(ctx context.Context, id int64) error
}

// subjectServiceImpl implements the SubjectService interface
type subjectServiceImpl struct {
	subjectRepo *repositories.SubjectRepository
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(subjectRepo *repositories.SubjectRepository) SubjectService {
	return &subjectServiceImpl{
		subjectRepo: subjectRepo,
	}
}

// validateSubjectFields trims both fields and rejects empty values
func validateSubjectFields(name, teacher string) (string, string, error) {
	name = strings.TrimSpace(name)
	teacher = strings.TrimSpace(teacher)
	if name == "" || teacher == "" {
		return "", "", apperrors.NewValidationError("Both 'name' and 'teacher' are required and cannot be empty")
	}
	return name, teacher, nil
}

// CreateSubject validates and persists a new subject
func (s *subjectServiceImpl) CreateSubject(ctx context.Context, name, teacher string) (*models.Subject, error) {
	name, teacher, err := validateSubjectFields(name, teacher)
	if err != nil {
		return nil, err
	}

	subject := &models.Subject{Name: name, Teacher: teacher}
	id, err := s.subjectRepo.Create(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("error creating subject: %w", err)
	}

	subject.ID = id
	return subject, nil
}

// GetSubjectByID retrieves a subject by ID
func (s *subjectServiceImpl) GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error) {
	subject, err := s.subjectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return subject, nil
}

// GetAllSubjects retrieves all subjects
func (s *subjectServiceImpl) GetAllSubjects(ctx context.Context) ([]*models.Subject, error) {
	subjects, err := s.subjectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving subjects: %w", err)
	}
	return subjects, nil
}

// UpdateSubject overwrites both fields of an existing subject
func (s *subjectServiceImpl) UpdateSubject(ctx context.Context, id int64, name, teacher string) (*models.Subject, error) {
	name, teacher, err := validateSubjectFields(name, teacher)
	if err != nil {
		return nil, err
	}

	subject := &models.Subject{ID: id, Name: name, Teacher: teacher}
	if err := s.subjectRepo.Update(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

// DeleteSubject deletes a subject by ID. Child records stay behind.
func (s *subjectServiceImpl) DeleteSubject(ctx context.Context, id int64) error {
	return s.subjectRepo.Delete(ctx, id)
}
