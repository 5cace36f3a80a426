package services

import (
	"context"
	"fmt"
	"time"

	"github.com/studysphere/backend/internal/app/models"
	"github.com/studysphere/backend/internal/app/repositories"
)

// MaterialService defines the interface for material-related operations
type MaterialService interface {
	CreateMaterial(ctx context.Context, subjectID int64, title string, description, fileURL *string) (*models.Material, error)
	GetAllMaterials(ctx context.Context) ([]*models.Material, error)
	GetMaterialsBySubject(ctx context.Context, subjectID int64) ([]*models.Material, error)
	DeleteMaterial(ctx context.Context, id int64) error
}

// materialServiceImpl implements the MaterialService interface
type materialServiceImpl struct {
	materialRepo *repositories.MaterialRepository
}

// NewMaterialService creates a new material service instance
func NewMaterialService(materialRepo *repositories.MaterialRepository) MaterialService {
	return &materialServiceImpl{
		materialRepo: materialRepo,
	}
}

// CreateMaterial stamps the upload time and persists the record
func (s *materialServiceImpl) CreateMaterial(ctx context.Context, subjectID int64, title string, description, fileURL *string) (*models.Material, error) {
	material := &models.Material{
		SubjectID:    subjectID,
		Title:        title,
		Description:  description,
		FileURL:      fileURL,
		DateUploaded: time.Now().UTC(),
	}

	id, err := s.materialRepo.Create(ctx, material)
	if err != nil {
		return nil, fmt.Errorf("error creating material: %w", err)
	}

	material.ID = id
	return material, nil
}

// GetAllMaterials retrieves all materials, newest first
func (s *materialServiceImpl) GetAllMaterials(ctx context.Context) ([]*models.Material, error) {
	materials, err := s.materialRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving materials: %w", err)
	}
	return materials, nil
}

// GetMaterialsBySubject retrieves all materials under a subject
func (s *materialServiceImpl) GetMaterialsBySubject(ctx context.Context, subjectID int64) ([]*models.Material, error) {
	materials, err := s.materialRepo.ListBySubject(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving materials by subject: %w", err)
	}
	return materials, nil
}

// DeleteMaterial deletes a material by ID
func (s *materialServiceImpl) DeleteMaterial(ctx context.Context, id int64) error {
	return s.materialRepo.Delete(ctx, id)
}
