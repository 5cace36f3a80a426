package services

import (
	"context"
	"fmt"

	"github.com/studysphere/backend/internal/app/models"
	"github.com/studysphere/backend/internal/app/repositories"
)

// ReminderService defines the interface for reminder-related operations
type ReminderService interface {
	CreateReminder(ctx context.Context, subjectID int64, message, remindAt string) (*models.Reminder, error)
	GetAllReminders(ctx context.Context) ([]*models.Reminder, error)
	GetRemindersBySubject(ctx context.Context, subjectID int64) ([]*models.Reminder, error)
	DeleteReminder(ctx context.Context, id int64) error
}

// reminderServiceImpl implements the ReminderService interface
type reminderServiceImpl struct {
	reminderRepo *repositories.ReminderRepository
}

// NewReminderService creates a new reminder service instance
func NewReminderService(reminderRepo *repositories.ReminderRepository) ReminderService {
	return &reminderServiceImpl{
		reminderRepo: reminderRepo,
	}
}

// CreateReminder persists a new reminder; remind_at is stored verbatim
func (s *reminderServiceImpl) CreateReminder(ctx context.Context, subjectID int64, message, remindAt string) (*models.Reminder, error) {
	reminder := &models.Reminder{
		SubjectID: subjectID,
		Message:   message,
		RemindAt:  remindAt,
	}

	id, err := s.reminderRepo.Create(ctx, reminder)
	if err != nil {
		return nil, fmt.Errorf("error creating reminder: %w", err)
	}

	reminder.ID = id
	return reminder, nil
}

// GetAllReminders retrieves all reminders
func (s *reminderServiceImpl) GetAllReminders(ctx context.Context) ([]*models.Reminder, error) {
	reminders, err := s.reminderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving reminders: %w", err)
	}
	return reminders, nil
}

// GetRemindersBySubject retrieves all reminders under a subject
func (s *reminderServiceImpl) GetRemindersBySubject(ctx context.Context, subjectID int64) ([]*models.Reminder, error) {
	reminders, err := s.reminderRepo.ListBySubject(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving reminders by subject: %w", err)
	}
	return reminders, nil
}

// DeleteReminder deletes a reminder by ID
func (s *reminderServiceImpl) DeleteReminder(ctx context.Context, id int64) error {
	return s.reminderRepo.Delete(ctx, id)
}
