package repositories

import (
	"database/sql"
	"fmt"
	"time"
)

// storedTimeFormat keeps a fixed-width fraction so that lexicographic
// order of stored values matches chronological order.
const storedTimeFormat = "2006-01-02 15:04:05.000000000"

// formatTime renders a timestamp for storage, always in UTC
func formatTime(t time.Time) string {
	return t.UTC().Format(storedTimeFormat)
}

// parseTime reads a stored timestamp back as UTC
func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(storedTimeFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stored timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}

// Repositories bundles every data access object over the shared handle
type Repositories struct {
	SubjectRepository      *SubjectRepository
	AnnouncementRepository *AnnouncementRepository
	CommentRepository      *CommentRepository
	MaterialRepository     *MaterialRepository
	AssignmentRepository   *AssignmentRepository
	ReminderRepository     *ReminderRepository
}

// NewRepositories creates all repositories against one database handle
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		SubjectRepository:      NewSubjectRepository(db),
		AnnouncementRepository: NewAnnouncementRepository(db),
		CommentRepository:      NewCommentRepository(db),
		MaterialRepository:     NewMaterialRepository(db),
		AssignmentRepository:   NewAssignmentRepository(db),
		ReminderRepository:     NewReminderRepository(db),
	}
}
