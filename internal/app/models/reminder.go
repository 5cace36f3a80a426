package models

// Reminder represents a dated note attached to a subject.
// RemindAt is an opaque string, same as Assignment.DueDate.
type Reminder struct {
	ID        int64  `json:"id"`
	SubjectID int64  `json:"subject_id"`
	Message   string `json:"message"`
	RemindAt  string `json:"remind_at"`
}
