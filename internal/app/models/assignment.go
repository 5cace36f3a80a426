package models

// Assignment represents graded work due under a subject.
// DueDate is an opaque string; the store imposes no date format.
type Assignment struct {
	ID           int64   `json:"id"`
	SubjectID    int64   `json:"subject_id"`
	Title        string  `json:"title"`
	Instructions *string `json:"instructions"`
	DueDate      string  `json:"due_date"`
}
