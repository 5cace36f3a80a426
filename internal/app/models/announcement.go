package models

import "time"

// Announcement represents a post made under a subject
type Announcement struct {
	ID         int64     `json:"id"`
	SubjectID  int64     `json:"subject_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	DatePosted time.Time `json:"date_posted"`
}
