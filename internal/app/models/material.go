package models

import "time"

// Material represents course material shared under a subject.
// Description and FileURL are optional and stay null when not provided.
type Material struct {
	ID           int64     `json:"id"`
	SubjectID    int64     `json:"subject_id"`
	Title        string    `json:"title"`
	Description  *string   `json:"description"`
	FileURL      *string   `json:"file_url"`
	DateUploaded time.Time `json:"date_uploaded"`
}
