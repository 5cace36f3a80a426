package models

import "time"

// Comment represents a user comment under an announcement
type Comment struct {
	ID             int64     `json:"id"`
	AnnouncementID int64     `json:"announcement_id"`
	User           string    `json:"user"`
	Content        string    `json:"content"`
	DatePosted     time.Time `json:"date_posted"`
}
