package dto

import "time"

// FeedItemTypeAnnouncement and FeedItemTypeMaterial discriminate items
// in the latest feed.
const (
	FeedItemTypeAnnouncement = "announcement"
	FeedItemTypeMaterial     = "material"
)

// Deadline item types
const (
	DeadlineTypeAssignment = "assignment"
	DeadlineTypeReminder   = "reminder"
)

// FeedItem is a single entry of the latest feed: an announcement or a
// material projected to a common display shape.
type FeedItem struct {
	Type       string    `json:"type"`
	Title      string    `json:"title"`
	Preview    string    `json:"preview"`
	Subject    int64     `json:"subject"`
	DatePosted time.Time `json:"date_posted"`
}

// DeadlineItem is a single entry of the upcoming-deadlines feed. For
// reminders the message maps to Title and remind_at maps to DueDate.
type DeadlineItem struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	DueDate string `json:"due_date"`
	Subject int64  `json:"subject"`
}
