package dto

// CreateReminderRequest represents reminder creation data
type CreateReminderRequest struct {
	Message  string `json:"message" binding:"required"`
	RemindAt string `json:"remind_at" binding:"required"`
}
