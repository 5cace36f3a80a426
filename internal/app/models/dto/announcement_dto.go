package dto

// CreateAnnouncementRequest represents announcement creation data
type CreateAnnouncementRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// UpdateAnnouncementRequest represents announcement update data.
// Only title and content are mutable; date_posted and subject_id are not.
type UpdateAnnouncementRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}
