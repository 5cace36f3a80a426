package dto

// CreateCommentRequest represents comment creation data
type CreateCommentRequest struct {
	User    string `json:"user" binding:"required"`
	Content string `json:"content" binding:"required"`
}
