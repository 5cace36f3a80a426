package dto

// CreateAssignmentRequest represents assignment creation data.
// DueDate is accepted as-is; no date format is enforced.
type CreateAssignmentRequest struct {
	Title        string  `json:"title" binding:"required"`
	Instructions *string `json:"instructions"`
	DueDate      string  `json:"due_date" binding:"required"`
}
