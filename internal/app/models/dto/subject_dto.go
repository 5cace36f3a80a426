package dto

// CreateSubjectRequest represents subject creation data
type CreateSubjectRequest struct {
	Name    string `json:"name" binding:"required"`
	Teacher string `json:"teacher" binding:"required"`
}

// UpdateSubjectRequest represents subject update data.
// Both fields are overwritten; there is no partial update.
type UpdateSubjectRequest struct {
	Name    string `json:"name" binding:"required"`
	Teacher string `json:"teacher" binding:"required"`
}
