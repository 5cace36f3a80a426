package dto

// CreateMaterialRequest represents material creation data.
// Description and FileURL are optional and persist as NULL when omitted.
type CreateMaterialRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	FileURL     *string `json:"file_url"`
}
