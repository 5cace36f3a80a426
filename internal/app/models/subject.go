package models

// Subject represents a course subject taught by a single teacher
type Subject struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Teacher string `json:"teacher"`
}
