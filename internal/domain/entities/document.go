package entities

import "time"

// Document is a general-purpose attachment owned by exactly one Employer,
// distinct from the two quote-specific files referenced by Quote. FileKey
// stores the S3 partition key, never file bytes.
type Document struct {
	ID           string    `json:"id"`
	EmployerID   string    `json:"employerId"`
	Title        string    `json:"title"`
	DocumentType string    `json:"documentType"`
	FileKey      string    `json:"fileKey"`
	MimeType     string    `json:"mimeType"`
	FileSize     int64     `json:"fileSize"`
	UploadedBy   string    `json:"uploadedBy,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
