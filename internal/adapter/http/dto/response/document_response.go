package response

import (
	"time"

	"kyndly_ichra/internal/domain/entities"
	"kyndly_ichra/internal/usecase"
)

type DocumentResponse struct {
	ID           string    `json:"id"`
	EmployerID   string    `json:"employerId"`
	Title        string    `json:"title"`
	DocumentType string    `json:"documentType,omitempty"`
	FileKey      string    `json:"fileKey"`
	MimeType     string    `json:"mimeType,omitempty"`
	FileSize     int64     `json:"fileSize"`
	UploadedBy   string    `json:"uploadedBy,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromDocument(d entities.Document) DocumentResponse {
	return DocumentResponse{
		ID:           d.ID,
		EmployerID:   d.EmployerID,
		Title:        d.Title,
		DocumentType: d.DocumentType,
		FileKey:      d.FileKey,
		MimeType:     d.MimeType,
		FileSize:     d.FileSize,
		UploadedBy:   d.UploadedBy,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func FromDocuments(docs []entities.Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, FromDocument(d))
	}
	return out
}

type DocumentDetailResponse struct {
	DocumentResponse
	FileURL string `json:"fileUrl"`
}

func FromDocumentDetail(d usecase.DocumentDetail) DocumentDetailResponse {
	return DocumentDetailResponse{
		DocumentResponse: FromDocument(d.Document),
		FileURL:          d.FileURL,
	}
}

type DocumentDeletedResponse struct {
	RecordDeleted bool   `json:"recordDeleted"`
	FileKeyFailed string `json:"fileKeyFailed,omitempty"`
}

func FromDocumentDeleteResult(r usecase.DocumentDeleteResult) DocumentDeletedResponse {
	return DocumentDeletedResponse{
		RecordDeleted: r.RecordDeleted,
		FileKeyFailed: r.FileKeyFailed,
	}
}
