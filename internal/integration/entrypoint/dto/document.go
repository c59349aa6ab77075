package dto

import (
	"time"

	"github.com/budgetbook/backend/internal/application/usecase/document"
)

// SaveDocumentResponse represents the result of an explicit document save.
type SaveDocumentResponse struct {
	Status  string    `json:"status"`
	SavedAt time.Time `json:"saved_at"`
}

// ToSaveDocumentResponse converts save output to a response DTO.
func ToSaveDocumentResponse(output *document.SaveDocumentOutput) SaveDocumentResponse {
	return SaveDocumentResponse{
		Status:  "saved",
		SavedAt: output.SavedAt,
	}
}
