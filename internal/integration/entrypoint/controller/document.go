package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budgetbook/backend/internal/application/usecase/document"
	"github.com/budgetbook/backend/internal/integration/entrypoint/dto"
)

// DocumentController handles document-level endpoints.
type DocumentController struct {
	saveUseCase *document.SaveDocumentUseCase
}

// NewDocumentController creates a new document controller instance.
func NewDocumentController(saveUseCase *document.SaveDocumentUseCase) *DocumentController {
	return &DocumentController{saveUseCase: saveUseCase}
}

// Save handles POST /document/save requests.
func (c *DocumentController) Save(ctx *gin.Context) {
	output, err := c.saveUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to save document",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaveDocumentResponse(output))
}
