package handlers

import (
	"fmt"
	"net/http"
	"strings"

	response "requisiciones_api/internal/adapter/http/dto/response"
	"requisiciones_api/internal/domain/entities"
	"requisiciones_api/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DocumentHandler serves the official forms (FO-CON-01/03/05/06) of a draft.
type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

func (h *DocumentHandler) ListKinds(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromDocumentKinds(h.usecase.ListKinds()))
}

func (h *DocumentHandler) ExportDocument(c *gin.Context) {
	kind := entities.DocumentKind(strings.ToLower(strings.TrimSpace(c.Param("kind"))))

	doc, err := h.usecase.Export(c.Request.Context(), c.Param("id"), kind)
	if err != nil {
		abortWithError(c, mapDraftError(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s%s"`, doc.Name, extensionFor(doc.ContentType)))
	c.Header("X-Document-Code", doc.Code)
	c.Data(http.StatusOK, doc.ContentType, doc.Content)
}

func extensionFor(contentType string) string {
	ct := strings.ToLower(contentType)
	switch {
	case strings.HasPrefix(ct, "application/pdf"):
		return ".pdf"
	case strings.HasPrefix(ct, "text/html"):
		return ".html"
	case strings.Contains(ct, "wordprocessingml"):
		return ".docx"
	case strings.Contains(ct, "spreadsheetml"):
		return ".xlsx"
	default:
		return ""
	}
}
