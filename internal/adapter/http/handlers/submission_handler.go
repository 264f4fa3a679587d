package handlers

import (
	"net/http"

	response "requisiciones_api/internal/adapter/http/dto/response"
	"requisiciones_api/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SubmissionHandler sends finished drafts to the requisitions backend.
type SubmissionHandler struct {
	usecase usecase.ISubmissionUseCase
}

func NewSubmissionHandler(uc usecase.ISubmissionUseCase) *SubmissionHandler {
	return &SubmissionHandler{usecase: uc}
}

// PreviewSubmission returns the body that Submit would send, without sending it.
func (h *SubmissionHandler) PreviewSubmission(c *gin.Context) {
	payload, err := h.usecase.PreviewPayload(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusOK, payload)
}

func (h *SubmissionHandler) Submit(c *gin.Context) {
	res, err := h.usecase.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSubmission(res))
}
