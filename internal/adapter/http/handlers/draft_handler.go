package handlers

import (
	"net/http"

	request "requisiciones_api/internal/adapter/http/dto/request"
	response "requisiciones_api/internal/adapter/http/dto/response"
	"requisiciones_api/internal/pkg/logger"
	"requisiciones_api/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DraftHandler exposes the capture steps of a requisition draft.
type DraftHandler struct {
	usecase usecase.IDraftUseCase
}

func NewDraftHandler(uc usecase.IDraftUseCase) *DraftHandler {
	return &DraftHandler{usecase: uc}
}

func (h *DraftHandler) CreateDraft(c *gin.Context) {
	var payload request.CreateDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidDraftPayload.WithDetail(err.Error()))
		return
	}

	d, err := h.usecase.CreateDraft(c.Request.Context(), payload.ToCommand())
	if err != nil {
		abortWithError(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromDraft(d))
}

func (h *DraftHandler) GetDraft(c *gin.Context) {
	d, err := h.usecase.GetDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(d))
}

func (h *DraftHandler) SaveDraft(c *gin.Context) {
	var payload request.SaveDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidDraftPayload.WithDetail(err.Error()))
		return
	}
	snapshot, err := payload.ToEntity()
	if err != nil {
		abortWithError(c, errInvalidDraftPayload.WithDetail(err.Error()))
		return
	}

	d, err := h.usecase.SaveDraft(c.Request.Context(), c.Param("id"), snapshot)
	if err != nil {
		abortWithError(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(d))
}

func (h *DraftHandler) DiscardDraft(c *gin.Context) {
	if err := h.usecase.DiscardDraft(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, mapDraftError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DraftHandler) UpdateGeneralData(c *gin.Context) {
	var payload request.GeneralDataRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidDraftPayload.WithDetail(err.Error()))
		return
	}
	cmd, err := payload.ToCommand()
	if err != nil {
		abortWithError(c, errInvalidDraftPayload.WithDetail(err.Error()))
		return
	}

	d, err := h.usecase.UpdateGeneralData(c.Request.Context(), c.Param("id"), cmd)
	if err != nil {
		abortWithError(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(d))
}

func (h *DraftHandler) ReplaceLineItems(c *gin.Context) {
	var payload request.LineItemsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidDraftPayload.WithDetail(err.Error()))
		return
	}

	d, err := h.usecase.ReplaceLineItems(c.Request.Context(), c.Param("id"), payload.ToEntities())
	if err != nil {
		abortWithError(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(d))
}

func (h *DraftHandler) UpdateResearch(c *gin.Context) {
	var payload request.ResearchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidDraftPayload.WithDetail(err.Error()))
		return
	}
	cmd, err := payload.ToCommand()
	if err != nil {
		abortWithError(c, errInvalidDraftPayload.WithDetail(err.Error()))
		return
	}

	d, err := h.usecase.UpdateResearch(c.Request.Context(), c.Param("id"), cmd)
	if err != nil {
		abortWithError(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(d))
}

func (h *DraftHandler) UpdateJustification(c *gin.Context) {
	var payload request.JustificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidDraftPayload.WithDetail(err.Error()))
		return
	}

	d, err := h.usecase.UpdateJustification(c.Request.Context(), c.Param("id"), payload.Justification, payload.Attachments)
	if err != nil {
		abortWithError(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(d))
}

func (h *DraftHandler) GetTotals(c *gin.Context) {
	totals, err := h.usecase.Totals(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTotals(totals))
}

// GetPreview answers HTML by default and the summary as JSON with ?format=json.
func (h *DraftHandler) GetPreview(c *gin.Context) {
	p, err := h.usecase.Preview(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, mapDraftError(err))
		return
	}
	if c.Query("format") == "json" {
		c.JSON(http.StatusOK, p.Summary)
		return
	}
	logger.Debugf(c.Request.Context(), "[draft][handler] preview rendered draft_id=%s bytes=%d", c.Param("id"), len(p.HTML))
	c.Data(http.StatusOK, "text/html; charset=utf-8", p.HTML)
}
