package handlers

import (
	"net/http"

	"requisiciones_api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListDeliverySites(c *gin.Context) {
	sites, err := h.usecase.ListDeliverySites(c.Request.Context())
	if err != nil {
		abortWithError(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusOK, sites)
}
