package routes

import (
	"requisiciones_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDrafts    = "/drafts"
	PathCatalog   = "/catalog"
	PathDocuments = "/documents"
)

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, documentHandler *handlers.DocumentHandler) {
	rg.GET(PathCatalog+"/delivery-sites", catalogHandler.ListDeliverySites)
	rg.GET(PathDocuments+"/kinds", documentHandler.ListKinds)
}

func addDraftRoutes(
	rg *gin.RouterGroup,
	draftHandler *handlers.DraftHandler,
	documentHandler *handlers.DocumentHandler,
	submissionHandler *handlers.SubmissionHandler,
) {
	drafts := rg.Group(PathDrafts)
	{
		drafts.POST("", draftHandler.CreateDraft)
		drafts.GET("/:id", draftHandler.GetDraft)
		drafts.PUT("/:id", draftHandler.SaveDraft)
		drafts.DELETE("/:id", draftHandler.DiscardDraft)

		// Capture steps.
		drafts.PATCH("/:id/general-data", draftHandler.UpdateGeneralData)
		drafts.PUT("/:id/line-items", draftHandler.ReplaceLineItems)
		drafts.PUT("/:id/research", draftHandler.UpdateResearch)
		drafts.PUT("/:id/justification", draftHandler.UpdateJustification)

		drafts.GET("/:id/totals", draftHandler.GetTotals)
		drafts.GET("/:id/preview", draftHandler.GetPreview)
		drafts.POST("/:id/documents/:kind", documentHandler.ExportDocument)

		drafts.GET("/:id/submission", submissionHandler.PreviewSubmission)
		drafts.POST("/:id/submission", submissionHandler.Submit)
	}
}
