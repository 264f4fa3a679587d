package routes

import (
	_ "requisiciones_api/docs"
	"requisiciones_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Drafts      *handlers.DraftHandler
	Documents   *handlers.DocumentHandler
	Submissions *handlers.SubmissionHandler
	Catalog     *handlers.CatalogHandler
}

// NewRouter builds the gin engine with middlewares, docs and the /v1 API.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	addPingRoutes(router)

	v1 := router.Group("/v1")
	addCatalogRoutes(v1, h.Catalog, h.Documents)
	addDraftRoutes(v1, h.Drafts, h.Documents, h.Submissions)

	return router
}
