package routes

import (
	"net/http"
	"time"

	"requisiciones_api/internal/pkg/logger"
	"requisiciones_api/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

var errPanicRecovered = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)

func setMiddlewares(router *gin.Engine) {
	router.Use(requestIDMiddleware())
	router.Use(accessLogMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Errorf(c.Request.Context(), "[http][recovery] panic path=%s recovered=%v", c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(errPanicRecovered.HTTPStatus, errPanicRecovered.ToHTTPError())
	}))
}

// requestIDMiddleware reuses the caller's X-Request-ID or generates one, and
// stores it in the request context for logging and outgoing calls.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(HeaderRequestID, id)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

func accessLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		ctx := c.Request.Context()
		switch {
		case status >= http.StatusInternalServerError:
			logger.Errorf(ctx, "[http][access] method=%s path=%s status=%d latency=%s", c.Request.Method, c.FullPath(), status, time.Since(start))
		case status >= http.StatusBadRequest:
			logger.Warnf(ctx, "[http][access] method=%s path=%s status=%d latency=%s", c.Request.Method, c.FullPath(), status, time.Since(start))
		default:
			logger.Infof(ctx, "[http][access] method=%s path=%s status=%d latency=%s", c.Request.Method, c.FullPath(), status, time.Since(start))
		}
	}
}
