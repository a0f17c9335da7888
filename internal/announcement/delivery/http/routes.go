package http

import (
	"github.com/gin-gonic/gin"

	"img2cal/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	announcements := rg.Group("/announcements")
	{
		announcements.POST("", mw.RateLimit(), h.Ingest)
		announcements.POST("/:id/classify", mw.RateLimit(), h.Classify)
	}
}
