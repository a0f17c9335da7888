package http

import (
	"github.com/gin-gonic/gin"

	"img2cal/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	feeds := rg.Group("/feeds")
	{
		feeds.POST("/generate", mw.RateLimit(), h.Generate)
	}
}
