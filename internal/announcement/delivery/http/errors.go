package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"img2cal/internal/announcement"
	"img2cal/pkg/response"
)

// respondError translates domain errors into HTTP responses. Classifier
// contract violations are internal failures as far as the caller cares.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, announcement.ErrNotFound):
		response.NotFound(c, err)
	case errors.Is(err, announcement.ErrMissingID):
		response.Error(c, err)
	default:
		response.InternalError(c)
	}
}
