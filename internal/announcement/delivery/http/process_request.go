package http

import (
	"github.com/gin-gonic/gin"

	"img2cal/internal/announcement"
)

// processIngestReq binds and validates the ingest request body.
func (h *handler) processIngestReq(c *gin.Context) (ingestReq, error) {
	var req ingestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processClassifyReq binds the optional round parameters and the URI param.
func (h *handler) processClassifyReq(c *gin.Context) (classifyReq, error) {
	var req classifyReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, announcement.ErrMissingID
	}
	return req, req.validate()
}
