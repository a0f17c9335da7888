package http

import (
	"github.com/gin-gonic/gin"

	"img2cal/pkg/response"
)

// Ingest godoc
// @Summary     Ingest a crawled announcement
// @Description Stores a crawled announcement with its image URLs. Re-ingesting an existing ID is reported as skipped.
// @Tags        Announcement
// @Accept      json
// @Produce     json
// @Param       body body ingestReq true "Announcement data"
// @Success     200 {object} ingestResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/announcements [POST]
func (h *handler) Ingest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processIngestReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Ingest(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Ingest: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newIngestResp(output))
}

// Classify godoc
// @Summary     Run one classification round
// @Description Accumulates OCR evidence up to the requested image count, asks the classifier for a verdict, and persists the result. Returns the next image count when more evidence is needed.
// @Tags        Announcement
// @Accept      json
// @Produce     json
// @Param       id   path string      true  "Announcement ID"
// @Param       body body classifyReq false "Round parameters"
// @Success     200 {object} classifyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/announcements/{id}/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClassifyReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ClassifyRound(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ClassifyRound: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newClassifyResp(output))
}
