package http

import (
	"github.com/gin-gonic/gin"

	"img2cal/internal/feed"
	"img2cal/pkg/response"
)

// Generate godoc
// @Summary     Generate calendar feeds
// @Description Builds one ICS calendar per event category from all approved announcements and writes them to the configured sink.
// @Tags        Feed
// @Produce     json
// @Success     200 {object} generateResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/feeds/generate [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Generate(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, h.newGenerateResp(output))
}

type feedResp struct {
	EventType  string `json:"event_type"`
	Filename   string `json:"filename"`
	EventCount int    `json:"event_count"`
}

type generateResp struct {
	Feeds   []feedResp `json:"feeds"`
	Skipped int        `json:"skipped"`
}

func (h *handler) newGenerateResp(out feed.GenerateOutput) generateResp {
	feeds := make([]feedResp, len(out.Feeds))
	for i, f := range out.Feeds {
		feeds[i] = feedResp{
			EventType:  string(f.EventType),
			Filename:   f.Filename,
			EventCount: f.EventCount,
		}
	}
	return generateResp{
		Feeds:   feeds,
		Skipped: out.Skipped,
	}
}
