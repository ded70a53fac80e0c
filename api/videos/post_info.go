package videos

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/summarizer-api/api/types"
)

// PostInfo lists the transcripts available for a video
// @Summary      Get video transcript info
// @Description  Resolve a video URL or ID and list its available caption tracks without summarizing
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        request body types.VideoInfoRequest true "Video URL or ID"
// @Success      200 {object} types.VideoInfoResponse "Available transcripts"
// @Failure      400 {object} types.ErrorResponse "Bad request - unresolvable identifier"
// @Failure      502 {object} types.ErrorResponse "Upstream fetch failed"
// @Router       /api/v1/videos/info [post]
func PostInfo(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.VideoInfoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.NewErrorResponse("Invalid request format"))
			return
		}
		if deps.SummarizeService == nil {
			c.JSON(http.StatusServiceUnavailable, types.NewErrorResponse("Summarization service unavailable"))
			return
		}

		info, err := deps.SummarizeService.VideoInfo(c.Request.Context(), req.URL)
		if err != nil {
			log.Printf("[WARN] VideoInfo failed for %s: %v", req.URL, err)
			status := http.StatusBadGateway
			if isResolveError(err) {
				status = http.StatusBadRequest
			}
			c.JSON(status, types.NewErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, types.VideoInfoResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Transcripts listed"},
			Info:         info,
		})
	}
}

func isResolveError(err error) bool {
	if err == nil {
		return false
	}
	return strings.HasPrefix(err.Error(), "could not resolve identifier")
}
