package videos

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/summarizer-api/api/types"
	"github.com/killallgit/summarizer-api/internal/services/summarize"
	"github.com/killallgit/summarizer-api/pkg/gemini"
)

// PostSummarize starts an asynchronous summarization job
// @Summary      Summarize a video asynchronously
// @Description  Queue a summarization pipeline for the video and return a job that can be polled or watched over the progress websocket
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        request body types.SummarizeRequest true "Summarization parameters"
// @Success      202 {object} types.JobResponse "Job queued"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid parameters"
// @Failure      503 {object} types.ErrorResponse "Summarization service unavailable"
// @Router       /api/v1/videos/summarize [post]
func PostSummarize(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindSummarizeRequest(c)
		if !ok {
			return
		}
		if deps.JobManager == nil {
			c.JSON(http.StatusServiceUnavailable, types.NewErrorResponse("Summarization service unavailable"))
			return
		}

		log.Printf("[DEBUG] PostSummarize queueing job for URL: %s", req.URL)

		pipelineReq := toPipelineRequest(req)
		pipelineReq.Persist = true

		// The run outlives this request, so it gets its own context.
		job := deps.JobManager.Start(context.Background(), pipelineReq)

		c.JSON(http.StatusAccepted, types.JobResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusQueued, Message: "Summarization job queued"},
			Job:          job,
		})
	}
}

// bindSummarizeRequest parses and validates the request body.
func bindSummarizeRequest(c *gin.Context) (types.SummarizeRequest, bool) {
	var req types.SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[ERROR] Invalid summarize request: %v", err)
		c.JSON(http.StatusBadRequest, types.NewErrorResponse("Invalid request format"))
		return req, false
	}
	if req.SummaryType != "" && !gemini.ValidStyle(req.SummaryType) {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse("Invalid summary type"))
		return req, false
	}
	if req.ChunkDuration < 0 {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse("Chunk duration must be positive"))
		return req, false
	}
	return req, true
}

func toPipelineRequest(req types.SummarizeRequest) summarize.Request {
	return summarize.Request{
		URL:           req.URL,
		Style:         gemini.Style(req.SummaryType),
		ChunkDuration: req.ChunkDuration,
		Language:      req.Language,
		SaveFiles:     req.SaveFiles,
	}
}
