package videos

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/summarizer-api/api/types"
)

// PostSummarizeSync runs a summarization pipeline inline
// @Summary      Summarize a video synchronously
// @Description  Run the full summarization pipeline and return the completed result in-line. Long videos can take minutes; prefer the asynchronous endpoint.
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        request body types.SummarizeRequest true "Summarization parameters"
// @Success      200 {object} types.SummarizeResponse "Completed result"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid parameters"
// @Failure      422 {object} types.SummarizeResponse "Pipeline failed - result carries the error"
// @Failure      503 {object} types.ErrorResponse "Summarization service unavailable"
// @Router       /api/v1/videos/summarize/sync [post]
func PostSummarizeSync(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindSummarizeRequest(c)
		if !ok {
			return
		}
		if deps.SummarizeService == nil {
			c.JSON(http.StatusServiceUnavailable, types.NewErrorResponse("Summarization service unavailable"))
			return
		}

		log.Printf("[DEBUG] PostSummarizeSync running pipeline for URL: %s", req.URL)

		pipelineReq := toPipelineRequest(req)
		pipelineReq.Persist = true

		result := deps.SummarizeService.Summarize(c.Request.Context(), pipelineReq)
		if !result.Success {
			c.JSON(http.StatusUnprocessableEntity, types.SummarizeResponse{
				BaseResponse: types.BaseResponse{Status: types.StatusFailed, Message: result.Error},
				Result:       result,
			})
			return
		}

		c.JSON(http.StatusOK, types.SummarizeResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Summarization completed"},
			Result:       result,
		})
	}
}
