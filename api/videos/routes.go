package videos

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/summarizer-api/api/types"
)

// RegisterRoutes registers video routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// POST /api/v1/videos/summarize - Queue an asynchronous summarization job
	router.POST("/summarize", PostSummarize(deps))

	// POST /api/v1/videos/summarize/sync - Run a pipeline inline
	router.POST("/summarize/sync", PostSummarizeSync(deps))

	// POST /api/v1/videos/info - List a video's available transcripts
	router.POST("/info", PostInfo(deps))

	// GET /api/v1/videos/config - Effective configuration
	router.GET("/config", GetConfig(deps))
}
