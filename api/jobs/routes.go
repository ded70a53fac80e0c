package jobs

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/summarizer-api/api/types"
)

// RegisterRoutes registers job routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/jobs/:id - Poll job status
	router.GET("/:id", GetByID(deps))
}
