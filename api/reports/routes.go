package reports

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/summarizer-api/api/types"
)

// RegisterRoutes registers report routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/reports - List stored reports
	router.GET("", GetAll(deps))

	// GET /api/v1/reports/:id - Get one report, optionally rendered
	router.GET("/:id", GetByID(deps))

	// DELETE /api/v1/reports/:id - Remove a stored report
	router.DELETE("/:id", Delete(deps))
}
