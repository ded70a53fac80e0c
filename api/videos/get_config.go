package videos

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/summarizer-api/api/types"
	"github.com/killallgit/summarizer-api/pkg/config"
)

// GetConfig exposes the non-secret effective configuration
// @Summary      Get summarizer configuration
// @Description  Return the effective defaults and the supported models, styles, and output formats. The API key is never included.
// @Tags         videos
// @Produce      json
// @Success      200 {object} types.ConfigResponse "Effective configuration"
// @Failure      500 {object} types.ErrorResponse "Configuration unavailable"
// @Router       /api/v1/videos/config [get]
func GetConfig(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, err := config.GetConfig()
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Configuration unavailable"))
			return
		}

		c.JSON(http.StatusOK, types.ConfigResponse{
			BaseResponse:  types.BaseResponse{Status: types.StatusOK, Message: "Effective configuration"},
			Model:         cfg.Gemini.Model,
			SummaryType:   cfg.Defaults.SummaryType,
			ChunkDuration: cfg.Defaults.ChunkDuration,
			Language:      cfg.Defaults.Language,
			OutputFormat:  cfg.Output.Format,
			SummaryTypes:  config.ValidSummaryTypes,
			Models:        config.ValidModels,
			OutputFormats: config.ValidOutputFormats,
		})
	}
}
