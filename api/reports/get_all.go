package reports

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/summarizer-api/api/types"
)

// GetAll lists stored reports
// @Summary      List reports
// @Description  List stored summarization reports, newest first. Filter by video_id with the query parameter.
// @Tags         reports
// @Produce      json
// @Param        page query int false "Page number (default 1)"
// @Param        limit query int false "Page size (default 20, max 100)"
// @Param        video_id query string false "Filter by video ID"
// @Success      200 {object} types.ReportsResponse "Reports"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/reports [get]
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		if page < 1 {
			page = 1
		}
		if limit < 1 || limit > 100 {
			limit = 20
		}

		if videoID := c.Query("video_id"); videoID != "" {
			reports, err := deps.ReportService.GetReportsByVideoID(c.Request.Context(), videoID, limit)
			if err != nil {
				log.Printf("[ERROR] Failed to list reports for video %s: %v", videoID, err)
				c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to list reports"))
				return
			}
			c.JSON(http.StatusOK, types.ReportsResponse{
				BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Reports listed"},
				Reports:      reports,
				Count:        len(reports),
				Total:        int64(len(reports)),
				Page:         1,
			})
			return
		}

		reports, total, err := deps.ReportService.ListReports(c.Request.Context(), page, limit)
		if err != nil {
			log.Printf("[ERROR] Failed to list reports: %v", err)
			c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to list reports"))
			return
		}

		c.JSON(http.StatusOK, types.ReportsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Reports listed"},
			Reports:      reports,
			Count:        len(reports),
			Total:        total,
			Page:         page,
		})
	}
}
