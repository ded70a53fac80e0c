package reports

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/summarizer-api/api/types"
	"github.com/killallgit/summarizer-api/internal/models"
)

// GetByID returns a single report, optionally rendered as a document
// @Summary      Get a report
// @Description  Fetch one stored report. With format=markdown, text, or docx the stored result is re-rendered as that document; the default returns the report record as JSON.
// @Tags         reports
// @Produce      json
// @Param        id path int true "Report ID"
// @Param        format query string false "Rendering: markdown, text, or docx"
// @Success      200 {object} types.SingleReportResponse "Report"
// @Failure      400 {object} types.ErrorResponse "Invalid report ID"
// @Failure      404 {object} types.ErrorResponse "Report not found"
// @Router       /api/v1/reports/{id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.NewErrorResponse("Invalid report ID"))
			return
		}

		report, err := deps.ReportService.GetReportByID(c.Request.Context(), uint(id))
		if err != nil {
			if strings.Contains(err.Error(), "not found") {
				c.JSON(http.StatusNotFound, types.NewErrorResponse("Report not found"))
			} else {
				log.Printf("[ERROR] Failed to fetch report %d: %v", id, err)
				c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to fetch report"))
			}
			return
		}

		if format := c.Query("format"); format != "" {
			renderReport(c, deps, report, format)
			return
		}

		c.JSON(http.StatusOK, types.SingleReportResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Report found"},
			Report:       report,
		})
	}
}

// renderReport re-renders the stored result payload as a document.
func renderReport(c *gin.Context, deps *types.Dependencies, report *models.Report, format string) {
	var result models.Result
	if err := json.Unmarshal([]byte(report.Payload), &result); err != nil {
		log.Printf("[ERROR] Corrupt payload for report %d: %v", report.ID, err)
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Stored report payload is unreadable"))
		return
	}

	data, err := deps.ReportService.Render(&result, format)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(err.Error()))
		return
	}

	c.Data(http.StatusOK, contentTypeFor(format), data)
}

func contentTypeFor(format string) string {
	switch format {
	case "json":
		return "application/json; charset=utf-8"
	case "markdown":
		return "text/markdown; charset=utf-8"
	case "docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "text/plain; charset=utf-8"
	}
}
