package reports

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/summarizer-api/api/types"
)

// Delete removes a stored report
// @Summary      Delete a report
// @Description  Permanently remove a stored summary report
// @Tags         reports
// @Produce      json
// @Param        id path int true "Report ID"
// @Success      200 {object} types.BaseResponse "Report deleted"
// @Failure      400 {object} types.ErrorResponse "Invalid report ID"
// @Failure      404 {object} types.ErrorResponse "Report not found"
// @Router       /api/v1/reports/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.NewErrorResponse("Invalid report ID"))
			return
		}

		if err := deps.ReportService.DeleteReport(c.Request.Context(), uint(id)); err != nil {
			if strings.Contains(err.Error(), "not found") {
				c.JSON(http.StatusNotFound, types.NewErrorResponse("Report not found"))
			} else {
				log.Printf("[ERROR] Failed to delete report %d: %v", id, err)
				c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to delete report"))
			}
			return
		}

		log.Printf("[DEBUG] Deleted report %d", id)
		c.JSON(http.StatusOK, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Report deleted",
		})
	}
}
