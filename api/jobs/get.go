package jobs

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/summarizer-api/api/types"
	"github.com/killallgit/summarizer-api/internal/services/summarize"
)

// GetByID returns the state of one summarization job
// @Summary      Get job status
// @Description  Poll an asynchronous summarization job. Completed jobs carry the full result.
// @Tags         jobs
// @Produce      json
// @Param        id path string true "Job ID"
// @Success      200 {object} types.JobResponse "Job state"
// @Failure      404 {object} types.ErrorResponse "Job not found"
// @Router       /api/v1/jobs/{id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.JobManager == nil {
			c.JSON(http.StatusServiceUnavailable, types.NewErrorResponse("Job tracking unavailable"))
			return
		}

		job, err := deps.JobManager.Get(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, types.NewErrorResponse("Job not found"))
			return
		}

		c.JSON(http.StatusOK, types.JobResponse{
			BaseResponse: types.BaseResponse{Status: jobStatus(job), Message: "Job state"},
			Job:          job,
		})
	}
}

func jobStatus(job *summarize.Job) string {
	switch job.Status {
	case summarize.JobStatusCompleted:
		return types.StatusOK
	case summarize.JobStatusFailed:
		return types.StatusFailed
	case summarize.JobStatusRunning:
		return types.StatusProcessing
	default:
		return types.StatusQueued
	}
}
