package videos

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/summarizer-api/api/types"
	"github.com/killallgit/summarizer-api/internal/models"
	"github.com/killallgit/summarizer-api/internal/services/summarize"
	"github.com/killallgit/summarizer-api/pkg/gemini"
)

type fakeService struct {
	result  *models.Result
	info    *summarize.VideoInfo
	infoErr error
}

func (f *fakeService) Summarize(ctx context.Context, req summarize.Request) *models.Result {
	if f.result != nil {
		return f.result
	}
	result := models.NewResult(req.URL, req.Style, req.ChunkDuration, req.Language)
	result.Success = true
	return result
}

func (f *fakeService) VideoInfo(ctx context.Context, urlOrID string) (*summarize.VideoInfo, error) {
	return f.info, f.infoErr
}

func postJSON(t *testing.T, handler gin.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	data, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return w
}

func TestPostSummarizeQueuesJob(t *testing.T) {
	svc := &fakeService{}
	deps := &types.Dependencies{
		SummarizeService: svc,
		JobManager:       summarize.NewJobManager(svc, nil, nil),
	}

	w := postJSON(t, PostSummarize(deps), "/summarize", types.SummarizeRequest{
		URL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	})

	assert.Equal(t, http.StatusAccepted, w.Code)

	var resp types.JobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, types.StatusQueued, resp.Status)
	require.NotNil(t, resp.Job)
	assert.NotEmpty(t, resp.Job.ID)

	deps.JobManager.Wait()
	job, err := deps.JobManager.Get(resp.Job.ID)
	require.NoError(t, err)
	assert.Equal(t, summarize.JobStatusCompleted, job.Status)
}

func TestPostSummarizeRejectsBadBody(t *testing.T) {
	deps := &types.Dependencies{}

	w := postJSON(t, PostSummarize(deps), "/summarize", gin.H{"not_url": true})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostSummarizeRejectsBadStyle(t *testing.T) {
	deps := &types.Dependencies{}

	w := postJSON(t, PostSummarize(deps), "/summarize", types.SummarizeRequest{
		URL:         "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		SummaryType: "extremely_detailed",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostSummarizeSync(t *testing.T) {
	result := models.NewResult("url", gemini.StyleDetailed, 60, "en")
	result.Success = true
	result.Summary = &gemini.Summary{Text: "done"}
	deps := &types.Dependencies{SummarizeService: &fakeService{result: result}}

	w := postJSON(t, PostSummarizeSync(deps), "/summarize/sync", types.SummarizeRequest{
		URL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp types.SummarizeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, types.StatusOK, resp.Status)
	require.NotNil(t, resp.Result)
	assert.True(t, resp.Result.Success)
}

func TestPostSummarizeSyncPipelineFailure(t *testing.T) {
	result := models.NewResult("url", gemini.StyleDetailed, 60, "en")
	result.Fail("failed to extract transcript")
	deps := &types.Dependencies{SummarizeService: &fakeService{result: result}}

	w := postJSON(t, PostSummarizeSync(deps), "/summarize/sync", types.SummarizeRequest{
		URL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp types.SummarizeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, types.StatusFailed, resp.Status)
	assert.Equal(t, "failed to extract transcript", resp.Message)
}

func TestPostInfo(t *testing.T) {
	deps := &types.Dependencies{SummarizeService: &fakeService{
		info: &summarize.VideoInfo{VideoID: "dQw4w9WgXcQ"},
	}}

	w := postJSON(t, PostInfo(deps), "/info", types.VideoInfoRequest{
		URL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp types.VideoInfoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Info)
	assert.Equal(t, "dQw4w9WgXcQ", resp.Info.VideoID)
}

func TestPostInfoUnresolvable(t *testing.T) {
	deps := &types.Dependencies{SummarizeService: &fakeService{
		infoErr: errors.New("could not resolve identifier: garbage"),
	}}

	w := postJSON(t, PostInfo(deps), "/info", types.VideoInfoRequest{URL: "garbage"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostInfoUpstreamFailure(t *testing.T) {
	deps := &types.Dependencies{SummarizeService: &fakeService{
		infoErr: errors.New("listing transcripts: rate limited"),
	}}

	w := postJSON(t, PostInfo(deps), "/info", types.VideoInfoRequest{
		URL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	})

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
