package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/killallgit/summarizer-api/internal/metrics"
)

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		method         string
		expectedStatus int
	}{
		{name: "preflight request", method: http.MethodOptions, expectedStatus: http.StatusOK},
		{name: "regular GET request", method: http.MethodGet, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()
			engine.Use(CORS())
			engine.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })
			engine.OPTIONS("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, "/test", nil)
			engine.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestRequestSizeLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(RequestSizeLimitWithSize(16))
	engine.POST("/test", func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	small := httptest.NewRecorder()
	engine.ServeHTTP(small, httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"a":1}`)))
	assert.Equal(t, http.StatusOK, small.Code)

	big := httptest.NewRecorder()
	engine.ServeHTTP(big, httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"a":"`+strings.Repeat("x", 64)+`"}`)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, big.Code)
}

func TestPerClientRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rateLimiters := &sync.Map{}
	cleanupStop := make(chan struct{})
	defer close(cleanupStop)
	var once sync.Once

	engine := gin.New()
	engine.Use(PerClientRateLimit(rateLimiters, cleanupStop, &once, 1, 2))
	engine.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	// burst of 2 allows the first two requests, third is limited
	statuses := make([]int, 3)
	for i := range statuses {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		engine.ServeHTTP(w, req)
		statuses[i] = w.Code
	}

	assert.Equal(t, http.StatusOK, statuses[0])
	assert.Equal(t, http.StatusOK, statuses[1])
	assert.Equal(t, http.StatusTooManyRequests, statuses[2])

	// a different client has its own budget
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTrackMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	m := metrics.New()
	engine := gin.New()
	engine.Use(TrackMetrics(m))
	engine.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })

	for _, path := range []string{"/ok", "/bad"} {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	handler := m.Handler(nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := w.Body.String()
	assert.Contains(t, body, "summarizer_requests_total 2")
	assert.Contains(t, body, "summarizer_errors_total 1")
}
