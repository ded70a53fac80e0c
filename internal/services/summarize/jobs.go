package summarize

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/killallgit/summarizer-api/internal/metrics"
	"github.com/killallgit/summarizer-api/internal/models"
)

type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// Job tracks one asynchronous summarization run.
type Job struct {
	ID        string         `json:"id"`
	VideoURL  string         `json:"video_url"`
	Status    JobStatus      `json:"status"`
	Progress  Progress       `json:"progress"`
	Result    *models.Result `json:"result,omitempty"`
	Error     string         `json:"error,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// maxFinishedJobs caps how many completed or failed jobs are kept for
// polling before the oldest are evicted.
const maxFinishedJobs = 100

// Broadcaster pushes job progress to out-of-band consumers, keyed by job
// ID. Implementations must not block.
type Broadcaster interface {
	Broadcast(jobID string, p Progress)
}

// JobManager runs summarization pipelines in the background and tracks
// their state for polling clients.
type JobManager struct {
	mu          sync.RWMutex
	jobs        map[string]*Job
	service     SummarizeService
	metrics     *metrics.Metrics
	broadcaster Broadcaster
	log         *slog.Logger
	wg          sync.WaitGroup
}

func NewJobManager(service SummarizeService, m *metrics.Metrics, log *slog.Logger) *JobManager {
	if log == nil {
		log = slog.Default()
	}
	return &JobManager{
		jobs:    make(map[string]*Job),
		service: service,
		metrics: m,
		log:     log,
	}
}

// SetBroadcaster wires an out-of-band progress consumer. Call before any
// Start.
func (m *JobManager) SetBroadcaster(b Broadcaster) {
	m.broadcaster = b
}

// Start launches a pipeline run on its own goroutine and returns a
// snapshot of the job immediately; poll Get for the live state. The
// caller's progress sink (if any) still receives notifications; the job
// record tracks the latest one.
func (m *JobManager) Start(ctx context.Context, req Request) *Job {
	job := &Job{
		ID:        uuid.NewString(),
		VideoURL:  req.URL,
		Status:    JobStatusPending,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	m.mu.Lock()
	m.jobs[job.ID] = job
	m.mu.Unlock()
	m.updateActiveGauge()

	callerSink := req.Progress
	req.Progress = SinkFunc(func(p Progress) {
		m.mu.Lock()
		job.Progress = p
		job.UpdatedAt = time.Now().UTC()
		m.mu.Unlock()
		if m.broadcaster != nil {
			m.broadcaster.Broadcast(job.ID, p)
		}
		if callerSink != nil {
			callerSink.Publish(p)
		}
	})

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		m.mu.Lock()
		job.Status = JobStatusRunning
		job.UpdatedAt = time.Now().UTC()
		m.mu.Unlock()

		result := m.service.Summarize(ctx, req)

		m.mu.Lock()
		job.Result = result
		job.UpdatedAt = time.Now().UTC()
		if result.Success {
			job.Status = JobStatusCompleted
		} else {
			job.Status = JobStatusFailed
			job.Error = result.Error
		}
		m.evictLocked()
		m.mu.Unlock()
		m.updateActiveGauge()

		m.mu.RLock()
		status := job.Status
		m.mu.RUnlock()
		m.log.Info("job finished", "job_id", job.ID, "status", status)
	}()

	// The worker goroutine keeps mutating the stored record, so hand the
	// caller a copy taken under the lock.
	m.mu.RLock()
	snapshot := *job
	m.mu.RUnlock()
	return &snapshot
}

// Get returns a snapshot of the job with the given ID.
func (m *JobManager) Get(id string) (*Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	job, ok := m.jobs[id]
	if !ok {
		return nil, fmt.Errorf("job %s not found", id)
	}
	snapshot := *job
	return &snapshot, nil
}

// ActiveCount returns how many jobs are pending or running.
func (m *JobManager) ActiveCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.activeCountLocked()
}

// Wait blocks until every launched job has finished. Used by tests and
// graceful shutdown.
func (m *JobManager) Wait() {
	m.wg.Wait()
}

func (m *JobManager) activeCountLocked() int {
	count := 0
	for _, job := range m.jobs {
		if job.Status == JobStatusPending || job.Status == JobStatusRunning {
			count++
		}
	}
	return count
}

func (m *JobManager) updateActiveGauge() {
	if m.metrics == nil {
		return
	}
	m.metrics.SetActiveJobs(m.ActiveCount())
}

// evictLocked drops the oldest finished jobs beyond the retention cap.
// Callers hold the write lock.
func (m *JobManager) evictLocked() {
	var finished []*Job
	for _, job := range m.jobs {
		if job.Status == JobStatusCompleted || job.Status == JobStatusFailed {
			finished = append(finished, job)
		}
	}
	if len(finished) <= maxFinishedJobs {
		return
	}
	sort.Slice(finished, func(i, j int) bool {
		return finished[i].UpdatedAt.Before(finished[j].UpdatedAt)
	})
	for _, job := range finished[:len(finished)-maxFinishedJobs] {
		delete(m.jobs, job.ID)
	}
}
