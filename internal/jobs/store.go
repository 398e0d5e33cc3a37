package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Status enumerates job lifecycle states.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Terminal reports whether the status is a terminal state.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Job tracks one accepted generation request. Exactly one of Result and
// Error is set once the job reaches a terminal state.
type Job struct {
	ID          string
	EndpointID  string
	Status      Status
	CreatedAt   time.Time
	StartedAt   time.Time
	CompletedAt time.Time
	Result      map[string]any
	Error       string
}

// Store is the in-memory job registry. All mutation goes through its
// methods; callers only ever see snapshots. State lives for the process
// lifetime unless a retention TTL is configured.
type Store struct {
	mu   sync.RWMutex
	jobs map[string]*Job
	ttl  time.Duration
}

// NewStore creates a store. A positive ttl enables eviction of terminal
// jobs that finished longer than ttl ago; zero retains jobs until
// explicitly deleted.
func NewStore(ttl time.Duration) *Store {
	return &Store{jobs: make(map[string]*Job), ttl: ttl}
}

// Create inserts a fresh pending job for the endpoint and returns a
// snapshot of it.
func (s *Store) Create(endpointID string) Job {
	job := &Job{
		ID:         uuid.NewString(),
		EndpointID: endpointID,
		Status:     StatusPending,
		CreatedAt:  time.Now(),
	}
	s.mu.Lock()
	s.jobs[job.ID] = job
	s.mu.Unlock()
	return *job
}

// Get returns a snapshot of the job, if present.
func (s *Store) Get(id string) (Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[id]
	if !ok {
		return Job{}, false
	}
	return *job, true
}

// Delete removes the job record. It does not interrupt an in-flight
// execution; a later completion for a deleted job is discarded.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.jobs[id]; !ok {
		return false
	}
	delete(s.jobs, id)
	return true
}

// MarkProcessing transitions a pending job to processing and records the
// start time. It reports false when the job is gone or already past
// pending.
func (s *Store) MarkProcessing(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok || job.Status != StatusPending {
		return false
	}
	job.Status = StatusProcessing
	job.StartedAt = time.Now()
	return true
}

// Complete finalizes a processing job with its reshaped result.
func (s *Store) Complete(id string, result map[string]any) bool {
	return s.finalize(id, StatusCompleted, result, "")
}

// Fail finalizes a processing job with a human-readable error message.
func (s *Store) Fail(id, message string) bool {
	return s.finalize(id, StatusFailed, nil, message)
}

func (s *Store) finalize(id string, status Status, result map[string]any, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok || job.Status.Terminal() {
		return false
	}
	job.Status = status
	job.Result = result
	job.Error = message
	job.CompletedAt = time.Now()
	return true
}

// Len reports the number of tracked jobs.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs)
}

// RunJanitor evicts terminal jobs older than the configured TTL until the
// context is done. It returns immediately when no TTL is set.
func (s *Store) RunJanitor(ctx context.Context) {
	if s.ttl <= 0 {
		return
	}
	interval := s.ttl / 2
	if interval > time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(time.Now())
		}
	}
}

func (s *Store) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, job := range s.jobs {
		if job.Status.Terminal() && now.Sub(job.CompletedAt) > s.ttl {
			delete(s.jobs, id)
		}
	}
}
