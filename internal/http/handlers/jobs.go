package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"gateway/internal/jobs"
)

// JobStatus reports the current lifecycle state of a job.
func (a *App) JobStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job, ok := a.Jobs.Get(jobID)
	if !ok {
		a.fail(w, http.StatusNotFound, "Job not found")
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"request_id": job.ID,
		"status":     string(job.Status),
	})
}

// JobResult returns the terminal result of a job: 202 while the job is
// still pending or processing, 500 with the captured message when it
// failed, and the reshaped payload once completed.
func (a *App) JobResult(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job, ok := a.Jobs.Get(jobID)
	if !ok {
		a.fail(w, http.StatusNotFound, "Job not found")
		return
	}
	switch job.Status {
	case jobs.StatusPending, jobs.StatusProcessing:
		a.json(w, http.StatusAccepted, map[string]any{
			"status":  string(job.Status),
			"message": "Job still processing",
		})
	case jobs.StatusFailed:
		a.fail(w, http.StatusInternalServerError, job.Error)
	default:
		a.json(w, http.StatusOK, job.Result)
	}
}

// CancelJob forgets a job record. An in-flight backend call is not
// interrupted; its eventual outcome is discarded.
func (a *App) CancelJob(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	if !a.Jobs.Delete(jobID) {
		a.fail(w, http.StatusNotFound, "Job not found")
		return
	}
	a.json(w, http.StatusOK, map[string]string{"status": "cancelled"})
}
