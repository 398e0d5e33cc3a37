package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"gateway/internal/routing"
	"gateway/internal/transform"
)

// Generate accepts a generation request under any endpoint id path.
// The ?sync=true flag runs the job inline and returns the reshaped
// result; the default queue mode detaches execution and returns polling
// URLs immediately.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	endpointID := strings.Trim(chi.URLParam(r, "*"), "/")

	route, err := a.Routes.Resolve(endpointID)
	if errors.Is(err, routing.ErrRouteNotFound) {
		a.fail(w, http.StatusNotFound,
			fmt.Sprintf("Unknown endpoint: %s. Use /endpoints to list available.", endpointID))
		return
	}

	// A missing or malformed body is not an error at this stage; the
	// transforms fill category defaults.
	req := transform.Request{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		req = transform.Request{}
	}

	job := a.Jobs.Create(endpointID)

	if strings.EqualFold(r.URL.Query().Get("sync"), "true") {
		out := a.Exec.Execute(r.Context(), job.ID, route, req)
		if out.Err != nil {
			a.fail(w, http.StatusInternalServerError, out.Err.Error())
			return
		}
		a.json(w, http.StatusOK, out.Result)
		return
	}

	// Queue mode: the detached execution outlives this request, so it
	// must not inherit the request context.
	go a.Exec.Execute(context.Background(), job.ID, route, req)

	a.json(w, http.StatusOK, map[string]any{
		"request_id": job.ID,
		"status":     string(job.Status),
		"status_url": "/status/" + job.ID,
		"result_url": "/result/" + job.ID,
	})
}
