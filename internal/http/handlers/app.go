package handlers

import (
	"encoding/json"
	"net/http"

	"gateway/internal/infra"
	"gateway/internal/jobs"
	"gateway/internal/metric"
	"gateway/internal/routing"
	"gateway/internal/storage"
)

const (
	serviceName    = "local-ai-gateway"
	serviceVersion = "2.0.0"
)

// App bundles the handler dependencies: route table, job store and
// executor, the media store and the secondary backend output directory
// consulted by the file server.
type App struct {
	Cfg     *infra.Config
	Logger  infra.Logger
	Routes  *routing.Table
	Jobs    *jobs.Store
	Exec    *jobs.Executor
	Media   *storage.FileStore
	Metrics *metric.Metrics
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// fail writes an error response in the {"detail": ...} shape fal.ai
// clients parse.
func (a *App) fail(w http.ResponseWriter, code int, detail string) {
	a.json(w, code, map[string]string{"detail": detail})
}
