package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"gateway/internal/http/handlers"
	"gateway/internal/middleware"
)

// NewRouter assembles the gateway's HTTP surface. The generation route
// is a catch-all POST so endpoint ids with arbitrary path segments
// (e.g. fal-ai/kling-video/v1.5/pro) resolve; fixed routes take
// precedence.
func NewRouter(app *handlers.App) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimw.RealIP,
		middleware.RequestID,
		middleware.CORS(),
		middleware.Logger(app.Logger),
		chimw.Recoverer,
	)

	r.Get("/", app.Root)
	r.Get("/health", app.Health)
	r.Get("/endpoints", app.Endpoints)
	r.Method(http.MethodGet, "/metrics", app.Metrics.Handler())

	r.Get("/status/{jobID}", app.JobStatus)
	r.Get("/result/{jobID}", app.JobResult)
	r.Delete("/jobs/{jobID}", app.CancelJob)

	r.Get("/files/*", app.ServeFile)
	r.Post("/*", app.Generate)

	return r
}
