package handlers

import (
	"net/http"
)

// Root reports liveness plus the number of configured endpoints.
func (a *App) Root(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"service":   serviceName,
		"version":   serviceVersion,
		"status":    "running",
		"endpoints": a.Routes.Len(),
	})
}

// Health is the probe endpoint.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// Endpoints lists the configured endpoint ids.
func (a *App) Endpoints(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"endpoints": a.Routes.EndpointIDs()})
}
