package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"gateway/internal/storage"
)

// ServeFile serves generated media by relative path. The media store is
// checked first, then the backend image service's own output directory,
// where ComfyUI saves workflow results.
func (a *App) ServeFile(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")

	if path, err := a.Media.Resolve(key); err == nil {
		http.ServeFile(w, r, path)
		return
	}

	cleanKey, err := storage.CleanKey(key)
	if err != nil {
		a.fail(w, http.StatusNotFound, "File not found")
		return
	}
	outputPath := filepath.Join(a.Cfg.ComfyOutputDir, filepath.FromSlash(cleanKey))
	if info, err := os.Stat(outputPath); err == nil && !info.IsDir() {
		http.ServeFile(w, r, outputPath)
		return
	}

	a.fail(w, http.StatusNotFound, "File not found")
}
