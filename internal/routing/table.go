package routing

import (
	"errors"
	"sort"
	"strings"
)

// ErrRouteNotFound indicates that no configured endpoint matches the
// requested id, neither exactly nor by wildcard prefix.
var ErrRouteNotFound = errors.New("routing: unknown endpoint")

// Category classifies a backend's output type. It drives how backend
// responses are reshaped into the external format.
type Category string

const (
	CategoryImage Category = "image"
	CategoryVideo Category = "video"
	CategoryMusic Category = "music"
	CategoryAudio Category = "audio"
	CategoryTTS   Category = "tts"
)

// Transform names a request rewrite applied before calling the backend.
// The empty value means the category's default handling applies.
type Transform string

const (
	TransformNone             Transform = ""
	TransformComfyFlux        Transform = "comfyui_flux"
	TransformComfyFluxSchnell Transform = "comfyui_flux_schnell"
	TransformComfyFluxUltra   Transform = "comfyui_flux_ultra"
	TransformComfySD35        Transform = "comfyui_sd35"
	TransformGradioAudiocraft Transform = "gradio_audiocraft"
	TransformKokoroTTS        Transform = "kokoro_tts"
)

// RouteConfig binds an external endpoint id to a backend service.
type RouteConfig struct {
	// BaseURL is the backend's base address, without a trailing slash.
	BaseURL string
	// EndpointPath is the backend-specific path, "/generate" by default.
	EndpointPath string
	Category     Category
	// RequestTransform selects the request rewrite; empty means
	// category-default handling.
	RequestTransform Transform
	// ResponseTransform is reserved; response reshaping currently
	// dispatches on Category alone.
	ResponseTransform Transform
}

// TargetURL returns the full backend URL for this route.
func (c RouteConfig) TargetURL() string {
	return strings.TrimRight(c.BaseURL, "/") + c.EndpointPath
}

type wildcardRoute struct {
	prefix string
	config RouteConfig
}

// Table maps endpoint ids to route configurations. Ids ending in "*"
// register a prefix wildcard. The table is built once at startup and
// read-only afterwards, so lookups need no locking.
type Table struct {
	exact     map[string]RouteConfig
	wildcards []wildcardRoute
	order     []string
}

// NewTable returns an empty route table.
func NewTable() *Table {
	return &Table{exact: make(map[string]RouteConfig)}
}

// Register adds a route under the given endpoint id. An id ending in "*"
// matches any endpoint sharing the prefix before the star. Wildcards are
// consulted in registration order, first match wins.
func (t *Table) Register(id string, cfg RouteConfig) {
	if cfg.EndpointPath == "" {
		cfg.EndpointPath = "/generate"
	}
	if strings.HasSuffix(id, "*") {
		t.wildcards = append(t.wildcards, wildcardRoute{
			prefix: strings.TrimSuffix(id, "*"),
			config: cfg,
		})
	} else {
		t.exact[id] = cfg
	}
	t.order = append(t.order, id)
}

// Resolve looks up the route for an endpoint id. Exact matches take
// priority over wildcard matches.
func (t *Table) Resolve(id string) (RouteConfig, error) {
	if cfg, ok := t.exact[id]; ok {
		return cfg, nil
	}
	for _, wc := range t.wildcards {
		if strings.HasPrefix(id, wc.prefix) {
			return wc.config, nil
		}
	}
	return RouteConfig{}, ErrRouteNotFound
}

// EndpointIDs returns the configured endpoint ids in sorted order.
func (t *Table) EndpointIDs() []string {
	ids := make([]string, len(t.order))
	copy(ids, t.order)
	sort.Strings(ids)
	return ids
}

// Len reports the number of configured endpoint ids.
func (t *Table) Len() int {
	return len(t.order)
}
