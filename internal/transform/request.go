package transform

import (
	"gateway/internal/routing"
)

// Sampler step counts per ComfyUI workflow variant.
const (
	stepsFlux        = 28
	stepsFluxSchnell = 4
	stepsFluxUltra   = 50
	stepsSD35        = 30
)

// BuildBackendRequest maps a generic generation request into the payload
// the route's backend natively accepts. Dispatch is on the route's named
// request transform first, then on its category; unmatched requests pass
// through as a shallow copy.
//
// The function is deterministic given its inputs except for the
// seed/correlation-token fields of the ComfyUI workflow variants.
func BuildBackendRequest(route routing.RouteConfig, req Request) Request {
	switch route.RequestTransform {
	case routing.TransformComfyFlux:
		return comfyRequest(req, stepsFlux)
	case routing.TransformComfyFluxSchnell:
		return comfyRequest(req, stepsFluxSchnell)
	case routing.TransformComfyFluxUltra:
		return comfyRequest(req, stepsFluxUltra)
	case routing.TransformComfySD35:
		return comfyRequest(req, stepsSD35)
	case routing.TransformGradioAudiocraft:
		// Gradio's predict API takes positional arguments.
		return Request{
			"data": []any{
				stringValue(req, "prompt"),
				numberValue(req, "duration", 30),
			},
		}
	case routing.TransformKokoroTTS:
		input := stringValue(req, "prompt")
		if input == "" {
			input = stringValue(req, "text")
		}
		voice := stringValue(req, "voice")
		if voice == "" {
			voice = "af_heart"
		}
		return Request{
			"model":           "kokoro",
			"input":           input,
			"voice":           voice,
			"response_format": "wav",
			"speed":           numberValue(req, "speed", 1.0),
		}
	}

	if route.Category == routing.CategoryVideo {
		return Request{
			"prompt":    stringValue(req, "prompt"),
			"image_url": req["image_url"],
			"duration":  numberValue(req, "duration", 5),
			"fps":       numberValue(req, "fps", 24),
			"width":     intValue(req, "width", 1280),
			"height":    intValue(req, "height", 720),
		}
	}

	out := make(Request, len(req))
	for k, v := range req {
		out[k] = v
	}
	return out
}

func comfyRequest(req Request, steps int) Request {
	width, height := 1024, 1024
	if size, ok := req["image_size"].(map[string]any); ok {
		if w := intValue(size, "width", 0); w > 0 {
			width = w
		}
		if h := intValue(size, "height", 0); h > 0 {
			height = h
		}
	}
	return comfyWorkflow(stringValue(req, "prompt"), width, height, steps)
}
