package transform

import (
	"time"

	"github.com/google/uuid"
)

// comfyWorkflow builds the ComfyUI workflow graph for a Flux-style
// checkpoint. Node ids and wiring mirror the graph ComfyUI expects:
// checkpoint load (4), positive/negative text encode (6/7), empty latent
// (5), KSampler (3), VAE decode (8), save image (9). The seed is derived
// from wall-clock millis truncated to 32 bits and each call carries a
// fresh client_id so ComfyUI can correlate websocket progress events.
func comfyWorkflow(prompt string, width, height, steps int) map[string]any {
	return map[string]any{
		"prompt": map[string]any{
			"3": map[string]any{
				"class_type": "KSampler",
				"inputs": map[string]any{
					"cfg":          1.0,
					"denoise":      1.0,
					"latent_image": []any{"5", 0},
					"model":        []any{"4", 0},
					"negative":     []any{"7", 0},
					"positive":     []any{"6", 0},
					"sampler_name": "euler",
					"scheduler":    "simple",
					"seed":         time.Now().UnixMilli() % (1 << 32),
					"steps":        steps,
				},
			},
			"4": map[string]any{
				"class_type": "CheckpointLoaderSimple",
				"inputs": map[string]any{
					"ckpt_name": "flux1-dev.safetensors",
				},
			},
			"5": map[string]any{
				"class_type": "EmptyLatentImage",
				"inputs": map[string]any{
					"batch_size": 1,
					"height":     height,
					"width":      width,
				},
			},
			"6": map[string]any{
				"class_type": "CLIPTextEncode",
				"inputs": map[string]any{
					"clip": []any{"4", 1},
					"text": prompt,
				},
			},
			"7": map[string]any{
				"class_type": "CLIPTextEncode",
				"inputs": map[string]any{
					"clip": []any{"4", 1},
					"text": "",
				},
			},
			"8": map[string]any{
				"class_type": "VAEDecode",
				"inputs": map[string]any{
					"samples": []any{"3", 0},
					"vae":     []any{"4", 2},
				},
			},
			"9": map[string]any{
				"class_type": "SaveImage",
				"inputs": map[string]any{
					"filename_prefix": "flux_output",
					"images":          []any{"8", 0},
				},
			},
		},
		"client_id": uuid.NewString(),
	}
}
