package routing

// Backends carries the base URLs of the locally running inference
// services the default table routes to.
type Backends struct {
	ComfyUI    string
	Cosmos     string
	Audiocraft string
	TTS        string
}

// DefaultTable builds the fal.ai-compatible route table.
//
// ComfyUI takes workflow JSON at /prompt, Cosmos generates video at
// /generate, Audiocraft exposes a Gradio API at /api/predict, and the
// TTS service speaks the OpenAI audio API at /v1/audio/speech.
func DefaultTable(b Backends) *Table {
	t := NewTable()

	// Image generation - ComfyUI with Flux.1-dev.
	t.Register("fal-ai/flux/dev", RouteConfig{
		BaseURL:          b.ComfyUI,
		EndpointPath:     "/prompt",
		Category:         CategoryImage,
		RequestTransform: TransformComfyFlux,
	})
	t.Register("fal-ai/flux/schnell", RouteConfig{
		BaseURL:          b.ComfyUI,
		EndpointPath:     "/prompt",
		Category:         CategoryImage,
		RequestTransform: TransformComfyFluxSchnell,
	})
	t.Register("fal-ai/flux-pro/v1.1-ultra", RouteConfig{
		BaseURL:          b.ComfyUI,
		EndpointPath:     "/prompt",
		Category:         CategoryImage,
		RequestTransform: TransformComfyFluxUltra,
	})
	t.Register("fal-ai/stable-diffusion-v35-large", RouteConfig{
		BaseURL:          b.ComfyUI,
		EndpointPath:     "/prompt",
		Category:         CategoryImage,
		RequestTransform: TransformComfySD35,
	})

	// Video generation - NVIDIA Cosmos.
	for _, id := range []string{
		"fal-ai/minimax/video-01-live",
		"fal-ai/hunyuan-video",
		"fal-ai/kling-video/v1.5/pro",
		"fal-ai/kling-video/v1/standard/text-to-video",
		"fal-ai/luma-dream-machine",
		"fal-ai/veo2",
		"fal-ai/ltx-video-v095/multiconditioning",
	} {
		t.Register(id, RouteConfig{
			BaseURL:      b.Cosmos,
			EndpointPath: "/generate",
			Category:     CategoryVideo,
		})
	}

	// Music generation - Audiocraft (MusicGen) behind Gradio.
	for _, id := range []string{"fal-ai/minimax-music", "fal-ai/stable-audio"} {
		t.Register(id, RouteConfig{
			BaseURL:          b.Audiocraft,
			EndpointPath:     "/api/predict",
			Category:         CategoryMusic,
			RequestTransform: TransformGradioAudiocraft,
		})
	}
	t.Register("fal-ai/mmaudio-v2", RouteConfig{
		BaseURL:          b.Audiocraft,
		EndpointPath:     "/api/predict",
		Category:         CategoryAudio,
		RequestTransform: TransformGradioAudiocraft,
	})

	// Text-to-speech - Kokoro TTS.
	for _, id := range []string{
		"fal-ai/playht/tts/v3",
		"fal-ai/playai/tts/dialog",
		"fal-ai/f5-tts",
	} {
		t.Register(id, RouteConfig{
			BaseURL:          b.TTS,
			EndpointPath:     "/v1/audio/speech",
			Category:         CategoryTTS,
			RequestTransform: TransformKokoroTTS,
		})
	}

	// Post-processing - routed to Cosmos.
	t.Register("fal-ai/sync-lipsync", RouteConfig{
		BaseURL:      b.Cosmos,
		EndpointPath: "/lipsync",
		Category:     CategoryVideo,
	})
	t.Register("fal-ai/topaz/upscale/video", RouteConfig{
		BaseURL:      b.Cosmos,
		EndpointPath: "/upscale",
		Category:     CategoryVideo,
	})

	return t
}
