package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gateway/internal/routing"
)

const base = "http://localhost:10000"

func TestMusicResponsePrefersGradioData(t *testing.T) {
	route := routing.RouteConfig{Category: routing.CategoryMusic}

	out := ReshapeBackendResponse(route, Response{"data": []any{"http://x/y.wav"}}, "job-1", base)
	assert.Equal(t, Response{
		"audio": map[string]any{
			"url":          "http://x/y.wav",
			"content_type": "audio/wav",
		},
	}, out)

	// data wins over a flat url field even when empty.
	out = ReshapeBackendResponse(route, Response{"data": []any{}, "url": "http://x/flat.wav"}, "job-1", base)
	audio := out["audio"].(map[string]any)
	assert.Equal(t, base+"/files/job-1.wav", audio["url"])
}

func TestAudioResponseFlatURLFallbacks(t *testing.T) {
	route := routing.RouteConfig{Category: routing.CategoryAudio}

	out := ReshapeBackendResponse(route, Response{"audio_url": "http://x/a.wav"}, "job-2", base)
	assert.Equal(t, "http://x/a.wav", out["audio"].(map[string]any)["url"])

	out = ReshapeBackendResponse(route, Response{}, "job-2", base)
	assert.Equal(t, base+"/files/job-2.wav", out["audio"].(map[string]any)["url"])
}

func TestVideoResponseFallbackURL(t *testing.T) {
	route := routing.RouteConfig{Category: routing.CategoryVideo}

	out := ReshapeBackendResponse(route, Response{"status": "done"}, "job-3", base)
	assert.Equal(t, Response{
		"video": map[string]any{
			"url":          base + "/files/job-3.mp4",
			"content_type": "video/mp4",
		},
	}, out)

	out = ReshapeBackendResponse(route, Response{"video_url": "http://x/v.mp4"}, "job-3", base)
	assert.Equal(t, "http://x/v.mp4", out["video"].(map[string]any)["url"])
}

func TestImageResponseScansComfyOutputs(t *testing.T) {
	route := routing.RouteConfig{Category: routing.CategoryImage}

	out := ReshapeBackendResponse(route, Response{
		"outputs": map[string]any{
			"9": map[string]any{
				"images": []any{
					map[string]any{"filename": "flux_output_00001_.png"},
				},
			},
		},
		"seed":   float64(42),
		"prompt": "a red fox",
	}, "job-4", base)

	images, ok := out["images"].([]any)
	require.True(t, ok)
	require.Len(t, images, 1)
	img := images[0].(map[string]any)
	assert.Equal(t, base+"/files/output/flux_output_00001_.png", img["url"])
	assert.Equal(t, "image/png", img["content_type"])
	assert.Equal(t, 1024, img["width"])
	assert.Equal(t, float64(42), out["seed"])
	assert.Equal(t, "a red fox", out["prompt"])
}

func TestImageResponseFallbackURL(t *testing.T) {
	route := routing.RouteConfig{Category: routing.CategoryImage}

	out := ReshapeBackendResponse(route, Response{}, "job-5", base)
	img := out["images"].([]any)[0].(map[string]any)
	assert.Equal(t, base+"/files/job-5.png", img["url"])
}

func TestTTSResponsePrecedence(t *testing.T) {
	route := routing.RouteConfig{Category: routing.CategoryTTS}

	out := ReshapeBackendResponse(route, Response{"url": "http://x/speech.wav"}, "job-6", base)
	assert.Equal(t, "http://x/speech.wav", out["audio"].(map[string]any)["url"])

	out = ReshapeBackendResponse(route, Response{}, "job-6", base)
	assert.Equal(t, base+"/files/job-6.wav", out["audio"].(map[string]any)["url"])
}

func TestUnknownCategoryPassesThrough(t *testing.T) {
	route := routing.RouteConfig{Category: routing.Category("other")}
	resp := Response{"anything": "goes"}

	out := ReshapeBackendResponse(route, resp, "job-7", base)
	assert.Equal(t, resp, out)
}
