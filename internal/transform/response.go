package transform

import (
	"sort"

	"gateway/internal/routing"
)

// ReshapeBackendResponse maps a backend's native response into the
// external format, dispatching on the route's category. When the backend
// response carries no usable media URL the result falls back to the
// job-scoped "{base}/files/{jobID}.{ext}" location the gateway serves.
func ReshapeBackendResponse(route routing.RouteConfig, resp Response, jobID, gatewayBase string) Response {
	switch route.Category {
	case routing.CategoryImage:
		return reshapeImage(resp, jobID, gatewayBase)
	case routing.CategoryVideo:
		videoURL := stringValue(resp, "video_url")
		if videoURL == "" {
			videoURL = stringValue(resp, "url")
		}
		if videoURL == "" {
			videoURL = gatewayBase + "/files/" + jobID + ".mp4"
		}
		return Response{
			"video": map[string]any{
				"url":          videoURL,
				"content_type": "video/mp4",
			},
		}
	case routing.CategoryMusic, routing.CategoryAudio:
		audioURL := stringValue(resp, "audio_url")
		if audioURL == "" {
			audioURL = stringValue(resp, "url")
		}
		// A Gradio response carries positional results; data[0] wins
		// over any flat url field, even when the array is empty.
		if data, ok := resp["data"].([]any); ok {
			audioURL = ""
			if len(data) > 0 {
				if s, ok := data[0].(string); ok {
					audioURL = s
				}
			}
		}
		return audioResponse(audioURL, jobID, gatewayBase)
	case routing.CategoryTTS:
		audioURL := stringValue(resp, "audio_url")
		if audioURL == "" {
			audioURL = stringValue(resp, "url")
		}
		return audioResponse(audioURL, jobID, gatewayBase)
	}
	return resp
}

func audioResponse(audioURL, jobID, gatewayBase string) Response {
	if audioURL == "" {
		audioURL = gatewayBase + "/files/" + jobID + ".wav"
	}
	return Response{
		"audio": map[string]any{
			"url":          audioURL,
			"content_type": "audio/wav",
		},
	}
}

func reshapeImage(resp Response, jobID, gatewayBase string) Response {
	imageURL := stringValue(resp, "image_url")
	if imageURL == "" {
		imageURL = comfyOutputURL(resp, gatewayBase)
	}
	if imageURL == "" {
		imageURL = gatewayBase + "/files/" + jobID + ".png"
	}
	return Response{
		"images": []any{
			map[string]any{
				"url":          imageURL,
				"width":        intValue(resp, "width", 1024),
				"height":       intValue(resp, "height", 1024),
				"content_type": "image/png",
			},
		},
		"seed":   resp["seed"],
		"prompt": resp["prompt"],
	}
}

// comfyOutputURL digs the first saved image out of a ComfyUI history
// response: an "outputs" map keyed by node id, where the save node lists
// its images by filename. Node ids are visited in sorted order so the
// result is stable.
func comfyOutputURL(resp Response, gatewayBase string) string {
	outputs, ok := resp["outputs"].(map[string]any)
	if !ok {
		return ""
	}
	nodes := make([]string, 0, len(outputs))
	for id := range outputs {
		nodes = append(nodes, id)
	}
	sort.Strings(nodes)
	for _, id := range nodes {
		node, ok := outputs[id].(map[string]any)
		if !ok {
			continue
		}
		images, ok := node["images"].([]any)
		if !ok || len(images) == 0 {
			continue
		}
		first, ok := images[0].(map[string]any)
		if !ok {
			continue
		}
		if filename := stringValue(first, "filename"); filename != "" {
			return gatewayBase + "/files/output/" + filename
		}
	}
	return ""
}
