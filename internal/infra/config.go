package infra

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv         string
	Port           string
	ComfyUIURL     string
	CosmosURL      string
	AudiocraftURL  string
	TTSURL         string
	GatewayBaseURL string
	MediaDir       string
	ComfyOutputDir string

	BackendTimeout   time.Duration
	JobTTL           time.Duration
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "10000"),
		ComfyUIURL:     getEnv("COMFYUI_URL", "http://localhost:8188"),
		CosmosURL:      getEnv("COSMOS_URL", "http://localhost:10002"),
		AudiocraftURL:  getEnv("AUDIOCRAFT_URL", "http://localhost:10003"),
		TTSURL:         getEnv("TTS_URL", "http://localhost:10004"),
		GatewayBaseURL: strings.TrimRight(getEnv("GATEWAY_BASE_URL", "http://localhost:10000"), "/"),
		MediaDir:       getEnv("MEDIA_DIR", "/data/generated"),
		ComfyOutputDir: getEnv("COMFYUI_OUTPUT_DIR", "/opt/ComfyUI/output"),

		BackendTimeout:   time.Second * time.Duration(getEnvInt("BACKEND_TIMEOUT_SECONDS", 600)),
		JobTTL:           time.Second * time.Duration(getEnvInt("JOB_TTL_SECONDS", 0)),
		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 630)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
	}

	for name, value := range map[string]string{
		"COMFYUI_URL":      cfg.ComfyUIURL,
		"COSMOS_URL":       cfg.CosmosURL,
		"AUDIOCRAFT_URL":   cfg.AudiocraftURL,
		"TTS_URL":          cfg.TTSURL,
		"GATEWAY_BASE_URL": cfg.GatewayBaseURL,
	} {
		if _, err := url.ParseRequestURI(value); err != nil {
			return nil, fmt.Errorf("%s is not a valid URL: %w", name, err)
		}
	}

	// Synchronous submissions hold the response open for the whole backend
	// call, so the write timeout has to outlast it.
	if cfg.HTTPWriteTimeout <= cfg.BackendTimeout {
		cfg.HTTPWriteTimeout = cfg.BackendTimeout + 30*time.Second
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
