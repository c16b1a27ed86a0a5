package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	HTTPAddr string

	// DB
	Env    string // "dev" | "prod"
	DBPath string // e.g. "./data/facegate.db"

	// Photo storage
	UploadDir string

	// Embedding backend
	EmbedderURL    string
	EmbedTimeoutS  int
	MockModel      bool    // grant everything without inference; test/demo only
	SimThreshold   float32 // exclusive minimum cosine similarity for a grant
	ErrorLogPath   string
	AllowedOrigins []string // extra CORS origins beside localhost
}

func FromEnv() Config {
	addr := getenvDefault("FACEGATE_HTTP_ADDR", ":8080")

	env := strings.ToLower(getenvDefault("FACEGATE_ENV", "dev"))
	if env != "dev" && env != "prod" {
		// fail-soft: treat unknown as dev
		env = "dev"
	}

	dbPath := getenvDefault("FACEGATE_DB_PATH", "./data/facegate.db")
	uploadDir := getenvDefault("FACEGATE_UPLOAD_DIR", "./uploads")

	embedderURL := getenvDefault("FACEGATE_EMBEDDER_URL", "http://localhost:8000")
	embedTimeout := getenvInt("FACEGATE_EMBED_TIMEOUT_S", 10)

	mockModel := getenvBool("FACEGATE_MOCK_MODEL", false)
	threshold := getenvFloat32("FACEGATE_SIMILARITY_THRESHOLD", 0.95)

	errorLogPath := getenvDefault("FACEGATE_ERROR_LOG_PATH", "./error_logs.csv")
	allowedOrigins := splitCSV(os.Getenv("FACEGATE_ALLOWED_ORIGINS"))

	return Config{
		HTTPAddr: addr,
		Env:      env,
		DBPath:   dbPath,

		UploadDir: uploadDir,

		EmbedderURL:    embedderURL,
		EmbedTimeoutS:  embedTimeout,
		MockModel:      mockModel,
		SimThreshold:   threshold,
		ErrorLogPath:   errorLogPath,
		AllowedOrigins: allowedOrigins,
	}
}

func getenvDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}

func getenvFloat32(key string, def float32) float32 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil || f < -1 || f > 1 {
		return def
	}
	return float32(f)
}

func getenvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return strings.EqualFold(v, "true") || v == "1"
}

func splitCSV(v string) []string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
