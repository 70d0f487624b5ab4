package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is built once at startup and injected; nothing reads the
// environment after Load returns.
type Config struct {
	Port string

	MongoURI    string
	MongoDBName string

	JWTSecret string

	// LLM-backed CV extraction. Empty GroqAPIKey (or missing vertex project)
	// disables AI extraction; the deterministic fallback still runs.
	LLMProvider    string // "groq" (default) or "vertex"
	GroqAPIKey     string
	GroqModel      string
	VertexProject  string
	VertexLocation string
	VertexModel    string

	// External job search. Empty key disables /api/jobs fetches.
	RapidAPIKey string

	// Upload storage: "memory" (default, ephemeral) or "gcs".
	StorageBackend string
	GCSBucket      string

	MaxUploadBytes int64
	BcryptCost     int
}

const defaultMaxUploadBytes = 10 << 20 // 10MB

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getenv("PORT", "8000"),
		MongoURI:       os.Getenv("MONGO_URI"),
		MongoDBName:    getenv("MONGO_DB", "resumatch"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		LLMProvider:    getenv("LLM_PROVIDER", "groq"),
		GroqAPIKey:     os.Getenv("GROQ_API_KEY"),
		GroqModel:      getenv("GROQ_MODEL", "llama-3.1-8b-instant"),
		VertexProject:  os.Getenv("VERTEX_PROJECT_ID"),
		VertexLocation: getenv("VERTEX_LOCATION", "us-central1"),
		VertexModel:    getenv("VERTEX_MODEL", "gemini-1.5-flash"),
		RapidAPIKey:    os.Getenv("RAPID_API_KEY"),
		StorageBackend: getenv("STORAGE_BACKEND", "memory"),
		GCSBucket:      os.Getenv("GCS_BUCKET"),
		MaxUploadBytes: defaultMaxUploadBytes,
		BcryptCost:     0, // bcrypt.DefaultCost
	}

	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return nil, errors.New("MAX_UPLOAD_BYTES must be a positive integer")
		}
		cfg.MaxUploadBytes = n
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.New("BCRYPT_COST must be an integer")
		}
		cfg.BcryptCost = n
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI environment variable is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET environment variable is not set")
	}
	if cfg.StorageBackend == "gcs" && cfg.GCSBucket == "" {
		return nil, errors.New("GCS_BUCKET is required when STORAGE_BACKEND=gcs")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
