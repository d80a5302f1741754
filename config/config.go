package config

import (
	"encoding/json"
	"log"
	"os"
	"strings"
)

type Configuration struct {
	ApiPort string `json:"api_port"`

	Database string `json:"database"` // "sqlite3" or "postgres"
	DbHost   string `json:"db_host"`
	DbPort   string `json:"db_port"`
	DbUser   string `json:"db_user"`
	DbName   string `json:"db_name"`
	DbPass   string `json:"db_pass"`

	Security struct {
		JwtSecret      string `json:"jwt_secret"`
		TokenValidDays int    `json:"token_valid_days"`
	} `json:"security"`

	Gemini struct {
		ApiKey           string `json:"api_key"`
		GenerationModels string `json:"generation_models"` // comma separated, tried in order
		EmbeddingModel   string `json:"embedding_model"`
	} `json:"gemini"`

	Media struct {
		CloudName    string `json:"cloud_name"`
		ApiKey       string `json:"api_key"`
		ApiSecret    string `json:"api_secret"`
		UploadPreset string `json:"upload_preset"`
	} `json:"media"`
}

// Get loads the configuration file and applies defaults.
// Secrets can be overridden via env so they stay out of the file:
// FORMFORGE_JWT_SECRET, GEMINI_API_KEY, CLOUDINARY_API_SECRET.
func Get(path string) Configuration {
	b, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	var c Configuration
	if err := json.Unmarshal(b, &c); err != nil {
		log.Fatal(err)
	}

	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.Security.TokenValidDays <= 0 {
		c.Security.TokenValidDays = 7
	}
	if v := getenv("FORMFORGE_JWT_SECRET", ""); v != "" {
		c.Security.JwtSecret = v
	}
	if c.Security.JwtSecret == "" {
		c.Security.JwtSecret = "CHANGE_ME"
	}

	if v := getenv("GEMINI_API_KEY", ""); v != "" {
		c.Gemini.ApiKey = v
	}
	if c.Gemini.GenerationModels == "" {
		c.Gemini.GenerationModels = "gemini-2.0-flash,gemini-2.5-flash,gemini-2.5-flash-lite,gemini-2.5-pro"
	}
	if c.Gemini.EmbeddingModel == "" {
		c.Gemini.EmbeddingModel = "text-embedding-004"
	}

	if v := getenv("CLOUDINARY_API_SECRET", ""); v != "" {
		c.Media.ApiSecret = v
	}

	return c
}

// GenerationModelList splits the configured model names, preserving order.
func (c Configuration) GenerationModelList() []string {
	var models []string
	for _, name := range strings.Split(c.Gemini.GenerationModels, ",") {
		if name = strings.TrimSpace(name); name != "" {
			models = append(models, name)
		}
	}
	return models
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
