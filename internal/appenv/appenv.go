// Package appenv reads deployment defaults from the application's .env file,
// the same file the Flask backend loads on boot.
package appenv

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	DefaultAppName = "neno-ia"
	DefaultRegion  = "gru"
)

// App describes the deploy target shown by doctor and providers output.
type App struct {
	Name   string
	Region string
}

// Load reads .env from dir, if present, and resolves the app name and region.
// Process environment wins over the file; missing values fall back to the
// defaults baked into the config templates.
func Load(dir string) App {
	vals, err := godotenv.Read(filepath.Join(dir, ".env"))
	if err != nil {
		vals = map[string]string{}
	}

	lookup := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		if v := vals[key]; v != "" {
			return v
		}
		return fallback
	}

	return App{
		Name:   lookup("NENO_APP_NAME", DefaultAppName),
		Region: lookup("NENO_REGION", DefaultRegion),
	}
}
