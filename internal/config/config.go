package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DBDSN           string
	MediaDir        string
	LogFile         string
	WhatsAppNumber  string // checkout handoff recipient
	CatalogFallback string // "" | "fixture"
}

func Load() Config {
	// .env is optional; real env always wins.
	_ = godotenv.Load()

	cfg := Config{
		Port:            getenv("PORT", "8080"),
		DBDSN:           getenv("DB_DSN", "threadline.db"),
		MediaDir:        getenv("MEDIA_DIR", "./web/media"),
		LogFile:         getenv("LOG_FILE", "./threadline.log"),
		WhatsAppNumber:  getenv("WHATSAPP_NUMBER", "919876543210"),
		CatalogFallback: getenv("CATALOG_FALLBACK", ""),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s MEDIA_DIR=%s LOG_FILE=%s CATALOG_FALLBACK=%s",
		cfg.Port, cfg.DBDSN, cfg.MediaDir, cfg.LogFile, cfg.CatalogFallback)
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
