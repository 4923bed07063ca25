package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"example.com/bookstore-storefront/internal/infra/localstore"
)

// Config is read once at startup from the environment, with a .env file as
// an optional local override.
type Config struct {
	Port string

	// CatalogAPIURL is the base URL of the remote catalog API. Empty means
	// offline mode: the built-in mock catalog serves every read.
	CatalogAPIURL string

	CartFile string

	ListStale   time.Duration
	SearchStale time.Duration
	DetailStale time.Duration

	CarouselInterval time.Duration
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:             getenv("APP_PORT", "8080"),
		CatalogAPIURL:    getenv("CATALOG_API_URL", ""),
		CartFile:         getenv("CART_FILE", localstore.DefaultPath()),
		ListStale:        getduration("CATALOG_LIST_STALE", 5*time.Minute),
		SearchStale:      getduration("CATALOG_SEARCH_STALE", 2*time.Minute),
		DetailStale:      getduration("CATALOG_DETAIL_STALE", 10*time.Minute),
		CarouselInterval: getduration("CAROUSEL_INTERVAL", 5*time.Second),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getduration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("config: invalid %s=%q, using %s", k, v, def)
		return def
	}
	return d
}
