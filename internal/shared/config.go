package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv        string
	HTTPAddr      string
	MetricsAddr   string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	NominatimBase string
	OpenMeteoBase string
	OverpassBase  string
	ContactUA     string // identifying User-Agent, required by Nominatim
	GeocodeRPS    int
	SearchRadiusM int
	CacheTTL      time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:        env("APP_ENV", "prod"),
		HTTPAddr:      env("HTTP_ADDR", ":3000"),
		MetricsAddr:   env("METRICS_ADDR", ""),
		RedisAddr:     env("REDIS_ADDR", "localhost:6379"),
		RedisPass:     env("REDIS_PASSWORD", ""),
		RedisDB:       atoi("REDIS_DB", 0),
		NominatimBase: env("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
		OpenMeteoBase: env("OPENMETEO_BASE_URL", "https://api.open-meteo.com"),
		OverpassBase:  env("OVERPASS_BASE_URL", "https://overpass-api.de"),
		ContactUA:     env("CONTACT_USER_AGENT", "MigoTravel/1.0"),
		GeocodeRPS:    atoi("GEOCODE_RPS", 1),
		SearchRadiusM: atoi("SEARCH_RADIUS_METERS", 15000),
		CacheTTL:      time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
	}
	if os.Getenv("CONTACT_USER_AGENT") == "" {
		log.Warn().Msg("CONTACT_USER_AGENT not set; using default (set a contact per Nominatim policy)")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
