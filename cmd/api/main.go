package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	server "github.com/sree-1908/migo-travelai/internal/adapters/http_server"
	"github.com/sree-1908/migo-travelai/internal/adapters/nominatim"
	"github.com/sree-1908/migo-travelai/internal/adapters/observability"
	"github.com/sree-1908/migo-travelai/internal/adapters/openmeteo"
	"github.com/sree-1908/migo-travelai/internal/adapters/overpass"
	redisad "github.com/sree-1908/migo-travelai/internal/adapters/redis"
	"github.com/sree-1908/migo-travelai/internal/app"
	"github.com/sree-1908/migo-travelai/internal/shared"
)

func main() {
	_ = godotenv.Load() // optional .env for local runs
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	geo, err := nominatim.New(cfg.NominatimBase, cfg.ContactUA, cfg.GeocodeRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize geocoder")
	}
	weather := openmeteo.New(cfg.OpenMeteoBase)
	features := overpass.New(cfg.OverpassBase)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	places := app.NewPlacesService(features, cache, cfg.SearchRadiusM, cfg.CacheTTL)
	orch := app.NewOrchestrator(geo, weather, places, cache, cfg.CacheTTL)

	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: orch})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
