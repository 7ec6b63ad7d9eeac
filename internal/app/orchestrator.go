package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/sree-1908/migo-travelai/internal/domain"
)

// Orchestrator runs one query through the pipeline: parse, geocode, then
// weather and places in parallel, then the day plan, then the rendered
// answer. Only a failed geocode aborts; every later failure is recorded in
// its outcome and the answer degrades per step.
type Orchestrator struct {
	geo      domain.Geocoder
	weather  domain.WeatherProvider
	places   *PlacesService
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewOrchestrator(geo domain.Geocoder, weather domain.WeatherProvider, places *PlacesService, cache domain.Cache, ttl time.Duration) *Orchestrator {
	return &Orchestrator{geo: geo, weather: weather, places: places, cache: cache, cacheTTL: ttl}
}

func (o *Orchestrator) Handle(ctx context.Context, query string) domain.Response {
	parsed := Parse(query)
	resp := domain.Response{Parsed: parsed}

	if parsed.PlaceName != "" {
		resp.Geocode = o.resolvePlace(ctx, parsed.PlaceName)
	}

	cityLabel := "this place"
	if resp.Geocode != nil && resp.Geocode.OK {
		cityLabel = domain.Location{DisplayName: resp.Geocode.DisplayName}.CityLabel()
	} else if parsed.PlaceName != "" {
		cityLabel = parsed.PlaceName
	}

	// A named place we cannot resolve ends the pipeline with a remediation
	// hint; nothing downstream can run without coordinates.
	if parsed.PlaceName != "" && (resp.Geocode == nil || !resp.Geocode.OK) {
		resp.Answer = renderPlaceNotFound(parsed.PlaceName)
		return resp
	}

	geoOK := resp.Geocode != nil && resp.Geocode.OK

	// Weather and places only depend on geocoding, not on each other.
	var g errgroup.Group
	if parsed.WantsWeather && geoOK {
		lat, lon := resp.Geocode.Lat, resp.Geocode.Lon
		g.Go(func() error {
			resp.Weather = o.currentWeather(ctx, lat, lon)
			return nil
		})
	}
	if parsed.WantsPlaces && geoOK {
		lat, lon := resp.Geocode.Lat, resp.Geocode.Lon
		g.Go(func() error {
			resp.Places = o.findPlaces(ctx, lat, lon)
			return nil
		})
	}
	_ = g.Wait() // goroutines record their own failures

	if parsed.WantsItinerary && resp.Places != nil && resp.Places.OK && len(resp.Places.Places) > 0 {
		budget := 0
		if parsed.Budget != nil {
			budget = *parsed.Budget
		}
		it, err := ComposeDayPlan(resp.Places.Places, budget, parsed.TravelStyle)
		if err != nil {
			resp.Itinerary = &domain.ItineraryOutcome{Error: err.Error()}
		} else {
			resp.Itinerary = &domain.ItineraryOutcome{OK: true, Itinerary: it}
		}
	}

	resp.Answer = renderAnswer(parsed, cityLabel, resp)
	return resp
}

func (o *Orchestrator) resolvePlace(ctx context.Context, name string) *domain.GeoOutcome {
	key := "geo:" + strings.ToLower(name)
	var loc domain.Location
	ok, _ := o.cache.Get(ctx, key, &loc)
	if !ok {
		var err error
		loc, err = o.geo.Resolve(ctx, name)
		if errors.Is(err, domain.ErrPlaceNotFound) {
			return &domain.GeoOutcome{PlaceInput: name, NotFound: true,
				Error: fmt.Sprintf("no results found for %q", name)}
		}
		if err != nil {
			log.Warn().Err(err).Str("place", name).Msg("geocoding failed")
			return &domain.GeoOutcome{PlaceInput: name, Error: "failed to contact geocoding service"}
		}
		_ = o.cache.Set(ctx, key, loc, int(o.cacheTTL.Seconds()))
	}
	return &domain.GeoOutcome{
		OK:          true,
		PlaceInput:  name,
		Lat:         loc.Lat,
		Lon:         loc.Lon,
		DisplayName: loc.DisplayName,
	}
}

func (o *Orchestrator) currentWeather(ctx context.Context, lat, lon float64) *domain.WeatherOutcome {
	key := fmt.Sprintf("wx:%.4f:%.4f", lat, lon)
	var w domain.Weather
	ok, _ := o.cache.Get(ctx, key, &w)
	if !ok {
		var err error
		w, err = o.weather.Current(ctx, lat, lon)
		if err != nil {
			log.Warn().Err(err).Msg("weather lookup failed")
			return &domain.WeatherOutcome{Error: "failed to contact weather service"}
		}
		_ = o.cache.Set(ctx, key, w, int(o.cacheTTL.Seconds()))
	}
	return &domain.WeatherOutcome{
		OK:           true,
		TemperatureC: w.TemperatureC,
		Description:  w.Description,
		RainChance:   w.RainChance,
	}
}

func (o *Orchestrator) findPlaces(ctx context.Context, lat, lon float64) *domain.PlacesOutcome {
	places, rawCount, err := o.places.FindNearby(ctx, lat, lon)
	if err != nil {
		log.Warn().Err(err).Msg("places lookup failed")
		return &domain.PlacesOutcome{Error: "failed to contact places service"}
	}
	return &domain.PlacesOutcome{OK: true, Places: places, RawCount: rawCount}
}
