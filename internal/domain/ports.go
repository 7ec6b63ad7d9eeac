package domain

import (
	"context"
	"errors"
)

var (
	// ErrPlaceNotFound: the geocoder answered but knows no such place.
	ErrPlaceNotFound = errors.New("place not found")
	// ErrNoAttractions: no candidates left to build a day plan from.
	ErrNoAttractions = errors.New("no suitable attractions to build an itinerary")
)

// Geocoder resolves a free-text place name to coordinates.
type Geocoder interface {
	Resolve(ctx context.Context, place string) (Location, error)
}

// WeatherProvider reports current conditions for a coordinate pair.
type WeatherProvider interface {
	Current(ctx context.Context, lat, lon float64) (Weather, error)
}

// FeatureSource returns raw tagged features around a point. Reachable with
// zero matches is an empty slice, not an error.
type FeatureSource interface {
	Nearby(ctx context.Context, lat, lon float64, radiusMeters int) ([]Feature, error)
}

// Cache is a JSON value cache with per-key TTLs.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
