package app

import (
	"context"
	"fmt"
	"time"

	"github.com/sree-1908/migo-travelai/internal/domain"
)

// PlacesService is the points-of-interest collaborator: it pulls raw
// features from the source, applies the ranker, and caches the ranked
// result per coordinate pair.
type PlacesService struct {
	src      domain.FeatureSource
	cache    domain.Cache
	radius   int
	cacheTTL time.Duration
}

func NewPlacesService(src domain.FeatureSource, cache domain.Cache, radiusMeters int, ttl time.Duration) *PlacesService {
	return &PlacesService{src: src, cache: cache, radius: radiusMeters, cacheTTL: ttl}
}

type rankedPlaces struct {
	Places   []domain.Candidate `json:"places"`
	RawCount int                `json:"rawCount"`
}

// FindNearby returns the top-ranked candidates around a point plus the count
// of features that survived filtering. A reachable provider with zero
// matches yields an empty list, not an error.
func (s *PlacesService) FindNearby(ctx context.Context, lat, lon float64) ([]domain.Candidate, int, error) {
	key := fmt.Sprintf("poi:%.4f:%.4f:%d", lat, lon, s.radius)
	var cached rankedPlaces
	if ok, _ := s.cache.Get(ctx, key, &cached); ok {
		return cached.Places, cached.RawCount, nil
	}

	features, err := s.src.Nearby(ctx, lat, lon, s.radius)
	if err != nil {
		return nil, 0, err
	}
	places, rawCount := Rank(features)

	_ = s.cache.Set(ctx, key, rankedPlaces{Places: places, RawCount: rawCount}, int(s.cacheTTL.Seconds()))
	return places, rawCount, nil
}
