package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sree-1908/migo-travelai/internal/app"
	"github.com/sree-1908/migo-travelai/internal/domain"
)

func TestFindNearby_CachesRankedResult(t *testing.T) {
	src := &fakeFeatures{fs: []domain.Feature{
		{ID: 1, Name: "Old Fort", Historic: "fort"},
		{ID: 2, Name: "City Hotel", Tourism: "hotel"},
	}}
	svc := app.NewPlacesService(src, &fakeCache{}, 15000, 10*time.Minute)
	ctx := context.Background()

	first, rawCount, err := svc.FindNearby(ctx, 12.97, 77.59)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if rawCount != 2 || len(first) != 2 || first[0].ID != 1 {
		t.Fatalf("first call: places=%+v rawCount=%d", first, rawCount)
	}

	second, rawCount2, err := svc.FindNearby(ctx, 12.97, 77.59)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if src.calls != 1 {
		t.Fatalf("source called %d times, want 1 (second hit served from cache)", src.calls)
	}
	if rawCount2 != rawCount || len(second) != len(first) || second[0].ID != first[0].ID {
		t.Fatalf("cached result differs: %+v vs %+v", second, first)
	}

	// A different coordinate pair is a different key.
	if _, _, err := svc.FindNearby(ctx, 13.08, 80.27); err != nil {
		t.Fatalf("err: %v", err)
	}
	if src.calls != 2 {
		t.Fatalf("source called %d times, want 2", src.calls)
	}
}

func TestFindNearby_SourceErrorPassesThrough(t *testing.T) {
	boom := errors.New("gateway timeout")
	svc := app.NewPlacesService(&fakeFeatures{err: boom}, &fakeCache{}, 15000, time.Minute)

	if _, _, err := svc.FindNearby(context.Background(), 0, 0); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want the source error", err)
	}
}
