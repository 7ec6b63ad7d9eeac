package app_test

import (
	"testing"

	"github.com/sree-1908/migo-travelai/internal/app"
	"github.com/sree-1908/migo-travelai/internal/domain"
)

func TestRank_OrderAndTruncation(t *testing.T) {
	features := []domain.Feature{
		{ID: 1, Name: "City Hotel", Tourism: "hotel"},                      // 1
		{ID: 2, Name: "Old Fort", Historic: "fort"},                       // 3
		{ID: 3, Name: "Heritage Museum", Tourism: "museum", Historic: "building"}, // 6
		{ID: 4, Name: "Central Park", Leisure: "park"},                    // 2
		{ID: 5, Name: "Lookout Point", Tourism: "viewpoint"},              // 3
		{ID: 6, Name: "Lake Garden", Leisure: "garden"},                   // 2
		{ID: 7, Name: "Plain Corner"},                                     // 0
	}

	got, rawCount := app.Rank(features)
	if rawCount != 7 {
		t.Fatalf("rawCount = %d, want 7", rawCount)
	}
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}

	wantOrder := []int64{3, 2, 5, 4, 6}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Fatalf("position %d: id = %d, want %d (got %+v)", i, got[i].ID, id, got)
		}
	}
}

func TestRank_StableOnTies(t *testing.T) {
	// Same score; provider order must survive the sort.
	features := []domain.Feature{
		{ID: 10, Name: "First Fort", Historic: "fort"},
		{ID: 11, Name: "Second Fort", Historic: "fort"},
		{ID: 12, Name: "Third Fort", Historic: "fort"},
	}
	got, _ := app.Rank(features)
	for i, id := range []int64{10, 11, 12} {
		if got[i].ID != id {
			t.Fatalf("tie order broken: position %d has id %d", i, got[i].ID)
		}
	}
}

func TestRank_DropsUnnamed(t *testing.T) {
	got, rawCount := app.Rank([]domain.Feature{
		{ID: 1, Historic: "fort"}, // no name
		{ID: 2, Name: "Named Fort", Historic: "fort"},
	})
	if rawCount != 1 || len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("got %+v rawCount=%d, want only the named fort", got, rawCount)
	}
}

func TestRank_WorshipDenylist(t *testing.T) {
	features := []domain.Feature{
		// Generic local worship site, no tourism tag: dropped.
		{ID: 1, Name: "Jama Masjid Lane", Amenity: "place_of_worship"},
		{ID: 2, Name: "Old Church Corner", Amenity: "place_of_worship"},
		// Tagged as a tourist attraction: kept despite the word.
		{ID: 3, Name: "St. Mark's Church", Amenity: "place_of_worship", Tourism: "attraction"},
		// Worship site without a denylisted word: kept.
		{ID: 4, Name: "Shiva Temple", Amenity: "place_of_worship"},
	}
	got, rawCount := app.Rank(features)
	if rawCount != 2 {
		t.Fatalf("rawCount = %d, want 2", rawCount)
	}
	ids := map[int64]bool{}
	for _, c := range got {
		ids[c.ID] = true
	}
	if !ids[3] || !ids[4] || ids[1] || ids[2] {
		t.Fatalf("unexpected survivors: %+v", got)
	}
}

func TestRank_EmptyInput(t *testing.T) {
	got, rawCount := app.Rank(nil)
	if len(got) != 0 || rawCount != 0 {
		t.Fatalf("empty input should yield empty output, got %+v (%d)", got, rawCount)
	}
}
