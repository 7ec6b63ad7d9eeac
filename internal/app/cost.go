package app

import (
	"strings"

	"github.com/sree-1908/migo-travelai/internal/domain"
)

// EstimateCost buckets a candidate into a rough admission-price category.
// Rules run in fixed order and a later match overrides an earlier one, so a
// hotel literally named "Garden Hotel" still prices as a hotel.
func EstimateCost(c domain.Candidate) (domain.CostCategory, int) {
	t := strings.ToLower(c.Tourism)
	l := strings.ToLower(c.Leisure)
	a := strings.ToLower(c.Amenity)
	name := strings.ToLower(c.Name)

	cat, cost := domain.CostLow, 100

	if l == "park" || strings.Contains(name, "park") || strings.Contains(name, "lake") || strings.Contains(name, "garden") {
		cat, cost = domain.CostFreeOrCheap, 50
	}
	if t == "attraction" || t == "museum" || a == "place_of_worship" ||
		strings.Contains(name, "museum") || strings.Contains(name, "temple") || strings.Contains(name, "palace") {
		cat, cost = domain.CostModerate, 200
	}
	if strings.Contains(name, "safari") || strings.Contains(name, "national park") || strings.Contains(name, "zoo") {
		cat, cost = domain.CostHigher, 400
	}
	// Hotels are visitable (cafes, rooftops), not lodging, for day plans.
	if t == "hotel" || strings.Contains(name, "hotel") {
		cat, cost = domain.CostModerate, 200
	}

	return cat, cost
}
