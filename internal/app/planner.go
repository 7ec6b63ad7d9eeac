package app

import (
	"strings"

	"github.com/sree-1908/migo-travelai/internal/domain"
)

// DefaultBudget is assumed when the query named no budget.
const DefaultBudget = 1500

// ComposeDayPlan maps ranked candidates into morning/afternoon/evening slots
// with cost estimates and a running budget balance. budget <= 0 falls back
// to DefaultBudget. Returns domain.ErrNoAttractions when there is nothing
// to plan with.
func ComposeDayPlan(candidates []domain.Candidate, budget int, style domain.TravelStyle) (domain.Itinerary, error) {
	if budget <= 0 {
		budget = DefaultBudget
	}

	// Hotels make poor daytime stops; prefer everything else, but a plan
	// made of hotels beats no plan at all.
	visitable := make([]domain.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if strings.ToLower(c.Tourism) == "hotel" || strings.Contains(strings.ToLower(c.Name), "hotel") {
			continue
		}
		visitable = append(visitable, c)
	}
	if len(visitable) == 0 {
		visitable = candidates
	}
	if len(visitable) == 0 {
		return domain.Itinerary{}, domain.ErrNoAttractions
	}

	if len(visitable) > 3 {
		visitable = visitable[:3]
	}

	it := domain.Itinerary{Budget: budget, TravelStyle: style}
	slots := [3]**domain.DaySlot{&it.Slots.Morning, &it.Slots.Afternoon, &it.Slots.Evening}

	for i, c := range visitable {
		cat, cost := EstimateCost(c)
		if cat == domain.CostSkip {
			// Slot stays empty; later candidates do not shift forward.
			continue
		}
		it.EstimatedAttractionCost += cost
		*slots[i] = &domain.DaySlot{
			Name:          c.Name,
			Tourism:       c.Tourism,
			Amenity:       c.Amenity,
			CostCategory:  cat,
			EstimatedCost: cost,
		}
	}

	it.RemainingBudget = it.Budget - it.EstimatedAttractionCost
	return it, nil
}
