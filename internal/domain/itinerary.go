package domain

// CostCategory is a rough admission-price bucket, not real pricing.
type CostCategory string

const (
	CostFreeOrCheap CostCategory = "free_or_cheap"
	CostLow         CostCategory = "low"
	CostModerate    CostCategory = "moderate"
	CostHigher      CostCategory = "higher"
	// CostSkip drops a candidate from its slot without shifting the others.
	// No estimator rule emits it today.
	CostSkip CostCategory = "skip"
)

// DaySlot is one filled time window of the day plan.
type DaySlot struct {
	Name          string       `json:"name"`
	Tourism       string       `json:"tourism,omitempty"`
	Amenity       string       `json:"amenity,omitempty"`
	CostCategory  CostCategory `json:"costCategory"`
	EstimatedCost int          `json:"estimatedCost"`
}

// Slots holds the three fixed windows. A nil entry means the window stayed
// empty (not enough candidates, or a skip-category candidate held the spot).
type Slots struct {
	Morning   *DaySlot `json:"morning"`
	Afternoon *DaySlot `json:"afternoon"`
	Evening   *DaySlot `json:"evening"`
}

// Itinerary is a composed one-day plan with a running budget balance.
// RemainingBudget stays signed; clamping to zero is a display concern.
type Itinerary struct {
	Budget                  int         `json:"budget"`
	EstimatedAttractionCost int         `json:"estimatedAttractionCost"`
	RemainingBudget         int         `json:"remainingBudget"`
	TravelStyle             TravelStyle `json:"travelStyle,omitempty"`
	Slots                   Slots       `json:"slots"`
}
