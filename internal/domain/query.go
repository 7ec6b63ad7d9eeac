package domain

// TravelStyle is an optional qualitative hint ("peaceful", "trek", ...)
// normalized to a small enum. It shapes presentation, not ranking or cost.
type TravelStyle string

const (
	StyleRelaxed     TravelStyle = "relaxed"
	StyleAdventurous TravelStyle = "adventurous"
	StyleNature      TravelStyle = "nature"
	StyleCultural    TravelStyle = "cultural"
)

// TimeRef says which day the user is asking about.
type TimeRef string

const (
	Today    TimeRef = "today"
	Tomorrow TimeRef = "tomorrow"
)

// StructuredRequest is everything the parser understood from the raw query.
// Built once per request, never mutated afterwards.
//
// Invariant: WantsItinerary implies WantsPlaces (a plan needs candidates).
type StructuredRequest struct {
	RawQuery       string      `json:"rawQuery"`
	PlaceName      string      `json:"placeName,omitempty"`
	Budget         *int        `json:"budget,omitempty"`
	WantsWeather   bool        `json:"wantsWeather"`
	WantsPlaces    bool        `json:"wantsPlaces"`
	WantsItinerary bool        `json:"wantsItinerary"`
	TravelStyle    TravelStyle `json:"travelStyle,omitempty"`
	When           TimeRef     `json:"when"`
}
