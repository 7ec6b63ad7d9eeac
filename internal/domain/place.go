package domain

// Location is a resolved place name.
type Location struct {
	Lat, Lon    float64
	DisplayName string
}

// CityLabel is the short label shown to the user: the first comma-delimited
// segment of the provider's display name ("Bengaluru, Karnataka, ..." ->
// "Bengaluru").
func (l Location) CityLabel() string {
	for i := 0; i < len(l.DisplayName); i++ {
		if l.DisplayName[i] == ',' {
			return l.DisplayName[:i]
		}
	}
	return l.DisplayName
}

// Feature is one raw tagged element from the points-of-interest provider,
// before any filtering or ranking.
type Feature struct {
	ID       int64
	Name     string
	Tourism  string
	Leisure  string
	Amenity  string
	Historic string
	Lat, Lon float64
}

// Candidate is a ranked, named point of interest. The ranking score is an
// internal artifact and is not part of this shape.
type Candidate struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Tourism  string  `json:"tourism,omitempty"`
	Leisure  string  `json:"leisure,omitempty"`
	Amenity  string  `json:"amenity,omitempty"`
	Historic string  `json:"historic,omitempty"`
	Lat      float64 `json:"lat,omitempty"`
	Lon      float64 `json:"lon,omitempty"`
}

// Weather is the current-conditions report for a coordinate pair.
// RainChance is nil when the provider sent no precipitation data.
type Weather struct {
	TemperatureC float64
	Description  string
	RainChance   *int
}
