package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sree-1908/migo-travelai/internal/adapters/observability"
	"github.com/sree-1908/migo-travelai/internal/domain"
)

// Client fetches current conditions from Open-Meteo. No API key, no rate
// limit headaches; a failed call is non-fatal upstream so one bounded
// attempt is enough.
type Client struct {
	base string
	hc   *http.Client
}

func New(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) Current(ctx context.Context, lat, lon float64) (domain.Weather, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("current_weather", "true")
	q.Set("hourly", "precipitation_probability")
	q.Set("timezone", "auto")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/v1/forecast?"+q.Encode(), nil)
	if err != nil {
		return domain.Weather{}, err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("openmeteo", "forecast", 0, time.Since(start))
		return domain.Weather{}, err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("openmeteo", "forecast", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return domain.Weather{}, fmt.Errorf("openmeteo: bad status %d", resp.StatusCode)
	}

	var body struct {
		CurrentWeather *struct {
			Temperature float64 `json:"temperature"`
			WeatherCode int     `json:"weathercode"`
		} `json:"current_weather"`
		Hourly struct {
			PrecipitationProbability []int `json:"precipitation_probability"`
		} `json:"hourly"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Weather{}, err
	}
	if body.CurrentWeather == nil {
		return domain.Weather{}, fmt.Errorf("openmeteo: no current weather data returned")
	}

	w := domain.Weather{
		TemperatureC: body.CurrentWeather.Temperature,
		Description:  describe(body.CurrentWeather.WeatherCode),
	}
	if len(body.Hourly.PrecipitationProbability) > 0 {
		// First hourly value is a fair approximation of "right now".
		rc := body.Hourly.PrecipitationProbability[0]
		w.RainChance = &rc
	}
	return w, nil
}

// describe maps WMO weather codes to a short phrase. Unmapped codes fall to
// the catch-all.
func describe(code int) string {
	switch code {
	case 0:
		return "clear sky"
	case 1, 2:
		return "mainly clear"
	case 3:
		return "overcast"
	case 45, 48:
		return "foggy"
	case 51, 53, 55:
		return "drizzle"
	case 61, 63, 65:
		return "rain"
	case 71, 73, 75:
		return "snow"
	case 95, 96, 99:
		return "thunderstorms"
	}
	return "variable conditions"
}
