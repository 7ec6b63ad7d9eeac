package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sree-1908/migo-travelai/internal/adapters/observability"
	"github.com/sree-1908/migo-travelai/internal/domain"
)

// Client queries the Overpass API for tourist-relevant OSM features. It
// returns raw tagged features; filtering and ranking happen upstream.
type Client struct {
	base string
	hc   *http.Client
}

func New(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		// Overpass itself gets 25s; leave headroom for transport.
		hc: &http.Client{Timeout: 30 * time.Second},
	}
}

// buildQuery asks for real attractions (tourism), historic sites, and parks
// or gardens, as nodes, ways, and relations with center coordinates.
func buildQuery(lat, lon float64, radiusMeters int) string {
	var b strings.Builder
	b.WriteString("[out:json][timeout:25];\n(\n")
	for _, sel := range []string{
		`["tourism"~"attraction|museum|gallery|zoo|theme_park|viewpoint|hotel"]`,
		`["historic"]`,
		`["leisure"~"park|garden"]`,
	} {
		for _, kind := range []string{"node", "way", "relation"} {
			fmt.Fprintf(&b, "  %s(around:%d,%f,%f)%s;\n", kind, radiusMeters, lat, lon, sel)
		}
	}
	b.WriteString(");\nout center 40;\n")
	return b.String()
}

func (c *Client) Nearby(ctx context.Context, lat, lon float64, radiusMeters int) ([]domain.Feature, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/interpreter",
		strings.NewReader(buildQuery(lat, lon, radiusMeters)))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "text/plain")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("overpass", "interpreter", 0, time.Since(start))
		return nil, err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("overpass", "interpreter", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass: bad status %d", resp.StatusCode)
	}

	var body struct {
		Elements []struct {
			ID     int64   `json:"id"`
			Lat    float64 `json:"lat"`
			Lon    float64 `json:"lon"`
			Center *struct {
				Lat float64 `json:"lat"`
				Lon float64 `json:"lon"`
			} `json:"center"`
			Tags map[string]string `json:"tags"`
		} `json:"elements"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	features := make([]domain.Feature, 0, len(body.Elements))
	for _, el := range body.Elements {
		f := domain.Feature{
			ID:       el.ID,
			Name:     el.Tags["name"],
			Tourism:  el.Tags["tourism"],
			Leisure:  el.Tags["leisure"],
			Amenity:  el.Tags["amenity"],
			Historic: el.Tags["historic"],
			Lat:      el.Lat,
			Lon:      el.Lon,
		}
		// Ways and relations carry their coordinates in "center".
		if f.Lat == 0 && f.Lon == 0 && el.Center != nil {
			f.Lat, f.Lon = el.Center.Lat, el.Center.Lon
		}
		features = append(features, f)
	}
	return features, nil
}
