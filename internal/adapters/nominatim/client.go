package nominatim

import (
	"context"
	crand "crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/sree-1908/migo-travelai/internal/adapters/observability"
	"github.com/sree-1908/migo-travelai/internal/domain"
)

// Client geocodes place names through Nominatim (OpenStreetMap). The usage
// policy demands an identifying User-Agent and at most one request per
// second, so the limiter defaults accordingly.
type Client struct {
	base string
	hc   *http.Client
	ua   string
	rl   *rate.Limiter
}

func New(base, userAgent string, rps int) (*Client, error) {
	if userAgent == "" {
		return nil, fmt.Errorf("nominatim: an identifying User-Agent is required")
	}
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		ua:   userAgent,
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

type searchHit struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Resolve returns the best match for a free-text place name.
// domain.ErrPlaceNotFound means the service answered but knows no such place.
func (c *Client) Resolve(ctx context.Context, place string) (domain.Location, error) {
	place = strings.TrimSpace(place)
	if place == "" {
		return domain.Location{}, fmt.Errorf("nominatim: empty place name")
	}

	q := url.Values{}
	q.Set("q", place)
	q.Set("format", "json")
	q.Set("limit", "1")

	var hits []searchHit
	if err := c.getJSON(ctx, c.base+"/search?"+q.Encode(), &hits); err != nil {
		return domain.Location{}, err
	}
	if len(hits) == 0 {
		return domain.Location{}, domain.ErrPlaceNotFound
	}

	lat, err := strconv.ParseFloat(hits[0].Lat, 64)
	if err != nil {
		return domain.Location{}, fmt.Errorf("nominatim: bad latitude %q", hits[0].Lat)
	}
	lon, err := strconv.ParseFloat(hits[0].Lon, 64)
	if err != nil {
		return domain.Location{}, fmt.Errorf("nominatim: bad longitude %q", hits[0].Lon)
	}
	return domain.Location{Lat: lat, Lon: lon, DisplayName: hits[0].DisplayName}, nil
}

// getJSON performs a rate-limited GET with retries on 429 and transient 5xx,
// honoring Retry-After when the server provides one.
func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return err
		}
		req.Header.Set("User-Agent", c.ua)
		req.Header.Set("Accept", "application/json")

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			observability.ObserveExternal("nominatim", "search", 0, time.Since(start))
			lastErr = err
			if sleepCtx(ctx, backoff(attempt)) {
				continue
			}
			return ctx.Err()
		}
		observability.ObserveExternal("nominatim", "search", resp.StatusCode, time.Since(start))

		switch {
		case resp.StatusCode == http.StatusOK:
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			return err

		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(attempt)
			}
			lastErr = fmt.Errorf("nominatim: remote %d", resp.StatusCode)
			if sleepCtx(ctx, wait) {
				continue
			}
			return ctx.Err()

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return fmt.Errorf("nominatim: bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
	}
	return lastErr
}

// sleepCtx waits for d or returns false if ctx is done first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses a Retry-After header in either seconds or HTTP-date
// form. 0 means absent or unusable.
func retryAfter(resp *http.Response) time.Duration {
	h := strings.TrimSpace(resp.Header.Get("Retry-After"))
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(h); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff doubles per attempt (200ms, 400ms, ...) with up to +50% jitter.
func backoff(attempt int) time.Duration {
	base := time.Duration(1<<attempt) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	return base + time.Duration(0.5*float64(b[0])/255.0*float64(base))
}
