package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpserver "github.com/sree-1908/migo-travelai/internal/adapters/http_server"
	"github.com/sree-1908/migo-travelai/internal/domain"
)

type fakeQueryService struct{ last string }

func (f *fakeQueryService) Handle(ctx context.Context, query string) domain.Response {
	f.last = query
	return domain.Response{
		Answer: "👋 Hi, I'm Migo, your travel companion.",
		Parsed: domain.StructuredRequest{RawQuery: query, WantsPlaces: true, WantsItinerary: true, When: domain.Today},
	}
}

func newTestServer(q httpserver.QueryService) *httptest.Server {
	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{Q: q})
	return httptest.NewServer(srv.Mux())
}

func TestHealth(t *testing.T) {
	ts := newTestServer(&fakeQueryService{})
	defer ts.Close()

	res, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestQuery_OK(t *testing.T) {
	fq := &fakeQueryService{}
	ts := newTestServer(fq)
	defer ts.Close()

	res, err := http.Post(ts.URL+"/api/query", "application/json",
		bytes.NewBufferString(`{"query": "  weather in Mysore  "}`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	if fq.last != "weather in Mysore" {
		t.Fatalf("query not trimmed before dispatch: %q", fq.last)
	}
	var body domain.Response
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Answer == "" {
		t.Fatalf("answer missing: %+v", body)
	}
}

func TestQuery_MissingQuery(t *testing.T) {
	ts := newTestServer(&fakeQueryService{})
	defer ts.Close()

	for _, payload := range []string{`{}`, `{"query": "   "}`, `not json`} {
		res, err := http.Post(ts.URL+"/api/query", "application/json", bytes.NewBufferString(payload))
		if err != nil {
			t.Fatalf("POST: %v", err)
		}
		if res.StatusCode != http.StatusBadRequest {
			t.Fatalf("payload %q: status %d, want 400", payload, res.StatusCode)
		}
		if ct := res.Header.Get("Content-Type"); ct != "application/problem+json" {
			t.Fatalf("payload %q: content-type %q", payload, ct)
		}
		res.Body.Close()
	}
}
