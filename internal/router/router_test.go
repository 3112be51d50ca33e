package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"dog-knowledge-base/internal/middleware"
	"dog-knowledge-base/internal/ports/source"
	"dog-knowledge-base/internal/router"
)

// stubSource sirve un payload fijo y puede ponerse en modo fallo.
type stubSource struct {
	calls   atomic.Int64
	failing atomic.Bool
}

func (s *stubSource) FetchBreeds(context.Context) ([]source.RawBreed, error) {
	s.calls.Add(1)
	if s.failing.Load() {
		return nil, errors.New("upstream down")
	}
	return []source.RawBreed{
		{
			"name":        "Siberian Husky",
			"bred_for":    "Sled pulling",
			"breed_group": "Working",
			"life_span":   "12 - 14 years",
			"temperament": "Outgoing, Friendly",
			"weight":      map[string]any{"metric": "16 - 27"},
			"height":      map[string]any{"metric": "51 - 60"},
			"image":       map[string]any{"url": "https://cdn2.thedogapi.com/images/husky.jpg"},
			"id":          float64(226),
		},
		{
			"name":      "Labrador Retriever",
			"life_span": "10 - 13 years",
			"weight":    map[string]any{"metric": "20 - 30"},
			// sin height ni image
			"id": float64(149),
		},
		{"name": "Bulldog", "id": float64(42)},
		// variante regional con nombre duplicado
		{"name": "Bulldog", "origin": "France", "id": float64(43)},
	}, nil
}

func newTestServer(t *testing.T, src source.BreedSource) *httptest.Server {
	t.Helper()
	h, err := router.NewRouter(router.Options{Source: src})
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func TestNewRouter_InvalidUpstreamURLFailsFast(t *testing.T) {
	// Sin fuente inyectada y con base URL rota, el router no puede armar el
	// cliente upstream: debe fallar en el arranque, no con panics por request.
	t.Setenv("DOG_API_BASE_URL", ":// not a url")

	if _, err := router.NewRouter(router.Options{}); err == nil {
		t.Fatalf("expected error for malformed upstream base url")
	}
}

func TestNewRouter_DefaultUpstreamConfig(t *testing.T) {
	t.Setenv("DOG_API_BASE_URL", "")
	t.Setenv("DOG_API_KEY", "")

	if _, err := router.NewRouter(router.Options{}); err != nil {
		t.Fatalf("default config must build a router, got %v", err)
	}
}

func TestHTTP_SearchFlow(t *testing.T) {
	src := &stubSource{}
	ts := newTestServer(t, src)

	// Catálogo completo
	{
		st, body := doReq(t, ts.URL, "GET", "/breeds", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing breeds, got %d body=%s", st, string(body))
		}
		var list []map[string]any
		mustUnmarshal(t, body, &list)
		if len(list) != 4 {
			t.Fatalf("expected 4 breeds, got %d", len(list))
		}
	}

	// Búsqueda por substring, case-insensitive
	{
		st, body := doReq(t, ts.URL, "GET", "/breeds/search?q=husky", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 search, got %d body=%s", st, string(body))
		}
		var resp struct {
			Count   int `json:"count"`
			Results []struct {
				Name string `json:"name"`
			} `json:"results"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.Count != 1 || len(resp.Results) != 1 || resp.Results[0].Name != "Siberian Husky" {
			t.Fatalf("expected exactly [Siberian Husky], got %s", string(body))
		}
	}

	// Query vacío (y solo-espacios, que el borde trimea) => cero filas
	for _, q := range []string{"", "q=", "q=%20%20"} {
		path := "/breeds/search"
		if q != "" {
			path += "?" + q
		}
		st, body := doReq(t, ts.URL, "GET", path, "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 empty search, got %d", st)
		}
		var resp struct {
			Count int `json:"count"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.Count != 0 {
			t.Fatalf("empty query must return zero rows, got %d (path=%q)", resp.Count, path)
		}
	}

	// Memoización: todo lo anterior salió de un único fetch upstream
	if got := src.calls.Load(); got != 1 {
		t.Fatalf("expected exactly 1 upstream fetch, got %d", got)
	}
}

func TestHTTP_BreedDetailDisplayFields(t *testing.T) {
	src := &stubSource{}
	ts := newTestServer(t, src)

	st, body := doReq(t, ts.URL, "GET", "/breeds/Labrador%20Retriever", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 detail, got %d body=%s", st, string(body))
	}

	var resp struct {
		Name            string `json:"name"`
		WeightDisplay   string `json:"weight_display"`
		HeightDisplay   string `json:"height_display"`
		LifeSpanDisplay string `json:"life_span_display"`
	}
	mustUnmarshal(t, body, &resp)

	if resp.Name != "Labrador Retriever" {
		t.Fatalf("Name = %q", resp.Name)
	}
	// weight "20 - 30" => "20"; height faltante => sentinel; life span verbatim
	if resp.WeightDisplay != "20" {
		t.Fatalf("WeightDisplay = %q, want \"20\"", resp.WeightDisplay)
	}
	if resp.HeightDisplay != "—" {
		t.Fatalf("HeightDisplay = %q, want sentinel", resp.HeightDisplay)
	}
	if resp.LifeSpanDisplay != "10 - 13 years" {
		t.Fatalf("LifeSpanDisplay = %q, want verbatim range", resp.LifeSpanDisplay)
	}
}

func TestHTTP_BreedDetailDuplicateNameTakesFirst(t *testing.T) {
	src := &stubSource{}
	ts := newTestServer(t, src)

	st, body := doReq(t, ts.URL, "GET", "/breeds/Bulldog", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 detail, got %d", st)
	}

	var resp struct {
		BreedID string `json:"breed_id"`
		Origin  string `json:"origin"`
	}
	mustUnmarshal(t, body, &resp)

	// Con duplicados gana la primera ocurrencia en orden upstream.
	if resp.BreedID != "42" || resp.Origin != "" {
		t.Fatalf("expected first Bulldog (id 42), got %s", string(body))
	}
}

func TestHTTP_BreedDetailNotFound(t *testing.T) {
	src := &stubSource{}
	ts := newTestServer(t, src)

	st, _ := doReq(t, ts.URL, "GET", "/breeds/unicornio", "", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown breed, got %d", st)
	}
}

func TestHTTP_UpstreamFailureIsNeverPartial(t *testing.T) {
	src := &stubSource{}
	src.failing.Store(true)
	ts := newTestServer(t, src)

	for _, path := range []string{"/breeds", "/breeds/search?q=husky", "/breeds/Bulldog"} {
		st, _ := doReq(t, ts.URL, "GET", path, "", nil)
		if st != http.StatusBadGateway {
			t.Fatalf("expected 502 while upstream down (path=%q), got %d", path, st)
		}
	}

	// El fallo no queda cacheado: al recuperarse upstream, sirve sin refresh.
	src.failing.Store(false)
	st, _ := doReq(t, ts.URL, "GET", "/breeds", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 after upstream recovery, got %d", st)
	}
}

func TestHTTP_CatalogRefreshForcesRefetch(t *testing.T) {
	src := &stubSource{}
	ts := newTestServer(t, src)

	if st, _ := doReq(t, ts.URL, "GET", "/breeds", "", nil); st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "POST", "/catalog/refresh", "", nil); st != http.StatusNoContent {
		t.Fatalf("expected 204 refresh, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/breeds", "", nil); st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}

	if got := src.calls.Load(); got != 2 {
		t.Fatalf("refresh must open a new epoch (2 fetches), got %d", got)
	}
}

func TestHTTP_FeedbackIsSessionScoped(t *testing.T) {
	src := &stubSource{}
	ts := newTestServer(t, src)

	// Sin header: el middleware genera una sesión y la devuelve.
	sessionID := ""
	{
		req, err := http.NewRequest("POST", ts.URL+"/feedback", bytes.NewReader([]byte(`{"message":"add more breeds"}`)))
		if err != nil {
			t.Fatalf("new request: %v", err)
		}
		req.Header.Set("Content-Type", "application/json")

		res, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("do request: %v", err)
		}
		defer res.Body.Close()

		if res.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201 adding feedback, got %d", res.StatusCode)
		}
		sessionID = res.Header.Get(middleware.SessionHeader)
		if sessionID == "" {
			t.Fatalf("expected generated session id in response header")
		}
	}

	// La misma sesión ve su nota
	{
		st, body := doReq(t, ts.URL, "GET", "/feedback", sessionID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing feedback, got %d", st)
		}
		var notes []struct {
			Message string `json:"message"`
		}
		mustUnmarshal(t, body, &notes)
		if len(notes) != 1 || notes[0].Message != "add more breeds" {
			t.Fatalf("expected own note, got %s", string(body))
		}
	}

	// Otra sesión no ve nada
	{
		st, body := doReq(t, ts.URL, "GET", "/feedback", "other-session", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var notes []struct{}
		mustUnmarshal(t, body, &notes)
		if len(notes) != 0 {
			t.Fatalf("sessions must be isolated, got %d foreign notes", len(notes))
		}
	}

	// Mensaje vacío => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/feedback", sessionID, map[string]any{"message": "   "})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for blank message, got %d", st)
		}
	}
}

func TestHTTP_Health(t *testing.T) {
	ts := newTestServer(t, &stubSource{})

	st, body := doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d body=%s", st, string(body))
	}
}

func mustUnmarshal(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("unmarshal %s: %v", string(body), err)
	}
}

func doReq(t *testing.T, baseURL, method, path, sessionID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.Header.Set(middleware.SessionHeader, sessionID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
