package testsupport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

// FakeTMDB serves canned catalog responses for tests. Register payloads per
// path before pointing a client at URL.
type FakeTMDB struct {
	URL      string
	server   *httptest.Server
	payloads map[string]any

	// LastQuery holds the query parameters of the most recent request.
	LastQuery url.Values
}

// NewFakeTMDB starts a TMDB stand-in that shuts down with the test. Paths
// without a registered payload return 404 with TMDB's error body shape.
func NewFakeTMDB(t testing.TB) *FakeTMDB {
	t.Helper()

	fake := &FakeTMDB{payloads: make(map[string]any)}
	fake.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fake.LastQuery = r.URL.Query()
		if r.URL.Query().Get("api_key") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		payload, ok := fake.payloads[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"status_code":34,"status_message":"The resource you requested could not be found."}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			t.Errorf("encode fake TMDB payload for %s: %v", r.URL.Path, err)
		}
	}))
	t.Cleanup(fake.server.Close)
	fake.URL = fake.server.URL
	return fake
}

// Handle registers the JSON payload returned for the given path.
func (f *FakeTMDB) Handle(path string, payload any) {
	f.payloads[path] = payload
}
