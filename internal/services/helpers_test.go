package services

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"

	"alfredoptarigan/career-gateway/internal/config"
)

// recordedRequest captures what a stub downstream received.
type recordedRequest struct {
	Method      string
	Path        string
	Query       string
	ContentType string
	Body        []byte
}

type stubDownstream struct {
	*httptest.Server
	calls atomic.Int32

	mu   sync.Mutex
	last recordedRequest
}

func newStubDownstream(t *testing.T, handler http.HandlerFunc) *stubDownstream {
	t.Helper()

	stub := &stubDownstream{}
	stub.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.calls.Add(1)
		body, _ := io.ReadAll(r.Body)

		stub.mu.Lock()
		stub.last = recordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			Query:       r.URL.RawQuery,
			ContentType: r.Header.Get("Content-Type"),
			Body:        body,
		}
		stub.mu.Unlock()

		handler(w, r)
	}))
	t.Cleanup(stub.Close)

	return stub
}

func (s *stubDownstream) Calls() int {
	return int(s.calls.Load())
}

func (s *stubDownstream) Last() recordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func jsonResponse(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func testDeps(services config.ServicesConfig) ForwarderDeps {
	return ForwarderDeps{
		Resolver:   NewEndpointResolver(services),
		HTTPClient: &http.Client{},
		Logger:     zap.NewNop(),
	}
}
