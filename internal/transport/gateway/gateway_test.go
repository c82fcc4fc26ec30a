package gateway

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestTransport(routes Routes) *HTTPTransport {
	h := &HTTPTransport{
		router: newRouter(),
		routes: routes,
		client: &http.Client{},
	}
	h.RegisterRoutes()

	return h
}

func TestProxy_UnknownService(t *testing.T) {
	calls := 0
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer backend.Close()

	h := newTestTransport(Routes{"customer": backend.URL})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/unknownservice/x", nil)
	h.router.ServeHTTP(w, r)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
	if calls != 0 {
		t.Errorf("expected no outbound call, got %d", calls)
	}
	if !strings.Contains(w.Body.String(), "service not found") {
		t.Errorf("expected a descriptive body, got %q", w.Body.String())
	}
}

func TestProxy_ForwardsRequestVerbatim(t *testing.T) {
	var gotMethod, gotPath, gotBody, gotHeader, gotQuery string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotHeader = r.Header.Get("X-Custom")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)

		w.Header().Set("X-Backend", "order-svc")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`"ok"`))
	}))
	defer backend.Close()

	h := newTestTransport(Routes{"customer": backend.URL})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPut, "/customer/abc?x=1", strings.NewReader(`{"x":1}`))
	r.Header.Set("X-Custom", "value")
	h.router.ServeHTTP(w, r)

	if gotMethod != http.MethodPut {
		t.Errorf("expected method PUT, got %s", gotMethod)
	}
	if gotPath != "/customer/abc" {
		t.Errorf("expected path /customer/abc, got %s", gotPath)
	}
	if gotQuery != "x=1" {
		t.Errorf("expected query x=1, got %s", gotQuery)
	}
	if gotBody != `{"x":1}` {
		t.Errorf("expected body to be forwarded verbatim, got %q", gotBody)
	}
	if gotHeader != "value" {
		t.Errorf("expected X-Custom header to be forwarded, got %q", gotHeader)
	}

	if w.Code != http.StatusCreated {
		t.Errorf("expected mirrored status 201, got %d", w.Code)
	}
	if w.Body.String() != `"ok"` {
		t.Errorf("expected mirrored body, got %q", w.Body.String())
	}
	if w.Header().Get("X-Backend") != "order-svc" {
		t.Errorf("expected mirrored response header, got %q", w.Header().Get("X-Backend"))
	}
}

func TestProxy_MirrorsBackendError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend exploded", http.StatusInternalServerError)
	}))
	defer backend.Close()

	h := newTestTransport(Routes{"order": backend.URL})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/order/", nil)
	h.router.ServeHTTP(w, r)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected mirrored status 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "backend exploded") {
		t.Errorf("expected mirrored body, got %q", w.Body.String())
	}
}

func TestProxy_TransportError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close()

	h := newTestTransport(Routes{"order": backend.URL})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/order/x", nil)
	h.router.ServeHTTP(w, r)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}
	if w.Body.Len() == 0 {
		t.Error("expected the underlying error in the body")
	}
}

func TestSplitServicePath(t *testing.T) {
	tests := []struct {
		path    string
		service string
		rest    string
	}{
		{"/customer/validate/42", "customer", "/validate/42"},
		{"/order/", "order", "/"},
		{"/order", "order", ""},
	}

	for _, tt := range tests {
		service, rest := splitServicePath(tt.path)
		if service != tt.service || rest != tt.rest {
			t.Errorf("splitServicePath(%q) = %q, %q; want %q, %q",
				tt.path, service, rest, tt.service, tt.rest)
		}
	}
}
