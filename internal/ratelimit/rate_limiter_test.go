package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMiddleware(t *testing.T) {
	limiter := New(0, 2)

	handler := limiter.Middleware(RemoteAddr)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	type request struct {
		RemoteAddr string
		Expected   int
	}

	requests := []request{
		{"10.0.0.1:1234", http.StatusNoContent},
		{"10.0.0.1:1235", http.StatusNoContent},
		{"10.0.0.1:1236", http.StatusTooManyRequests},
		{"10.0.0.2:1234", http.StatusNoContent},
		{"invalid", http.StatusInternalServerError},
	}

	for idx, req := range requests {
		r := httptest.NewRequest("GET", "/", nil)
		r.RemoteAddr = req.RemoteAddr

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		if e, g := req.Expected, w.Code; e != g {
			t.Errorf("requests[%d]: expected status '%v', got '%v'", idx, e, g)
		}
	}
}
