package pprof

import (
	"expvar"
	"fmt"
	"net/http"
	"net/http/pprof"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler exposes the runtime profiles, the expvar variables and the
// Prometheus metrics under a common prefix.
type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(prefix string) *Handler {
	mux := &http.ServeMux{}

	routes := map[string]http.Handler{
		"GET %s/":        http.HandlerFunc(pprof.Index),
		"GET %s/cmdline": http.HandlerFunc(pprof.Cmdline),
		"GET %s/profile": http.HandlerFunc(pprof.Profile),
		"GET %s/symbol":  http.HandlerFunc(pprof.Symbol),
		"GET %s/trace":   http.HandlerFunc(pprof.Trace),
		"GET %s/vars":    expvar.Handler(),
		"GET %s/metrics": promhttp.Handler(),
		"GET %s/{name}": http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pprof.Handler(r.PathValue("name")).ServeHTTP(w, r)
		}),
	}

	for pattern, handler := range routes {
		mux.Handle(fmt.Sprintf(pattern, prefix), handler)
	}

	return &Handler{mux}
}

var _ http.Handler = &Handler{}
