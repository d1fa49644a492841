package preview

import (
	"net/http"

	"github.com/bornholm/navchrome/internal/header"
	"golang.org/x/text/language"
)

type TagResolver interface {
	ResolveTag(r *http.Request) language.Tag
}

type Handler struct {
	renderer *header.Renderer
	resolver TagResolver
	props    header.Props
	mux      *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// NewHandler returns a handler previewing the header components. props is
// the base of every render, login state is derived from the request.
func NewHandler(renderer *header.Renderer, resolver TagResolver, props header.Props) *Handler {
	handler := &Handler{
		renderer: renderer,
		resolver: resolver,
		props:    props,
		mux:      &http.ServeMux{},
	}

	// Register routes
	handler.mux.HandleFunc("GET /{$}", handler.serveIndex)
	handler.mux.HandleFunc("GET /healthz", handler.serveHealthz)

	return handler
}

func (h *Handler) serveHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

var _ http.Handler = &Handler{}
