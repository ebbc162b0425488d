package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"saathi-bazaar/internal/core/port"
)

// Handler is the inbound HTTP adapter. It holds the ledger use case, the
// identity middleware and a logger, and registers its routes on a chi
// router.
type Handler struct {
	svc      port.LedgerUseCase
	identity *Identity
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. metrics, when
// not nil, is mounted at /metrics outside the identity check.
func NewHandler(svc port.LedgerUseCase, identity *Identity, metrics http.Handler, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, identity: identity, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.accessLog)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(identity.Middleware)
		r.Route("/bulk-orders", func(r chi.Router) {
			r.Get("/", h.handleListOpen)
			r.With(RequireOperator).Post("/", h.handleCreate)
			r.Post("/contribute", h.handleContributeLegacy)
			r.Get("/{id}", h.handleGet)
			r.Post("/{id}/contributions", h.handleContribute)
			r.Delete("/{id}/contributions", h.handleCancel)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
