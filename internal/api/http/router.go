package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shestoi/payment-gateway/internal/health"
	"github.com/shestoi/payment-gateway/internal/observability"
)

// NewRouter создаёт и настраивает HTTP роутер платёжного шлюза
// readiness - функция для проверки готовности сервиса.
// logger используется для observability HTTP middleware (trace_id в логах).
func NewRouter(handler *Handler, readiness func() bool, logger *zap.Logger) chi.Router {
	router := chi.NewRouter()

	// Observability: trace context + span на каждый запрос, logger с trace_id в контексте
	if logger != nil {
		router.Use(observability.HTTPMiddleware("gateway", logger))
	}

	router.Route("/api/payments", func(r chi.Router) {
		r.Post("/", handler.PostPayment)
		r.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "id")
			handler.GetPayment(w, r, id)
		})
	})

	router.Get("/health", health.Handler(readiness))

	return router
}
