package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/autolote/autolote/internal/customers"
	"github.com/autolote/autolote/internal/vehicles"
)

// NewRouter constructs the chi.Router with application defaults.
func NewRouter(cfg MiddlewareConfig, vehiclesHandler *vehicles.Handler, customersHandler *customers.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(cfg) {
		r.Use(mw)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/vehicles", vehiclesHandler.MountRoutes)
	r.Route("/customers", customersHandler.MountRoutes)

	return r
}
