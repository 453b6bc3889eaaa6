package server

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the full route tree: the JSON API, the Prometheus
// endpoint, and the static frontend directory when one is configured.
func NewRouter(h *Handler, staticDir string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(requestLogger)
	r.Use(requestMetrics)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/products", h.listProducts)
		api.Post("/products", h.addProduct)

		api.Get("/cart", h.getCart)
		api.Post("/cart/items", h.addCartItem)
		api.Put("/cart/items/{productID}", h.setQty)
		api.Delete("/cart/items/{productID}", h.removeCartItem)
		api.Delete("/cart", h.newSale)

		api.Post("/receipt", h.previewReceipt)
		api.Post("/sale/complete", h.completeSale)
	})

	if staticDir != "" {
		r.NotFound(staticHandler(staticDir))
	}

	return r
}

// staticHandler serves the single-page frontend, falling back to index.html
// for unknown paths so a page reload lands on the app.
func staticHandler(staticDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(staticDir, filepath.Clean(urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}
		http.ServeFile(w, r, filePath)
	}
}
