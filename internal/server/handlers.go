// Package server exposes the register to the single-page frontend as a
// JSON API. Handlers are thin glue: they coerce untrusted input, call one
// register operation, and render the result; every rule lives below.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jasonjack1357-commits/DualRam.github.io/internal/catalog"
	"github.com/jasonjack1357-commits/DualRam.github.io/internal/pos"
	"github.com/jasonjack1357-commits/DualRam.github.io/internal/pricing"
)

// Handler serves the register over HTTP.
type Handler struct {
	register *pos.Register
}

// NewHandler creates a Handler over the given register.
func NewHandler(register *pos.Register) *Handler {
	return &Handler{register: register}
}

// parseNumber coerces a raw input field to a float64 with the lenient
// semantics the frontend expects: blank means zero, anything unparsable
// becomes NaN and is then clamped or rejected downstream.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// listProducts returns the catalog, filtered by the optional q parameter.
func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products := h.register.Search(r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, map[string]any{"products": products})
}

// addProduct creates a new catalog product. The price arrives as a raw
// string because the frontend sends the input field verbatim.
func (h *Handler) addProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Barcode string `json:"barcode"`
		Name    string `json:"name"`
		Price   string `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.register.AddProduct(r.Context(), req.Barcode, req.Name, parseNumber(req.Price))
	var vErr *catalog.ValidationError
	if errors.As(err, &vErr) {
		writeError(w, http.StatusBadRequest, vErr.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save product")
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// getCart returns the lines, item count, totals, and change for the
// discount/tax/cash values currently shown in the UI. Reading the cart
// recomputes and caches the clamped percentages as settings.
func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	totals, err := h.register.Totals(r.Context(), parseNumber(q.Get("discount")), parseNumber(q.Get("tax")))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to persist settings")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"lines":  h.register.Lines(),
		"count":  h.register.LineCount(),
		"totals": totals,
		"change": pricing.ComputeChange(totals.Total, parseNumber(q.Get("cash"))),
	})
}

// addCartItem adds or increments one product in the cart.
func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.register.AddToCart(r.Context(), req.ProductID); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save cart")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": h.register.LineCount()})
}

// setQty overwrites the quantity of an existing line.
func (h *Handler) setQty(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Qty string `json:"qty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	productID := chi.URLParam(r, "productID")
	if err := h.register.SetQty(r.Context(), productID, parseNumber(req.Qty)); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save cart")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": h.register.LineCount()})
}

// removeCartItem removes a line, or decrements it when op=decrement.
func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	var err error
	if r.URL.Query().Get("op") == "decrement" {
		err = h.register.DecrementLine(r.Context(), productID)
	} else {
		err = h.register.RemoveLine(r.Context(), productID)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save cart")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": h.register.LineCount()})
}

// newSale empties the cart.
func (h *Handler) newSale(w http.ResponseWriter, r *http.Request) {
	if err := h.register.NewSale(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save cart")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": 0})
}

// saleRequest carries the raw input fields for receipt and completion.
type saleRequest struct {
	Discount string `json:"discount"`
	Tax      string `json:"tax"`
	Cash     string `json:"cash"`
}

// previewReceipt renders the receipt text without completing the sale.
func (h *Handler) previewReceipt(w http.ResponseWriter, r *http.Request) {
	var req saleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	text, err := h.register.Receipt(r.Context(),
		parseNumber(req.Discount), parseNumber(req.Tax), parseNumber(req.Cash))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build receipt")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"receipt": text})
}

// completeSale finishes the sale. The two rejection kinds map to distinct
// statuses so the UI can show the right message.
func (h *Handler) completeSale(w http.ResponseWriter, r *http.Request) {
	var req saleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	text, err := h.register.CompleteSale(r.Context(),
		parseNumber(req.Discount), parseNumber(req.Tax), parseNumber(req.Cash))
	switch {
	case errors.Is(err, pos.ErrEmptyCart):
		writeError(w, http.StatusConflict, "Cart is empty.")
		return
	case errors.Is(err, pos.ErrInsufficientCash):
		writeError(w, http.StatusPaymentRequired, "Not enough cash received.")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "failed to complete sale")
		return
	}

	salesCompleted.Inc()
	writeJSON(w, http.StatusOK, map[string]string{
		"receipt": text,
		"message": "Sale completed.",
	})
}
