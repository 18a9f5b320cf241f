package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mvaldez/catalogo/internal/domain/order"
	"github.com/mvaldez/catalogo/internal/share"
)

type cartItemDTO struct {
	Product  productDTO `json:"product"`
	Quantity int        `json:"quantity"`
	Subtotal string     `json:"subtotal"`
}

type cartResponse struct {
	Items []cartItemDTO `json:"items"`
	Total string        `json:"total"`
}

func (h *Handler) cartSnapshot() cartResponse {
	items := make([]cartItemDTO, len(h.session.Cart))
	for i, item := range h.session.Cart {
		items[i] = cartItemDTO{
			Product:  toDTO(item.Product),
			Quantity: item.Quantity,
			Subtotal: item.Subtotal().StringFixed(2),
		}
	}
	return cartResponse{
		Items: items,
		Total: order.ComputeTotal(h.session.Cart).StringFixed(2),
	}
}

func (h *Handler) getCart(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	writeJSON(w, http.StatusOK, h.cartSnapshot())
}

// addToCart merges the product into the session cart. The add also counts
// as interest on the product's views counter.
func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")

	h.mu.Lock()
	defer h.mu.Unlock()

	session, err := h.session.Refresh(r.Context(), h.repo)
	if err != nil {
		writeRepoError(w, r, err)
		return
	}
	h.session = session

	for _, p := range h.session.Products {
		if p.ID == id {
			session, err = h.session.AddToCart(r.Context(), h.repo, p)
			if err != nil {
				writeRepoError(w, r, err)
				return
			}
			h.session = session
			writeJSON(w, http.StatusOK, h.cartSnapshot())
			return
		}
	}
	writeError(w, http.StatusNotFound, "product not found")
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.session = h.session.RemoveFromCart(chi.URLParam(r, "productID"))
	writeJSON(w, http.StatusOK, h.cartSnapshot())
}

func (h *Handler) clearCart(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.session = h.session.ClearCart()
	writeJSON(w, http.StatusOK, h.cartSnapshot())
}

type handoffResponse struct {
	Message string `json:"message"`
	URL     string `json:"url"`
	Total   string `json:"total"`
}

// orderHandoff formats the order message and returns the compose link.
// An empty cart is a no-op: nothing is ever formatted for it.
func (h *Handler) orderHandoff(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.session.Cart) == 0 {
		writeError(w, http.StatusConflict, "cart is empty")
		return
	}

	msg := h.formatter.Message(h.session.Cart)
	writeJSON(w, http.StatusOK, handoffResponse{
		Message: msg,
		URL:     share.WhatsAppURL(msg),
		Total:   order.ComputeTotal(h.session.Cart).StringFixed(2),
	})
}
