package handler

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/mvaldez/catalogo/internal/assistant"
)

type describeRequest struct {
	Name     string      `json:"name"`
	Price    json.Number `json:"price"`
	Category string      `json:"category"`
}

type describeResponse struct {
	Description string `json:"description"`
	Generated   bool   `json:"generated"`
}

// generateDescription asks the assistant for marketing copy. Only one
// generation runs at a time: a duplicate request while one is pending gets
// 429 so the trigger can stay disabled, nothing else is blocked.
func (h *Handler) generateDescription(w http.ResponseWriter, r *http.Request) {
	var req describeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusUnprocessableEntity, "name is required to generate a description")
		return
	}

	price := decimal.Zero
	if req.Price != "" {
		parsed, err := decimal.NewFromString(req.Price.String())
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid price")
			return
		}
		price = parsed
	}

	if !h.generating.TryLock() {
		writeError(w, http.StatusTooManyRequests, "a description is already being generated")
		return
	}
	defer h.generating.Unlock()

	res := h.describer.Describe(r.Context(), assistant.Request{
		Name:     req.Name,
		Price:    price,
		Category: req.Category,
	})

	writeJSON(w, http.StatusOK, describeResponse{
		Description: res.Text,
		Generated:   res.Generated,
	})
}
