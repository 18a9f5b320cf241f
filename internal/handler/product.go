package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/mvaldez/catalogo/internal/catalog"
	"github.com/mvaldez/catalogo/internal/domain/product"
	"github.com/mvaldez/catalogo/internal/share"
)

// productDTO is the wire shape of a product, matching the persisted layout.
type productDTO struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       json.Number `json:"price"`
	Category    string      `json:"category"`
	Image       string      `json:"image"`
	Views       int         `json:"views"`
}

func toDTO(p product.Product) productDTO {
	return productDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       json.Number(p.Price.String()),
		Category:    p.Category.String(),
		Image:       p.Image,
		Views:       p.Views,
	}
}

func toDTOs(products []product.Product) []productDTO {
	out := make([]productDTO, len(products))
	for i, p := range products {
		out[i] = toDTO(p)
	}
	return out
}

func (dto productDTO) toDomain() (product.Product, error) {
	price := decimal.Zero
	if dto.Price != "" {
		parsed, err := decimal.NewFromString(dto.Price.String())
		if err != nil {
			return product.Product{}, errors.Wrap(err, "price")
		}
		price = parsed
	}

	category, err := product.ParseCategory(dto.Category)
	if err != nil {
		return product.Product{}, err
	}

	return product.Product{
		ID:          dto.ID,
		Name:        dto.Name,
		Description: dto.Description,
		Price:       price,
		Category:    category,
		Image:       dto.Image,
		Views:       dto.Views,
	}, nil
}

// listProducts serves the filtered catalog. The empty category means all.
func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.repo.ListAll(r.Context())
	if err != nil {
		writeRepoError(w, r, err)
		return
	}

	q := r.URL.Query()
	category := q.Get("category")
	if category == "" {
		category = catalog.CategoryAll
	}

	writeJSON(w, http.StatusOK, toDTOs(catalog.Filter(products, q.Get("search"), category)))
}

// saveProduct creates or updates a product. New products get a generated id
// and the placeholder image when none is supplied.
func (h *Handler) saveProduct(w http.ResponseWriter, r *http.Request) {
	var dto productDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := dto.toDomain()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := p.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	created := p.ID == ""
	if created {
		p.ID = product.NewID()
	}
	if p.Image == "" {
		p.Image = product.DefaultImage
	}

	if err := h.repo.Upsert(r.Context(), p); err != nil {
		writeRepoError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, toDTO(p))
}

// deleteProduct removes a product. Unknown ids still answer 204: deletion
// is a no-op then, not an error.
func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeRepoError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type shareResponse struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// shareProduct builds the share text and wa.me link for one product.
func (h *Handler) shareProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	products, err := h.repo.ListAll(r.Context())
	if err != nil {
		writeRepoError(w, r, err)
		return
	}

	for _, p := range products {
		if p.ID == id {
			text := share.ProductHandoffText(p, h.formatter.Currency, h.cfg.CatalogURL)
			writeJSON(w, http.StatusOK, shareResponse{
				Text: text,
				URL:  share.WhatsAppURL(text),
			})
			return
		}
	}
	writeError(w, http.StatusNotFound, "product not found")
}

// shareCatalog builds the share link for the whole catalog.
func (h *Handler) shareCatalog(w http.ResponseWriter, _ *http.Request) {
	text := share.CatalogText(h.cfg.CatalogURL)
	writeJSON(w, http.StatusOK, shareResponse{
		Text: text,
		URL:  share.WhatsAppURL(text),
	})
}
