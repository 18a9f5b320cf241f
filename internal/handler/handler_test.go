package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvaldez/catalogo/internal/assistant"
	"github.com/mvaldez/catalogo/internal/domain/product"
	"github.com/mvaldez/catalogo/internal/repository"
	"github.com/mvaldez/catalogo/internal/storage/memory"
)

// --- Mocks ---

type mockDescriber struct {
	result   assistant.Result
	lastReq  assistant.Request
	requests int
}

func (m *mockDescriber) Describe(_ context.Context, req assistant.Request) assistant.Result {
	m.lastReq = req
	m.requests++
	return m.result
}

// --- Helpers ---

func newTestHandler() (*Handler, *mockDescriber) {
	repo := repository.NewProductRepository(memory.NewStore())
	describer := &mockDescriber{result: assistant.Result{Text: "¡Genial! 🎉", Generated: true}}
	h := New(Config{CatalogURL: "https://tienda.example.com", Currency: "S/"}, repo, describer)
	return h, describer
}

func do(t *testing.T, h *Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

// --- Products ---

func TestListProducts_SeededCatalog(t *testing.T) {
	h, _ := newTestHandler()

	rec := do(t, h, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, rec.Code)

	products := decodeBody[[]productDTO](t, rec)
	assert.Len(t, products, len(product.Seed()))
}

func TestListProducts_Filtered(t *testing.T) {
	h, _ := newTestHandler()

	rec := do(t, h, http.MethodGet, "/products?search=reloj&category=Technology", "")
	require.Equal(t, http.StatusOK, rec.Code)

	products := decodeBody[[]productDTO](t, rec)
	require.Len(t, products, 1)
	assert.Equal(t, "Reloj Inteligente", products[0].Name)
}

func TestSaveProduct_CreateGeneratesIDAndImage(t *testing.T) {
	h, _ := newTestHandler()

	rec := do(t, h, http.MethodPost, "/products",
		`{"name":"Smart TV","price":999.90,"category":"Technology"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decodeBody[productDTO](t, rec)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, product.DefaultImage, created.Image)
}

func TestSaveProduct_UpdateReplacesExisting(t *testing.T) {
	h, _ := newTestHandler()

	rec := do(t, h, http.MethodPost, "/products",
		`{"id":"1","name":"Auriculares Pro","price":175.00,"category":"Technology","image":"https://img","views":120}`)
	require.Equal(t, http.StatusOK, rec.Code)

	list := do(t, h, http.MethodGet, "/products?search=auriculares&category=all", "")
	products := decodeBody[[]productDTO](t, list)
	require.Len(t, products, 1)
	assert.Equal(t, "Auriculares Pro", products[0].Name)
}

func TestSaveProduct_ValidationFailures(t *testing.T) {
	h, _ := newTestHandler()

	tests := []struct {
		name string
		body string
		code int
	}{
		{"missing name", `{"price":10,"category":"Other"}`, http.StatusUnprocessableEntity},
		{"zero price", `{"name":"Algo","price":0,"category":"Other"}`, http.StatusUnprocessableEntity},
		{"unknown category", `{"name":"Algo","price":10,"category":"Groceries"}`, http.StatusBadRequest},
		{"malformed body", `{`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/products", tt.body)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestDeleteProduct(t *testing.T) {
	h, _ := newTestHandler()

	rec := do(t, h, http.MethodDelete, "/products/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Deleting an unknown id is still a successful no-op.
	rec = do(t, h, http.MethodDelete, "/products/missing", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

// --- Cart & order handoff ---

func TestAddToCart_MergesAndCountsInterest(t *testing.T) {
	h, _ := newTestHandler()

	rec := do(t, h, http.MethodPost, "/cart/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, h, http.MethodPost, "/cart/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	cart := decodeBody[cartResponse](t, rec)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, "300.00", cart.Total)

	// Each add bumped the views counter.
	list := do(t, h, http.MethodGet, "/products?search=auriculares&category=all", "")
	products := decodeBody[[]productDTO](t, list)
	require.Len(t, products, 1)
	assert.Equal(t, 122, products[0].Views)
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	h, _ := newTestHandler()
	rec := do(t, h, http.MethodPost, "/cart/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRemoveFromCartAndClear(t *testing.T) {
	h, _ := newTestHandler()

	do(t, h, http.MethodPost, "/cart/1", "")
	do(t, h, http.MethodPost, "/cart/2", "")

	rec := do(t, h, http.MethodDelete, "/cart/1", "")
	cart := decodeBody[cartResponse](t, rec)
	require.Len(t, cart.Items, 1)

	rec = do(t, h, http.MethodDelete, "/cart", "")
	cart = decodeBody[cartResponse](t, rec)
	assert.Empty(t, cart.Items)
	assert.Equal(t, "0.00", cart.Total)
}

func TestOrderHandoff_EmptyCartIsNoop(t *testing.T) {
	h, _ := newTestHandler()
	rec := do(t, h, http.MethodPost, "/orders/handoff", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestOrderHandoff(t *testing.T) {
	h, _ := newTestHandler()

	do(t, h, http.MethodPost, "/cart/1", "")
	do(t, h, http.MethodPost, "/cart/2", "")
	do(t, h, http.MethodPost, "/cart/2", "")

	rec := do(t, h, http.MethodPost, "/orders/handoff", "")
	require.Equal(t, http.StatusOK, rec.Code)

	res := decodeBody[handoffResponse](t, rec)
	assert.Contains(t, res.Message, "▪ 1x Auriculares Premium (S/ 150.00)")
	assert.Contains(t, res.Message, "▪ 2x Zapatillas Running (S/ 179.98)")
	assert.Contains(t, res.Message, "*Total a pagar: S/ 329.98*")
	assert.Equal(t, "329.98", res.Total)

	require.True(t, strings.HasPrefix(res.URL, "https://wa.me/?text="))
	decoded, err := url.QueryUnescape(strings.TrimPrefix(res.URL, "https://wa.me/?text="))
	require.NoError(t, err)
	assert.Equal(t, res.Message, decoded)
}

// --- Share ---

func TestShareProduct(t *testing.T) {
	h, _ := newTestHandler()

	rec := do(t, h, http.MethodGet, "/products/1/share", "")
	require.Equal(t, http.StatusOK, rec.Code)

	res := decodeBody[shareResponse](t, rec)
	assert.Contains(t, res.Text, "*Auriculares Premium*")
	assert.Contains(t, res.Text, "Foto: https://picsum.photos/400/400?random=1")
	assert.True(t, strings.HasPrefix(res.URL, "https://wa.me/?text="))

	rec = do(t, h, http.MethodGet, "/products/missing/share", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestShareCatalog(t *testing.T) {
	h, _ := newTestHandler()

	rec := do(t, h, http.MethodGet, "/catalog/share", "")
	require.Equal(t, http.StatusOK, rec.Code)

	res := decodeBody[shareResponse](t, rec)
	assert.Contains(t, res.Text, "https://tienda.example.com")
}

// --- Assistant ---

func TestGenerateDescription(t *testing.T) {
	h, describer := newTestHandler()

	rec := do(t, h, http.MethodPost, "/assistant/description",
		`{"name":"Smart TV","price":999.90,"category":"Technology"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	res := decodeBody[describeResponse](t, rec)
	assert.Equal(t, "¡Genial! 🎉", res.Description)
	assert.True(t, res.Generated)
	assert.Equal(t, "Smart TV", describer.lastReq.Name)
	assert.Equal(t, "999.9", describer.lastReq.Price.String())
}

func TestGenerateDescription_RequiresName(t *testing.T) {
	h, describer := newTestHandler()

	rec := do(t, h, http.MethodPost, "/assistant/description", `{"price":10}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Zero(t, describer.requests)
}
