package assistant

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest() Request {
	return Request{
		Name:     "Auriculares Premium",
		Price:    decimal.RequireFromString("150.00"),
		Category: "Technology",
	}
}

func newGeminiAgainst(srv *httptest.Server) *Gemini {
	return NewGemini(GeminiConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
	})
}

func TestDescribe_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "gemini-2.5-flash:generateContent")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"🎧 Sonido increíble a gran precio"}]}}]}`))
	}))
	defer srv.Close()

	res := newGeminiAgainst(srv).Describe(context.Background(), testRequest())
	assert.True(t, res.Generated)
	assert.Equal(t, "🎧 Sonido increíble a gran precio", res.Text)
}

func TestDescribe_StripsQuotesAndCapsLength(t *testing.T) {
	long := `"` + strings.Repeat("a", MaxDescriptionLen+40) + `"`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":` + "\"" + strings.Trim(long, `"`) + "\"" + `}]}}]}`))
	}))
	defer srv.Close()

	res := newGeminiAgainst(srv).Describe(context.Background(), testRequest())
	require.True(t, res.Generated)
	assert.LessOrEqual(t, len([]rune(res.Text)), MaxDescriptionLen)
	assert.NotContains(t, res.Text, `"`)
}

func TestDescribe_ServerErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	res := newGeminiAgainst(srv).Describe(context.Background(), testRequest())
	assert.False(t, res.Generated)
	assert.Equal(t, Fallback, res.Text)
}

func TestDescribe_NetworkErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // nothing listening anymore

	res := newGeminiAgainst(srv).Describe(context.Background(), testRequest())
	assert.False(t, res.Generated)
	assert.Equal(t, Fallback, res.Text)
}

func TestDescribe_MalformedResponseFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":`))
	}))
	defer srv.Close()

	res := newGeminiAgainst(srv).Describe(context.Background(), testRequest())
	assert.False(t, res.Generated)
	assert.Equal(t, Fallback, res.Text)
}

func TestDescribe_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	res := newGeminiAgainst(srv).Describe(context.Background(), testRequest())
	assert.False(t, res.Generated)
	assert.Equal(t, NoText, res.Text)
}

func TestDescribe_MissingAPIKeyFallsBack(t *testing.T) {
	g := NewGemini(GeminiConfig{})
	res := g.Describe(context.Background(), testRequest())
	assert.False(t, res.Generated)
	assert.Equal(t, Fallback, res.Text)
}
