package assistant

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-faster/sdk/zctx"
	"github.com/guonaihong/gout"
	"go.uber.org/zap"
)

// DefaultBaseURL is the Gemini API endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

// DefaultModel is the text-generation model used for descriptions.
const DefaultModel = "gemini-2.5-flash"

// GeminiConfig configures the Gemini-backed describer. APIKey is the single
// optional external credential of the whole application; when empty, every
// call short-circuits to the fallback.
type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

var _ Describer = (*Gemini)(nil)

// Gemini generates descriptions with the Gemini generateContent REST API.
type Gemini struct {
	cfg GeminiConfig
}

// NewGemini returns a Gemini describer, filling in defaults for unset
// config fields.
func NewGemini(cfg GeminiConfig) *Gemini {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &Gemini{cfg: cfg}
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Describe calls the generation API and returns the resulting text, or the
// fixed fallback on any failure. It never returns an error.
func (g *Gemini) Describe(ctx context.Context, req Request) Result {
	lg := zctx.From(ctx)

	if g.cfg.APIKey == "" {
		lg.Debug("assistant: no API key configured, using fallback")
		return Result{Text: Fallback}
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.cfg.BaseURL, g.cfg.Model)

	var (
		resp generateResponse
		code int
	)
	err := gout.POST(url).
		WithContext(ctx).
		SetTimeout(g.cfg.Timeout).
		SetQuery(gout.H{"key": g.cfg.APIKey}).
		SetJSON(gout.H{
			"contents": []gout.H{
				{"parts": []gout.H{{"text": prompt(req)}}},
			},
		}).
		BindJSON(&resp).
		Code(&code).
		Do()
	if err != nil {
		lg.Warn("assistant: generation call failed", zap.Error(err))
		return Result{Text: Fallback}
	}
	if code != http.StatusOK {
		lg.Warn("assistant: generation call rejected", zap.Int("status", code))
		return Result{Text: Fallback}
	}

	text := extractText(resp)
	if text == "" {
		return Result{Text: NoText}
	}
	return Result{Text: clean(text), Generated: true}
}

// prompt builds the marketing prompt sent to the model.
func prompt(req Request) string {
	return fmt.Sprintf(`Actúa como un experto en marketing digital y copywriting.
Escribe una descripción corta (máximo %d caracteres), atractiva y persuasiva para un producto.

Detalles del producto:
- Nombre: %s
- Precio: S/ %s
- Categoría: %s

La descripción debe incluir emojis y estar lista para compartir en WhatsApp.
No uses comillas en la respuesta.`,
		MaxDescriptionLen, req.Name, req.Price.StringFixed(2), req.Category)
}

func extractText(resp generateResponse) string {
	for _, c := range resp.Candidates {
		for _, part := range c.Content.Parts {
			if s := strings.TrimSpace(part.Text); s != "" {
				return s
			}
		}
	}
	return ""
}

// clean strips surrounding quotation marks and caps the result length.
func clean(s string) string {
	s = strings.Trim(s, "\"'“”")
	if runes := []rune(s); len(runes) > MaxDescriptionLen {
		s = strings.TrimSpace(string(runes[:MaxDescriptionLen]))
	}
	return s
}
