package share

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"
)

// ErrUnsupported is returned by a Sharer that cannot take the given payload
// on the current platform; the chain then tries the next surface.
var ErrUnsupported = errors.New("share surface unsupported")

// Payload is the content handed to a share surface.
type Payload struct {
	Title string
	Text  string
	// Link is an optional URL shared alongside the text.
	Link string
	// ImageURL references the product image for file-capable surfaces.
	ImageURL string
}

// Sharer delivers a payload through one share surface.
type Sharer interface {
	Share(ctx context.Context, p Payload) error
}

// Opener opens an external URI, e.g. in the system browser. It is the
// terminal handoff of the chain and is expected to always work.
type Opener func(ctx context.Context, uri string) error

// Chain tries share surfaces in a fixed order: native file+text, then
// native text+link, then the generic wa.me URL handoff. The ordering is a
// contract of the sharing surface, not a tuning knob.
type Chain struct {
	// FileText shares an image file together with text. Optional.
	FileText Sharer
	// TextLink shares text plus a link. Optional.
	TextLink Sharer
	// Open hands the wa.me compose link to the platform. Required.
	Open Opener
}

// Share delivers p through the first surface that accepts it. An
// ErrUnsupported (or any other failure) from a native surface falls through
// to the next one; only the terminal handoff's error is returned.
func (c Chain) Share(ctx context.Context, p Payload) error {
	lg := zctx.From(ctx)

	if c.FileText != nil && p.ImageURL != "" {
		if err := c.FileText.Share(ctx, p); err == nil {
			return nil
		} else if !errors.Is(err, ErrUnsupported) {
			lg.Warn("file share failed, falling back", zap.Error(err))
		}
	}

	if c.TextLink != nil {
		if err := c.TextLink.Share(ctx, p); err == nil {
			return nil
		} else if !errors.Is(err, ErrUnsupported) {
			lg.Warn("text share failed, falling back", zap.Error(err))
		}
	}

	text := p.Text
	if p.Link != "" {
		text += "\n\n" + p.Link
	}
	return c.Open(ctx, WhatsAppURL(text))
}
