// Package share builds the outbound messaging texts and hands them off to
// an external channel: natively when the platform supports it, otherwise
// through a wa.me deep link.
package share

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/mvaldez/catalogo/internal/domain/product"
)

// whatsAppBase is the deep-link endpoint that opens a message compose view.
const whatsAppBase = "https://wa.me/"

// maxTextRunes bounds the compose text so the deep link stays within what
// messaging apps and browsers accept as a URL.
const maxTextRunes = 4096

// WhatsAppURL returns a wa.me compose link carrying text. Reserved
// characters are always URL-encoded here, never by callers, and overly long
// texts are truncated to fit the link.
func WhatsAppURL(text string) string {
	if runes := []rune(text); len(runes) > maxTextRunes {
		text = string(runes[:maxTextRunes])
	}
	return whatsAppBase + "?text=" + url.QueryEscape(text)
}

// ProductText builds the share message for a single product: name, price,
// description, and a link back to the catalog.
func ProductText(p product.Product, currency, catalogURL string) string {
	return fmt.Sprintf("¡Hola! Mira este producto: *%s* a solo *%s %s*\n\n%s\n\nEncuéntralo aquí: %s",
		p.Name, currency, p.Price.StringFixed(2), p.Description, catalogURL)
}

// CatalogText builds the share message for the whole catalog.
func CatalogText(catalogURL string) string {
	return "¡Mira nuestro catálogo completo de productos! Tenemos ofertas increíbles.\n\nVisítanos: " + catalogURL
}

// ProductHandoffText is the terminal-fallback variant of ProductText: when
// the image is an external URL it is appended so the messaging app can
// render a preview. Data URIs are never embedded in links.
func ProductHandoffText(p product.Product, currency, catalogURL string) string {
	text := ProductText(p, currency, catalogURL)
	if strings.HasPrefix(p.Image, "http") {
		text += "\n\nFoto: " + p.Image
	}
	return text
}
