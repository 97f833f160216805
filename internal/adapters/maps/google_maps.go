package maps

import (
	"dispatch-board-service/internal/ports"
	"net/url"
	"strings"
)

// Structural delimiter between origin and destination in a route string.
const RouteDelimiter = "→"

// GoogleMapsLinkBuilder builds directions URLs of the form <base>/<origin>/<destination>.
type GoogleMapsLinkBuilder struct {
	BaseURL string
}

var _ ports.MapLinkBuilder = (*GoogleMapsLinkBuilder)(nil)

func NewGoogleMapsLinkBuilder(baseURL string) *GoogleMapsLinkBuilder {
	return &GoogleMapsLinkBuilder{BaseURL: strings.TrimRight(baseURL, "/")}
}

// SplitRoute returns the first two delimiter-separated segments of route.
// A route without the delimiter yields an empty destination; further segments
// are ignored.
func SplitRoute(route string) (origin, destination string) {
	parts := strings.Split(route, RouteDelimiter)
	origin = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		destination = strings.TrimSpace(parts[1])
	}
	return origin, destination
}

func (b *GoogleMapsLinkBuilder) MapLink(route string) string {
	origin, destination := SplitRoute(route)
	return b.BaseURL + "/" + EscapeSegment(origin) + "/" + EscapeSegment(destination)
}

// Characters QueryEscape encodes but a URI component leaves literal.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EscapeSegment percent-encodes s like a URI component: only letters, digits
// and -_.!~*'() stay literal, so &, =, +, : and / cannot leak into the path.
func EscapeSegment(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
