package ports

// Contract for turning an "<origin>→<destination>" route into an external map URL.
type MapLinkBuilder interface {
	MapLink(route string) string
}
