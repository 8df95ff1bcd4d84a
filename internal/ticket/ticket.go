package ticket

import (
	"fmt"
	"strconv"
	"strings"
)

// Option is one ticket tier for an event: how the concert may be attended
// and what it costs.
type Option struct {
	TicketType  string
	VenueType   string // free text, e.g. "In-person & Streaming (Digital Concert Hall)"
	IsStreaming bool   // derived from VenueType
	PriceGBP    int    // whole pounds, pence truncated
}

// NewOption builds an Option, deriving the streaming flag from the venue type.
func NewOption(ticketType, venueType string, priceGBP int) Option {
	return Option{
		TicketType:  ticketType,
		VenueType:   venueType,
		IsStreaming: HasStreaming(venueType),
		PriceGBP:    priceGBP,
	}
}

// HasStreaming reports whether a venue type includes a streaming option.
//
// Known venue type strings on the pricing page:
//
//	In-person & Streaming (Digital Concert Hall)
//	In-person only
//	Digital Concert Hall - Live stream only
//	SongPaths - including £5 donation to Oxfordshire Mind
//	Under 35s: Digital Concert Hall - Live stream only
func HasStreaming(venueType string) bool {
	return strings.Contains(strings.ToLower(venueType), "stream")
}

// ParsePriceGBP converts a price cell like "£12.50" to whole pounds.
// Pence are truncated, not rounded.
func ParsePriceGBP(text string) (int, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(text, "£", ""))
	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing ticket price %q: %w", text, err)
	}
	return int(price), nil
}
