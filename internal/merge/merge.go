// Package merge joins extracted event records with their ticket groups into
// the flat table that gets exported.
package merge

import (
	"strconv"
	"strings"

	"github.com/ohenriksen/lieder-tickets/internal/event"
	"github.com/ohenriksen/lieder-tickets/internal/ticket"
)

// Columns is the fixed export column order. The time column is labelled
// with the site's UTC+1 offset; no conversion is performed.
var Columns = []string{
	"date",
	"time (UTC+1)",
	"title",
	"artists",
	"description",
	"venue",
	"ticket_type",
	"venue_type",
	"is_streaming",
	"ticket_price_gbp",
	"interested",
	"categories",
	"short_url",
	"long_url",
}

// Row is one event crossed with one of its ticket options. Every event
// field is fully determined by the event record; an event with N ticket
// options produces exactly N rows.
type Row struct {
	Event  event.Record
	Ticket ticket.Option
}

// Merge inner-joins event records with ticket groups on the short URL key.
// Events keep their incoming order and expand to one row per ticket option.
// Events without a ticket group and groups without an event drop out.
func Merge(events []event.Record, groups *ticket.Groups) []Row {
	var rows []Row
	for _, rec := range events {
		group, ok := groups.Get(rec.ShortURL)
		if !ok {
			continue
		}
		for _, opt := range group.Explode() {
			rows = append(rows, Row{Event: rec, Ticket: opt})
		}
	}
	return rows
}

// Strings renders the row's cell values in Columns order. Multi-valued
// fields are newline-joined and the streaming flag renders as 1 or 0.
func (r Row) Strings() []string {
	streaming := "0"
	if r.Ticket.IsStreaming {
		streaming = "1"
	}
	return []string{
		r.Event.Date,
		r.Event.Time,
		r.Event.Title,
		strings.Join(r.Event.Artists, "\n"),
		r.Event.Description,
		r.Event.Venue,
		r.Ticket.TicketType,
		r.Ticket.VenueType,
		streaming,
		strconv.Itoa(r.Ticket.PriceGBP),
		strconv.Itoa(r.Event.Interested),
		strings.Join(r.Event.Categories, "\n"),
		r.Event.ShortURL,
		r.Event.LongURL,
	}
}
