package scraper

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ohenriksen/lieder-tickets/internal/logger"
	"github.com/ohenriksen/lieder-tickets/internal/ticket"
)

// Selectors for the pricing page. Only the single-ticket table is scraped;
// season and multi-event passes live in other sections.
const (
	ticketTableSelector = "div#single.ticketing-section tbody"
	eventLinkSelector   = `a[href^="/event"]`
)

// ExtractTickets walks the single-ticket table rows in document order and
// groups them by event key. A row carrying an /event link opens a new group;
// rows without one extend the group of the most recently seen key. A keyed
// row whose key was already seen is skipped with a warning rather than
// merged, since it indicates a malformed table — but it still becomes the
// key that continuation rows below it attach to.
func ExtractTickets(doc *goquery.Document) (*ticket.Groups, error) {
	body := doc.Find(ticketTableSelector).First()
	if body.Length() == 0 {
		return nil, fmt.Errorf("no single-ticket table in pricing page")
	}

	groups := ticket.NewGroups()
	lastKey := "" // most recently seen key; unkeyed continuation rows attach to it
	var firstErr error

	body.Find("tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		opt, err := extractTicketOption(row)
		if err != nil {
			firstErr = fmt.Errorf("ticket row %d: %w", i, err)
			return false
		}

		key, keyed := row.Find(eventLinkSelector).First().Attr("href")
		if keyed {
			lastKey = key
			if !groups.Start(key, opt) {
				logger.Warn("skipping duplicate ticket row for event key", logger.Fields{
					"key": key,
					"row": i,
				})
				logger.IncrCounter("tickets.duplicate_rows")
			}
			return true
		}

		if lastKey == "" {
			firstErr = fmt.Errorf("ticket row %d: continuation row before any event row", i)
			return false
		}
		if err := groups.Append(lastKey, opt); err != nil {
			firstErr = fmt.Errorf("ticket row %d: %w", i, err)
			return false
		}
		return true
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return groups, nil
}

// extractTicketOption reads one table row: cell 2 holds the ticket type and
// venue type on separate lines, cell 3 holds the price.
func extractTicketOption(row *goquery.Selection) (ticket.Option, error) {
	cells := row.Find("td")
	if cells.Length() < 4 {
		return ticket.Option{}, fmt.Errorf("expected at least 4 cells, got %d", cells.Length())
	}

	lines := strings.Split(strings.TrimSpace(cells.Eq(2).Text()), "\n")
	if len(lines) < 2 {
		return ticket.Option{}, fmt.Errorf("ticket/venue cell %q has no venue line", cells.Eq(2).Text())
	}
	ticketType := strings.TrimSpace(lines[0])
	venueType := strings.TrimSpace(lines[1])

	price, err := ticket.ParsePriceGBP(cells.Eq(3).Text())
	if err != nil {
		return ticket.Option{}, err
	}
	return ticket.NewOption(ticketType, venueType, price), nil
}
