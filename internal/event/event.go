package event

import (
	"sort"
	"strings"
)

// BaseURL is the festival website root, prepended to an event's short URL
// to form its long URL.
const BaseURL = "https://www.oxfordlieder.co.uk"

// Record represents one concert from the festival event listing.
// It is a flat, denormalized view of a single event block and is not
// modified after extraction.
type Record struct {
	Date        string // calendar date, "2006-01-02"
	Time        string // local clock time, "15:04" (the site runs on UTC+1)
	Title       string
	Artists     []string // performer lines in page order
	Description string   // NFKC-normalized blurb
	Venue       string
	Categories  []string // category tags in page order
	ShortURL    string   // unique per event; join key against the ticket table
	LongURL     string   // BaseURL + ShortURL
	Interested  int      // placeholder counter, always 0 at extraction
}

// LongURL derives an event's full website URL from its short URL path.
func LongURL(shortURL string) string {
	return BaseURL + shortURL
}

// SortByTitle orders records by title (case-insensitive) so exports are
// deterministic regardless of page order. Ties fall back to the short URL.
func SortByTitle(records []Record) {
	sort.Slice(records, func(i, j int) bool {
		ti := strings.ToLower(records[i].Title)
		tj := strings.ToLower(records[j].Title)
		if ti != tj {
			return ti < tj
		}
		return records[i].ShortURL < records[j].ShortURL
	})
}
