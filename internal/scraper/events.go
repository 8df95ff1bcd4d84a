package scraper

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"

	"github.com/ohenriksen/lieder-tickets/internal/event"
)

// Selectors for the event listing page. Each concert is rendered as a
// "col-sm-9" block with fixed markers for every field.
const (
	eventBlockSelector   = "div.col-sm-9"
	clockIconSelector    = "i.glyphicon.glyphicon-time"
	venueLabelSelector   = "small.text-muted"
	artistListSelector   = "ul.artistlist li"
	categoryLinkSelector = "a.btn.btn-xs.btn-primary"
	categoryQueryParam   = "category"
	eventHeadingSelector = "h4"
)

// ExtractEvents walks the event listing document and returns one record per
// concert block, in document order. The first malformed block aborts the
// extraction.
func ExtractEvents(doc *goquery.Document) ([]event.Record, error) {
	var records []event.Record
	var firstErr error

	doc.Find(eventBlockSelector).EachWithBreak(func(i int, block *goquery.Selection) bool {
		rec, err := extractEventMetadata(block)
		if err != nil {
			firstErr = fmt.Errorf("event block %d: %w", i, err)
			return false
		}
		records = append(records, rec)
		return true
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return records, nil
}

// extractEventMetadata pulls every field of one concert block.
func extractEventMetadata(block *goquery.Selection) (event.Record, error) {
	var rec event.Record
	var err error

	if rec.Date, rec.Time, err = eventDateTime(block); err != nil {
		return rec, err
	}
	if rec.Title, rec.ShortURL, err = eventTitleAndURL(block); err != nil {
		return rec, err
	}
	rec.LongURL = event.LongURL(rec.ShortURL)
	if rec.Description, err = eventDescription(block); err != nil {
		return rec, err
	}
	if rec.Venue, err = eventVenue(block); err != nil {
		return rec, err
	}
	if rec.Artists, err = eventArtists(block); err != nil {
		return rec, err
	}
	if rec.Categories, err = eventCategories(block); err != nil {
		return rec, err
	}
	rec.Interested = 0
	return rec, nil
}

// eventDateTime parses the text next to the clock icon.
func eventDateTime(block *goquery.Selection) (string, string, error) {
	icon := block.Find(clockIconSelector).First()
	if icon.Length() == 0 {
		return "", "", fmt.Errorf("no clock icon")
	}
	text := followingText(icon)
	if text == "" {
		return "", "", fmt.Errorf("no date/time text after clock icon")
	}
	return event.ParseDateTime(text)
}

// eventTitleAndURL reads the heading link: the trimmed heading text is the
// title and the link href is the event's short URL (the join key).
func eventTitleAndURL(block *goquery.Selection) (string, string, error) {
	heading := block.Find(eventHeadingSelector).First()
	if heading.Length() == 0 {
		return "", "", fmt.Errorf("no event heading")
	}
	shortURL, ok := heading.Find("a").First().Attr("href")
	if !ok {
		return "", "", fmt.Errorf("event heading has no link")
	}
	return strings.TrimSpace(heading.Text()), shortURL, nil
}

// eventDescription takes the text sibling after the block's last paragraph
// and applies NFKC normalization to collapse compatibility characters.
func eventDescription(block *goquery.Selection) (string, error) {
	last := block.Find("p").Last()
	if last.Length() == 0 {
		return "", fmt.Errorf("no paragraphs in event block")
	}
	text := followingText(last)
	if text == "" {
		return "", fmt.Errorf("no description text after last paragraph")
	}
	return norm.NFKC.String(text), nil
}

// eventVenue takes the text after the muted label, keeping only the final
// pipe-delimited segment ("Oxford Lieder | Holywell Music Room" becomes
// "Holywell Music Room").
func eventVenue(block *goquery.Selection) (string, error) {
	label := block.Find(venueLabelSelector).First()
	if label.Length() == 0 {
		return "", fmt.Errorf("no venue label")
	}
	text := followingText(label)
	if text == "" {
		return "", fmt.Errorf("no venue text after label")
	}
	segments := strings.Split(text, "|")
	return strings.TrimSpace(segments[len(segments)-1]), nil
}

// eventArtists collects the trimmed text of each artist list item, in order.
func eventArtists(block *goquery.Selection) ([]string, error) {
	items := block.Find(artistListSelector)
	if items.Length() == 0 {
		return nil, fmt.Errorf("no artist list")
	}
	artists := make([]string, 0, items.Length())
	items.Each(func(_ int, li *goquery.Selection) {
		artists = append(artists, strings.TrimSpace(li.Text()))
	})
	return artists, nil
}

// eventCategories reads the category query parameter from each category
// button link, in document order.
func eventCategories(block *goquery.Selection) ([]string, error) {
	var categories []string
	var firstErr error

	block.Find(categoryLinkSelector).EachWithBreak(func(i int, link *goquery.Selection) bool {
		href, ok := link.Attr("href")
		if !ok {
			firstErr = fmt.Errorf("category link %d has no href", i)
			return false
		}
		u, err := url.Parse(href)
		if err != nil {
			firstErr = fmt.Errorf("parsing category link %q: %w", href, err)
			return false
		}
		category := u.Query().Get(categoryQueryParam)
		if category == "" {
			firstErr = fmt.Errorf("category link %q has no %s parameter", href, categoryQueryParam)
			return false
		}
		categories = append(categories, category)
		return true
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return categories, nil
}

// followingText returns the trimmed text of the first non-blank text node
// after the selection's element. The festival pages place field values as
// bare text nodes next to their marker elements, which goquery selectors
// alone cannot reach.
func followingText(sel *goquery.Selection) string {
	if len(sel.Nodes) == 0 {
		return ""
	}
	for n := sel.Nodes[0].NextSibling; n != nil; n = n.NextSibling {
		if n.Type != html.TextNode {
			return ""
		}
		if text := strings.TrimSpace(n.Data); text != "" {
			return text
		}
	}
	return ""
}
