package event

import (
	"testing"
)

func TestLongURL(t *testing.T) {
	got := LongURL("/event/123-recital")
	want := "https://www.oxfordlieder.co.uk/event/123-recital"
	if got != want {
		t.Errorf("LongURL = %q, expected %q", got, want)
	}
}

func TestSortByTitle(t *testing.T) {
	records := []Record{
		{Title: "Recital A", ShortURL: "/event/1"},
		{Title: "baritone masterclass", ShortURL: "/event/2"},
		{Title: "Closing Gala", ShortURL: "/event/3"},
	}

	SortByTitle(records)

	wantOrder := []string{"/event/2", "/event/3", "/event/1"}
	for i, want := range wantOrder {
		if records[i].ShortURL != want {
			t.Errorf("position %d: got %s (%q), expected %s", i, records[i].ShortURL, records[i].Title, want)
		}
	}
}

func TestSortByTitleTieBreaksOnShortURL(t *testing.T) {
	records := []Record{
		{Title: "Recital", ShortURL: "/event/9"},
		{Title: "Recital", ShortURL: "/event/4"},
	}

	SortByTitle(records)

	if records[0].ShortURL != "/event/4" {
		t.Errorf("expected equal titles to sort by short URL, got %s first", records[0].ShortURL)
	}
}
