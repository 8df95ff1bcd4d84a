package ticket

import (
	"testing"
)

func TestHasStreaming(t *testing.T) {
	tests := []struct {
		venueType string
		expected  bool
	}{
		{"In-person & Streaming (Digital Concert Hall)", true},
		{"In-person only", false},
		{"Digital Concert Hall - Live stream only", true},
		{"Under 35s: Digital Concert Hall - Live stream only", true},
		{"SongPaths - including £5 donation to Oxfordshire Mind", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.venueType, func(t *testing.T) {
			if got := HasStreaming(tt.venueType); got != tt.expected {
				t.Errorf("HasStreaming(%q) = %v, expected %v", tt.venueType, got, tt.expected)
			}
		})
	}
}

func TestParsePriceGBP(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
		wantErr  bool
	}{
		{name: "Pence truncated", text: "£12.50", expected: 12},
		{name: "Whole pounds", text: "£9", expected: 9},
		{name: "No currency symbol", text: "20.00", expected: 20},
		{name: "Surrounding whitespace", text: " £15.00 ", expected: 15},
		{name: "Not a number", text: "TBC", wantErr: true},
		{name: "Empty", text: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePriceGBP(tt.text)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePriceGBP(%q) expected error, got %d", tt.text, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePriceGBP(%q) failed: %v", tt.text, err)
			}
			if got != tt.expected {
				t.Errorf("ParsePriceGBP(%q) = %d, expected %d", tt.text, got, tt.expected)
			}
		})
	}
}

func TestNewOptionDerivesStreaming(t *testing.T) {
	opt := NewOption("Standard", "In-person & Streaming (Digital Concert Hall)", 15)
	if !opt.IsStreaming {
		t.Error("expected streaming venue type to set IsStreaming")
	}

	opt = NewOption("Student", "In-person only", 9)
	if opt.IsStreaming {
		t.Error("expected in-person venue type to leave IsStreaming false")
	}
}

func TestGroupsRowAccumulation(t *testing.T) {
	// Mirrors the pricing table shape: a keyed row opens a group, unkeyed
	// rows append to the last opened group.
	groups := NewGroups()

	if ok := groups.Start("/event/1", NewOption("Standard", "In-person only", 10)); !ok {
		t.Fatal("expected Start on a fresh key to succeed")
	}
	if err := groups.Append("/event/1", NewOption("Student", "In-person only", 5)); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if ok := groups.Start("/event/2", NewOption("Standard", "Digital Concert Hall - Live stream only", 20)); !ok {
		t.Fatal("expected Start on a second key to succeed")
	}

	if groups.Len() != 2 {
		t.Fatalf("expected 2 groups, got %d", groups.Len())
	}

	g1, ok := groups.Get("/event/1")
	if !ok {
		t.Fatal("expected group for /event/1")
	}
	if len(g1.PricesGBP) != 2 || g1.PricesGBP[0] != 10 || g1.PricesGBP[1] != 5 {
		t.Errorf("expected /event/1 prices [10 5], got %v", g1.PricesGBP)
	}

	g2, ok := groups.Get("/event/2")
	if !ok {
		t.Fatal("expected group for /event/2")
	}
	if len(g2.PricesGBP) != 1 || g2.PricesGBP[0] != 20 {
		t.Errorf("expected /event/2 prices [20], got %v", g2.PricesGBP)
	}
}

func TestGroupsStartDuplicateKey(t *testing.T) {
	groups := NewGroups()
	groups.Start("/event/1", NewOption("Standard", "In-person only", 10))

	if ok := groups.Start("/event/1", NewOption("Standard", "In-person only", 99)); ok {
		t.Fatal("expected Start on a duplicate key to report false")
	}

	g, _ := groups.Get("/event/1")
	if g.Len() != 1 || g.PricesGBP[0] != 10 {
		t.Errorf("duplicate Start should not modify the group, got prices %v", g.PricesGBP)
	}
}

func TestGroupsAppendUnknownKey(t *testing.T) {
	groups := NewGroups()
	if err := groups.Append("/event/404", NewOption("Standard", "In-person only", 10)); err == nil {
		t.Error("expected Append on an unknown key to fail")
	}
}

func TestExplodeRoundTrip(t *testing.T) {
	groups := NewGroups()
	groups.Start("/event/1", NewOption("Standard", "In-person & Streaming (Digital Concert Hall)", 15))
	groups.Append("/event/1", NewOption("Student", "In-person only", 9))
	groups.Append("/event/1", NewOption("Under 35s", "Digital Concert Hall - Live stream only", 5))

	g, _ := groups.Get("/event/1")
	options := g.Explode()

	if len(options) != g.Len() {
		t.Fatalf("expected %d exploded options, got %d", g.Len(), len(options))
	}
	for i, opt := range options {
		if opt.TicketType != g.TicketTypes[i] {
			t.Errorf("option %d ticket type = %q, expected %q", i, opt.TicketType, g.TicketTypes[i])
		}
		if opt.VenueType != g.VenueTypes[i] {
			t.Errorf("option %d venue type = %q, expected %q", i, opt.VenueType, g.VenueTypes[i])
		}
		if opt.IsStreaming != g.Streaming[i] {
			t.Errorf("option %d streaming = %v, expected %v", i, opt.IsStreaming, g.Streaming[i])
		}
		if opt.PriceGBP != g.PricesGBP[i] {
			t.Errorf("option %d price = %d, expected %d", i, opt.PriceGBP, g.PricesGBP[i])
		}
	}
}
