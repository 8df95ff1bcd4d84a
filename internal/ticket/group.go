package ticket

import "fmt"

// Group holds the accumulated ticket fields for one event key as parallel
// lists aligned by index. The i-th entry of every list together forms one
// ticket option.
type Group struct {
	Key         string // event short URL
	TicketTypes []string
	VenueTypes  []string
	Streaming   []bool
	PricesGBP   []int
}

func (g *Group) add(opt Option) {
	g.TicketTypes = append(g.TicketTypes, opt.TicketType)
	g.VenueTypes = append(g.VenueTypes, opt.VenueType)
	g.Streaming = append(g.Streaming, opt.IsStreaming)
	g.PricesGBP = append(g.PricesGBP, opt.PriceGBP)
}

// Len returns the number of ticket options accumulated in the group.
func (g *Group) Len() int {
	return len(g.PricesGBP)
}

// Explode expands the group's parallel lists into one Option per index.
func (g *Group) Explode() []Option {
	options := make([]Option, 0, g.Len())
	for i := range g.PricesGBP {
		options = append(options, Option{
			TicketType:  g.TicketTypes[i],
			VenueType:   g.VenueTypes[i],
			IsStreaming: g.Streaming[i],
			PriceGBP:    g.PricesGBP[i],
		})
	}
	return options
}

// Groups maps event keys to their ticket groups, remembering the order in
// which keys were first seen.
type Groups struct {
	byKey map[string]*Group
	order []string
}

// NewGroups creates an empty Groups collection.
func NewGroups() *Groups {
	return &Groups{byKey: make(map[string]*Group)}
}

// Start opens a new group for key seeded with opt. It reports false without
// modifying anything if the key already has a group.
func (gs *Groups) Start(key string, opt Option) bool {
	if _, exists := gs.byKey[key]; exists {
		return false
	}
	group := &Group{Key: key}
	group.add(opt)
	gs.byKey[key] = group
	gs.order = append(gs.order, key)
	return true
}

// Append adds opt to the existing group for key.
func (gs *Groups) Append(key string, opt Option) error {
	group, exists := gs.byKey[key]
	if !exists {
		return fmt.Errorf("no ticket group for key %q", key)
	}
	group.add(opt)
	return nil
}

// Get returns the group for key, if any.
func (gs *Groups) Get(key string) (*Group, bool) {
	group, exists := gs.byKey[key]
	return group, exists
}

// Keys returns the event keys in first-seen order.
func (gs *Groups) Keys() []string {
	keys := make([]string, len(gs.order))
	copy(keys, gs.order)
	return keys
}

// Len returns the number of event keys with at least one ticket option.
func (gs *Groups) Len() int {
	return len(gs.order)
}
