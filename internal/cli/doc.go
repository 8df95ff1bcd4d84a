// Package cli wires the ticket-list pipeline into a cobra command: load the
// two saved festival pages, extract events and ticket tiers, join them on
// the event short URL, and export the merged table as CSV and HTML.
package cli
