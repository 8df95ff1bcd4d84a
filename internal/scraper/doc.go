// Package scraper parses saved Oxford Lieder Festival pages into structured
// records.
//
// It loads locally saved HTML snapshots (no network access) and extracts
// concert metadata from the event listing page and ticket tiers from the
// pricing page's single-ticket table. The page structure is assumed stable:
// a block or cell that does not match the expected shape is an error, not
// something to recover from.
package scraper
