// Package event defines the concert record extracted from the festival
// event listing page, plus helpers for parsing the page's combined
// date/time text and ordering records for export.
package event
