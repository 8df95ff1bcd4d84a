// Package export writes the merged ticket table to disk as CSV and as a
// self-contained HTML page with a sortable, paginated table widget.
package export
