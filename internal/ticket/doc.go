// Package ticket defines ticket-tier records extracted from the festival
// pricing table. Rows in that table are grouped by event: a keyed row opens
// a group and unkeyed rows below it add further tiers for the same event,
// so a group holds its field values as index-aligned lists that are later
// exploded back into one option per index.
package ticket
