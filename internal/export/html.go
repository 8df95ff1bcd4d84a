package export

import (
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/ohenriksen/lieder-tickets/internal/merge"
)

const tableID = "oxford_lieder_2021"

// htmlHeader loads the DataTables stylesheet/script pair from their CDNs and
// initializes a sortable table paginated at 50 rows per page.
const htmlHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Oxford Lieder 2021 - Concerts and Ticket Details</title>
<link rel="stylesheet" type="text/css" href="https://cdn.datatables.net/1.10.25/css/jquery.dataTables.min.css">
<script src="https://code.jquery.com/jquery-3.6.0.min.js" integrity="sha256-/xUj+3OJU5yExlq6GSYGSHk7tPXikynS7ogEvDej/m4=" crossorigin="anonymous"></script>
<script type="text/javascript" charset="utf8" src="https://cdn.datatables.net/1.10.25/js/jquery.dataTables.min.js"></script>
<script type="text/javascript" language="javascript" class="init">
$(document).ready( function () {
    $('#` + tableID + `').DataTable(
        {
            "pageLength": 50
        }
    );
} );
</script>
</head>
<body>`

const htmlFooter = `
</body>
</html>`

// WriteHTML writes the merged table to path as a standalone HTML page. The
// interested column is dropped, multi-line cells render their newlines as
// <br> tags, and the URL columns render as clickable links.
func WriteHTML(path string, rows []merge.Row) error {
	var b strings.Builder
	b.WriteString(htmlHeader)
	writeTable(&b, rows)
	b.WriteString(htmlFooter)

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func writeTable(b *strings.Builder, rows []merge.Row) {
	fmt.Fprintf(b, "\n<table id=%q class=\"display compact\">\n<thead>\n<tr>\n", tableID)
	for _, col := range merge.Columns {
		if col == "interested" {
			continue
		}
		fmt.Fprintf(b, "<th>%s</th>\n", html.EscapeString(col))
	}
	b.WriteString("</tr>\n</thead>\n<tbody>\n")

	for _, row := range rows {
		b.WriteString("<tr>\n")
		cells := row.Strings()
		for i, col := range merge.Columns {
			if col == "interested" {
				continue
			}
			fmt.Fprintf(b, "<td>%s</td>\n", renderCell(col, cells[i]))
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>")
}

// renderCell escapes a cell value and applies the column's display rules.
func renderCell(column, value string) string {
	switch column {
	case "artists", "description", "categories":
		return strings.ReplaceAll(html.EscapeString(value), "\n", "<br>")
	case "short_url", "long_url":
		return fmt.Sprintf("<a href=%q>%s</a>", value, html.EscapeString(value))
	default:
		return html.EscapeString(value)
	}
}
