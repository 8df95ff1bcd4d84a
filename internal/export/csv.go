package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/ohenriksen/lieder-tickets/internal/merge"
)

// WriteCSV writes the merged table to path: a header row with every column,
// then one line per merged row, no index column.
func WriteCSV(path string, rows []merge.Row) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(merge.Columns); err != nil {
		return fmt.Errorf("encoding header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row.Strings()); err != nil {
			return fmt.Errorf("encoding row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("encoding CSV: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
