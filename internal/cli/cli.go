package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ohenriksen/lieder-tickets/internal/event"
	"github.com/ohenriksen/lieder-tickets/internal/export"
	"github.com/ohenriksen/lieder-tickets/internal/logger"
	"github.com/ohenriksen/lieder-tickets/internal/merge"
	"github.com/ohenriksen/lieder-tickets/internal/scraper"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// Default file names. The inputs are saved copies of
// https://www.oxfordlieder.co.uk/events/forthcoming and
// https://www.oxfordlieder.co.uk/tickets/; outputs land in the working
// directory.
const (
	DefaultEventsFile  = "oxford_lieder_2021.html"
	DefaultTicketsFile = "oxford_lieder_2021_ticket_prices.html"
	DefaultOutputBase  = "oxford_lieder-2021-ticket_list"
)

var (
	flagEventsFile  string
	flagTicketsFile string
	flagOutputBase  string
	flagVerbose     bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lieder-tickets",
		Short: "Build a concert ticket list from saved Oxford Lieder Festival pages",
		Long: `Extracts concert and ticket metadata from locally saved copies of the
Oxford Lieder Festival event listing and ticket pricing pages, joins them on
the event URL, and exports the result as CSV and as a sortable HTML table.`,
		RunE: runExport,
	}

	cmd.Flags().StringVar(&flagEventsFile, "events-file", DefaultEventsFile, "Saved HTML copy of the festival event listing")
	cmd.Flags().StringVar(&flagTicketsFile, "tickets-file", DefaultTicketsFile, "Saved HTML copy of the festival ticket pricing page")
	cmd.Flags().StringVar(&flagOutputBase, "output-base", DefaultOutputBase, "Base name for the .csv and .html exports")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runExport is the main command logic
func runExport(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
		logger.Debug("starting export", logger.Fields{
			"events_file":  flagEventsFile,
			"tickets_file": flagTicketsFile,
			"output_base":  flagOutputBase,
		})
	}

	// Extract events
	start := time.Now()
	eventDoc, err := scraper.LoadFile(flagEventsFile)
	if err != nil {
		logger.Error("loading events page failed", logger.Fields{"path": flagEventsFile}, err)
		return fmt.Errorf("loading events page: %w", err)
	}
	events, err := scraper.ExtractEvents(eventDoc)
	if err != nil {
		return fmt.Errorf("extracting events: %w", err)
	}
	event.SortByTitle(events)
	logger.RecordTiming("extract.events", time.Since(start))
	logger.Debug("extracted events", logger.Fields{"count": len(events)})

	// Extract ticket tiers
	start = time.Now()
	ticketDoc, err := scraper.LoadFile(flagTicketsFile)
	if err != nil {
		logger.Error("loading tickets page failed", logger.Fields{"path": flagTicketsFile}, err)
		return fmt.Errorf("loading tickets page: %w", err)
	}
	groups, err := scraper.ExtractTickets(ticketDoc)
	if err != nil {
		return fmt.Errorf("extracting tickets: %w", err)
	}
	logger.RecordTiming("extract.tickets", time.Since(start))
	logger.Debug("extracted ticket groups", logger.Fields{"count": groups.Len()})

	// Join on event short URL
	rows := merge.Merge(events, groups)
	logger.Debug("merged rows", logger.Fields{"count": len(rows)})

	// Export
	start = time.Now()
	csvPath := flagOutputBase + ".csv"
	if err := export.WriteCSV(csvPath, rows); err != nil {
		logger.Error("CSV export failed", logger.Fields{"path": csvPath}, err)
		return fmt.Errorf("exporting %s: %w", csvPath, err)
	}
	htmlPath := flagOutputBase + ".html"
	if err := export.WriteHTML(htmlPath, rows); err != nil {
		logger.Error("HTML export failed", logger.Fields{"path": htmlPath}, err)
		return fmt.Errorf("exporting %s: %w", htmlPath, err)
	}
	logger.RecordTiming("export", time.Since(start))

	fmt.Fprintf(cmd.OutOrStdout(), "CSV export succeeded [%d rows, %d columns]: %s\n",
		len(rows), len(merge.Columns), absPath(csvPath))
	fmt.Fprintf(cmd.OutOrStdout(), "HTML export succeeded [%d rows, %d columns]: %s\n",
		len(rows), len(merge.Columns), absPath(htmlPath))

	if flagVerbose {
		logger.Debug("pipeline metrics", logger.MetricsSnapshot())
	}
	return nil
}

// absPath resolves path for the success lines, falling back to the path as
// given if the working directory is unavailable.
func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
