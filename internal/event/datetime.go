package event

import (
	"fmt"
	"strings"
	"time"
)

// DateTimeLayout matches the text next to the clock icon on the event
// listing page, e.g. "12 Oct 2021 19:30".
const DateTimeLayout = "2 Jan 2006 15:04"

// ParseDateTime splits the listing page's combined date/time text into
// separate date ("2006-01-02") and clock ("15:04") strings. Text that does
// not match the page's format is an error; the caller is expected to halt
// rather than guess.
func ParseDateTime(text string) (date, clock string, err error) {
	t, err := time.Parse(DateTimeLayout, strings.TrimSpace(text))
	if err != nil {
		return "", "", fmt.Errorf("parsing event date/time %q: %w", text, err)
	}
	return t.Format("2006-01-02"), t.Format("15:04"), nil
}
