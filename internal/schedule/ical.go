package schedule

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	ical "github.com/emersion/go-ical"
)

// ImportICS reads an iCalendar feed from a URL or file path and converts its
// events into sessions. Each event contributes its summary as the course
// code, its weekday, and its clock times; weekly recurrence collapses onto
// the same weekday, so reading the first instance is enough. Malformed
// events are skipped.
func ImportICS(ctx context.Context, source string) ([]Session, error) {
	var r io.ReadCloser

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetching calendar: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("calendar fetch returned status %d", resp.StatusCode)
		}
		r = resp.Body
	} else {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("opening calendar file: %w", err)
		}
		r = f
	}
	defer r.Close()

	dec := ical.NewDecoder(r)
	var sessions []Session

	for {
		cal, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing calendar: %w", err)
		}

		for _, component := range cal.Children {
			if component.Name != ical.CompEvent {
				continue
			}
			event := ical.Event{Component: component}

			start, err := event.DateTimeStart(nil)
			if err != nil {
				continue // skip malformed events
			}
			end, err := event.DateTimeEnd(nil)
			if err != nil {
				continue
			}

			startMin := Minutes(start.Hour()*60 + start.Minute())
			endMin := Minutes(end.Hour()*60 + end.Minute())
			if endMin <= startMin {
				continue
			}

			summary, _ := event.Props.Text(ical.PropSummary)
			sessions = append(sessions, Session{
				Code:  summary,
				Days:  Day(start.Weekday()),
				Start: startMin,
				End:   endMin,
			})
		}
	}

	return sessions, nil
}
