package hours

import (
	"strconv"
	"strings"
	"time"

	"overcooked-checkout/checkout-svc/internal/domain"
)

// NotAvailable replaces a boundary that could not be parsed.
const NotAvailable = "N/A"

type Mode int

const (
	// PresenceOnly treats any window for today as open, whatever the clock says.
	PresenceOnly Mode = iota
	// WithinWindow also requires the current time to fall inside the window.
	WithinWindow
)

type Status struct {
	IsOpen bool   `json:"is_open"`
	Label  string `json:"label,omitempty"`
}

type Evaluator struct {
	Mode     Mode
	Location *time.Location
}

func NewEvaluator(mode Mode, loc *time.Location) *Evaluator {
	if loc == nil {
		loc = time.Local
	}
	return &Evaluator{Mode: mode, Location: loc}
}

// IsOpenToday evaluates hours with the default presence-only rule in now's zone.
func IsOpenToday(hours []domain.WorkingHourWindow, now time.Time) Status {
	return (&Evaluator{Mode: PresenceOnly, Location: now.Location()}).IsOpenToday(hours, now)
}

func (e *Evaluator) IsOpenToday(hours []domain.WorkingHourWindow, now time.Time) Status {
	if e.Location != nil {
		now = now.In(e.Location)
	}
	window, ok := Today(hours, now)
	if !ok {
		return Status{}
	}

	status := Status{IsOpen: true, Label: Label(window)}
	if e.Mode == WithinWindow {
		status.IsOpen = withinWindow(window, now)
	}
	return status
}

// Today returns the first window whose day matches now's weekday.
func Today(hours []domain.WorkingHourWindow, now time.Time) (domain.WorkingHourWindow, bool) {
	today := strings.ToUpper(now.Weekday().String())
	for _, w := range hours {
		if w.NormalizedDay() == today {
			return w, true
		}
	}
	return domain.WorkingHourWindow{}, false
}

func Label(w domain.WorkingHourWindow) string {
	return FormatClock(w.Opens) + " – " + FormatClock(w.Closes)
}

// FormatClock turns "HH:MM[:SS]" into "h:mm AM". "24:00" renders as midnight.
func FormatClock(raw string) string {
	offset, ok := parseClock(raw)
	if !ok {
		return NotAvailable
	}
	return time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC).Add(offset).Format("3:04 PM")
}

func withinWindow(w domain.WorkingHourWindow, now time.Time) bool {
	opens, okOpen := parseClock(w.Opens)
	closes, okClose := parseClock(w.Closes)
	if !okOpen || !okClose {
		return true
	}

	current := time.Duration(now.Hour())*time.Hour +
		time.Duration(now.Minute())*time.Minute +
		time.Duration(now.Second())*time.Second

	if closes <= opens {
		// closes after midnight
		return current >= opens || current < closes
	}
	return current >= opens && current < closes
}

const endOfDay = 24 * time.Hour

// parseClock accepts "HH:MM[:SS]" and "24:00[:00]" as the end of the day.
func parseClock(raw string) (time.Duration, bool) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}
	if parts[0] == "24" {
		for _, part := range parts[1:] {
			if part != "00" {
				return 0, false
			}
		}
		return endOfDay, true
	}

	limits := []int{23, 59, 59}
	units := []time.Duration{time.Hour, time.Minute, time.Second}
	var offset time.Duration
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > limits[i] {
			return 0, false
		}
		offset += time.Duration(n) * units[i]
	}
	return offset, true
}
