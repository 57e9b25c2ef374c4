package hours_test

import (
	"testing"
	"time"

	"overcooked-checkout/checkout-svc/internal/domain"
	"overcooked-checkout/checkout-svc/internal/hours"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-06-12 was a Wednesday.
var wednesdayNoon = time.Date(2024, time.June, 12, 12, 0, 0, 0, time.UTC)

func TestIsOpenToday_NoWindows(t *testing.T) {
	status := hours.IsOpenToday(nil, wednesdayNoon)

	assert.False(t, status.IsOpen)
	assert.Empty(t, status.Label)
}

func TestIsOpenToday_PresenceOnly(t *testing.T) {
	tests := []struct {
		name      string
		windows   []domain.WorkingHourWindow
		wantOpen  bool
		wantLabel string
	}{
		{
			name:      "window for today",
			windows:   []domain.WorkingHourWindow{{Day: "WEDNESDAY", Opens: "09:00:00", Closes: "22:30:00"}},
			wantOpen:  true,
			wantLabel: "9:00 AM – 10:30 PM",
		},
		{
			name:      "day matched case-insensitively",
			windows:   []domain.WorkingHourWindow{{Day: "wednesday", Opens: "11:00", Closes: "15:00"}},
			wantOpen:  true,
			wantLabel: "11:00 AM – 3:00 PM",
		},
		{
			name:     "only other days",
			windows:  []domain.WorkingHourWindow{{Day: "MONDAY", Opens: "09:00:00", Closes: "17:00:00"}},
			wantOpen: false,
		},
		{
			name:      "open even outside hours",
			windows:   []domain.WorkingHourWindow{{Day: "WEDNESDAY", Opens: "18:00:00", Closes: "23:00:00"}},
			wantOpen:  true,
			wantLabel: "6:00 PM – 11:00 PM",
		},
		{
			name:      "malformed boundary",
			windows:   []domain.WorkingHourWindow{{Day: "WEDNESDAY", Opens: "nine", Closes: "21:00:00"}},
			wantOpen:  true,
			wantLabel: "N/A – 9:00 PM",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			status := hours.IsOpenToday(testCase.windows, wednesdayNoon)

			assert.Equal(t, testCase.wantOpen, status.IsOpen)
			assert.Equal(t, testCase.wantLabel, status.Label)
		})
	}
}

func TestEvaluator_WithinWindow(t *testing.T) {
	evaluator := hours.NewEvaluator(hours.WithinWindow, time.UTC)

	tests := []struct {
		name     string
		window   domain.WorkingHourWindow
		now      time.Time
		wantOpen bool
	}{
		{
			name:     "inside",
			window:   domain.WorkingHourWindow{Day: "WEDNESDAY", Opens: "09:00:00", Closes: "17:00:00"},
			now:      wednesdayNoon,
			wantOpen: true,
		},
		{
			name:     "before opening",
			window:   domain.WorkingHourWindow{Day: "WEDNESDAY", Opens: "18:00:00", Closes: "23:00:00"},
			now:      wednesdayNoon,
			wantOpen: false,
		},
		{
			name:     "closing time is exclusive",
			window:   domain.WorkingHourWindow{Day: "WEDNESDAY", Opens: "09:00:00", Closes: "12:00:00"},
			now:      wednesdayNoon,
			wantOpen: false,
		},
		{
			name:     "wraps past midnight",
			window:   domain.WorkingHourWindow{Day: "WEDNESDAY", Opens: "20:00:00", Closes: "02:00:00"},
			now:      time.Date(2024, time.June, 12, 23, 30, 0, 0, time.UTC),
			wantOpen: true,
		},
		{
			name:     "closes at midnight, before opening",
			window:   domain.WorkingHourWindow{Day: "WEDNESDAY", Opens: "18:00:00", Closes: "24:00:00"},
			now:      time.Date(2024, time.June, 12, 9, 0, 0, 0, time.UTC),
			wantOpen: false,
		},
		{
			name:     "closes at midnight, late evening",
			window:   domain.WorkingHourWindow{Day: "WEDNESDAY", Opens: "18:00:00", Closes: "24:00:00"},
			now:      time.Date(2024, time.June, 12, 23, 59, 0, 0, time.UTC),
			wantOpen: true,
		},
		{
			name:     "open all day",
			window:   domain.WorkingHourWindow{Day: "WEDNESDAY", Opens: "00:00:00", Closes: "24:00:00"},
			now:      time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC),
			wantOpen: true,
		},
		{
			name:     "unparsable falls back to presence",
			window:   domain.WorkingHourWindow{Day: "WEDNESDAY", Opens: "late", Closes: "17:00:00"},
			now:      wednesdayNoon,
			wantOpen: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			status := evaluator.IsOpenToday([]domain.WorkingHourWindow{testCase.window}, testCase.now)
			assert.Equal(t, testCase.wantOpen, status.IsOpen)
			assert.NotEmpty(t, status.Label)
		})
	}
}

func TestEvaluator_UsesLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	evaluator := hours.NewEvaluator(hours.PresenceOnly, tokyo)

	// Wednesday 20:00 UTC is already Thursday in Tokyo.
	now := time.Date(2024, time.June, 12, 20, 0, 0, 0, time.UTC)
	windows := []domain.WorkingHourWindow{{Day: "THURSDAY", Opens: "10:00:00", Closes: "20:00:00"}}

	status := evaluator.IsOpenToday(windows, now)
	require.True(t, status.IsOpen)
	assert.Equal(t, "10:00 AM – 8:00 PM", status.Label)
}

func TestLabel_MidnightClose(t *testing.T) {
	window := domain.WorkingHourWindow{Day: "WEDNESDAY", Opens: "18:00:00", Closes: "24:00:00"}
	assert.Equal(t, "6:00 PM – 12:00 AM", hours.Label(window))
}

func TestFormatClock(t *testing.T) {
	tests := map[string]string{
		"00:00:00": "12:00 AM",
		"12:05:00": "12:05 PM",
		"23:59:59": "11:59 PM",
		"7:30":     "7:30 AM",
		"24:00:00": "12:00 AM",
		"24:00":    "12:00 AM",
		"24:30:00": "N/A",
		"25:00":    "N/A",
		"":         "N/A",
		"10:xx:00": "N/A",
	}

	for raw, want := range tests {
		t.Run(raw, func(t *testing.T) {
			assert.Equal(t, want, hours.FormatClock(raw))
		})
	}
}
