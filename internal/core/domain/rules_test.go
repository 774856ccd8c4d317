package domain_test

import (
	"testing"
	"time"

	"github.com/MikeRez0/lunchorder/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	saturday := func(minutes int) time.Time {
		return time.Date(2024, 3, 9, minutes/60, minutes%60, 0, 0, time.UTC)
	}

	tests := []struct {
		name        string
		now         time.Time
		expExec     domain.Executability
		expReason   *domain.Reason
		expDispatch *string
		expMarket   string
		expPoints   int
	}{
		{
			name:        "early window",
			now:         weekdayAt(480),
			expExec:     domain.ExecutableNow,
			expDispatch: strPtr("12:00"),
			expMarket:   "OPEN_EARLY",
			expPoints:   3,
		},
		{
			name:        "normal window",
			now:         weekdayAt(690),
			expExec:     domain.ExecutableNow,
			expDispatch: strPtr("12:00"),
			expMarket:   "OPEN_NORMAL",
			expPoints:   1,
		},
		{
			name:        "late window",
			now:         weekdayAt(765),
			expExec:     domain.ExecutableNow,
			expDispatch: strPtr("13:00"),
			expMarket:   "OPEN_LATE",
			expPoints:   0,
		},
		{
			name:      "weekend overrides a valid window",
			now:       saturday(690),
			expExec:   domain.NotExecutable,
			expReason: reasonPtr(domain.ReasonWeekend),
			expMarket: domain.MarketClosed,
			expPoints: 1,
		},
		{
			name:      "weekend outside hours",
			now:       saturday(300),
			expExec:   domain.NotExecutable,
			expReason: reasonPtr(domain.ReasonWeekend),
			expMarket: domain.MarketClosed,
		},
		{
			name:      "before opening",
			now:       weekdayAt(419),
			expExec:   domain.NotExecutable,
			expReason: reasonPtr(domain.ReasonOutsideHours),
			expMarket: domain.MarketClosed,
		},
		{
			name:      "after closing",
			now:       weekdayAt(841),
			expExec:   domain.NotExecutable,
			expReason: reasonPtr(domain.ReasonOutsideHours),
			expMarket: domain.MarketClosed,
		},
		{
			name:      "last minute of late window has no dispatch left",
			now:       weekdayAt(840),
			expExec:   domain.NotExecutable,
			expReason: reasonPtr(domain.ReasonNoDispatchLeft),
			expMarket: domain.MarketClosed,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := domain.Evaluate(domain.NewOrder(), domain.NewClockState(test.now))

			assert.Equal(t, test.expExec, result.Executability)
			assert.Equal(t, test.expReason, result.Reason)
			assert.Equal(t, test.expDispatch, result.AssignedDispatchTime)
			assert.Equal(t, test.expMarket, result.MarketState)
			assert.Equal(t, test.expPoints, result.Points)
		})
	}
}

func TestEvaluate_IgnoresOrderContents(t *testing.T) {
	state := domain.NewClockState(weekdayAt(690))
	full := domain.NewOrder().SetBaseQuantity("A", 9).ToggleExtra("JUGO")

	assert.Equal(t, domain.Evaluate(domain.NewOrder(), state), domain.Evaluate(full, state))
}

func TestEvaluate_PointsDoNotGate(t *testing.T) {
	state := domain.NewClockState(weekdayAt(690))

	state.BasePoints = 0
	zero := domain.Evaluate(domain.NewOrder(), state)
	state.BasePoints = 100
	many := domain.Evaluate(domain.NewOrder(), state)

	assert.Equal(t, zero.Executability, many.Executability)
	assert.Equal(t, zero.AssignedDispatchTime, many.AssignedDispatchTime)
	assert.Equal(t, 100, many.Points)
}

func TestReason_Advisory(t *testing.T) {
	assert.Contains(t, domain.ReasonWeekend.Advisory(), "sábados")
	assert.Contains(t, domain.ReasonNoDispatchLeft.Advisory(), "despachos")
	assert.Contains(t, domain.ReasonOutsideHours.Advisory(), "fuera de horario")
	require.NotEmpty(t, domain.Reason("OTHER").Advisory())
}

func strPtr(s string) *string {
	return &s
}

func reasonPtr(r domain.Reason) *domain.Reason {
	return &r
}
