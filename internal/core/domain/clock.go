package domain

import (
	"fmt"
	"time"
)

type TimeWindow string

const (
	WindowEarly  TimeWindow = "EARLY"
	WindowNormal TimeWindow = "NORMAL"
	WindowLate   TimeWindow = "LATE"
)

type windowRange struct {
	id     TimeWindow
	from   int
	to     int
	points int
}

// Bounds are minutes since midnight, both inclusive.
var windows = []windowRange{
	{id: WindowEarly, from: 420, to: 659, points: 3},
	{id: WindowNormal, from: 660, to: 719, points: 1},
	{id: WindowLate, from: 720, to: 840, points: 0},
}

// DispatchSlots are the fixed departure times, in minutes since midnight.
var DispatchSlots = []int{720, 750, 780, 810, 840}

type ClockState struct {
	Hour                 int          `json:"hour"`
	Minute               int          `json:"minute"`
	MinutesSinceMidnight int          `json:"minutesSinceMidnight"`
	Weekday              time.Weekday `json:"weekday"`
	Window               *TimeWindow  `json:"window"`
	BasePoints           int          `json:"basePoints"`
	NextDispatchMinutes  *int         `json:"nextDispatchMinutes"`
	IsWeekend            bool         `json:"isWeekend"`
	Timestamp            time.Time    `json:"timestamp"`
	LocalizedDate        string       `json:"localizedDate"`
	LocalizedTime        string       `json:"localizedTime"`
}

// NewClockState derives the schedule classification of now.
func NewClockState(now time.Time) ClockState {
	minutes := now.Hour()*60 + now.Minute()

	state := ClockState{
		Hour:                 now.Hour(),
		Minute:               now.Minute(),
		MinutesSinceMidnight: minutes,
		Weekday:              now.Weekday(),
		IsWeekend:            now.Weekday() == time.Saturday || now.Weekday() == time.Sunday,
		Timestamp:            now,
		LocalizedDate:        now.Format("2/1/2006"),
		LocalizedTime:        now.Format("15:04"),
	}

	for _, w := range windows {
		if minutes >= w.from && minutes <= w.to {
			id := w.id
			state.Window = &id
			state.BasePoints = w.points
			break
		}
	}

	state.NextDispatchMinutes = NextDispatch(minutes)

	return state
}

// NextDispatch returns the first slot strictly after minutes, or nil.
func NextDispatch(minutes int) *int {
	for _, d := range DispatchSlots {
		if minutes < d {
			slot := d
			return &slot
		}
	}
	return nil
}

// FormatMinutes renders minutes since midnight as HH:MM.
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
