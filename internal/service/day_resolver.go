package service

import (
	"strings"
	"time"

	"github.com/ahmednasr/luis/server/internal/timetable"
)

// ResolveDay works out which weekday a message is asking about.
//
// Rules are checked in order and the first match wins:
//  1. "tomorrow" → the day after today
//  2. "today"    → today
//  3. a weekday name from the timetable, then any other weekday name
//  4. otherwise today
//
// "tomorrow monday" therefore resolves through rule 1.
func ResolveDay(message string, today time.Time, tt timetable.Timetable) string {
	msg := strings.ToLower(strings.TrimSpace(message))

	switch {
	case strings.Contains(msg, "tomorrow"):
		return WeekdayName(today.AddDate(0, 0, 1))
	case strings.Contains(msg, "today"):
		return WeekdayName(today)
	}

	for _, day := range tt.Days() {
		if strings.Contains(msg, day) {
			return day
		}
	}
	for _, day := range timetable.Weekdays {
		if strings.Contains(msg, day) {
			return day
		}
	}

	return WeekdayName(today)
}

// WeekdayName returns the lowercase English weekday of t, e.g. "monday".
func WeekdayName(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}
