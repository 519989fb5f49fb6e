package exporter

import (
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/ahmednasr/luis/server/internal/timetable"
)

var uidNamespace = uuid.MustParse("6f1c5a9e-3d0b-4b8e-9a51-2a7d1c9e4f10")

// GenerateICS writes tt as an iCalendar file. Each class becomes an all-day
// event that repeats weekly, starting on the first matching weekday on or
// after from. UIDs are stable so re-imports update rather than duplicate.
func GenerateICS(tt timetable.Timetable, from time.Time, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//luis//timetable//EN")

	now := time.Now()
	for _, day := range tt.Days() {
		start, err := nextWeekday(from, day)
		if err != nil {
			return err
		}

		for i, class := range tt.Classes(day) {
			uid := uuid.NewSHA1(uidNamespace, []byte(fmt.Sprintf("%s|%d|%s", day, i, class)))

			event := cal.AddEvent(uid.String())
			event.SetDtStampTime(now)
			event.SetAllDayStartAt(start)
			event.SetAllDayEndAt(start.AddDate(0, 0, 1))
			event.SetSummary(class)
			event.SetDescription(fmt.Sprintf("Class %d on %s", i+1, day))
			event.AddProperty(ics.ComponentPropertyRrule, "FREQ=WEEKLY")
		}
	}

	return cal.SerializeTo(w)
}

// nextWeekday returns the first date on or after from that falls on day.
func nextWeekday(from time.Time, day string) (time.Time, error) {
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	for i := 0; i < 7; i++ {
		d := from.AddDate(0, 0, i)
		if timetableDay(d) == day {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("unknown weekday %q", day)
}

func timetableDay(t time.Time) string {
	return timetable.Weekdays[(int(t.Weekday())+6)%7]
}
