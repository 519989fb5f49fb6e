package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/ahmednasr/luis/server/internal/timetable"
)

// NoClassInfo stands in for the class list when a day has no entries.
const NoClassInfo = "No class info found"

// ComposePrompt builds the instruction sent to the completion provider.
// The output depends only on its arguments.
func ComposePrompt(message string, today time.Time, tt timetable.Timetable, day string) string {
	classes := tt.Classes(day)
	if len(classes) == 0 {
		classes = []string{NoClassInfo}
	}

	return fmt.Sprintf(`User asked: "%s"
Today is %s.
Timetable: %s
Classes for %s: %s.
Respond naturally as LUIS, a friendly college assistant.
Be concise. If it's a holiday or a day off, say it clearly.`,
		message,
		today.Weekday().String(),
		tt.JSON(),
		day,
		strings.Join(classes, ", "))
}
