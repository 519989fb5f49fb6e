package service

import (
	"strings"
	"testing"

	"github.com/ahmednasr/luis/server/internal/timetable"
)

func TestComposePrompt(t *testing.T) {
	tt := timetable.Timetable{"tuesday": {"Maths", "Physics"}}

	prompt := ComposePrompt("what do i have tomorrow?", monday, tt, "tuesday")

	for _, want := range []string{
		`"what do i have tomorrow?"`,
		"Today is Monday.",
		`"tuesday": [`,
		"Classes for tuesday: Maths, Physics.",
		"LUIS",
		"holiday",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("expected prompt to contain %q, got:\n%s", want, prompt)
		}
	}
}

func TestComposePromptSentinel(t *testing.T) {
	tt := timetable.Timetable{"tuesday": {"Maths"}, "sunday": {}}

	for _, day := range []string{"friday", "sunday"} {
		prompt := ComposePrompt("friday classes", monday, tt, day)
		if !strings.Contains(prompt, "Classes for "+day+": "+NoClassInfo+".") {
			t.Errorf("expected sentinel for %s, got:\n%s", day, prompt)
		}
	}
}

func TestComposePromptDeterministic(t *testing.T) {
	tt := timetable.Timetable{"monday": {"C"}, "tuesday": {"Logic"}, "friday": {"Maths"}}
	a := ComposePrompt("hi", monday, tt, "monday")
	b := ComposePrompt("hi", monday, tt, "monday")
	if a != b {
		t.Errorf("expected identical prompts for identical input")
	}
}
