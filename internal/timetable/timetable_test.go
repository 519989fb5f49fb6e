package timetable

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "schedule.json", `{"monday": ["Physics", "Chemistry"], "sunday": []}`)

	tt := Load(path)

	if got := tt.Classes("monday"); !reflect.DeepEqual(got, []string{"Physics", "Chemistry"}) {
		t.Errorf("expected monday classes [Physics Chemistry], got %v", got)
	}
	if !tt.Has("sunday") {
		t.Errorf("expected sunday to be present even with no classes")
	}
	if tt.Has("friday") {
		t.Errorf("expected friday to be absent")
	}
	if got := tt.Days(); !reflect.DeepEqual(got, []string{"monday", "sunday"}) {
		t.Errorf("expected days in week order [monday sunday], got %v", got)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "schedule.yaml", "tuesday:\n  - Maths\n  - Physics\n")

	tt := Load(path)

	if got := tt.Classes("tuesday"); !reflect.DeepEqual(got, []string{"Maths", "Physics"}) {
		t.Errorf("expected tuesday classes [Maths Physics], got %v", got)
	}
}

func TestLoadMissingFileDegradesToEmpty(t *testing.T) {
	tt := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if tt == nil {
		t.Fatalf("expected an empty timetable, got nil")
	}
	if len(tt) != 0 {
		t.Errorf("expected empty timetable, got %v", tt)
	}
}

func TestLoadCorruptFileDegradesToEmpty(t *testing.T) {
	path := writeFile(t, "schedule.json", "invalid json { content")

	tt := Load(path)
	if len(tt) != 0 {
		t.Errorf("expected empty timetable for corrupt file, got %v", tt)
	}
}

func TestParseNormalisesKeys(t *testing.T) {
	tt, err := Parse([]byte(`{" Monday ": ["C"], "FRIDAY": ["Logic"], "someday": ["Nope"]}`), FormatJSON)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	if got := tt.Days(); !reflect.DeepEqual(got, []string{"monday", "friday"}) {
		t.Errorf("expected [monday friday], got %v", got)
	}
	if tt.Has("someday") {
		t.Errorf("expected unknown key to be dropped")
	}
}

func TestParseDuplicateDaysAreDeterministic(t *testing.T) {
	data := []byte(`{"monday": ["B"], "Monday": ["A"], " monday ": ["C"]}`)

	// Sorted, " monday " comes first.
	for i := 0; i < 20; i++ {
		tt, err := Parse(data, FormatJSON)
		if err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}
		if got := tt.Classes("monday"); !reflect.DeepEqual(got, []string{"C"}) {
			t.Fatalf("run %d: expected [C], got %v", i, got)
		}
	}
}

func TestParseError(t *testing.T) {
	_, err := Parse([]byte(`["not", "an", "object"]`), FormatJSON)
	if err == nil {
		t.Fatalf("expected error for non-object timetable")
	}
}

func TestLoadErrorUnwraps(t *testing.T) {
	cause := errors.New("boom")
	err := &LoadError{Path: "schedule.json", Err: cause}
	if !errors.Is(err, cause) {
		t.Errorf("expected LoadError to unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "schedule.json") {
		t.Errorf("expected error message to name the path, got %q", err.Error())
	}
}

func TestClassesReturnsCopy(t *testing.T) {
	tt := Timetable{"monday": {"Physics"}}

	classes := tt.Classes("monday")
	classes[0] = "Changed"

	if tt["monday"][0] != "Physics" {
		t.Errorf("expected timetable to be unaffected by caller mutation")
	}
	if tt.Classes("friday") != nil {
		t.Errorf("expected nil classes for absent day")
	}
}

func TestJSONIsIndented(t *testing.T) {
	tt := Timetable{"monday": {"Physics"}}
	want := "{\n  \"monday\": [\n    \"Physics\"\n  ]\n}"
	if got := tt.JSON(); got != want {
		t.Errorf("unexpected JSON rendering.\nGot: %s\nExpected: %s", got, want)
	}
}
