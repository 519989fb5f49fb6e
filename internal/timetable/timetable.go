// Package timetable holds the read-only weekday → classes mapping the
// assistant answers questions about. It is loaded once at start-up and
// handed to the service layer by value; nothing mutates it afterwards.
package timetable

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Weekdays lists the canonical day keys in week order, Monday first.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// Timetable maps a lowercase weekday name to its ordered class names.
// A day that is absent simply has no classes.
type Timetable map[string][]string

// Format selects the decoder used by Parse.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// LoadError is logged when the timetable file cannot be read or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("timetable %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads the timetable at path. It never fails: a missing or corrupt
// file is logged and an empty Timetable is returned so the server stays up.
func Load(path string) Timetable {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[Timetable] %v; continuing with an empty timetable", &LoadError{Path: path, Err: err})
		return Timetable{}
	}

	tt, err := Parse(data, formatFor(path))
	if err != nil {
		log.Printf("[Timetable] %v; continuing with an empty timetable", &LoadError{Path: path, Err: err})
		return Timetable{}
	}

	log.Printf("[Timetable] Loaded %d day(s) from %s", len(tt), path)
	return tt
}

// Parse decodes raw timetable data. Keys are lowercased and trimmed; keys
// that are not weekday names are dropped with a warning. When several keys
// name the same day, the first in sorted order wins.
func Parse(data []byte, format Format) (Timetable, error) {
	raw := map[string][]string{}

	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse timetable: %w", err)
	}

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	tt := make(Timetable, len(raw))
	for _, key := range keys {
		day := strings.ToLower(strings.TrimSpace(key))
		if !IsWeekday(day) {
			log.Printf("[Timetable] Ignoring unknown day %q", key)
			continue
		}
		if _, dup := tt[day]; dup {
			log.Printf("[Timetable] Ignoring duplicate key %q for %s", key, day)
			continue
		}
		classes := raw[key]
		tt[day] = append(make([]string, 0, len(classes)), classes...)
	}
	return tt, nil
}

// IsWeekday reports whether day is one of the canonical lowercase weekday names.
func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// Classes returns a copy of the classes scheduled on day (nil when absent).
func (t Timetable) Classes(day string) []string {
	classes, ok := t[day]
	if !ok {
		return nil
	}
	return append([]string(nil), classes...)
}

// Has reports whether day appears in the timetable, even with no classes.
func (t Timetable) Has(day string) bool {
	_, ok := t[day]
	return ok
}

// Days returns the configured days in week order.
func (t Timetable) Days() []string {
	var days []string
	for _, d := range Weekdays {
		if t.Has(d) {
			days = append(days, d)
		}
	}
	return days
}

// JSON renders the timetable as indented JSON for embedding in prompts.
func (t Timetable) JSON() string {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

func formatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}
