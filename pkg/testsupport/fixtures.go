package testsupport

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-patientview/pkg/calendar"
	"github.com/goliatone/go-patientview/pkg/person"
)

// ReferenceDate is the fixed "today" used by fixtures and goldens so ages do
// not drift as the calendar moves.
var ReferenceDate = calendar.NewDate(2024, time.June, 1)

// SampleRoster returns a small roster covering a leap-day birthday, a missing
// birthday and a birthday after ReferenceDate.
func SampleRoster() []person.Person {
	return []person.Person{
		person.New("Ada Lovelace", person.GenderFemale, calendar.NewDate(2000, time.February, 29)),
		person.New("Bob <Builder>", person.GenderMale, calendar.NewDate(1985, time.November, 3)),
		person.New("Casey", person.GenderOther, calendar.Date{}),
		person.New("Dana", person.GenderUnknown, calendar.NewDate(2030, time.January, 1)),
	}
}

// MustLoadRoster loads a CSV, YAML or JSON roster fixture, choosing the
// loader by file extension.
func MustLoadRoster(t *testing.T, path string) []person.Person {
	t.Helper()

	roster, err := LoadRoster(path)
	if err != nil {
		t.Fatalf("load roster: %v", err)
	}
	return roster
}

// LoadRoster is MustLoadRoster for callers managing setup outside of
// *testing.T.
func LoadRoster(path string) ([]person.Person, error) {
	return person.LoadFile(path)
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput runs render against a buffer and returns both the
// returned string and what was written to the buffer.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
