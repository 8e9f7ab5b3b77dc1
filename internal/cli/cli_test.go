package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-patientview/internal/prompt"
)

type fixedDriver struct {
	answer string
}

func (d fixedDriver) Input(context.Context, prompt.InputConfig) (string, error) {
	return d.answer, nil
}

func (d fixedDriver) Select(context.Context, prompt.SelectConfig) (int, error) {
	return 0, nil
}

func run(t *testing.T, deps Deps, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	deps.Stdout = &stdout
	deps.Stderr = &stderr
	if deps.Interactive == nil {
		deps.Interactive = func() bool { return false }
	}
	if deps.Prompter == nil {
		deps.Prompter = fixedDriver{}
	}

	cmd := NewRootCmd(deps)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAge_Flags(t *testing.T) {
	out, err := run(t, Deps{}, "age", "--birthday", "2000-02-29", "--today", "2001-03-01")
	if err != nil {
		t.Fatalf("age: %v", err)
	}
	if out != "1y 0m 1d\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestAge_Prompted(t *testing.T) {
	deps := Deps{
		Interactive: func() bool { return true },
		Prompter:    fixedDriver{answer: "1990-06-15"},
	}
	out, err := run(t, deps, "age", "--today", "2024-06-14")
	if err != nil {
		t.Fatalf("age: %v", err)
	}
	if out != "33y 11m 29d\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestAge_Errors(t *testing.T) {
	if _, err := run(t, Deps{}, "age"); err != errBirthdayRequired {
		t.Fatalf("expected errBirthdayRequired, got %v", err)
	}
	if _, err := run(t, Deps{}, "age", "--birthday", "2030-01-01", "--today", "2024-01-01"); err == nil {
		t.Fatalf("expected future birthday to fail")
	}
	if _, err := run(t, Deps{}, "age", "--birthday", "2001-02-29"); err == nil {
		t.Fatalf("expected invalid date to fail")
	}
}

func TestTable_Roster(t *testing.T) {
	input := writeFile(t, "people.csv", "name,gender,birthday\nAlice,f,1990-01-01\nBob,m,1980-05-05\n")

	out, err := run(t, Deps{}, "table", "--compact", "--input", input, "--today", "2020-01-01", "--oldest-first", "--labels", "Name,Gender,Born,Age")
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	want := "<table>" +
		"<thead><tr><th>Name</th><th>Gender</th><th>Born</th><th>Age</th></tr></thead>" +
		"<tbody>" +
		"<tr><td>Bob</td><td>Male</td><td>1980-05-05</td><td>39y 7m 27d</td></tr>" +
		"<tr><td>Alice</td><td>Female</td><td>1990-01-01</td><td>30y 0m 0d</td></tr>" +
		"</tbody></table>\n"
	if out != want {
		t.Fatalf("table mismatch\nwant: %q\n got: %q", want, out)
	}
}

func TestTable_Records(t *testing.T) {
	input := writeFile(t, "rows.yaml", "- {Name: Alice, Age: 30}\n- {Name: Bob, Age: 25}\n")

	out, err := run(t, Deps{}, "table", "--compact", "--records", "--input", input)
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	want := "<table>" +
		"<thead><tr><th>Name</th><th>Age</th></tr></thead>" +
		"<tbody><tr><td>Alice</td><td>30</td></tr><tr><td>Bob</td><td>25</td></tr></tbody>" +
		"</table>\n"
	if out != want {
		t.Fatalf("records mismatch\nwant: %q\n got: %q", want, out)
	}
}

func TestTable_EnvConfig(t *testing.T) {
	t.Setenv("PATIENTVIEW_COMPACT", "true")
	t.Setenv("PATIENTVIEW_TABLE_ATTRS", `class="roster"`)
	input := writeFile(t, "people.yaml", "- name: Alice\n  gender: f\n")

	out, err := run(t, Deps{}, "table", "--input", input)
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	if !strings.HasPrefix(out, `<table class="roster"><thead>`) {
		t.Fatalf("expected env config applied, got %q", out)
	}
}

func TestTable_RequiresInput(t *testing.T) {
	if _, err := run(t, Deps{}, "table"); err != errInputRequired {
		t.Fatalf("expected errInputRequired, got %v", err)
	}
}

func TestPage_Themed(t *testing.T) {
	input := writeFile(t, "people.csv", "name,gender,birthday\nAlice,f,1990-01-01\n")
	manifest := writeFile(t, "theme.yaml", "name: acme\ntokens:\n  brand: \"#123456\"\nassets:\n  prefix: /static\n  files:\n    page.stylesheet: acme.css\n")

	out, err := run(t, Deps{}, "page", "--input", input, "--title", "Ward 7", "--theme-file", manifest, "--note", "<em>Fasting</em>")
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	for _, want := range []string{
		"<title>Ward 7</title>",
		`href="/static/acme.css"`,
		"--brand: #123456;",
		"<em>Fasting</em>",
		"<td>Alice</td>",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestPage_TemplatesDirOverride(t *testing.T) {
	input := writeFile(t, "people.csv", "name,gender,birthday\nAlice,f,1990-01-01\n")
	dir := t.TempDir()
	override := "<main data-title=\"{{ title }}\">{{ table|safe }}</main>"
	if err := os.WriteFile(filepath.Join(dir, "page.tpl"), []byte(override), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, Deps{}, "page", "--compact", "--input", input, "--title", "Ward 7", "--templates-dir", dir)
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if !strings.HasPrefix(out, `<main data-title="Ward 7"><table><thead>`) {
		t.Fatalf("expected override template, got %q", out)
	}
	if strings.Contains(out, "<!DOCTYPE html>") {
		t.Fatalf("expected built-in page template to be replaced, got %q", out)
	}

	if _, err := run(t, Deps{}, "page", "--input", input, "--templates-dir", filepath.Join(dir, "missing")); err == nil {
		t.Fatalf("expected missing templates dir to fail")
	}
}

func TestCat(t *testing.T) {
	input := writeFile(t, "data.txt", "hello chunked world")

	out, err := run(t, Deps{}, "cat", "--file", input, "--block-size", "4")
	if err != nil {
		t.Fatalf("cat: %v", err)
	}
	if out != "hello chunked world" {
		t.Fatalf("unexpected output %q", out)
	}

	out, err = run(t, Deps{}, "cat", "--file", input, "--length", "5")
	if err != nil {
		t.Fatalf("cat: %v", err)
	}
	if out != "hello" {
		t.Fatalf("unexpected bounded output %q", out)
	}

	if _, err := run(t, Deps{}, "cat", "--file", input, "--block-size", "0"); err == nil {
		t.Fatalf("expected zero block size to fail")
	}
}

type closeFailure struct {
	*strings.Reader
	closed int
}

func (c *closeFailure) Close() error {
	c.closed++
	return errors.New("disk went away")
}

func TestStream_ReportsCloseError(t *testing.T) {
	src := &closeFailure{Reader: strings.NewReader("payload")}
	var buf bytes.Buffer

	n, err := stream(&buf, src, 0, 3)
	if err == nil || !strings.Contains(err.Error(), "disk went away") {
		t.Fatalf("expected close error, got %v", err)
	}
	if n != 7 || buf.String() != "payload" {
		t.Fatalf("expected full copy before close, got %d %q", n, buf.String())
	}
	if src.closed != 1 {
		t.Fatalf("expected source closed once, got %d", src.closed)
	}
}

func TestConfigFileErrors(t *testing.T) {
	if _, err := run(t, Deps{}, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "age", "--birthday", "2000-01-01"); err == nil {
		t.Fatalf("expected missing config file to fail")
	}
}
