package person

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-patientview/pkg/calendar"
)

// personFile is the on-disk shape shared by the YAML and JSON loaders.
type personFile struct {
	Name     string `json:"name" yaml:"name"`
	Gender   string `json:"gender" yaml:"gender"`
	Birthday string `json:"birthday" yaml:"birthday"`
}

// LoadFile opens path and picks the loader by extension: .csv for LoadCSV,
// .yaml, .yml or .json for LoadYAML.
func LoadFile(path string) ([]Person, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("person: roster path is required")
	}

	ext := strings.ToLower(filepath.Ext(path))
	var load func(io.Reader) ([]Person, error)
	switch ext {
	case ".csv":
		load = LoadCSV
	case ".yaml", ".yml", ".json":
		load = LoadYAML
	default:
		return nil, fmt.Errorf("person: unsupported roster format %q", ext)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("person: open roster: %w", err)
	}
	defer file.Close()

	roster, err := load(file)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return roster, nil
}

// LoadCSV reads people from CSV. The first row is a header naming the
// columns; "name" is required, "gender" and "birthday" are optional and
// matched case-insensitively. Extra columns are ignored.
func LoadCSV(r io.Reader) ([]Person, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("person: read csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns["name"]; !ok {
		return nil, errors.New("person: csv header must include a name column")
	}

	cell := func(row []string, column string) string {
		idx, ok := columns[column]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	var people []Person
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("person: read csv line %d: %w", line, err)
		}

		p, err := fromFields(personFile{
			Name:     cell(row, "name"),
			Gender:   cell(row, "gender"),
			Birthday: cell(row, "birthday"),
		})
		if err != nil {
			return nil, fmt.Errorf("person: csv line %d: %w", line, err)
		}
		people = append(people, p)
	}
	return people, nil
}

// LoadYAML reads a YAML (or JSON) list of people.
func LoadYAML(r io.Reader) ([]Person, error) {
	var raw []personFile
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("person: decode yaml: %w", err)
	}

	people := make([]Person, 0, len(raw))
	for i, entry := range raw {
		p, err := fromFields(entry)
		if err != nil {
			return nil, fmt.Errorf("person: entry %d: %w", i, err)
		}
		people = append(people, p)
	}
	return people, nil
}

func fromFields(entry personFile) (Person, error) {
	name := strings.TrimSpace(entry.Name)
	if name == "" {
		return Person{}, errors.New("name is required")
	}
	gender, err := ParseGender(entry.Gender)
	if err != nil {
		return Person{}, err
	}
	birthday, err := calendar.ParseDate(entry.Birthday)
	if err != nil {
		return Person{}, err
	}
	return New(name, gender, birthday), nil
}
