package render

import (
	"github.com/goliatone/go-patientview/pkg/calendar"
	"github.com/goliatone/go-patientview/pkg/markup"
	"github.com/goliatone/go-patientview/pkg/person"
)

// Roster column keys, in display order.
const (
	ColumnName     = "name"
	ColumnGender   = "gender"
	ColumnBirthday = "birthday"
	ColumnAge      = "age"
)

// Columns lists the roster columns in order.
func Columns() []string {
	return []string{ColumnName, ColumnGender, ColumnBirthday, ColumnAge}
}

// PersonRecords flattens people into ordered table records. Ages are computed
// against today; an unknown or future birthday leaves the age cell empty.
func PersonRecords(roster []person.Person, today calendar.Date) []markup.Record {
	out := make([]markup.Record, 0, len(roster))
	for _, p := range roster {
		age := ""
		if span, ok := p.AgeAt(today); ok {
			age = span.String()
		}
		out = append(out, markup.Record{
			{Key: ColumnName, Value: p.Name()},
			{Key: ColumnGender, Value: p.Gender().Label()},
			{Key: ColumnBirthday, Value: p.Birthday().String()},
			{Key: ColumnAge, Value: age},
		})
	}
	return out
}
