package markup

// Field is a single key/value cell of a Record.
type Field struct {
	Key   string
	Value any
}

// Record is an ordered mapping. Its key order defines table column order.
type Record []Field

// RecordOf builds a Record holding values in the order given by keys. Keys
// missing from values map to nil.
func RecordOf(keys []string, values map[string]any) Record {
	record := make(Record, 0, len(keys))
	for _, key := range keys {
		record = append(record, Field{Key: key, Value: values[key]})
	}
	return record
}

// Get returns the value stored under key.
func (r Record) Get(key string) (any, bool) {
	for _, field := range r {
		if field.Key == key {
			return field.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys in order.
func (r Record) Keys() []string {
	keys := make([]string, len(r))
	for i, field := range r {
		keys[i] = field.Key
	}
	return keys
}
