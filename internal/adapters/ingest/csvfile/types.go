package csvfile

// Row is one data row with header-addressed field access
type Row struct {
	fields []string
	cols   map[string]int
}

// Get returns the field under the named column.
// The false return covers both an unknown column and a row too short to
// carry it; either way the caller sees the field as absent
func (r Row) Get(col string) (string, bool) {
	i, ok := r.cols[col]
	if !ok || i >= len(r.fields) {
		return "", false
	}
	return r.fields[i], true
}

// Len returns the number of fields in the row
func (r Row) Len() int { return len(r.fields) }
