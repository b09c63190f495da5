package sheet

import (
	"strconv"
	"strings"
	"time"
)

// Grid is a raw two-dimensional string table; row 0 is the header.
// Data rows may be shorter than the header.
type Grid [][]string

// Record is the materialized view of one data row, keyed by normalized header name.
type Record struct {
	Row int // zero-based position among data rows

	keys    []string // normalized, header order, unique
	headers []string // trimmed, case preserved; parallel to keys
	cells   []string // positional, padded to the header width
	values  map[string]string
}

// NewRecord builds a Record from a header row and a data row. Missing cells default to "".
func NewRecord(row int, header, cells []string) Record {
	rec := Record{
		Row:     row,
		keys:    make([]string, 0, len(header)),
		headers: make([]string, 0, len(header)),
		cells:   make([]string, len(header)),
		values:  make(map[string]string, len(header)),
	}
	for i, h := range header {
		var val string
		if i < len(cells) {
			val = cells[i]
		}
		rec.cells[i] = val

		key := NormalizeHeader(h)
		if _, dup := rec.values[key]; dup {
			continue // first occurrence wins
		}
		rec.keys = append(rec.keys, key)
		rec.headers = append(rec.headers, strings.TrimSpace(h))
		rec.values[key] = val
	}
	return rec
}

// NormalizeHeader trims and lower-cases a header name.
func NormalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// Get returns the value under the (normalized) key and whether the column exists.
func (r Record) Get(key string) (string, bool) {
	val, ok := r.values[NormalizeHeader(key)]
	return val, ok
}

// Value returns the value under key, "" when the column does not exist.
func (r Record) Value(key string) string {
	return r.values[NormalizeHeader(key)]
}

// First returns the value of the first existing key.
func (r Record) First(keys ...string) string {
	for _, key := range keys {
		if val, ok := r.Get(key); ok {
			return val
		}
	}
	return ""
}

// At returns the cell at header position i, "" when out of range.
func (r Record) At(i int) string {
	if i < 0 || i >= len(r.cells) {
		return ""
	}
	return r.cells[i]
}

// Keys returns the normalized header names in header order.
func (r Record) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Original returns the values keyed by the trimmed, case-preserved header names.
func (r Record) Original() map[string]string {
	orig := make(map[string]string, len(r.headers))
	for i, h := range r.headers {
		orig[h] = r.values[r.keys[i]]
	}
	return orig
}

// ID is the synthetic identity of the record: its data-row position.
func (r Record) ID() string {
	return strconv.Itoa(r.Row)
}

// Materialize converts a Grid into one Record per data row, in order.
func Materialize(grid Grid) ([]Record, error) {
	if len(grid) < 1 {
		return nil, ErrEmptyGrid
	}
	header := grid[0]
	records := make([]Record, 0, len(grid)-1)
	for i, cells := range grid[1:] {
		records = append(records, NewRecord(i, header, cells))
	}
	return records, nil
}

const isoDateLayout = "2006-01-02"

// IsISODate reports whether s is a calendar date written as YYYY-MM-DD.
func IsISODate(s string) bool {
	if len(s) != len(isoDateLayout) {
		return false
	}
	_, err := time.Parse(isoDateLayout, s)
	return err == nil
}

// ISODate formats t as YYYY-MM-DD in t's location.
func ISODate(t time.Time) string {
	return t.Format(isoDateLayout)
}
