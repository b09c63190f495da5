package sheet

import "strings"

// Predicate selects records.
type Predicate func(Record) bool

// Filter returns the records matching pred, order preserved.
func Filter(records []Record, pred Predicate) []Record {
	matched := make([]Record, 0, len(records))
	for _, rec := range records {
		if pred(rec) {
			matched = append(matched, rec)
		}
	}
	return matched
}

// And is true when every predicate is; an empty And is true.
func And(preds ...Predicate) Predicate {
	return func(rec Record) bool {
		for _, pred := range preds {
			if !pred(rec) {
				return false
			}
		}
		return true
	}
}

// Or is true when any predicate is; an empty Or is false.
func Or(preds ...Predicate) Predicate {
	return func(rec Record) bool {
		for _, pred := range preds {
			if pred(rec) {
				return true
			}
		}
		return false
	}
}

// Not negates pred.
func Not(pred Predicate) Predicate {
	return func(rec Record) bool { return !pred(rec) }
}

// DateEquals compares the field to an ISO date by exact string equality.
func DateEquals(field, iso string) Predicate {
	return func(rec Record) bool {
		return rec.Value(field) == iso
	}
}

// DateBetween keeps start <= field <= end, comparing ISO dates lexicographically.
func DateBetween(field, start, end string) Predicate {
	return func(rec Record) bool {
		date := rec.Value(field)
		return date >= start && date <= end
	}
}

// DateFrom keeps field >= start.
func DateFrom(field, start string) Predicate {
	return func(rec Record) bool {
		return rec.Value(field) >= start
	}
}

// FieldMatches compares the field to value, ignoring case and surrounding whitespace.
func FieldMatches(field, value string) Predicate {
	want := normalize(value)
	return func(rec Record) bool {
		return normalize(rec.Value(field)) == want
	}
}

// IsActive is true when the field reads TRUE (any case) or is absent/empty.
func IsActive(field string) Predicate {
	return func(rec Record) bool {
		return ActiveFlag(rec.Value(field)) == "TRUE"
	}
}

// HasISODate is true when the field holds a YYYY-MM-DD date.
func HasISODate(field string) Predicate {
	return func(rec Record) bool {
		return IsISODate(rec.Value(field))
	}
}

// ActiveFlag upper-cases an active flag, defaulting an empty one to TRUE.
func ActiveFlag(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "TRUE"
	}
	return strings.ToUpper(v)
}

func normalize(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
