package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rec(kv ...string) Record {
	var header, cells []string
	for i := 0; i+1 < len(kv); i += 2 {
		header = append(header, kv[i])
		cells = append(cells, kv[i+1])
	}
	return NewRecord(0, header, cells)
}

func TestDateEquals(t *testing.T) {
	pred := DateEquals("date", "2024-05-01")
	assert.True(t, pred(rec("date", "2024-05-01")))
	assert.False(t, pred(rec("date", "2024-05-02")))
	assert.False(t, pred(rec("date", " 2024-05-01")), "no normalization on dates")
	assert.False(t, pred(rec("subject", "x")))
}

func TestDateBetween(t *testing.T) {
	pred := DateBetween("date", "2024-05-01", "2024-05-07")
	tests := []struct {
		date string
		want bool
	}{
		{"2024-04-30", false},
		{"2024-05-01", true}, // inclusive start
		{"2024-05-04", true},
		{"2024-05-07", true}, // inclusive end
		{"2024-05-08", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.want, pred(rec("date", tt.date)))
		})
	}
}

func TestDateFrom(t *testing.T) {
	pred := DateFrom("date", "2024-05-01")
	assert.True(t, pred(rec("date", "2024-05-01")))
	assert.True(t, pred(rec("date", "2025-01-01")))
	assert.False(t, pred(rec("date", "2024-04-30")))
}

func TestFieldMatches(t *testing.T) {
	pred := FieldMatches("branch", " Kurla ")
	assert.True(t, pred(rec("branch", "kurla")))
	assert.True(t, pred(rec("Branch", "KURLA  ")))
	assert.False(t, pred(rec("branch", "Thane")))
	assert.False(t, pred(rec("course", "kurla")))

	assert.True(t, FieldMatches("branch", "")(rec("course", "x")), "absent field equals empty value")
}

func TestIsActive(t *testing.T) {
	pred := IsActive("isactive")
	tests := []struct {
		name string
		r    Record
		want bool
	}{
		{"TRUE", rec("isActive", "TRUE"), true},
		{"lower true", rec("isActive", "true"), true},
		{"padded", rec("isActive", " True "), true},
		{"FALSE", rec("isActive", "FALSE"), false},
		{"garbage", rec("isActive", "yes"), false},
		{"empty", rec("isActive", ""), true},
		{"absent", rec("title", "x"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pred(tt.r))
		})
	}
}

func TestCombinators(t *testing.T) {
	yes := func(Record) bool { return true }
	no := func(Record) bool { return false }
	r := rec("a", "b")

	assert.True(t, And()(r))
	assert.True(t, And(yes, yes)(r))
	assert.False(t, And(yes, no)(r))

	assert.False(t, Or()(r))
	assert.True(t, Or(no, yes)(r))
	assert.False(t, Or(no, no)(r))

	assert.False(t, Not(yes)(r))
	assert.True(t, Not(no)(r))
}

func TestFilter(t *testing.T) {
	records, _ := Materialize(Grid{
		{"branch", "date"},
		{"Kurla", "2024-05-01"},
		{"Thane", "2024-05-01"},
		{"kurla", "2024-05-02"},
		{"KURLA", "not-a-date"},
	})

	got := Filter(records, And(FieldMatches("branch", "kurla"), HasISODate("date")))
	if assert.Len(t, got, 2) {
		assert.Equal(t, 0, got[0].Row)
		assert.Equal(t, 2, got[1].Row)
	}

	assert.Empty(t, Filter(nil, And()))
}
