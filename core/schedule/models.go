package schedule

import (
	"strconv"
	"strings"

	"github.com/absedu/campus/core/sheet"
)

const ModeOnline = "Online"

// Session is one scheduled lecture.
type Session struct {
	ID       string `json:"id"`
	Subject  string `json:"subject"`
	Faculty  string `json:"faculty"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Mode     string `json:"mode"`
	Link     string `json:"link"`
	Location string `json:"location"`
	Date     string `json:"date"`
}

func SessionFromRecord(rec sheet.Record) Session {
	return Session{
		ID:       strconv.Itoa(rec.Row),
		Subject:  rec.Value("subject"),
		Faculty:  rec.Value("faculty"),
		Start:    rec.Value("start"),
		End:      rec.Value("end"),
		Mode:     rec.Value("mode"),
		Link:     rec.Value("link"),
		Location: rec.Value("location"),
		Date:     rec.Value("date"),
	}
}

// IsOnline reports whether the session is joined through Link rather than held at Location.
func (s Session) IsOnline() bool {
	return strings.TrimSpace(s.Mode) == ModeOnline
}

func (s Session) sortKey() string {
	return s.Date + s.Start
}

// Branch is an organizational unit with an admin in charge.
type Branch struct {
	ID       string `json:"id"`
	Branch   string `json:"branch"`
	Course   string `json:"course"`
	Batch    string `json:"batch"`
	Year     string `json:"year"`
	InCharge string `json:"inCharge"`
}

// BranchFromRecord reads the branch columns by position: id, branch, course, batch, year, inCharge.
func BranchFromRecord(rec sheet.Record) Branch {
	return Branch{
		ID:       rec.At(0),
		Branch:   rec.At(1),
		Course:   rec.At(2),
		Batch:    rec.At(3),
		Year:     rec.At(4),
		InCharge: rec.At(5),
	}
}

var gridHeader = []string{"date", "start", "end", "subject", "faculty", "mode", "location", "link"}

// Grid lays sessions out as a table with a header row, for export.
func Grid(sessions []Session) sheet.Grid {
	grid := make(sheet.Grid, 0, len(sessions)+1)
	grid = append(grid, append([]string(nil), gridHeader...))
	for _, s := range sessions {
		grid = append(grid, []string{s.Date, s.Start, s.End, s.Subject, s.Faculty, s.Mode, s.Location, s.Link})
	}
	return grid
}
