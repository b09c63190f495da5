package schedule

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/absedu/campus/core"
	"github.com/absedu/campus/core/sheet"
	"github.com/absedu/campus/core/user"
)

var NowFunc = time.Now // mockable

const (
	fieldDate    = "date"
	fieldFaculty = "faculty"
	fieldBranch  = "branch"
	fieldCourse  = "course"
	fieldBatch   = "batch"
	fieldYear    = "year"
)

// Day holds a student's sessions for a date and the day after.
type Day struct {
	Today    []Session `json:"today"`
	Tomorrow []Session `json:"tomorrow"`
}

type Service struct {
	src      sheet.Source
	lectures string
	branches string
	loc      *time.Location
	logger   core.Logger
}

func NewService(src sheet.Source, lecturesRange, branchesRange string, loc *time.Location, logger core.Logger) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		src:      src,
		lectures: lecturesRange,
		branches: branchesRange,
		loc:      loc,
		logger:   logger,
	}
}

// Today is the current wall-clock date in the service's time zone.
func (svc *Service) Today() time.Time {
	now := NowFunc().In(svc.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, svc.loc)
}

// TodayTomorrow returns the sessions of the user's branch, course, batch and year for today and tomorrow.
func (svc *Service) TodayTomorrow(ctx context.Context, usr user.User) (Day, error) {
	return svc.StudentDay(ctx, usr, svc.Today())
}

// StudentDay is TodayTomorrow anchored on an arbitrary day.
func (svc *Service) StudentDay(ctx context.Context, usr user.User, day time.Time) (Day, error) {
	records, err := svc.lectureRecords(ctx)
	if err != nil {
		return Day{}, err
	}
	belongs := sheet.And(
		sheet.FieldMatches(fieldBranch, usr.Branch),
		sheet.FieldMatches(fieldCourse, usr.Course),
		sheet.FieldMatches(fieldBatch, usr.Batch),
		sheet.FieldMatches(fieldYear, usr.Year),
	)
	first, next := sheet.ISODate(day), sheet.ISODate(day.AddDate(0, 0, 1))
	return Day{
		Today:    toSessions(sheet.Filter(records, sheet.And(sheet.DateEquals(fieldDate, first), belongs))),
		Tomorrow: toSessions(sheet.Filter(records, sheet.And(sheet.DateEquals(fieldDate, next), belongs))),
	}, nil
}

// TeacherUpcoming returns every session of the named faculty from today on.
func (svc *Service) TeacherUpcoming(ctx context.Context, name string) ([]Session, error) {
	if core.CleanString(name) == "" {
		return []Session{}, nil
	}
	return svc.query(ctx, sheet.And(
		sheet.FieldMatches(fieldFaculty, name),
		sheet.DateFrom(fieldDate, sheet.ISODate(svc.Today())),
	))
}

// TeacherWeek returns the named faculty's sessions from today to six days ahead.
func (svc *Service) TeacherWeek(ctx context.Context, name string) ([]Session, error) {
	if core.CleanString(name) == "" {
		return []Session{}, nil
	}
	today := svc.Today()
	return svc.query(ctx, sheet.And(
		sheet.FieldMatches(fieldFaculty, name),
		sheet.DateBetween(fieldDate, sheet.ISODate(today), sheet.ISODate(today.AddDate(0, 0, 6))),
	))
}

// BranchMonth returns the branch's sessions within the current calendar month.
func (svc *Service) BranchMonth(ctx context.Context, branch string) ([]Session, error) {
	if core.CleanString(branch) == "" {
		return []Session{}, nil
	}
	today := svc.Today()
	first := today.AddDate(0, 0, 1-today.Day())
	last := first.AddDate(0, 1, -1)
	return svc.query(ctx, sheet.And(
		sheet.FieldMatches(fieldBranch, branch),
		sheet.DateBetween(fieldDate, sheet.ISODate(first), sheet.ISODate(last)),
	))
}

// BranchRolling returns the branch's sessions from today to today+days inclusive.
func (svc *Service) BranchRolling(ctx context.Context, branch string, days int) ([]Session, error) {
	if core.CleanString(branch) == "" || days < 0 {
		return []Session{}, nil
	}
	today := svc.Today()
	return svc.query(ctx, sheet.And(
		sheet.FieldMatches(fieldBranch, branch),
		sheet.DateBetween(fieldDate, sheet.ISODate(today), sheet.ISODate(today.AddDate(0, 0, days))),
	))
}

// Branches lists the branch table.
func (svc *Service) Branches(ctx context.Context) ([]Branch, error) {
	records, err := sheet.Fetch(ctx, svc.src, svc.branches)
	if err != nil {
		return nil, errors.Wrap(err, "fetching branches")
	}
	branches := make([]Branch, 0, len(records))
	for _, rec := range records {
		branches = append(branches, BranchFromRecord(rec))
	}
	return branches, nil
}

func (svc *Service) query(ctx context.Context, pred sheet.Predicate) ([]Session, error) {
	records, err := svc.lectureRecords(ctx)
	if err != nil {
		return nil, err
	}
	return toSessions(sheet.Filter(records, pred)), nil
}

// lectureRecords fetches the lectures and drops rows whose date is set but not YYYY-MM-DD.
func (svc *Service) lectureRecords(ctx context.Context) ([]sheet.Record, error) {
	records, err := sheet.Fetch(ctx, svc.src, svc.lectures)
	if err != nil {
		return nil, errors.Wrap(err, "fetching lectures")
	}
	valid := sheet.Or(
		sheet.DateEquals(fieldDate, ""),
		sheet.HasISODate(fieldDate),
	)
	kept := sheet.Filter(records, valid)
	if dropped := len(records) - len(kept); dropped > 0 {
		svc.logger.Warn("lectures with malformed dates ignored", map[string]interface{}{
			"range": svc.lectures,
			"count": dropped,
		})
	}
	return kept, nil
}

func toSessions(records []sheet.Record) []Session {
	sessions := make([]Session, 0, len(records))
	for _, rec := range records {
		sessions = append(sessions, SessionFromRecord(rec))
	}
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].sortKey() < sessions[j].sortKey()
	})
	return sessions
}
