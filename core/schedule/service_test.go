package schedule_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/absedu/campus/core/schedule"
	"github.com/absedu/campus/core/sheet"
	"github.com/absedu/campus/core/user"
	"github.com/absedu/campus/tests"
)

var now = time.Date(2024, 5, 15, 9, 30, 0, 0, time.UTC)

func newService(t *testing.T) (*schedule.Service, *testutil.Source, *testutil.Logger) {
	t.Helper()
	orig := schedule.NowFunc
	schedule.NowFunc = func() time.Time { return now }
	t.Cleanup(func() { schedule.NowFunc = orig })

	src := testutil.NewSource(map[string]sheet.Grid{
		testutil.RangeLectures: testutil.LecturesGrid("2024-05-14", "2024-05-15", "2024-05-16", "2024-05-22"),
		testutil.RangeBranches: testutil.BranchesGrid(),
	})
	logger := new(testutil.Logger)
	svc := schedule.NewService(src, testutil.RangeLectures, testutil.RangeBranches, time.UTC, logger)
	return svc, src, logger
}

func subjects(sessions []schedule.Session) []string {
	out := make([]string, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, s.Subject)
	}
	return out
}

func TestService_TodayTomorrow(t *testing.T) {
	svc, src, logger := newService(t)
	student := user.User{Branch: "Kurla", Course: "NEET", Batch: "B1", Year: "2024"}

	day, err := svc.TodayTomorrow(context.Background(), student)
	require.NoError(t, err)

	assert.Equal(t, []string{"Physics", "Biology"}, subjects(day.Today))
	assert.Equal(t, "1", day.Today[0].ID)
	assert.Equal(t, "0", day.Today[1].ID)
	assert.True(t, day.Today[0].IsOnline())
	assert.False(t, day.Today[1].IsOnline())
	assert.Equal(t, "2024-05-15", day.Today[0].Date)

	assert.Equal(t, []string{"Chemistry"}, subjects(day.Tomorrow))
	assert.Equal(t, 1, src.Calls(testutil.RangeLectures), "one fetch for both days")
	assert.Contains(t, logger.Messages, "WARN: lectures with malformed dates ignored")
}

func TestService_StudentDay(t *testing.T) {
	svc, _, _ := newService(t)
	student := user.User{Branch: "Thane", Course: "NEET", Batch: "B1", Year: "2024"}

	day, err := svc.StudentDay(context.Background(), student, time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, []string{"Zoology"}, subjects(day.Today))
	assert.Empty(t, day.Tomorrow)
	assert.NotNil(t, day.Tomorrow)
}

func TestService_TeacherUpcoming(t *testing.T) {
	svc, src, _ := newService(t)
	ctx := context.Background()

	sessions, err := svc.TeacherUpcoming(ctx, " DR. RAO ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Physics", "Biology", "Zoology", "Biology"}, subjects(sessions))

	sessions, err = svc.TeacherUpcoming(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, sessions)
	assert.Equal(t, 1, src.Calls(testutil.RangeLectures), "empty name must not fetch")
}

func TestService_TeacherWeek(t *testing.T) {
	svc, _, _ := newService(t)

	sessions, err := svc.TeacherWeek(context.Background(), "Dr. Rao")
	require.NoError(t, err)
	assert.Equal(t, []string{"Physics", "Biology", "Zoology"}, subjects(sessions))

	sessions, err = svc.TeacherWeek(context.Background(), "Ms. Iyer")
	require.NoError(t, err)
	assert.Equal(t, []string{"Chemistry"}, subjects(sessions))
}

func TestService_BranchMonth(t *testing.T) {
	svc, _, _ := newService(t)

	sessions, err := svc.BranchMonth(context.Background(), "kurla")
	require.NoError(t, err)
	assert.Equal(t, []string{"Maths", "Physics", "Biology", "Chemistry"}, subjects(sessions))

	sessions, err = svc.BranchMonth(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestService_BranchMonth_bounds(t *testing.T) {
	svc, src, _ := newService(t)
	src.Set(testutil.RangeLectures, sheet.Grid{
		{"subject", "date", "branch", "start"},
		{"before", "2024-04-30", "Kurla"},
		{"first", "2024-05-01", "Kurla"},
		{"last", "2024-05-31", "Kurla"},
		{"after", "2024-06-01", "Kurla"},
	})

	sessions, err := svc.BranchMonth(context.Background(), "Kurla")
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "last"}, subjects(sessions))
}

func TestService_BranchRolling(t *testing.T) {
	svc, _, _ := newService(t)

	sessions, err := svc.BranchRolling(context.Background(), "Kurla", 30)
	require.NoError(t, err)
	assert.Equal(t, []string{"Physics", "Biology", "Chemistry"}, subjects(sessions))

	sessions, err = svc.BranchRolling(context.Background(), "Thane", 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"Zoology", "Biology"}, subjects(sessions))

	sessions, err = svc.BranchRolling(context.Background(), "Thane", 6)
	require.NoError(t, err)
	assert.Equal(t, []string{"Zoology"}, subjects(sessions))
}

func TestService_Branches(t *testing.T) {
	svc, _, _ := newService(t)

	branches, err := svc.Branches(context.Background())
	require.NoError(t, err)
	require.Len(t, branches, 2)
	assert.Equal(t, schedule.Branch{ID: "1", Branch: "Kurla", Course: "NEET", Batch: "B1", Year: "2024", InCharge: "Asha"}, branches[0])
	assert.Equal(t, "", branches[1].InCharge)
}

func TestService_fetchErrors(t *testing.T) {
	svc, src, _ := newService(t)
	ctx := context.Background()

	src.Fail(testutil.RangeLectures, sheet.NewTransportError(testutil.RangeLectures, 503, nil))
	_, err := svc.TeacherWeek(ctx, "Dr. Rao")
	require.Error(t, err)
	assert.True(t, sheet.IsTransport(err))
	assert.Contains(t, err.Error(), "fetching lectures")

	src.Set(testutil.RangeBranches, sheet.Grid{})
	_, err = svc.Branches(ctx)
	assert.True(t, sheet.IsEmptyGrid(err))
}

func TestService_Today_timezone(t *testing.T) {
	orig := schedule.NowFunc
	schedule.NowFunc = func() time.Time { return time.Date(2024, 5, 15, 22, 30, 0, 0, time.UTC) }
	defer func() { schedule.NowFunc = orig }()

	ist := time.FixedZone("IST", 5*3600+1800)
	svc := schedule.NewService(nil, "", "", ist, nil)
	assert.Equal(t, "2024-05-16", sheet.ISODate(svc.Today()))

	svc = schedule.NewService(nil, "", "", time.UTC, nil)
	assert.Equal(t, "2024-05-15", sheet.ISODate(svc.Today()))
}
