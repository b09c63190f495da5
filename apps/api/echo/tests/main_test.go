package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"testing"
	"time"

	. "github.com/absedu/campus/apps/api/echo"
	"github.com/absedu/campus/apps/shared"
	"github.com/absedu/campus/core"
	"github.com/absedu/campus/core/announcement"
	"github.com/absedu/campus/core/banner"
	"github.com/absedu/campus/core/push"
	"github.com/absedu/campus/core/schedule"
	"github.com/absedu/campus/core/sheet"
	"github.com/absedu/campus/core/user"
	"github.com/absedu/campus/services/push"
	"github.com/absedu/campus/storage/cache/inmem"
	"github.com/absedu/campus/storage/database/sqlx"
	"github.com/absedu/campus/tests"
)

var (
	now = time.Date(2024, 5, 15, 9, 30, 0, 0, time.UTC)

	student = user.User{Number: "9000000001", Name: "Sam", Role: "student"}
	faculty = user.User{Number: "9000000002", Name: "Dr. Rao", Role: "Faculty"}
	admin   = user.User{Number: "9000000003", Name: "Asha", Role: "ADMIN"}
	ghost   = user.User{Number: "9999999999", Name: "Gone", Role: "student"}

	errMissingToken = httpErr{Error: "missing or malformed jwt"}
	errInvalidToken = httpErr{Error: "invalid or expired jwt"}
	errForbidden    = httpErr{Error: "permission denied"}
	errUnauthorized = httpErr{Error: "user not authenticated"}
)

func TestMain(m *testing.M) {
	schedule.NowFunc = func() time.Time { return now }
	os.Exit(m.Run())
}

type testApp struct {
	app     *Server
	conf    *core.Config
	src     *testutil.Source
	logger  *testutil.Logger
	pushSvc *push.Service
}

func setup(t *testing.T) *testApp {
	t.Helper()
	conf := testutil.Config(t)
	logger := new(testutil.Logger)
	src := testutil.NewSource(map[string]sheet.Grid{
		testutil.RangeUsers:         testutil.UsersGrid(),
		testutil.RangeLectures:      testutil.LecturesGrid("2024-05-14", "2024-05-15", "2024-05-16", "2024-05-22"),
		testutil.RangeBanners:       testutil.BannersGrid(),
		testutil.RangeBranches:      testutil.BranchesGrid(),
		testutil.RangeAnnouncements: testutil.AnnouncementsGrid(),
	})
	ranges := conf.Sheets.Ranges

	db := testutil.OpenDB(t)
	pushSvc := push.NewService(
		sqlxrepos.NewPushTokenRepository(db, "sqlite3"),
		pushsvc.NewConsoleNotifier(logger),
		logger,
		time.Second,
	)
	validate, translator := shared.NewValidator()

	app := NewServer(ServerDeps{
		Conf:            conf,
		Logger:          logger,
		UserSvc:         user.NewService(src, ranges.Users, inmemcache.New(), user.PlaintextChecker{}, logger),
		ScheduleSvc:     schedule.NewService(src, ranges.Lectures, ranges.Branches, time.UTC, logger),
		BannerSvc:       banner.NewService(src, ranges.Banners),
		AnnouncementSvc: announcement.NewService(src, ranges.Announcements),
		PushSvc:         pushSvc,
		Validate:        validate,
		Translator:      translator,
	})
	return &testApp{app: app, conf: conf, src: src, logger: logger, pushSvc: pushSvc}
}

func (ta *testApp) serve(req *http.Request, rec *httptest.ResponseRecorder) {
	ta.app.ServeHTTP(rec, req)
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, conf *core.Config, usr user.User) string {
	claims := GetUserClaims(conf, usr)
	token, err := GenerateToken(conf, claims)
	if err != nil {
		t.Fatalf("getToken(): %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func unmarshal(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("json.Unmarshal(%s): %v", rec.Body.String(), err)
	}
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	return false, nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func checkCode(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v; data = %s", rec.Code, tt.wantCode, rec.Body.String())
	}
}

func subjects(sessions []schedule.Session) []string {
	out := make([]string, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, s.Subject)
	}
	return out
}

func userWith(number, role string) user.User {
	return user.User{Number: number, Role: role}
}
