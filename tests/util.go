package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/absedu/campus/core"
	"github.com/absedu/campus/core/sheet"
	"github.com/absedu/campus/storage/database"
)

// Source is an in-memory sheet.Source that counts fetches per range.
type Source struct {
	mu     sync.Mutex
	grids  map[string]sheet.Grid
	errs   map[string]error
	calls  map[string]int
}

var _ sheet.Source = (*Source)(nil)

func NewSource(grids map[string]sheet.Grid) *Source {
	if grids == nil {
		grids = make(map[string]sheet.Grid)
	}
	return &Source{
		grids: grids,
		errs:  make(map[string]error),
		calls: make(map[string]int),
	}
}

func (src *Source) Values(_ context.Context, rng string) (sheet.Grid, error) {
	src.mu.Lock()
	defer src.mu.Unlock()
	src.calls[rng]++
	if err, ok := src.errs[rng]; ok {
		return nil, err
	}
	grid, ok := src.grids[rng]
	if !ok {
		return nil, sheet.NewTransportError(rng, 404, nil)
	}
	return grid, nil
}

// Set replaces the grid served for rng.
func (src *Source) Set(rng string, grid sheet.Grid) {
	src.mu.Lock()
	defer src.mu.Unlock()
	src.grids[rng] = grid
	delete(src.errs, rng)
}

// Fail makes every fetch of rng return err.
func (src *Source) Fail(rng string, err error) {
	src.mu.Lock()
	defer src.mu.Unlock()
	src.errs[rng] = err
}

// Calls returns how many times rng was fetched.
func (src *Source) Calls(rng string) int {
	src.mu.Lock()
	defer src.mu.Unlock()
	return src.calls[rng]
}

// Logger records messages instead of printing them.
type Logger struct {
	mu       sync.Mutex
	Messages []string
}

var _ core.Logger = (*Logger)(nil)

func (l *Logger) log(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Messages = append(l.Messages, level+": "+msg)
}

func (l *Logger) Debug(msg string, _ ...interface{}) { l.log("DEBUG", msg) }
func (l *Logger) Info(msg string, _ ...interface{})  { l.log("INFO", msg) }
func (l *Logger) Warn(msg string, _ ...interface{})  { l.log("WARN", msg) }
func (l *Logger) Error(msg string, _ ...interface{}) { l.log("ERROR", msg) }
func (l *Logger) Fatal(msg string, _ ...interface{}) { l.log("FATAL", msg) }

// Config returns a configuration suitable for tests.
func Config(t *testing.T) *core.Config {
	t.Helper()
	return &core.Config{
		AppName:            "AbsEdu",
		Env:                "TEST",
		Debug:              false,
		TestMode:           true,
		SecretKey:          "secret",
		Timezone:           "UTC",
		JWTExpirationDelta: 10 * time.Minute,
		Server:             core.ServerConfig{DisableReqLogs: true},
		Sheets: core.SheetsConfig{
			Ranges: core.SheetRanges{
				Users:         RangeUsers,
				Lectures:      RangeLectures,
				Banners:       RangeBanners,
				Branches:      RangeBranches,
				Announcements: RangeAnnouncements,
			},
		},
	}
}

// OpenDB opens a migrated sqlite database private to the test.
func OpenDB(t *testing.T) *sql.DB {
	t.Helper()
	conf := Config(t)
	conf.Database = core.DatabaseConfig{
		Engine: database.EngineSqlite,
		Path:   filepath.Join(t.TempDir(), "test.db"),
	}
	db, err := database.Open(context.Background(), conf)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err = database.Migrate(db, conf.Database.Engine, "up"); err != nil {
		t.Fatal(err)
	}
	return db
}
