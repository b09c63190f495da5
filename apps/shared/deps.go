package shared

import (
	"context"
	"database/sql"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/absedu/campus/core"
	"github.com/absedu/campus/core/push"
	"github.com/absedu/campus/core/sheet"
	"github.com/absedu/campus/core/user"
	"github.com/absedu/campus/storage/cache/bolt"
	"github.com/absedu/campus/storage/cache/inmem"
	"github.com/absedu/campus/storage/cache/redis"
	"github.com/absedu/campus/storage/database"
	"github.com/absedu/campus/storage/database/inmem"
	"github.com/absedu/campus/storage/database/sqlx"
	"github.com/absedu/campus/storage/sheets/api"
	"github.com/absedu/campus/storage/sheets/workbook"
)

const (
	SourceAPI      = "api"
	SourceWorkbook = "workbook"

	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheBolt   = "bolt"
)

// NewValidator returns a validator with English messages and the custom tags registered.
func NewValidator() (*validator.Validate, ut.Translator) {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	core.InitValidators(validate, translator)
	return validate, translator
}

// NewSheetSource builds the configured spreadsheet reader.
func NewSheetSource(conf *core.Config) (sheet.Source, error) {
	switch conf.Sheets.Source {
	case SourceAPI, "":
		src, err := sheetsapi.New(conf.Sheets)
		if err != nil {
			return nil, err
		}
		return src, nil
	case SourceWorkbook:
		src, err := workbook.New(conf.Sheets.WorkbookPath)
		if err != nil {
			return nil, err
		}
		return src, nil
	default:
		return nil, errors.Errorf("unknown sheets source %q", conf.Sheets.Source)
	}
}

// NewUsersCache opens the configured identity-table cache. closeFn releases it.
func NewUsersCache(ctx context.Context, conf *core.Config) (cache user.TableCache, closeFn func() error, err error) {
	noop := func() error { return nil }
	switch conf.Cache.Driver {
	case CacheMemory, "":
		return inmemcache.New(), noop, nil
	case CacheRedis:
		c, err := rediscache.Open(ctx, conf.Cache)
		if err != nil {
			return nil, noop, err
		}
		return c, c.Close, nil
	case CacheBolt:
		c, err := boltcache.Open(conf.Cache.BoltPath, conf.Cache.Key)
		if err != nil {
			return nil, noop, err
		}
		return c, c.Close, nil
	default:
		return nil, noop, errors.Errorf("unknown cache driver %q", conf.Cache.Driver)
	}
}

// NewUserService wires the identity lookup over src and cache.
func NewUserService(conf *core.Config, src sheet.Source, cache user.TableCache, logger core.Logger) *user.Service {
	return user.NewService(src, conf.Sheets.Ranges.Users, cache, user.NewChecker(conf.HashedPasswords), logger)
}

// SetUpDB creates, opens and migrates the configured SQL database. It returns a nil DB for the memory engine.
func SetUpDB(ctx context.Context, conf *core.Config) (*sql.DB, error) {
	if conf.Database.Engine == database.EngineMemory {
		return nil, nil
	}
	if err := database.CreateIfNotExist(ctx, conf); err != nil {
		return nil, err
	}

	db, err := database.Open(ctx, conf)
	if err != nil {
		return nil, err
	}

	if err = database.Migrate(db, conf.Database.Engine, "up"); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewPushRepository returns the push token store over db, or an in-memory one when db is nil.
func NewPushRepository(db *sql.DB, conf *core.Config) push.Repository {
	if db == nil {
		return inmemdb.NewPushTokenRepository(inmemdb.Open())
	}
	return sqlxrepos.NewPushTokenRepository(db, conf.Database.Engine)
}
