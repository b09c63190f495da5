package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		AppName   string
		Env       string // DEV (local; default), TEST, QA, PROD
		Build     string
		Debug     bool
		TestMode  bool
		SecretKey string
		Timezone  string

		// JWTExpirationDelta is the lifetime of an API session token.
		JWTExpirationDelta time.Duration
		// HashedPasswords switches the credential check from plaintext to bcrypt.
		HashedPasswords bool

		RollbarToken string

		Server   ServerConfig
		Sheets   SheetsConfig
		Cache    CacheConfig
		Push     PushConfig
		Database DatabaseConfig
	}

	ServerConfig struct {
		Host            string
		Address         string
		DebugHost       string
		ShutdownTimeout time.Duration
		DisableReqLogs  bool
	}

	SheetsConfig struct {
		Source        string // api | workbook
		BaseURL       string
		SpreadsheetID string
		APIKey        string
		WorkbookPath  string
		Timeout       time.Duration
		Ranges        SheetRanges
	}

	SheetRanges struct {
		Users         string
		Lectures      string
		Banners       string
		Branches      string
		Announcements string
	}

	CacheConfig struct {
		Driver        string // memory | redis | bolt
		Key           string
		RedisAddr     string
		RedisPassword string
		RedisDB       int
		BoltPath      string
	}

	PushConfig struct {
		Endpoint string
		Timeout  time.Duration
	}

	DatabaseConfig struct {
		Engine     string // postgres | sqlite3 | memory
		Host       string
		Port       string
		Name       string
		User       string
		Password   string
		DisableTLS bool
		Path       string // sqlite3 only
	}
)

func (dbConf DatabaseConfig) Address() string {
	if dbConf.Port == "" {
		return dbConf.Host
	}
	return dbConf.Host + ":" + dbConf.Port
}

// Location returns the time zone used to compute "today"; the local zone when unset or unknown.
func (conf *Config) Location() *time.Location {
	if conf.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(conf.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("appName", "AbsEdu")
	v.SetDefault("build", "develop")
	v.SetDefault("secretKey", "poq5-wer)enb$+57=dz&uoxh2(h!x)#*c2(#yg4h^$cegm2emy")
	v.SetDefault("timezone", "")
	v.SetDefault("jwtExpirationDelta", 7*24*time.Hour)
	v.SetDefault("hashedPasswords", false)
	v.SetDefault("rollbarToken", "")

	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.address", ":8000")
	v.SetDefault("server.debugHost", ":4000")
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("server.disableReqLogs", false)

	v.SetDefault("sheets.source", "api")
	v.SetDefault("sheets.baseURL", "https://sheets.googleapis.com/v4/spreadsheets")
	v.SetDefault("sheets.spreadsheetID", "")
	v.SetDefault("sheets.apiKey", "")
	v.SetDefault("sheets.workbookPath", "")
	v.SetDefault("sheets.timeout", 15*time.Second)
	v.SetDefault("sheets.ranges.users", "students!A:K")
	v.SetDefault("sheets.ranges.lectures", "Lectures!A:M")
	v.SetDefault("sheets.ranges.banners", "banners!A:F")
	v.SetDefault("sheets.ranges.branches", "branches!A:F")
	v.SetDefault("sheets.ranges.announcements", "announcements!A:G")

	v.SetDefault("cache.driver", "memory")
	v.SetDefault("cache.key", "absedu:users")
	v.SetDefault("cache.redisAddr", "localhost:6379")
	v.SetDefault("cache.redisPassword", "")
	v.SetDefault("cache.redisDB", 0)
	v.SetDefault("cache.boltPath", "data/cache.db")

	v.SetDefault("push.endpoint", "")
	v.SetDefault("push.timeout", 10*time.Second)

	v.SetDefault("database.engine", "sqlite3")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.name", "absedu")
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.disableTLS", false)
	v.SetDefault("database.path", "data/absedu.db")

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	return &Config{
		AppName:            v.GetString("appName"),
		Env:                env,
		Build:              v.GetString("build"),
		Debug:              v.GetBool("debug"),
		TestMode:           v.GetBool("testMode"),
		SecretKey:          v.GetString("secretKey"),
		Timezone:           v.GetString("timezone"),
		JWTExpirationDelta: v.GetDuration("jwtExpirationDelta"),
		HashedPasswords:    v.GetBool("hashedPasswords"),
		RollbarToken:       v.GetString("rollbarToken"),
		Server: ServerConfig{
			Host:            v.GetString("server.host"),
			Address:         v.GetString("server.address"),
			DebugHost:       v.GetString("server.debugHost"),
			ShutdownTimeout: v.GetDuration("server.shutdownTimeout"),
			DisableReqLogs:  v.GetBool("server.disableReqLogs"),
		},
		Sheets: SheetsConfig{
			Source:        v.GetString("sheets.source"),
			BaseURL:       v.GetString("sheets.baseURL"),
			SpreadsheetID: v.GetString("sheets.spreadsheetID"),
			APIKey:        v.GetString("sheets.apiKey"),
			WorkbookPath:  v.GetString("sheets.workbookPath"),
			Timeout:       v.GetDuration("sheets.timeout"),
			Ranges: SheetRanges{
				Users:         v.GetString("sheets.ranges.users"),
				Lectures:      v.GetString("sheets.ranges.lectures"),
				Banners:       v.GetString("sheets.ranges.banners"),
				Branches:      v.GetString("sheets.ranges.branches"),
				Announcements: v.GetString("sheets.ranges.announcements"),
			},
		},
		Cache: CacheConfig{
			Driver:        v.GetString("cache.driver"),
			Key:           v.GetString("cache.key"),
			RedisAddr:     v.GetString("cache.redisAddr"),
			RedisPassword: v.GetString("cache.redisPassword"),
			RedisDB:       v.GetInt("cache.redisDB"),
			BoltPath:      v.GetString("cache.boltPath"),
		},
		Push: PushConfig{
			Endpoint: v.GetString("push.endpoint"),
			Timeout:  v.GetDuration("push.timeout"),
		},
		Database: DatabaseConfig{
			Engine:     v.GetString("database.engine"),
			Host:       v.GetString("database.host"),
			Port:       v.GetString("database.port"),
			Name:       v.GetString("database.name"),
			User:       v.GetString("database.user"),
			Password:   v.GetString("database.password"),
			DisableTLS: v.GetBool("database.disableTLS"),
			Path:       v.GetString("database.path"),
		},
	}
}
