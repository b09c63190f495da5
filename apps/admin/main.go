package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/absedu/campus/apps/shared"
	"github.com/absedu/campus/core"
	"github.com/absedu/campus/core/schedule"
	logsvc "github.com/absedu/campus/services/logger"
	"github.com/absedu/campus/storage/database"
)

func main() {
	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)
	defer logger.Close()

	ctx := context.Background()

	// set up DB; migrations are left to the migrate command
	var db *sql.DB
	if conf.Database.Engine != database.EngineMemory {
		if err := database.CreateIfNotExist(ctx, conf); err != nil {
			logger.Fatal(fmt.Sprintf("creating database: %v", err), err)
		}
		var err error
		if db, err = database.Open(ctx, conf); err != nil {
			logger.Fatal(fmt.Sprintf("opening database: %v", err), err)
		}
		defer db.Close()
	}

	// set up the spreadsheet-backed services
	src, err := shared.NewSheetSource(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up sheets source: %v", err), err)
	}
	usersCache, closeCache, err := shared.NewUsersCache(ctx, conf)
	if err != nil {
		if conf.Cache.Driver == shared.CacheBolt {
			err = fmt.Errorf("%w (the API may be holding the cache file)", err)
		}
		logger.Fatal(fmt.Sprintf("setting up users cache: %v", err), err)
	}
	defer closeCache()

	ranges := conf.Sheets.Ranges
	cli := commandLine{
		db:          db,
		engine:      conf.Database.Engine,
		cacheDriver: conf.Cache.Driver,
		usrSvc:      shared.NewUserService(conf, src, usersCache, logger),
		schedSvc:    schedule.NewService(src, ranges.Lectures, ranges.Branches, conf.Location(), logger),
		out:         os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			fmt.Fprintf(os.Stderr, "\nerror: %s\n", err)
		}
		closeCache()
		if db != nil {
			db.Close()
		}
		os.Exit(1)
	}
}
