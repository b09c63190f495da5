package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	echoapi "github.com/absedu/campus/apps/api/echo"
	"github.com/absedu/campus/apps/shared"
	"github.com/absedu/campus/core"
	"github.com/absedu/campus/core/announcement"
	"github.com/absedu/campus/core/banner"
	"github.com/absedu/campus/core/push"
	"github.com/absedu/campus/core/schedule"
	logsvc "github.com/absedu/campus/services/logger"
	pushsvc "github.com/absedu/campus/services/push"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)
	defer logger.Close()

	dbLogger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "DB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	dbLogger.Enable(!conf.Debug)

	ctx := context.Background()

	// set up DB
	db, err := shared.SetUpDB(ctx, conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	if db != nil {
		defer func() {
			if err = db.Close(); err != nil {
				dbLogger.Fatal("Failed to close", err)
			}
		}()
	}

	// set up the spreadsheet reader and the identity cache
	src, err := shared.NewSheetSource(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up sheets source: %v", err), err)
	}
	usersCache, closeCache, err := shared.NewUsersCache(ctx, conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up users cache: %v", err), err)
	}
	defer func() {
		if err = closeCache(); err != nil {
			logger.Error("closing users cache", err)
		}
	}()

	// set up services
	ranges := conf.Sheets.Ranges
	usrSvc := shared.NewUserService(conf, src, usersCache, logger)
	schedSvc := schedule.NewService(src, ranges.Lectures, ranges.Branches, conf.Location(), logger)
	bannerSvc := banner.NewService(src, ranges.Banners)
	annSvc := announcement.NewService(src, ranges.Announcements)
	pushSvc := push.NewService(
		shared.NewPushRepository(db, conf),
		pushsvc.New(conf.Push, logger),
		logger,
		conf.Push.Timeout,
	)
	defer pushSvc.Wait()

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate, translator := shared.NewValidator()

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)
	expvar.NewString("sheets").Set(conf.Sheets.Source)
	expvar.NewString("cache").Set(conf.Cache.Driver)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:            conf,
			Logger:          logger,
			UserSvc:         usrSvc,
			ScheduleSvc:     schedSvc,
			BannerSvc:       bannerSvc,
			AnnouncementSvc: annSvc,
			PushSvc:         pushSvc,
			Validate:        validate,
			Translator:      translator,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(ctx, conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}
