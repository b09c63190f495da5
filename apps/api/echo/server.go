package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/absedu/campus/core"
	"github.com/absedu/campus/core/announcement"
	"github.com/absedu/campus/core/banner"
	"github.com/absedu/campus/core/push"
	"github.com/absedu/campus/core/schedule"
	"github.com/absedu/campus/core/user"
)

type (
	ServerDeps struct {
		Conf            *core.Config
		Logger          core.Logger
		UserSvc         *user.Service
		ScheduleSvc     *schedule.Service
		BannerSvc       *banner.Service
		AnnouncementSvc *announcement.Service
		PushSvc         *push.Service
		Validate        *validator.Validate
		Translator      ut.Translator
	}

	Server struct {
		deps     ServerDeps
		app      *echo.Echo
		jwtConf  middleware.JWTConfig
		errs     chan error
		shutdown chan os.Signal
	}
)

func NewServer(deps ServerDeps) *Server {
	s := &Server{
		deps:     deps,
		app:      echo.New(),
		jwtConf:  newJWTConfig(deps.Conf),
		errs:     make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *Server) setup() {
	conf := s.deps.Conf

	s.app.HideBanner = true
	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(middleware.RequestID())
	if !conf.Server.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.signalShutdown)
	s.app.Debug = conf.Debug

	s.app.GET("/", s.home)

	v1 := s.app.Group("/v1")
	jwt := middleware.JWTWithConfig(s.jwtConf)

	s.registerSessionAPI(v1, jwt)
	s.registerScheduleAPI(v1, jwt)
	s.registerContentAPI(v1, jwt)
	s.registerPushAPI(v1, jwt)
	s.registerAdminAPI(v1, jwt)
}

// Start listens until Shutdown or Close; a listener failure is sent to Errors.
func (s *Server) Start() {
	if err := s.app.Start(s.deps.Conf.Server.Address); err != nil && err != http.ErrServerClosed {
		s.errs <- err
	}
}

func (s *Server) Errors() <-chan error {
	return s.errs
}

func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *Server) signalShutdown() {
	select {
	case s.shutdown <- syscall.SIGTERM:
	default: // already shutting down
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	signal.Stop(s.shutdown)
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func (s *Server) home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to "+s.deps.Conf.AppName+" API!")
}
