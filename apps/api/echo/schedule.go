package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/absedu/campus/core"
	"github.com/absedu/campus/core/schedule"
)

func (s *Server) registerScheduleAPI(g *echo.Group, jwt echo.MiddlewareFunc) {
	sg := g.Group("/schedule", jwt)
	sg.GET("/student", s.studentSchedule)
	sg.GET("/teacher/upcoming", s.teacherUpcoming, staffMiddleware())
	sg.GET("/teacher/week", s.teacherWeek, staffMiddleware())

	bg := g.Group("/branches", jwt, adminMiddleware())
	bg.GET("", s.branches)
	bg.GET("/schedule", s.branchSchedule)
}

func (s *Server) studentSchedule(ctx echo.Context) error {
	var query StudentScheduleQuery
	if err := ctx.Bind(&query); err != nil {
		return errors.Wrap(err, "binding to StudentScheduleQuery")
	}
	if err := query.Validate(s.deps.Validate); err != nil {
		return err
	}
	usr, err := getContextUser(ctx, s.deps.UserSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	day := s.deps.ScheduleSvc.Today()
	if query.Date != "" {
		if day, err = time.ParseInLocation("2006-01-02", query.Date, s.deps.Conf.Location()); err != nil {
			return errors.Wrap(err, "parsing date")
		}
	}
	sessions, err := s.deps.ScheduleSvc.StudentDay(ctx.Request().Context(), usr, day)
	if err != nil {
		return errors.Wrap(err, "querying student schedule")
	}
	return ctx.JSON(http.StatusOK, sessions)
}

// facultyName is the signed-in faculty's name; admins may look at any faculty.
func (s *Server) facultyName(ctx echo.Context) (string, error) {
	var query TeacherScheduleQuery
	if err := ctx.Bind(&query); err != nil {
		return "", errors.Wrap(err, "binding to TeacherScheduleQuery")
	}
	usr, err := getContextUser(ctx, s.deps.UserSvc)
	if err != nil {
		return "", errors.Wrap(err, "getting context user")
	}
	if name := core.CleanString(query.Faculty); name != "" && usr.IsAdmin() {
		return name, nil
	}
	return usr.Name, nil
}

func (s *Server) teacherUpcoming(ctx echo.Context) error {
	name, err := s.facultyName(ctx)
	if err != nil {
		return err
	}
	sessions, err := s.deps.ScheduleSvc.TeacherUpcoming(ctx.Request().Context(), name)
	if err != nil {
		return errors.Wrap(err, "querying teacher schedule")
	}
	return ctx.JSON(http.StatusOK, sessions)
}

func (s *Server) teacherWeek(ctx echo.Context) error {
	name, err := s.facultyName(ctx)
	if err != nil {
		return err
	}
	sessions, err := s.deps.ScheduleSvc.TeacherWeek(ctx.Request().Context(), name)
	if err != nil {
		return errors.Wrap(err, "querying teacher week")
	}
	return ctx.JSON(http.StatusOK, sessions)
}

func (s *Server) branches(ctx echo.Context) error {
	branches, err := s.deps.ScheduleSvc.Branches(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying branches")
	}
	return ctx.JSON(http.StatusOK, branches)
}

func (s *Server) branchSchedule(ctx echo.Context) error {
	var query BranchScheduleQuery
	if err := ctx.Bind(&query); err != nil {
		return errors.Wrap(err, "binding to BranchScheduleQuery")
	}
	if err := query.Validate(s.deps.Validate); err != nil {
		return err
	}
	if query.Branch == "" {
		usr, err := getContextUser(ctx, s.deps.UserSvc)
		if err != nil {
			return errors.Wrap(err, "getting context user")
		}
		query.Branch = core.CleanString(usr.Faculty)
	}
	if query.Branch == "" {
		return errBranchRequired
	}

	var sessions []schedule.Session
	var err error
	if query.Window == windowRolling {
		sessions, err = s.deps.ScheduleSvc.BranchRolling(ctx.Request().Context(), query.Branch, query.Days)
	} else {
		sessions, err = s.deps.ScheduleSvc.BranchMonth(ctx.Request().Context(), query.Branch)
	}
	if err != nil {
		return errors.Wrap(err, "querying branch schedule")
	}
	return ctx.JSON(http.StatusOK, sessions)
}
