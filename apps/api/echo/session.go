package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/absedu/campus/core/user"
)

func (s *Server) registerSessionAPI(g *echo.Group, jwt echo.MiddlewareFunc) {
	g.POST("/auth/login", s.login)
	g.GET("/me", s.me, jwt)
}

func (s *Server) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(s.deps.Validate); err != nil {
		return err
	}

	usr, err := s.deps.UserSvc.Authenticate(ctx.Request().Context(), data.Number, data.Password)
	if err != nil {
		if errors.Cause(err) == user.ErrNotFound {
			return errInvalidLogin
		}
		return errors.Wrap(err, "authenticating")
	}
	token, err := GenerateToken(s.deps.Conf, GetUserClaims(s.deps.Conf, usr))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	ctx.Set(contextUserKey, usr)

	return ctx.JSON(http.StatusOK, LoginResponse{Token: token, User: usr})
}

func (s *Server) me(ctx echo.Context) error {
	usr, err := getContextUser(ctx, s.deps.UserSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	return ctx.JSON(http.StatusOK, usr)
}
