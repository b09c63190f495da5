package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/absedu/campus/core/push"
)

func (s *Server) registerPushAPI(g *echo.Group, jwt echo.MiddlewareFunc) {
	g.POST("/push-tokens", s.registerPushToken, jwt)
}

func (s *Server) registerPushToken(ctx echo.Context) error {
	var data push.NewToken
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewToken")
	}
	if err := s.deps.Validate.Struct(data); err != nil {
		return err
	}
	usr, err := getContextUser(ctx, s.deps.UserSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	tkn, err := s.deps.PushSvc.Register(ctx.Request().Context(), usr.Number, data)
	if err != nil {
		return errors.Wrap(err, "registering push token")
	}
	return ctx.JSON(http.StatusCreated, tkn)
}
