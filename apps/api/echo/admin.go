package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func (s *Server) registerAdminAPI(g *echo.Group, jwt echo.MiddlewareFunc) {
	ag := g.Group("/admin", jwt, adminMiddleware())
	ag.DELETE("/users-cache", s.invalidateUsersCache)
}

func (s *Server) invalidateUsersCache(ctx echo.Context) error {
	if err := s.deps.UserSvc.Invalidate(ctx.Request().Context()); err != nil {
		return errors.Wrap(err, "invalidating users cache")
	}
	s.deps.Logger.Info("users cache invalidated", contextUser(ctx))
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "users cache invalidated"})
}
