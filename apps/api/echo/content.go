package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func (s *Server) registerContentAPI(g *echo.Group, jwt echo.MiddlewareFunc) {
	g.GET("/banners", s.banners)
	g.GET("/announcements", s.announcements, jwt)
}

func (s *Server) banners(ctx echo.Context) error {
	banners, err := s.deps.BannerSvc.List(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "listing banners")
	}
	return ctx.JSON(http.StatusOK, banners)
}

func (s *Server) announcements(ctx echo.Context) error {
	usr, err := getContextUser(ctx, s.deps.UserSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	anns, err := s.deps.AnnouncementSvc.List(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "listing announcements")
	}

	vals := usr.Values()
	resp := make([]AnnouncementResponse, 0, len(anns))
	for _, ann := range anns {
		resp = append(resp, newAnnouncementResponse(ann, vals))
	}
	return ctx.JSON(http.StatusOK, resp)
}
