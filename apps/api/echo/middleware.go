package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/absedu/campus/core/user"
)

// roleMiddleware only lets through tokens whose role is one of roles.
func roleMiddleware(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context claims")
			}
			if (user.User{Role: claims.Role}).HasAnyRole(roles...) {
				return next(ctx)
			}
			return errHttpForbidden
		}
	}
}

func adminMiddleware() echo.MiddlewareFunc {
	return roleMiddleware(user.RoleAdmin)
}

func staffMiddleware() echo.MiddlewareFunc {
	return roleMiddleware(user.RoleFaculty, user.RoleAdmin)
}
