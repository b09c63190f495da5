package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/absedu/campus/core"
	"github.com/absedu/campus/core/sheet"
	"github.com/absedu/campus/core/user"
)

var (
	errUnauthorized     = echo.NewHTTPError(http.StatusUnauthorized, "user not authenticated")
	errInvalidLogin     = core.NewValidationError(errors.New("invalid credentials"))
	errHttpForbidden    = echo.NewHTTPError(http.StatusForbidden, "permission denied")
	errBranchRequired   = core.NewValidationError(nil, core.FieldError{Field: "branch", Error: "this field is required"})
	errUpstreamMsg      = "the data source is unavailable"
	errUpstreamEmptyMsg = "the data source is misconfigured"
)

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how to handle our errors.
// signalShutdown is called in order to gracefully shutdown the Server whenever a core.shutdown error is caught.
func newAppHTTPErrorHandler(logger core.Logger, translator ut.Translator, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message interface{}

		var terr *sheet.TransportError
		var eerr *sheet.EmptyGridError

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr == middleware.ErrJWTMissing {
				code = http.StatusUnauthorized
				message = origErr.Message
				break
			}
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			message = origErr.Message
		case validator.ValidationErrors:
			fldErrs := make(map[string]string, len(origErr))
			for _, vErr := range origErr {
				fldErrs[vErr.Field()] = vErr.Translate(translator)
			}
			code = http.StatusBadRequest
			message = fldErrs
		case *core.ValidationError:
			if origErr.Fields != nil {
				fldErrs := make(map[string]string, len(origErr.Fields))
				for _, fErr := range origErr.Fields {
					fldErrs[fErr.Field] = fErr.Error
				}
				message = fldErrs
			} else {
				message = origErr.Error()
			}
			code = http.StatusBadRequest
		default:
			switch {
			case errors.As(err, &terr):
				code = http.StatusBadGateway
				message = errUpstreamMsg
				logger.Warn(errUpstreamMsg, err, contextUser(ctx))
			case errors.As(err, &eerr):
				code = http.StatusBadGateway
				message = errUpstreamEmptyMsg
				logger.Error(errUpstreamEmptyMsg, err, contextUser(ctx))
			default: // any other error is a server error
				code = http.StatusInternalServerError
				msg := http.StatusText(http.StatusInternalServerError)
				message = msg
				logger.Error(msg, errors.Wrap(err, msg), contextUser(ctx))

				// shutting down...
				if core.IsShutdown(err) {
					signalShutdown()
				}
			}
		}

		if ctx.Echo().Debug && code >= http.StatusInternalServerError {
			message = err.Error()
		}
		if m, ok := message.(string); ok {
			message = echo.Map{"error": m}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead { // Issue #608
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, message)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}

// contextUser is the signed-in user for error reports; only the claims are used, the table is not read.
func contextUser(ctx echo.Context) user.User {
	if usr, ok := ctx.Get(contextUserKey).(user.User); ok {
		return usr
	}
	var usr user.User
	if claims, err := getContextClaims(ctx); err == nil {
		usr.Number = claims.Subject
		usr.Name = claims.Name
		usr.Role = claims.Role
	}
	return usr
}
