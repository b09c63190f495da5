package echoapi

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/absedu/campus/core"
	"github.com/absedu/campus/core/user"
)

const (
	contextTokenKey = "userToken"
	contextUserKey  = "user"
	tokenAudience   = "dashboard"
)

func newJWTConfig(conf *core.Config) middleware.JWTConfig {
	return middleware.JWTConfig{
		SigningKey:    []byte(conf.SecretKey),
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    contextTokenKey,
		Claims:        new(Claims),
	}
}

// Claims represents the authorization claims transmitted via a JWT. The subject is the user's number.
type Claims struct {
	jwt.StandardClaims
	Name      string `json:"name,omitempty"`
	Role      string `json:"role,omitempty"`
	IsStudent bool   `json:"is_student,omitempty"` // -> STUDENT SCREEN
	IsFaculty bool   `json:"is_faculty,omitempty"` // -> TEACHER SCREEN
	IsAdmin   bool   `json:"is_admin,omitempty"`   // -> ADMIN SCREEN
}

func GetUserClaims(conf *core.Config, usr user.User) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    conf.AppName,
			Subject:   usr.Number,
			Audience:  tokenAudience,
			ExpiresAt: now.Add(conf.JWTExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		Name:      usr.Name,
		Role:      usr.RoleName(),
		IsStudent: usr.IsStudent(),
		IsFaculty: usr.IsFaculty(),
		IsAdmin:   usr.IsAdmin(),
	}
}

// GenerateToken generates a signed JWT token string representing the user Claims.
func GenerateToken(conf *core.Config, claims *Claims) (string, error) {
	jwtConf := newJWTConfig(conf)
	method := jwt.GetSigningMethod(jwtConf.SigningMethod)
	token := jwt.NewWithClaims(method, claims)

	ss, err := token.SignedString(jwtConf.SigningKey)
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return ss, nil
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(contextTokenKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}

// getContextUser resolves the token subject against the identity table once per request.
// A user removed from the table is treated as signed out.
func getContextUser(ctx echo.Context, svc *user.Service) (user.User, error) {
	if usr, ok := ctx.Get(contextUserKey).(user.User); ok {
		return usr, nil
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return user.User{}, err
	}
	usr, err := svc.GetByNumber(ctx.Request().Context(), claims.Subject)
	if err != nil {
		if errors.Cause(err) == user.ErrNotFound {
			return user.User{}, errUnauthorized
		}
		return user.User{}, errors.Wrap(err, "finding user by number")
	}
	ctx.Set(contextUserKey, usr)
	return usr, nil
}
