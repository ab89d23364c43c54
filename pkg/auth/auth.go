// Package auth gates endpoints behind HMAC-signed bearer tokens.
package auth

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	apierr "github.com/Nucmaan/Task-Manager-Backend/pkg/api/types/errors"
)

// ContextKeyUserId is where the middleware leaves the authenticated user id.
const ContextKeyUserId = "authUserId"

// Middleware verifies the Authorization header and stores the token's
// user id on the request context. Requests without a valid token get 401.
func Middleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found || raw == "" {
				return apierr.Unauthorized("send a bearer token in the Authorization header")
			}

			token, err := jwt.Parse(
				raw,
				func(t *jwt.Token) (any, error) {
					if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
						return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
					}
					return []byte(secret), nil
				},
				jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			)
			if err != nil || !token.Valid {
				return apierr.Unauthorized("token is invalid or expired")
			}

			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				if id, ok := claims["id"].(float64); ok {
					c.Set(ContextKeyUserId, int(id))
				}
			}
			return next(c)
		}
	}
}
