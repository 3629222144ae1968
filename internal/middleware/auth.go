package middleware

import (
	stderrors "errors"
	"strings"

	"ledger-agent/internal/errors"
	"ledger-agent/internal/handlers"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// APISubjectContextKey holds the authenticated token subject
const APISubjectContextKey = "api_subject"

// RequireAPIToken accepts HS256 bearer tokens signed with secret and issued by issuer
func RequireAPIToken(secret, issuer string) echo.MiddlewareFunc {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	keyFunc := func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || strings.TrimSpace(tokenString) == "" {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			var claims jwt.RegisteredClaims
			if _, err := parser.ParseWithClaims(strings.TrimSpace(tokenString), &claims, keyFunc); err != nil {
				if stderrors.Is(err, jwt.ErrTokenExpired) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			c.Set(APISubjectContextKey, claims.Subject)
			return next(c)
		}
	}
}
