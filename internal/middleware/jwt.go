package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "errors"
    "net/http"
    "strings"

    "github.com/golang-jwt/jwt/v5"
    "github.com/labstack/echo/v4"
)

// Token verification errors.  A missing or malformed Authorization header
// is distinct from a token that fails verification: the former yields 401,
// the latter 403, and handlers downstream never see either request.
var (
    ErrNoBearer     = errors.New("missing bearer token")
    ErrInvalidToken = errors.New("invalid token")
)

// VerifyAccessToken parses and validates a raw HS256 access token and
// returns the subject user ID and role claim.  It is shared between the
// HTTP middleware and the WebSocket endpoint, which receives its token via
// query parameter because browsers cannot set headers on WS upgrades.
func VerifyAccessToken(secret, raw string) (uint64, string, error) {
    tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrInvalidToken
        }
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        return 0, "", ErrInvalidToken
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return 0, "", ErrInvalidToken
    }
    sub, ok := claims["sub"].(float64) // numeric claims decode as float64
    if !ok || sub <= 0 {
        return 0, "", ErrInvalidToken
    }
    role, _ := claims["role"].(string)
    return uint64(sub), role, nil
}

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the acting user's ID and role into the request context.  The
// provided secret must match the one used when issuing tokens.  This
// middleware wraps every route except login/registration so that handlers
// can access the authenticated identity via `c.Get("user_id")` and
// `c.Get("role")`.
func JWTAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
            }
            raw := strings.TrimPrefix(auth, "Bearer ")

            uid, role, err := VerifyAccessToken(secret, raw)
            if err != nil {
                // A token that fails verification is a credential problem,
                // not a missing one.
                return c.JSON(http.StatusForbidden, echo.Map{"error": "invalid token"})
            }

            c.Set("user_id", uid)
            c.Set("role", role)
            return next(c)
        }
    }
}
