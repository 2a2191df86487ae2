package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/utils"
)

const testSecret = "test-secret"

func doAuth(t *testing.T, header string, mw ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	h := func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"user_id": c.Get("user_id"),
			"role":    c.Get("role"),
		})
	}
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func TestJWTAuthMissingHeaderIs401(t *testing.T) {
	t.Parallel()
	rec := doAuth(t, "", JWTAuth(testSecret))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A non-bearer scheme counts as missing, not invalid.
	rec = doAuth(t, "Basic dXNlcjpwYXNz", JWTAuth(testSecret))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthBadTokenIs403(t *testing.T) {
	t.Parallel()
	rec := doAuth(t, "Bearer not-a-token", JWTAuth(testSecret))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Valid shape, wrong signing secret.
	tok, err := utils.NewAccessToken("other-secret", 7, "REGULAR", 15)
	require.NoError(t, err)
	rec = doAuth(t, "Bearer "+tok.Token, JWTAuth(testSecret))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Expired token.
	tok, err = utils.NewAccessToken(testSecret, 7, "REGULAR", -5)
	require.NoError(t, err)
	rec = doAuth(t, "Bearer "+tok.Token, JWTAuth(testSecret))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestJWTAuthInjectsIdentity(t *testing.T) {
	t.Parallel()
	tok, err := utils.NewAccessToken(testSecret, 7, "HOD", 15)
	require.NoError(t, err)

	rec := doAuth(t, "Bearer "+tok.Token, JWTAuth(testSecret))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":7,"role":"HOD"}`, rec.Body.String())
}

func TestVerifyAccessToken(t *testing.T) {
	t.Parallel()
	tok, err := utils.NewAccessToken(testSecret, 42, "REGULAR", 15)
	require.NoError(t, err)

	uid, role, err := VerifyAccessToken(testSecret, tok.Token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), uid)
	assert.Equal(t, "REGULAR", role)

	_, _, err = VerifyAccessToken(testSecret, "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRequireRole(t *testing.T) {
	t.Parallel()
	hodOnly := RequireRole("HOD")

	tok, err := utils.NewAccessToken(testSecret, 7, "REGULAR", 15)
	require.NoError(t, err)
	rec := doAuth(t, "Bearer "+tok.Token, JWTAuth(testSecret), hodOnly)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	tok, err = utils.NewAccessToken(testSecret, 7, "HOD", 15)
	require.NoError(t, err)
	rec = doAuth(t, "Bearer "+tok.Token, JWTAuth(testSecret), hodOnly)
	assert.Equal(t, http.StatusOK, rec.Code)

	// No role in context (middleware never ran) is also forbidden.
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	norec := httptest.NewRecorder()
	h := hodOnly(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	require.NoError(t, h(e.NewContext(req, norec)))
	assert.Equal(t, http.StatusForbidden, norec.Code)
}
