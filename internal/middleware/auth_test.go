package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pos/internal/model"
	"pos/pkg/clock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSession struct {
	user *model.SessionUser
}

func (s *stubSession) Current() (*model.SessionUser, bool) {
	if s.user == nil {
		return nil, false
	}
	return s.user, true
}

func cashier() *model.SessionUser {
	role, _ := model.LookupRole(model.RoleCashier)
	return &model.SessionUser{
		ID:          4,
		Username:    "kasir",
		Role:        role.Name,
		RoleLevel:   role.Level,
		Permissions: role.Permissions,
		SessionID:   uuid.New(),
	}
}

func setup(t *testing.T) (*Authenticator, *stubSession, *clock.Manual, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	sess := &stubSession{user: cashier()}
	clk := clock.NewManual(time.Date(2024, time.March, 13, 9, 0, 0, 0, time.UTC))
	auth := NewAuthenticator([]byte("test-secret"), time.Hour, false, sess, clk)

	r := gin.New()
	r.GET("/me", auth.RequireSession(), func(c *gin.Context) {
		u, _ := CurrentUser(c)
		c.String(http.StatusOK, u.Username)
	})
	r.GET("/sales", auth.RequirePermission(model.PermProcessSales), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/menu", auth.RequirePermission(model.PermManageMenu), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/manager", auth.RequireRoleAtLeast(model.RoleManager), func(c *gin.Context) { c.Status(http.StatusOK) })
	return auth, sess, clk, r
}

func get(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireSession(t *testing.T) {
	auth, sess, _, r := setup(t)
	token, _, err := auth.IssueToken(sess.user)
	require.NoError(t, err)

	w := get(r, "/me", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "kasir", w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "garbage").Code)
}

func TestTokenFromCookie(t *testing.T) {
	auth, sess, _, r := setup(t)
	token, _, err := auth.IssueToken(sess.user)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTokenRejectedAfterLogout(t *testing.T) {
	auth, sess, _, r := setup(t)
	token, _, err := auth.IssueToken(sess.user)
	require.NoError(t, err)

	sess.user = nil
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", token).Code)

	// A new login gets a new session id; the old token stays invalid.
	sess.user = cashier()
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", token).Code)
}

func TestTokenExpires(t *testing.T) {
	auth, sess, clk, r := setup(t)
	token, expires, err := auth.IssueToken(sess.user)
	require.NoError(t, err)
	assert.Equal(t, clk.Now().Add(time.Hour), expires)

	clk.Advance(2 * time.Hour)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", token).Code)
}

func TestRequirePermissionAndRole(t *testing.T) {
	auth, sess, _, r := setup(t)
	token, _, err := auth.IssueToken(sess.user)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, get(r, "/sales", token).Code)
	assert.Equal(t, http.StatusForbidden, get(r, "/menu", token).Code)
	assert.Equal(t, http.StatusForbidden, get(r, "/manager", token).Code)

	role, _ := model.LookupRole(model.RoleManager)
	sess.user.Role = role.Name
	sess.user.Permissions = role.Permissions
	assert.Equal(t, http.StatusOK, get(r, "/menu", token).Code)
	assert.Equal(t, http.StatusOK, get(r, "/manager", token).Code)
}

func TestParseTokenRejectsOtherSecret(t *testing.T) {
	auth, sess, clk, _ := setup(t)
	other := NewAuthenticator([]byte("other"), time.Hour, false, sess, clk)
	token, _, err := other.IssueToken(sess.user)
	require.NoError(t, err)

	_, err = auth.ParseToken(token)
	assert.Error(t, err)
}

func TestCookiePolicy(t *testing.T) {
	auth, sess, clk, _ := setup(t)
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	auth.SetTokenCookie(c, "abc")
	assert.Contains(t, w.Header().Get("Set-Cookie"), "SameSite=Lax")

	release := NewAuthenticator([]byte("s"), time.Hour, true, sess, clk)
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	release.ClearTokenCookie(c)
	cookie := w.Header().Get("Set-Cookie")
	assert.Contains(t, cookie, "SameSite=None")
	assert.Contains(t, cookie, "Secure")
	assert.Contains(t, cookie, "Max-Age=0")
}
