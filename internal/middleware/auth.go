package middleware

import (
	"errors"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"pos/internal/model"
	"pos/pkg/clock"
	"pos/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	accessTokenCookie = "access_token"
	userContextKey    = "sessionUser"
)

var ErrSessionMismatch = errors.New("token does not belong to the active session")

// Session is the view of the session store the middleware needs.
type Session interface {
	Current() (*model.SessionUser, bool)
}

// Claims are carried in the access token. Subject is the user id.
type Claims struct {
	Role      model.RoleName `json:"role"`
	SessionID string         `json:"sid"`
	jwt.RegisteredClaims
}

// Authenticator issues access tokens for the active session and guards routes with them.
type Authenticator struct {
	secret  []byte
	ttl     time.Duration
	release bool
	session Session
	clock   clock.Clock
}

func NewAuthenticator(secret []byte, ttl time.Duration, release bool, session Session, clk clock.Clock) *Authenticator {
	return &Authenticator{secret: secret, ttl: ttl, release: release, session: session, clock: clk}
}

// IssueToken signs an access token bound to u's session id.
func (a *Authenticator) IssueToken(u *model.SessionUser) (string, time.Time, error) {
	now := a.clock.Now()
	expires := now.Add(a.ttl)
	claims := Claims{
		Role:      u.Role,
		SessionID: u.SessionID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(u.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expires, nil
}

// ParseToken validates signature and expiry.
func (a *Authenticator) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return a.secret, nil
	}, jwt.WithTimeFunc(a.clock.Now))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// Verify resolves a token to the active session user. Tokens from an earlier
// session are rejected even when unexpired.
func (a *Authenticator) Verify(tokenString string) (*model.SessionUser, error) {
	claims, err := a.ParseToken(tokenString)
	if err != nil {
		return nil, err
	}
	u, ok := a.session.Current()
	if !ok || u.SessionID.String() != claims.SessionID {
		return nil, ErrSessionMismatch
	}
	return u, nil
}

// RequireSession admits requests carrying a token for the active session.
func (a *Authenticator) RequireSession() gin.HandlerFunc {
	return a.RequirePermission()
}

// RequirePermission admits the active session only if its role grants every listed permission.
func (a *Authenticator) RequirePermission(required ...model.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := a.authenticate(c)
		if !ok {
			return
		}
		for _, p := range required {
			if !slices.Contains(u.Permissions, p) {
				c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Access denied: missing permission '"+string(p)+"'"))
				return
			}
		}
		c.Next()
	}
}

// RequireRoleAtLeast admits the active session if its role level reaches minimum.
func (a *Authenticator) RequireRoleAtLeast(minimum model.RoleName) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := a.authenticate(c)
		if !ok {
			return
		}
		if !model.IsAtLeast(u.Role, minimum) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Access denied: requires "+string(minimum)+" or higher"))
			return
		}
		c.Next()
	}
}

func (a *Authenticator) authenticate(c *gin.Context) (*model.SessionUser, bool) {
	if u, ok := CurrentUser(c); ok {
		return u, true
	}

	tokenString, err := tokenFromRequest(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, err.Error()))
		return nil, false
	}
	u, err := a.Verify(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid token: "+err.Error()))
		return nil, false
	}

	c.Set(userContextKey, u)
	c.Set("userID", u.ID)
	c.Set("userRole", string(u.Role))
	return u, true
}

// tokenFromRequest reads the cookie first, then the Authorization header.
func tokenFromRequest(c *gin.Context) (string, error) {
	if token, err := c.Cookie(accessTokenCookie); err == nil && token != "" {
		return token, nil
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", errors.New("Authorization is missing")
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errors.New("Invalid authorization format. Expected 'Bearer <token>'")
	}
	return parts[1], nil
}

// CurrentUser returns the session user attached by the auth middleware.
func CurrentUser(c *gin.Context) (*model.SessionUser, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*model.SessionUser)
	return u, ok
}

// SetTokenCookie stores the access token as an HttpOnly cookie.
// Release builds are served cross-origin and need SameSite=None with Secure.
func (a *Authenticator) SetTokenCookie(c *gin.Context, token string) {
	sameSite, secure := a.cookiePolicy()
	c.SetSameSite(sameSite)
	c.SetCookie(accessTokenCookie, token, int(a.ttl.Seconds()), "/", "", secure, true)
}

// ClearTokenCookie removes the access token cookie.
func (a *Authenticator) ClearTokenCookie(c *gin.Context) {
	sameSite, secure := a.cookiePolicy()
	c.SetSameSite(sameSite)
	c.SetCookie(accessTokenCookie, "", -1, "/", "", secure, true)
}

func (a *Authenticator) cookiePolicy() (http.SameSite, bool) {
	if a.release {
		return http.SameSiteNoneMode, true
	}
	return http.SameSiteLaxMode, false
}

// Serialize runs requests one at a time. The session, catalog, cart and ledger
// belong to a single logical actor and are not safe for concurrent use.
func Serialize() gin.HandlerFunc {
	var mu sync.Mutex
	return func(c *gin.Context) {
		mu.Lock()
		defer mu.Unlock()
		c.Next()
	}
}
