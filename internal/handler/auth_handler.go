package handler

import (
	"net/http"

	"pos/internal/middleware"
	"pos/internal/model"
	"pos/internal/service"
	"pos/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	sessionService service.SessionService
	auth           *middleware.Authenticator
}

func NewAuthHandler(sessionService service.SessionService, auth *middleware.Authenticator) *AuthHandler {
	return &AuthHandler{sessionService: sessionService, auth: auth}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/login", h.Login)
	router.POST("/logout", h.auth.RequireSession(), h.Logout)
	router.GET("/me", h.auth.RequireSession(), h.Me)
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	Token     string             `json:"token"`
	ExpiresAt string             `json:"expires_at"`
	User      *model.SessionUser `json:"user"`
}

// Login handles staff authentication
// @Summary      Log in
// @Description  Verifies credentials, starts the store session and sets the access token cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.LoginRequest  true  "Login Payload"
// @Success      200      {object}  response.Response{data=LoginResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.sessionService.Login(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	token, expires, err := h.auth.IssueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to issue token: "+err.Error()))
		return
	}
	h.auth.SetTokenCookie(c, token)

	c.JSON(http.StatusOK, response.Success(http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresAt: expires.Format("2006-01-02T15:04:05Z07:00"),
		User:      user,
	}))
}

// Logout ends the store session
// @Summary      Log out
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessionService.Logout(c.Request.Context())
	h.auth.ClearTokenCookie(c)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Logged out"}))
}

// Me returns the logged-in user with resolved permissions
// @Summary      Current user
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=model.SessionUser}
// @Failure      401  {object}  response.Response
// @Router       /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, user))
}
