package handler

import (
	"net/http"

	"pos/internal/middleware"
	"pos/internal/service"
	"pos/pkg/response"

	"github.com/gin-gonic/gin"
)

type RoleHandler struct {
	roleService service.RoleService
	auth        *middleware.Authenticator
}

func NewRoleHandler(roleService service.RoleService, auth *middleware.Authenticator) *RoleHandler {
	return &RoleHandler{roleService: roleService, auth: auth}
}

func (h *RoleHandler) RegisterRoutes(router *gin.RouterGroup) {
	roles := router.Group("/api/roles")
	roles.Use(h.auth.RequireSession())
	{
		roles.GET("", h.ListRoles)
		roles.GET("/:name/permissions", h.GetRolePermissions)
	}

	perms := router.Group("/api/permissions")
	perms.Use(h.auth.RequireSession())
	{
		perms.GET("", h.ListPermissions)
	}
}

// ListRoles returns the role table, most privileged first
// @Summary      List roles
// @Tags         roles
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.RoleResponse}
// @Router       /api/roles [get]
func (h *RoleHandler) ListRoles(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.roleService.ListRoles()))
}

// GetRolePermissions returns the permissions granted by one role
// @Summary      Role permissions
// @Tags         roles
// @Security     BearerAuth
// @Produce      json
// @Param        name  path      string  true  "Role name, e.g. CASHIER"
// @Success      200   {object}  response.Response{data=[]string}
// @Failure      404   {object}  response.Response
// @Router       /api/roles/{name}/permissions [get]
func (h *RoleHandler) GetRolePermissions(c *gin.Context) {
	perms, err := h.roleService.GetPermissionsByRoleName(c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, perms))
}

// ListPermissions returns every permission with the roles granting it
// @Summary      List permissions
// @Tags         roles
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.PermissionResponse}
// @Router       /api/permissions [get]
func (h *RoleHandler) ListPermissions(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.roleService.ListPermissions()))
}
