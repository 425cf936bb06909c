package service

import (
	"fmt"

	"pos/internal/model"
)

// --- DTOs ---

type RoleResponse struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Level       int      `json:"level"`
	Permissions []string `json:"permissions"`
}

type PermissionResponse struct {
	Code  string   `json:"code"`
	Roles []string `json:"roles"`
}

// --- Interface ---

// RoleService exposes the static role table. Roles are not editable at runtime.
type RoleService interface {
	ListRoles() []RoleResponse
	ListPermissions() []PermissionResponse
	GetPermissionsByRoleName(roleName string) ([]string, error)
}

type roleService struct{}

func NewRoleService() RoleService {
	return &roleService{}
}

// --- Implementation ---

func (s *roleService) ListRoles() []RoleResponse {
	roles := model.Roles()
	res := make([]RoleResponse, 0, len(roles))
	for _, r := range roles {
		res = append(res, toRoleResponse(r))
	}
	return res
}

func (s *roleService) ListPermissions() []PermissionResponse {
	res := make([]PermissionResponse, 0, len(model.AllPermissions))
	for _, p := range model.AllPermissions {
		entry := PermissionResponse{Code: string(p), Roles: []string{}}
		for _, r := range model.Roles() {
			if r.Has(p) {
				entry.Roles = append(entry.Roles, string(r.Name))
			}
		}
		res = append(res, entry)
	}
	return res
}

func (s *roleService) GetPermissionsByRoleName(roleName string) ([]string, error) {
	role, ok := model.LookupRole(model.RoleName(roleName))
	if !ok {
		return nil, fmt.Errorf("role %q: %w", roleName, ErrNotFound)
	}
	return toRoleResponse(role).Permissions, nil
}

func toRoleResponse(r model.Role) RoleResponse {
	perms := make([]string, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		perms = append(perms, string(p))
	}
	return RoleResponse{
		Name:        string(r.Name),
		DisplayName: r.DisplayName,
		Level:       r.Level,
		Permissions: perms,
	}
}
