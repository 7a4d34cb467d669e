package dto

import "shop/internal/models"

// RoleResponse describes one of the fixed account roles.
type RoleResponse struct {
	RoleID   uint   `json:"roleId"`
	RoleCode string `json:"roleCode"`
	RoleName string `json:"roleName"`
}

func NewRoleResponses(roles []models.Role) []RoleResponse {
	out := make([]RoleResponse, 0, len(roles))
	for i, r := range roles {
		out = append(out, NewRoleResponse(uint(i+1), r))
	}
	return out
}

func NewRoleResponse(id uint, r models.Role) RoleResponse {
	code, _ := r.CodePrefix()
	return RoleResponse{RoleID: id, RoleCode: code, RoleName: r.DisplayName()}
}
