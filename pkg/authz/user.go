package authz

import (
	"github.com/google/uuid"

	"github.com/schoolkit/schoolkit/pkg/rbac"
)

// User is the authenticated principal supplied by the session layer.
// A user belongs to exactly one tenant and holds exactly one role.
type User struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     rbac.Role `json:"role"`
	TenantID string    `json:"tenant_id"`
}
