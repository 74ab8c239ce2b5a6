package rbac

import "github.com/schoolkit/schoolkit/pkg/feature"

// Role is a closed enum of user classes. Every user holds exactly one
// role; there is no multi-role composition.
type Role string

// All user roles.
const (
	RoleAdmin      Role = "admin"
	RoleAccountant Role = "accountant"
	RoleStaff      Role = "staff"
	RoleStudent    Role = "student"
)

var allRoles = []Role{RoleAdmin, RoleAccountant, RoleStaff, RoleStudent}

// AllRoles returns the role set in canonical order. The returned slice
// is a copy and safe to modify.
func AllRoles() []Role {
	out := make([]Role, len(allRoles))
	copy(out, allRoles)
	return out
}

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	for _, known := range allRoles {
		if r == known {
			return true
		}
	}
	return false
}

// String returns the wire name of the role.
func (r Role) String() string { return string(r) }

// ParseRole converts a wire name into a Role.
// Returns ErrInvalidRole for unknown names.
func ParseRole(name string) (Role, error) {
	r := Role(name)
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

// Action is one of the five capability levels a role may hold on a feature.
type Action string

// All capability actions.
const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
	ActionAdmin  Action = "admin"
)

var allActions = []Action{ActionView, ActionCreate, ActionEdit, ActionDelete, ActionAdmin}

// AllActions returns the action set in canonical order. The returned
// slice is a copy and safe to modify.
func AllActions() []Action {
	out := make([]Action, len(allActions))
	copy(out, allActions)
	return out
}

// IsValid reports whether a is a known action.
func (a Action) IsValid() bool {
	for _, known := range allActions {
		if a == known {
			return true
		}
	}
	return false
}

// String returns the wire name of the action.
func (a Action) String() string { return string(a) }

// ParseAction converts a wire name into an Action.
// Returns ErrInvalidAction for unknown names.
func ParseAction(name string) (Action, error) {
	a := Action(name)
	if !a.IsValid() {
		return "", ErrInvalidAction
	}
	return a, nil
}

// Capability is the five-bit permission record a role holds on a feature.
// The zero value grants nothing, which makes absence-of-a-record and
// explicit denial indistinguishable by construction.
type Capability struct {
	View   bool `json:"view" yaml:"view"`
	Create bool `json:"create" yaml:"create"`
	Edit   bool `json:"edit" yaml:"edit"`
	Delete bool `json:"delete" yaml:"delete"`
	Admin  bool `json:"admin" yaml:"admin"`
}

// Allows reports whether the capability grants the action.
// Unknown actions are never allowed.
func (c Capability) Allows(a Action) bool {
	switch a {
	case ActionView:
		return c.View
	case ActionCreate:
		return c.Create
	case ActionEdit:
		return c.Edit
	case ActionDelete:
		return c.Delete
	case ActionAdmin:
		return c.Admin
	default:
		return false
	}
}

// Any reports whether the capability grants at least one action.
func (c Capability) Any() bool {
	return c.View || c.Create || c.Edit || c.Delete || c.Admin
}

// IsZero reports whether the capability grants nothing.
func (c Capability) IsZero() bool { return !c.Any() }

// RoleGrants maps each feature to the capability a single role holds on it.
type RoleGrants map[feature.Feature]Capability

// TenantGrants holds the full role-capability matrix of one tenant.
type TenantGrants map[Role]RoleGrants
