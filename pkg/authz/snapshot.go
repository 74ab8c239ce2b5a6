package authz

import (
	"github.com/schoolkit/schoolkit/pkg/feature"
	"github.com/schoolkit/schoolkit/pkg/rbac"
)

// Kind distinguishes a single-button grant from a grouped one.
type Kind string

// Grant kinds.
const (
	KindButton Kind = "button"
	KindGroup  Kind = "group"
)

// Color is the visual category a grant renders with.
type Color string

// Grant colors.
const (
	ColorSuccess Color = "success"
	ColorWarning Color = "warning"
	ColorInfo    Color = "info"
	ColorDanger  Color = "danger"
)

// Requirement is the explicit required-permission descriptor attached to
// every grant. Downstream consumers render it (tooltips, audit views)
// but never re-evaluate it: the resolver already has.
type Requirement struct {
	Feature feature.Feature `json:"feature,omitempty"`
	Roles   []rbac.Role     `json:"roles"`
	Level   rbac.Action     `json:"level"`
}

// GrantOption is one independently gated sub-option of a grouped grant.
// Tenant-level feature enablement is inherited from the parent grant and
// not re-checked per option.
type GrantOption struct {
	ID       string      `json:"id"`
	Label    string      `json:"label"`
	Icon     string      `json:"icon"`
	Requires Requirement `json:"requires"`
}

// Grant is one UI-exposable action the user is allowed to perform.
type Grant struct {
	ID       string          `json:"id"`
	Feature  feature.Feature `json:"feature"`
	Action   rbac.Action     `json:"action"`
	Title    string          `json:"title"`
	Icon     string          `json:"icon"`
	Color    Color           `json:"color"`
	Kind     Kind            `json:"kind"`
	Requires Requirement     `json:"requires"`
	Options  []GrantOption   `json:"options,omitempty"`
}

// Snapshot is the derived capability set of one user: the statistic keys
// their dashboard may show and the actions it may expose. It is computed
// once per authorization context and safe to cache for the lifetime of
// that context; it never changes unless the registries do.
type Snapshot struct {
	Statistics []string `json:"statistics"`
	Grants     []Grant  `json:"grants"`
}
