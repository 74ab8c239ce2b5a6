package tenant

import (
	"context"

	"github.com/schoolkit/schoolkit/pkg/feature"
)

// Tenant is an independently configured school with its own enabled
// feature set. Tenants are provisioned at onboarding and read-only to
// the authorization core.
type Tenant struct {
	ID       string                   `json:"id"`
	Name     string                   `json:"name"`
	Tier     Tier                     `json:"tier"`
	Features map[feature.Feature]bool `json:"features"`
}

// FeatureEnabled reports whether the feature is enabled for this tenant.
// Unlisted features are implicitly disabled.
func (t *Tenant) FeatureEnabled(f feature.Feature) bool {
	return t.Features[f]
}

// Tier is the subscription tier of a tenant. Tiers are ordered
// (basic < premium < enterprise) but purely informational: the explicit
// feature set gates access, never the tier.
type Tier string

// All subscription tiers.
const (
	TierBasic      Tier = "basic"
	TierPremium    Tier = "premium"
	TierEnterprise Tier = "enterprise"
)

var tierOrder = map[Tier]int{
	TierBasic:      0,
	TierPremium:    1,
	TierEnterprise: 2,
}

// IsValid reports whether t is a known tier.
func (t Tier) IsValid() bool {
	_, ok := tierOrder[t]
	return ok
}

// String returns the wire name of the tier.
func (t Tier) String() string { return string(t) }

// Compare orders tiers: negative when t is lower than other, zero when
// equal, positive when higher. Unknown tiers compare lowest.
func (t Tier) Compare(other Tier) int {
	return tierOrder[t] - tierOrder[other]
}

// ParseTier converts a wire name into a Tier.
// Returns ErrInvalidTier for unknown names.
func ParseTier(name string) (Tier, error) {
	t := Tier(name)
	if !t.IsValid() {
		return "", ErrInvalidTier
	}
	return t, nil
}

// Provider loads tenant information from the tenant catalog.
// Returns ErrTenantNotFound when no tenant matches the id; any other
// error means the catalog could not be consulted.
type Provider interface {
	GetByID(ctx context.Context, id string) (*Tenant, error)
}
