package policyfile

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/schoolkit/schoolkit/pkg/feature"
	"github.com/schoolkit/schoolkit/pkg/rbac"
	"github.com/schoolkit/schoolkit/pkg/tenant"
)

// Config locates the policy file through the environment.
type Config struct {
	Path string `env:"POLICY_FILE" envDefault:"policy.yaml"`
}

// document mirrors the YAML policy layout: a tenant catalog with per-tenant
// feature entitlements, and a tenantID -> role -> feature -> capability map.
type document struct {
	Tenants []tenantDoc                                    `yaml:"tenants"`
	Roles   map[string]map[string]map[string]capabilityDoc `yaml:"roles"`
}

type tenantDoc struct {
	ID       string           `yaml:"id"`
	Name     string           `yaml:"name"`
	Tier     string           `yaml:"tier"`
	Features []entitlementDoc `yaml:"features"`
}

type entitlementDoc struct {
	Feature string `yaml:"feature"`
	Enabled bool   `yaml:"enabled"`
}

type capabilityDoc struct {
	View   bool `yaml:"view"`
	Create bool `yaml:"create"`
	Edit   bool `yaml:"edit"`
	Delete bool `yaml:"delete"`
	Admin  bool `yaml:"admin"`
}

// Policy is a fully validated policy document. Every enum value has been
// parsed and every grant references a declared tenant; the accessor
// methods hand the data to the runtime registries.
type Policy struct {
	tenants      []tenant.Tenant
	entitlements map[string][]feature.Entitlement
	grants       map[string]rbac.TenantGrants
}

// Load reads and validates a policy file.
func Load(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}
	return Parse(data)
}

var defaultEnvLoaded sync.Once

// LoadFromEnv resolves the policy file path from the environment (loading
// a .env file first when one exists) and loads it.
func LoadFromEnv() (*Policy, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Join(ErrParseEnv, err)
	}
	return Load(cfg.Path)
}

// Parse validates a raw YAML policy document.
func Parse(data []byte) (*Policy, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrParseFile, err)
	}

	p := &Policy{
		tenants:      make([]tenant.Tenant, 0, len(doc.Tenants)),
		entitlements: make(map[string][]feature.Entitlement, len(doc.Tenants)),
		grants:       make(map[string]rbac.TenantGrants, len(doc.Roles)),
	}

	declared := make(map[string]bool, len(doc.Tenants))
	for _, td := range doc.Tenants {
		if td.ID == "" {
			return nil, errors.Join(ErrInvalidPolicy, errors.New("tenant without id"))
		}
		if declared[td.ID] {
			return nil, errors.Join(ErrInvalidPolicy, tenant.ErrDuplicateTenant,
				fmt.Errorf("tenant %q", td.ID))
		}
		declared[td.ID] = true

		tier, err := tenant.ParseTier(td.Tier)
		if err != nil {
			return nil, errors.Join(ErrInvalidPolicy, err,
				fmt.Errorf("tenant %q: tier %q", td.ID, td.Tier))
		}

		features := make(map[feature.Feature]bool, len(td.Features))
		entitlements := make([]feature.Entitlement, 0, len(td.Features))
		for _, ed := range td.Features {
			f, err := feature.Parse(ed.Feature)
			if err != nil {
				return nil, errors.Join(ErrInvalidPolicy, err,
					fmt.Errorf("tenant %q: feature %q", td.ID, ed.Feature))
			}
			if _, dup := features[f]; dup {
				return nil, errors.Join(ErrInvalidPolicy, feature.ErrDuplicateEntitlement,
					fmt.Errorf("tenant %q: feature %q", td.ID, ed.Feature))
			}
			features[f] = ed.Enabled
			entitlements = append(entitlements, feature.Entitlement{Feature: f, Enabled: ed.Enabled})
		}

		p.tenants = append(p.tenants, tenant.Tenant{
			ID:       td.ID,
			Name:     td.Name,
			Tier:     tier,
			Features: features,
		})
		p.entitlements[td.ID] = entitlements
	}

	for tenantID, roles := range doc.Roles {
		if !declared[tenantID] {
			return nil, errors.Join(ErrInvalidPolicy,
				fmt.Errorf("grants reference undeclared tenant %q", tenantID))
		}

		tenantGrants := make(rbac.TenantGrants, len(roles))
		for roleName, featureGrants := range roles {
			role, err := rbac.ParseRole(roleName)
			if err != nil {
				return nil, errors.Join(ErrInvalidPolicy, err,
					fmt.Errorf("tenant %q: role %q", tenantID, roleName))
			}

			roleGrants := make(rbac.RoleGrants, len(featureGrants))
			for featureName, cd := range featureGrants {
				f, err := feature.Parse(featureName)
				if err != nil {
					return nil, errors.Join(ErrInvalidPolicy, err,
						fmt.Errorf("tenant %q, role %q: feature %q", tenantID, roleName, featureName))
				}
				roleGrants[f] = rbac.Capability{
					View:   cd.View,
					Create: cd.Create,
					Edit:   cd.Edit,
					Delete: cd.Delete,
					Admin:  cd.Admin,
				}
			}
			tenantGrants[role] = roleGrants
		}
		p.grants[tenantID] = tenantGrants
	}

	return p, nil
}
