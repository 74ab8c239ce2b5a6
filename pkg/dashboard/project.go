package dashboard

import (
	"errors"
	"fmt"
	"slices"

	"github.com/schoolkit/schoolkit/pkg/authz"
	"github.com/schoolkit/schoolkit/pkg/rbac"
)

// QuickActionOption is one entry of a grouped quick action.
type QuickActionOption struct {
	ID    string      `json:"id"`
	Label string      `json:"label"`
	Icon  string      `json:"icon"`
	Roles []rbac.Role `json:"roles"`
}

// QuickAction is the UI-facing shape of one resolved grant: everything a
// dashboard needs to render a button or a grouped menu, with the roles
// that may see it attached for display purposes only.
type QuickAction struct {
	ID      string              `json:"id"`
	Title   string              `json:"title"`
	Icon    string              `json:"icon"`
	Color   authz.Color         `json:"color"`
	Kind    authz.Kind          `json:"kind"`
	Roles   []rbac.Role         `json:"roles"`
	Options []QuickActionOption `json:"options,omitempty"`
}

// Dashboard is the declarative description of what a user's dashboard
// may show. It carries no authorization logic of its own: every entry
// exists because the resolver granted it.
type Dashboard struct {
	Statistics   []string      `json:"statistics"`
	QuickActions []QuickAction `json:"quick_actions"`
}

// Project turns a resolved capability snapshot into its UI-facing
// representation. The transform is pure and total: it adds nothing the
// snapshot does not grant, drops nothing it does, and preserves order.
//
// Malformed snapshots (a grouped grant without options, a button grant
// carrying options, an unknown kind) are programming errors in whoever
// constructed the snapshot and fail loudly with ErrMalformedSnapshot
// instead of being silently coerced.
func Project(snapshot *authz.Snapshot) (*Dashboard, error) {
	if snapshot == nil {
		return nil, errors.Join(ErrMalformedSnapshot, errors.New("nil snapshot"))
	}

	d := &Dashboard{
		Statistics:   slices.Clone(snapshot.Statistics),
		QuickActions: make([]QuickAction, 0, len(snapshot.Grants)),
	}

	for _, grant := range snapshot.Grants {
		switch grant.Kind {
		case authz.KindButton:
			if len(grant.Options) > 0 {
				return nil, errors.Join(ErrMalformedSnapshot,
					fmt.Errorf("button grant %q carries options", grant.ID))
			}
		case authz.KindGroup:
			if len(grant.Options) == 0 {
				return nil, errors.Join(ErrMalformedSnapshot,
					fmt.Errorf("group grant %q has no options", grant.ID))
			}
		default:
			return nil, errors.Join(ErrMalformedSnapshot,
				fmt.Errorf("grant %q has unknown kind %q", grant.ID, grant.Kind))
		}

		action := QuickAction{
			ID:    grant.ID,
			Title: grant.Title,
			Icon:  grant.Icon,
			Color: grant.Color,
			Kind:  grant.Kind,
			Roles: slices.Clone(grant.Requires.Roles),
		}
		for _, opt := range grant.Options {
			action.Options = append(action.Options, QuickActionOption{
				ID:    opt.ID,
				Label: opt.Label,
				Icon:  opt.Icon,
				Roles: slices.Clone(opt.Requires.Roles),
			})
		}
		d.QuickActions = append(d.QuickActions, action)
	}

	return d, nil
}
