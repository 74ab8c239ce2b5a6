package authz

import (
	"github.com/schoolkit/schoolkit/pkg/feature"
	"github.com/schoolkit/schoolkit/pkg/rbac"
)

// grantBuilder derives the UI-exposable output of one feature from the
// capability a role holds on it. stat is the statistic key exposed when
// view is granted; features without a dashboard counter leave it empty.
type grantBuilder struct {
	stat  string
	build func(role rbac.Role, c rbac.Capability) []Grant
}

// grantBuilders maps every feature to its builder. The table is keyed
// once at package init and iterated in the canonical feature order, so
// snapshots are deterministic. A feature with no UI affordances still
// gets an entry, keeping the table exhaustive when the feature enum
// grows.
var grantBuilders = map[feature.Feature]grantBuilder{
	feature.StudentManagement: {
		stat: "totalStudents",
		build: func(role rbac.Role, c rbac.Capability) []Grant {
			if !c.Create {
				return nil
			}
			return []Grant{{
				ID:      "add_student",
				Feature: feature.StudentManagement,
				Action:  rbac.ActionCreate,
				Title:   "Add Student",
				Icon:    "👨‍🎓",
				Color:   ColorSuccess,
				Kind:    KindButton,
				Requires: Requirement{
					Feature: feature.StudentManagement,
					Roles:   []rbac.Role{rbac.RoleAdmin},
					Level:   rbac.ActionCreate,
				},
			}}
		},
	},
	feature.StaffManagement: {
		stat: "totalStaff",
		build: func(role rbac.Role, c rbac.Capability) []Grant {
			if !c.Create {
				return nil
			}
			return []Grant{{
				ID:      "add_staff",
				Feature: feature.StaffManagement,
				Action:  rbac.ActionCreate,
				Title:   "Add Staff",
				Icon:    "👨‍🏫",
				Color:   ColorInfo,
				Kind:    KindButton,
				Requires: Requirement{
					Feature: feature.StaffManagement,
					Roles:   []rbac.Role{rbac.RoleAdmin},
					Level:   rbac.ActionCreate,
				},
			}}
		},
	},
	feature.ClassManagement: {
		stat: "totalClasses",
		build: func(role rbac.Role, c rbac.Capability) []Grant {
			if !c.View {
				return nil
			}
			return []Grant{{
				ID:      "view_classes",
				Feature: feature.ClassManagement,
				Action:  rbac.ActionView,
				Title:   "View Classes",
				Icon:    "🏫",
				Color:   ColorSuccess,
				Kind:    KindButton,
				Requires: Requirement{
					Feature: feature.ClassManagement,
					Roles:   []rbac.Role{rbac.RoleAdmin, rbac.RoleStaff, rbac.RoleStudent},
					Level:   rbac.ActionView,
				},
			}}
		},
	},
	feature.FeeManagement: {
		stat: "pendingFees",
		build: func(role rbac.Role, c rbac.Capability) []Grant {
			if !c.Create && !c.Edit {
				return nil
			}
			group := Grant{
				ID:      "manage_fees",
				Feature: feature.FeeManagement,
				Action:  rbac.ActionCreate,
				Title:   "Manage Fees",
				Icon:    "💰",
				Color:   ColorWarning,
				Kind:    KindGroup,
				Requires: Requirement{
					Feature: feature.FeeManagement,
					Roles:   []rbac.Role{rbac.RoleAdmin, rbac.RoleAccountant},
					Level:   rbac.ActionCreate,
				},
			}
			group.Options = gateOptions(role, c, []GrantOption{
				{
					ID:    "pay_fee",
					Label: "Pay Fee",
					Icon:  "💳",
					Requires: Requirement{
						Roles: []rbac.Role{rbac.RoleAdmin, rbac.RoleAccountant},
						Level: rbac.ActionCreate,
					},
				},
				{
					ID:    "configure_fee",
					Label: "Configure Fee",
					Icon:  "⚙️",
					Requires: Requirement{
						Roles: []rbac.Role{rbac.RoleAdmin},
						Level: rbac.ActionAdmin,
					},
				},
				{
					ID:    "fee_reports",
					Label: "Fee Reports",
					Icon:  "📊",
					Requires: Requirement{
						Roles: []rbac.Role{rbac.RoleAdmin, rbac.RoleAccountant},
						Level: rbac.ActionView,
					},
				},
			})
			// A group with every sub-option gated away exposes nothing.
			if len(group.Options) == 0 {
				return nil
			}
			return []Grant{group}
		},
	},
	feature.ExamManagement: {
		stat: "upcomingExams",
		build: func(role rbac.Role, c rbac.Capability) []Grant {
			if !c.View {
				return nil
			}
			group := Grant{
				ID:      "exam_management",
				Feature: feature.ExamManagement,
				Action:  rbac.ActionView,
				Title:   "Exam Management",
				Icon:    "📝",
				Color:   ColorInfo,
				Kind:    KindGroup,
				Requires: Requirement{
					Feature: feature.ExamManagement,
					Roles:   []rbac.Role{rbac.RoleAdmin, rbac.RoleStaff, rbac.RoleStudent},
					Level:   rbac.ActionView,
				},
			}
			group.Options = gateOptions(role, c, []GrantOption{
				{
					ID:    "schedule_exam",
					Label: "Schedule Exam",
					Icon:  "📝",
					Requires: Requirement{
						Roles: []rbac.Role{rbac.RoleAdmin, rbac.RoleStaff},
						Level: rbac.ActionCreate,
					},
				},
				{
					ID:    "view_results",
					Label: "View Results",
					Icon:  "📊",
					Requires: Requirement{
						Roles: []rbac.Role{rbac.RoleAdmin, rbac.RoleStaff, rbac.RoleStudent},
						Level: rbac.ActionView,
					},
				},
			})
			if len(group.Options) == 0 {
				return nil
			}
			return []Grant{group}
		},
	},
	feature.AttendanceManagement: {
		build: func(role rbac.Role, c rbac.Capability) []Grant {
			if !c.View {
				return nil
			}
			return []Grant{{
				ID:      "attendance_management",
				Feature: feature.AttendanceManagement,
				Action:  rbac.ActionView,
				Title:   "Attendance",
				Icon:    "📋",
				Color:   ColorSuccess,
				Kind:    KindButton,
				Requires: Requirement{
					Feature: feature.AttendanceManagement,
					Roles:   []rbac.Role{rbac.RoleAdmin, rbac.RoleStaff, rbac.RoleStudent},
					Level:   rbac.ActionView,
				},
			}}
		},
	},
	feature.LibraryManagement: {
		build: func(role rbac.Role, c rbac.Capability) []Grant {
			if !c.View {
				return nil
			}
			return []Grant{{
				ID:      "library_management",
				Feature: feature.LibraryManagement,
				Action:  rbac.ActionView,
				Title:   "Library",
				Icon:    "📚",
				Color:   ColorInfo,
				Kind:    KindButton,
				Requires: Requirement{
					Feature: feature.LibraryManagement,
					Roles:   []rbac.Role{rbac.RoleAdmin, rbac.RoleStaff, rbac.RoleStudent},
					Level:   rbac.ActionView,
				},
			}}
		},
	},
	feature.ReportsAnalytics: {
		build: func(role rbac.Role, c rbac.Capability) []Grant {
			if !c.View {
				return nil
			}
			return []Grant{{
				ID:      "reports_analytics",
				Feature: feature.ReportsAnalytics,
				Action:  rbac.ActionView,
				Title:   "Generate Reports",
				Icon:    "📊",
				Color:   ColorInfo,
				Kind:    KindButton,
				Requires: Requirement{
					Feature: feature.ReportsAnalytics,
					Roles:   []rbac.Role{rbac.RoleAdmin, rbac.RoleAccountant, rbac.RoleStaff},
					Level:   rbac.ActionView,
				},
			}}
		},
	},
	// Notifications and settings surface through navigation, not the
	// quick-action area, so their builders expose nothing.
	feature.Notifications:  {},
	feature.SettingsConfig: {},
}

// gateOptions keeps the sub-options whose descriptor admits the role:
// the role must be listed and the role's capability on the parent feature
// must allow the option's action level.
func gateOptions(role rbac.Role, c rbac.Capability, options []GrantOption) []GrantOption {
	var out []GrantOption
	for _, opt := range options {
		if !roleListed(role, opt.Requires.Roles) {
			continue
		}
		if !c.Allows(opt.Requires.Level) {
			continue
		}
		out = append(out, opt)
	}
	return out
}

func roleListed(role rbac.Role, roles []rbac.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
