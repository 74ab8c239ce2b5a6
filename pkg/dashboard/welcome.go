package dashboard

import "github.com/schoolkit/schoolkit/pkg/rbac"

var welcomeMessages = map[rbac.Role]string{
	rbac.RoleAdmin:      "Welcome back, Administrator! Manage your school with full control.",
	rbac.RoleAccountant: "Welcome back! Ready to manage finances and student accounts.",
	rbac.RoleStaff:      "Welcome back, Educator! Ready to inspire and teach today.",
	rbac.RoleStudent:    "Welcome back! Ready to learn something new today?",
}

// WelcomeMessage returns the role-specific dashboard greeting, with a
// neutral fallback for anything outside the known role set.
func WelcomeMessage(role rbac.Role) string {
	if msg, ok := welcomeMessages[role]; ok {
		return msg
	}
	return "Welcome to your dashboard"
}
