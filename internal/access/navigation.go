package access

import "github.com/GlebRadaev/serviceconnect/internal/domain"

type MenuItem struct {
	Title  string `json:"title"`
	Path   string `json:"path"`
	Action Action `json:"action"`
}

var (
	guestMenu = []MenuItem{
		{Title: "Home", Path: "/api/home", Action: ActionViewLanding},
		{Title: "Login", Path: "/api/user/login", Action: ActionAuthenticate},
		{Title: "Register", Path: "/api/user/register", Action: ActionRegister},
	}
	clientMenu = []MenuItem{
		{Title: "Services", Path: "/api/services", Action: ActionViewCatalog},
		{Title: "My Orders", Path: "/api/user/orders", Action: ActionViewOwnOrders},
		{Title: "Profile", Path: "/api/user/profile", Action: ActionViewProfile},
		{Title: "Logout", Path: "/api/home", Action: ActionViewLanding},
	}
	technicianMenu = []MenuItem{
		{Title: "Pending Orders", Path: "/api/orders/pending", Action: ActionViewPending},
		{Title: "Profile", Path: "/api/user/profile", Action: ActionViewProfile},
		{Title: "Logout", Path: "/api/home", Action: ActionViewLanding},
	}
)

// Navigation returns the menu for role. Every item is an action the role is
// authorized for.
func Navigation(role domain.Role) []MenuItem {
	var menu []MenuItem
	switch role {
	case domain.RoleClient:
		menu = clientMenu
	case domain.RoleTechnician:
		menu = technicianMenu
	default:
		menu = guestMenu
	}
	out := make([]MenuItem, len(menu))
	copy(out, menu)
	return out
}

// HomePage is where a role lands after login.
func HomePage(role domain.Role) string {
	return Navigation(role)[0].Title
}
