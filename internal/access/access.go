// Package access holds the role gate: which role may invoke which action, and
// the navigation each role sees.
package access

import (
	"errors"
	"net/http"

	"github.com/GlebRadaev/serviceconnect/internal/domain"
	"github.com/GlebRadaev/serviceconnect/pkg/auth"
	"github.com/GlebRadaev/serviceconnect/pkg/utils"
)

type Action string

const (
	ActionRegister       Action = "register"
	ActionAuthenticate   Action = "authenticate"
	ActionViewLanding    Action = "view_landing"
	ActionViewCatalog    Action = "view_catalog"
	ActionBookService    Action = "book_service"
	ActionViewOwnOrders  Action = "view_own_orders"
	ActionViewPending    Action = "view_pending_orders"
	ActionCompleteOrder  Action = "complete_order"
	ActionViewProfile    Action = "view_profile"
	ActionUpdateProfile  Action = "update_profile"
	ActionViewNavigation Action = "view_navigation"
)

var ErrForbidden = errors.New("forbidden")

var public = map[Action]bool{
	ActionRegister:     true,
	ActionAuthenticate: true,
	ActionViewLanding:  true,
}

var table = map[domain.Role]map[Action]bool{
	domain.RoleClient: {
		ActionViewCatalog:    true,
		ActionBookService:    true,
		ActionViewOwnOrders:  true,
		ActionViewProfile:    true,
		ActionUpdateProfile:  true,
		ActionViewNavigation: true,
	},
	domain.RoleTechnician: {
		ActionViewPending:    true,
		ActionCompleteOrder:  true,
		ActionViewProfile:    true,
		ActionUpdateProfile:  true,
		ActionViewNavigation: true,
	},
}

// Authorize reports whether role may perform action. Unknown roles and the
// guest role only get the public actions.
func Authorize(role domain.Role, action Action) bool {
	if public[action] {
		return true
	}
	return table[role][action]
}

func Check(role domain.Role, action Action) error {
	if !Authorize(role, action) {
		return ErrForbidden
	}
	return nil
}

// Require is chi middleware that must run after auth.Middleware.
func Require(action Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, ok := auth.CallerFromContext(r.Context())
			if !ok {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			if !Authorize(caller.Role, action) {
				utils.RespondWithError(w, http.StatusForbidden, "Access denied")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
