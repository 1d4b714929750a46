package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/serviceconnect/internal/domain"
	"github.com/GlebRadaev/serviceconnect/pkg/utils"
)

type ContextKey string

const CallerKey ContextKey = "caller"

// Caller is the authenticated identity attached to a request.
type Caller struct {
	Email string
	Role  domain.Role
}

func WithCaller(ctx context.Context, caller Caller) context.Context {
	return context.WithValue(ctx, CallerKey, caller)
}

func CallerFromContext(ctx context.Context) (Caller, bool) {
	caller, ok := ctx.Value(CallerKey).(Caller)
	return caller, ok
}

func Middleware(jwtService JWTServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := WithCaller(r.Context(), Caller{Email: claims.Email, Role: claims.Role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
