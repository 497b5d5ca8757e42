package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/pontofacil/ponto-backend-go/internal/domain/user"
	"github.com/pontofacil/ponto-backend-go/internal/handler/http/response"
)

// AdminOnly requires the admin role
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		if user.Role(role) != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
