package http

import (
	"net/http"

	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

// employeeIDFromRequest extracts the caller's employee ID from the verified
// access token. Empty for accounts with no employee record (pure backoffice
// users).
func employeeIDFromRequest(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	employeeID, _ := claims["employee_id"].(string)
	return employeeID
}

// roleFromRequest extracts the caller's role from the verified access token.
func roleFromRequest(r *http.Request) user.Role {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	roleStr, _ := claims["role"].(string)
	return user.Role(roleStr)
}
