package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/clockevent"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/worksite"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserInactive):
		Forbidden(w, "User account is inactive")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin or HR access required")

	// Clock action errors
	case errors.Is(err, clockevent.ErrSiteNotPermitted):
		BadRequest(w, "Work site is not in your permitted set", nil)
	case errors.Is(err, clockevent.ErrNoSiteConfigured):
		BadRequest(w, "No work site configured for this employee", nil)
	case errors.Is(err, clockevent.ErrEventNotFound):
		NotFound(w, "Clock event not found")

	// Master data errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is not active")
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, worksite.ErrWorkSiteNotFound):
		NotFound(w, "Work site not found")
	case errors.Is(err, worksite.ErrNameExists):
		Conflict(w, "Work site name already exists")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
