package employee

import (
	"time"

	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/shift"
)

type Employee struct {
	ID          string
	UserID      *string
	FullName    string
	PhoneNumber string
	IsActive    bool
	ShiftID     *string
	// AllowedSiteIDs is the set of work sites the employee may clock at.
	AllowedSiteIDs []string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined
	Shift *shift.Shift
}

// IsSiteAllowed reports whether the employee may clock at the given site.
func (e Employee) IsSiteAllowed(siteID string) bool {
	for _, id := range e.AllowedSiteIDs {
		if id == siteID {
			return true
		}
	}
	return false
}

// DefaultSiteID returns the first allowed site, used when a clock request
// names no site. Empty when the employee has no allowed sites at all.
func (e Employee) DefaultSiteID() string {
	if len(e.AllowedSiteIDs) == 0 {
		return ""
	}
	return e.AllowedSiteIDs[0]
}
