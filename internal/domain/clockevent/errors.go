package clockevent

import "errors"

// Clock action errors
var (
	// ErrSiteNotPermitted is returned when the employee attempts to clock at
	// a site outside their permitted set. No event is recorded.
	ErrSiteNotPermitted = errors.New("work site is not in your permitted set")

	// ErrNoSiteConfigured is returned when no site was specified and the
	// employee has no default permitted site. No event is recorded.
	ErrNoSiteConfigured = errors.New("no work site configured for this employee")

	ErrEventNotFound = errors.New("clock event not found")
)
