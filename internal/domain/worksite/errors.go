package worksite

import "errors"

var (
	ErrWorkSiteNotFound = errors.New("work site not found")
	ErrNameExists       = errors.New("work site name already exists")
)
