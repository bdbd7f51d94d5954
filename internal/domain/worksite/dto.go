package worksite

import (
	"github.com/cmlabs-hris/geoattend-backend-go/internal/pkg/validator"
)

type UpsertWorkSiteRequest struct {
	ID        string  `json:"-"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RadiusM   int     `json:"radius_m"`
}

func (r *UpsertWorkSiteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.RadiusM <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "radius_m",
			Message: "radius_m must be a positive number of meters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorkSiteResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RadiusM   int     `json:"radius_m"`
}

func ToResponse(s WorkSite) WorkSiteResponse {
	return WorkSiteResponse{
		ID:        s.ID,
		Name:      s.Name,
		Latitude:  s.Latitude,
		Longitude: s.Longitude,
		RadiusM:   s.RadiusM,
	}
}
