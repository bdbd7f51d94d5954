package worksite

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/worksite"
	"github.com/google/uuid"
)

type WorkSiteServiceImpl struct {
	worksite.WorkSiteRepository
}

func NewWorkSiteService(repo worksite.WorkSiteRepository) worksite.WorkSiteService {
	return &WorkSiteServiceImpl{WorkSiteRepository: repo}
}

// Create implements worksite.WorkSiteService.
func (s *WorkSiteServiceImpl) Create(ctx context.Context, req worksite.UpsertWorkSiteRequest) (worksite.WorkSiteResponse, error) {
	if err := req.Validate(); err != nil {
		return worksite.WorkSiteResponse{}, err
	}

	if err := s.checkNameAvailable(ctx, req.Name, ""); err != nil {
		return worksite.WorkSiteResponse{}, err
	}

	site := worksite.WorkSite{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		RadiusM:   req.RadiusM,
	}

	created, err := s.WorkSiteRepository.Create(ctx, site)
	if err != nil {
		return worksite.WorkSiteResponse{}, fmt.Errorf("failed to create work site: %w", err)
	}

	return worksite.ToResponse(created), nil
}

// Update implements worksite.WorkSiteService.
func (s *WorkSiteServiceImpl) Update(ctx context.Context, req worksite.UpsertWorkSiteRequest) (worksite.WorkSiteResponse, error) {
	if err := req.Validate(); err != nil {
		return worksite.WorkSiteResponse{}, err
	}

	site, err := s.WorkSiteRepository.GetByID(ctx, req.ID)
	if err != nil {
		return worksite.WorkSiteResponse{}, err
	}

	if err := s.checkNameAvailable(ctx, req.Name, site.ID); err != nil {
		return worksite.WorkSiteResponse{}, err
	}

	site.Name = req.Name
	site.Latitude = req.Latitude
	site.Longitude = req.Longitude
	site.RadiusM = req.RadiusM

	if err := s.WorkSiteRepository.Update(ctx, site); err != nil {
		return worksite.WorkSiteResponse{}, fmt.Errorf("failed to update work site: %w", err)
	}

	return worksite.ToResponse(site), nil
}

func (s *WorkSiteServiceImpl) checkNameAvailable(ctx context.Context, name, excludeID string) error {
	sites, err := s.WorkSiteRepository.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list work sites: %w", err)
	}
	for _, existing := range sites {
		if existing.ID != excludeID && strings.EqualFold(existing.Name, name) {
			return worksite.ErrNameExists
		}
	}
	return nil
}

// GetByID implements worksite.WorkSiteService.
func (s *WorkSiteServiceImpl) GetByID(ctx context.Context, id string) (worksite.WorkSiteResponse, error) {
	site, err := s.WorkSiteRepository.GetByID(ctx, id)
	if err != nil {
		return worksite.WorkSiteResponse{}, err
	}
	return worksite.ToResponse(site), nil
}

// List implements worksite.WorkSiteService.
func (s *WorkSiteServiceImpl) List(ctx context.Context) ([]worksite.WorkSiteResponse, error) {
	sites, err := s.WorkSiteRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list work sites: %w", err)
	}

	responses := make([]worksite.WorkSiteResponse, 0, len(sites))
	for _, site := range sites {
		responses = append(responses, worksite.ToResponse(site))
	}
	return responses, nil
}
