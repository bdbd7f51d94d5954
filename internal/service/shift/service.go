package shift

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/shift"
	"github.com/google/uuid"
)

type ShiftServiceImpl struct {
	shift.ShiftRepository
}

func NewShiftService(repo shift.ShiftRepository) shift.ShiftService {
	return &ShiftServiceImpl{ShiftRepository: repo}
}

// Create implements shift.ShiftService.
func (s *ShiftServiceImpl) Create(ctx context.Context, req shift.UpsertShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	entity := req.ToEntity()
	entity.ID = uuid.Must(uuid.NewV7()).String()

	created, err := s.ShiftRepository.Create(ctx, entity)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return shift.ToResponse(created), nil
}

// Update implements shift.ShiftService.
func (s *ShiftServiceImpl) Update(ctx context.Context, req shift.UpsertShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	if _, err := s.ShiftRepository.GetByID(ctx, req.ID); err != nil {
		return shift.ShiftResponse{}, err
	}

	entity := req.ToEntity()
	if err := s.ShiftRepository.Update(ctx, entity); err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to update shift: %w", err)
	}

	return shift.ToResponse(entity), nil
}

// GetByID implements shift.ShiftService.
func (s *ShiftServiceImpl) GetByID(ctx context.Context, id string) (shift.ShiftResponse, error) {
	entity, err := s.ShiftRepository.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return shift.ToResponse(entity), nil
}

// List implements shift.ShiftService.
func (s *ShiftServiceImpl) List(ctx context.Context) ([]shift.ShiftResponse, error) {
	shifts, err := s.ShiftRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, entity := range shifts {
		responses = append(responses, shift.ToResponse(entity))
	}
	return responses, nil
}
