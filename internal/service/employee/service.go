package employee

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/worksite"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	shiftRepo shift.ShiftRepository
	siteRepo  worksite.WorkSiteRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	siteRepo worksite.WorkSiteRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
		shiftRepo:          shiftRepo,
		siteRepo:           siteRepo,
	}
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// List implements employee.EmployeeService. The listing includes deactivated
// employees so an admin can toggle them back on.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

// Update implements employee.EmployeeService. Shift and site references are
// resolved before the write so a bad ID surfaces as a not-found error rather
// than a constraint violation.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		emp.PhoneNumber = *req.PhoneNumber
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}
	if req.ShiftID != nil {
		if *req.ShiftID == "" {
			emp.ShiftID = nil
			emp.Shift = nil
		} else {
			assigned, err := s.shiftRepo.GetByID(ctx, *req.ShiftID)
			if err != nil {
				return employee.EmployeeResponse{}, err
			}
			emp.ShiftID = &assigned.ID
			emp.Shift = &assigned
		}
	}
	if req.AllowedSiteIDs != nil {
		for _, siteID := range *req.AllowedSiteIDs {
			if _, err := s.siteRepo.GetByID(ctx, siteID); err != nil {
				return employee.EmployeeResponse{}, err
			}
		}
		emp.AllowedSiteIDs = *req.AllowedSiteIDs
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return employee.ToResponse(emp), nil
}
