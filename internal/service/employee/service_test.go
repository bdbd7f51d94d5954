package employee

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/worksite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return append([]employee.Employee(nil), f.employees...), nil
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if emp.IsActive {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) CountActive(ctx context.Context) (int64, error) {
	active, _ := f.ListActive(ctx)
	return int64(len(active)), nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	for i := range f.employees {
		if f.employees[i].ID == emp.ID {
			f.employees[i] = emp
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

type fakeShiftRepo struct {
	shifts map[string]shift.Shift
}

func (f *fakeShiftRepo) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	f.shifts[s.ID] = s
	return s, nil
}

func (f *fakeShiftRepo) Update(ctx context.Context, s shift.Shift) error {
	f.shifts[s.ID] = s
	return nil
}

func (f *fakeShiftRepo) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	s, ok := f.shifts[id]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return s, nil
}

func (f *fakeShiftRepo) List(ctx context.Context) ([]shift.Shift, error) {
	var out []shift.Shift
	for _, s := range f.shifts {
		out = append(out, s)
	}
	return out, nil
}

type fakeWorkSiteRepo struct {
	sites map[string]worksite.WorkSite
}

func (f *fakeWorkSiteRepo) Create(ctx context.Context, site worksite.WorkSite) (worksite.WorkSite, error) {
	f.sites[site.ID] = site
	return site, nil
}

func (f *fakeWorkSiteRepo) Update(ctx context.Context, site worksite.WorkSite) error {
	f.sites[site.ID] = site
	return nil
}

func (f *fakeWorkSiteRepo) GetByID(ctx context.Context, id string) (worksite.WorkSite, error) {
	site, ok := f.sites[id]
	if !ok {
		return worksite.WorkSite{}, worksite.ErrWorkSiteNotFound
	}
	return site, nil
}

func (f *fakeWorkSiteRepo) List(ctx context.Context) ([]worksite.WorkSite, error) {
	var out []worksite.WorkSite
	for _, site := range f.sites {
		out = append(out, site)
	}
	return out, nil
}

func newTestEmployeeService() (employee.EmployeeService, *fakeEmployeeRepo) {
	repo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", FullName: "Alice Nguyen", IsActive: true},
		{ID: "emp-2", FullName: "Binh Tran", IsActive: true},
	}}
	shiftRepo := &fakeShiftRepo{shifts: map[string]shift.Shift{
		"0190a68e-35c2-7b6f-8001-7e4a2c9d1f00": {ID: "0190a68e-35c2-7b6f-8001-7e4a2c9d1f00", Name: "Office Hours"},
	}}
	siteRepo := &fakeWorkSiteRepo{sites: map[string]worksite.WorkSite{
		"site-1": {ID: "site-1", Name: "HQ"},
	}}
	return NewEmployeeService(repo, shiftRepo, siteRepo), repo
}

func TestListIncludesDeactivatedEmployees(t *testing.T) {
	svc, _ := newTestEmployeeService()

	inactive := false
	_, err := svc.Update(context.Background(), employee.UpdateEmployeeRequest{
		ID:       "emp-1",
		IsActive: &inactive,
	})
	require.NoError(t, err)

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 2, "deactivated employees must stay listable")

	byID := make(map[string]employee.EmployeeResponse, len(listed))
	for _, resp := range listed {
		byID[resp.ID] = resp
	}
	assert.False(t, byID["emp-1"].IsActive)
	assert.True(t, byID["emp-2"].IsActive)
}

func TestUpdateReactivatesEmployee(t *testing.T) {
	svc, repo := newTestEmployeeService()

	inactive := false
	_, err := svc.Update(context.Background(), employee.UpdateEmployeeRequest{ID: "emp-1", IsActive: &inactive})
	require.NoError(t, err)

	active := true
	resp, err := svc.Update(context.Background(), employee.UpdateEmployeeRequest{ID: "emp-1", IsActive: &active})
	require.NoError(t, err)
	assert.True(t, resp.IsActive)

	stored, err := repo.GetByID(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.True(t, stored.IsActive)
}

func TestUpdateAssignsShift(t *testing.T) {
	svc, _ := newTestEmployeeService()

	shiftID := "0190a68e-35c2-7b6f-8001-7e4a2c9d1f00"
	resp, err := svc.Update(context.Background(), employee.UpdateEmployeeRequest{ID: "emp-1", ShiftID: &shiftID})
	require.NoError(t, err)

	require.NotNil(t, resp.ShiftID)
	assert.Equal(t, shiftID, *resp.ShiftID)
	require.NotNil(t, resp.ShiftName)
	assert.Equal(t, "Office Hours", *resp.ShiftName)
}

func TestUpdateRejectsUnknownSite(t *testing.T) {
	svc, _ := newTestEmployeeService()

	sites := []string{"site-1", "missing"}
	_, err := svc.Update(context.Background(), employee.UpdateEmployeeRequest{ID: "emp-1", AllowedSiteIDs: &sites})

	assert.ErrorIs(t, err, worksite.ErrWorkSiteNotFound)
}
