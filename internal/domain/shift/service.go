package shift

import "context"

type ShiftService interface {
	Create(ctx context.Context, req UpsertShiftRequest) (ShiftResponse, error)
	Update(ctx context.Context, req UpsertShiftRequest) (ShiftResponse, error)
	GetByID(ctx context.Context, id string) (ShiftResponse, error)
	List(ctx context.Context) ([]ShiftResponse, error)
}
