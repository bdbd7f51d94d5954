package worksite

import "context"

type WorkSiteService interface {
	Create(ctx context.Context, req UpsertWorkSiteRequest) (WorkSiteResponse, error)
	Update(ctx context.Context, req UpsertWorkSiteRequest) (WorkSiteResponse, error)
	GetByID(ctx context.Context, id string) (WorkSiteResponse, error)
	List(ctx context.Context) ([]WorkSiteResponse, error)
}
