package queries

import (
	"context"

	"booking-core/internal/domain/resource"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type ResourceReadStore interface {
	FindResource(ctx context.Context, tenantID, id uuid.UUID) (*resource.Resource, error)
	ListResources(ctx context.Context, tenantID uuid.UUID) ([]*resource.Resource, error)
}

//go:generate mockgen -source=resource.go -destination=../../testutil/mock/queries/resource.go -package=queriesmock -exclude_interfaces=ResourceReadStore
type ResourceQueries interface {
	GetResource(ctx context.Context, tenantID, id uuid.UUID) (*ResourceView, error)
	ListResources(ctx context.Context, tenantID uuid.UUID) ([]*ResourceView, error)
}

type resourceQueriesImpl struct {
	store ResourceReadStore
}

func NewResourceQueries(store ResourceReadStore) ResourceQueries {
	return &resourceQueriesImpl{store: store}
}

func (q *resourceQueriesImpl) GetResource(ctx context.Context, tenantID, id uuid.UUID) (*ResourceView, error) {
	r, err := q.store.FindResource(ctx, tenantID, id)
	if err != nil {
		if errs.Is(err, shared.ErrRecordNotFound) {
			return nil, errs.Mark(err, ErrNotFound)
		}
		return nil, err
	}
	return NewResourceView(r), nil
}

func (q *resourceQueriesImpl) ListResources(ctx context.Context, tenantID uuid.UUID) ([]*ResourceView, error) {
	rs, err := q.store.ListResources(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]*ResourceView, 0, len(rs))
	for _, r := range rs {
		out = append(out, NewResourceView(r))
	}
	return out, nil
}
