package commands

import (
	"context"

	"booking-core/internal/domain/resource"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/usecase/queries"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type RegisterResourceInput struct {
	TenantID uuid.UUID
	Type     string
	Name     string
	Capacity int
}

type UpdateResourceInput struct {
	TenantID uuid.UUID
	ID       uuid.UUID
	Name     *string
	Capacity *int
	IsActive *bool
}

//go:generate mockgen -source=resource.go -destination=../../testutil/mock/commands/resource.go -package=commandsmock
type ResourceCommands interface {
	Register(ctx context.Context, in RegisterResourceInput) (*queries.ResourceView, error)
	Update(ctx context.Context, in UpdateResourceInput) (*queries.ResourceView, error)
}

type resourceCommandsImpl struct {
	registry shared.ResourceRegistry
	clock    clock.Clock
}

func NewResourceCommands(registry shared.ResourceRegistry, clk clock.Clock) ResourceCommands {
	return &resourceCommandsImpl{registry: registry, clock: clk}
}

func (uc *resourceCommandsImpl) Register(ctx context.Context, in RegisterResourceInput) (*queries.ResourceView, error) {
	t, err := resource.ParseType(in.Type)
	if err != nil {
		return nil, validation(err)
	}
	r, err := resource.NewResource(in.TenantID, t, in.Name, in.Capacity, uc.clock.Now())
	if err != nil {
		return nil, validation(err)
	}
	if err := uc.registry.CreateResource(ctx, r); err != nil {
		return nil, classify(err, ErrNotFound)
	}
	return queries.NewResourceView(r), nil
}

func (uc *resourceCommandsImpl) Update(ctx context.Context, in UpdateResourceInput) (*queries.ResourceView, error) {
	patch := resource.Patch{Name: in.Name, Capacity: in.Capacity, IsActive: in.IsActive}
	r, err := uc.registry.UpdateResource(ctx, in.TenantID, in.ID, func(r *resource.Resource) error {
		return r.Apply(patch, uc.clock.Now())
	})
	if err != nil {
		return nil, classify(err, ErrNotFound)
	}
	return queries.NewResourceView(r), nil
}
