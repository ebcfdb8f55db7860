package shared

import (
	"context"

	"booking-core/internal/domain/page"
	"booking-core/internal/domain/resource"

	"github.com/google/uuid"
)

type ResourceRegistry interface {
	CreateResource(ctx context.Context, r *resource.Resource) error
	UpdateResource(ctx context.Context, tenantID, id uuid.UUID, mutate func(r *resource.Resource) error) (*resource.Resource, error)
	FindResource(ctx context.Context, tenantID, id uuid.UUID) (*resource.Resource, error)
	// FindResources returns the subset of ids that exist for the tenant.
	FindResources(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]*resource.Resource, error)
	ListResources(ctx context.Context, tenantID uuid.UUID) ([]*resource.Resource, error)
}

type PageRegistry interface {
	CreatePage(ctx context.Context, p *page.BookingPage) error
	FindPage(ctx context.Context, tenantID, id uuid.UUID) (*page.BookingPage, error)
	FindPageBySlug(ctx context.Context, slug string) (*page.BookingPage, error)
	CreateService(ctx context.Context, s *page.Service) error
	FindService(ctx context.Context, pageID, id uuid.UUID) (*page.Service, error)
	ListServices(ctx context.Context, pageID uuid.UUID) ([]*page.Service, error)
}
