package repository

import (
	"context"

	"booking-core/internal/domain/page"
	"booking-core/internal/infra"
	"booking-core/internal/infra/repository/converter"
	sqlc "booking-core/internal/infra/sqlc/generated"
	"booking-core/internal/pkg/pgconv"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=page.go -destination=../../testutil/mock/repository/page.go -package=repositorymock
type PageQueries interface {
	CreateBookingPage(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingPageParams) error
	GetBookingPageByID(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBookingPageByIDParams) (sqlc.BookingPages, error)
	GetBookingPageBySlug(ctx context.Context, db sqlc.DBTX, slug string) (sqlc.BookingPages, error)
	CreatePageService(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePageServiceParams) error
	GetPageService(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPageServiceParams) (sqlc.PageServices, error)
	ListPageServices(ctx context.Context, db sqlc.DBTX, pageID uuid.UUID) ([]sqlc.PageServices, error)
}

type PageRepository struct {
	queries PageQueries
	db      sqlc.DBTX
}

var _ shared.PageRegistry = (*PageRepository)(nil)

func NewPageRepository(queries PageQueries, db sqlc.DBTX) *PageRepository {
	return &PageRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PageRepository) CreatePage(ctx context.Context, p *page.BookingPage) error {
	params, err := converter.BookingPageToInfra(p)
	if err != nil {
		return infra.WrapRepoErr("failed to encode booking page", err)
	}
	if err := r.queries.CreateBookingPage(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create booking page", err)
	}
	return nil
}

func (r *PageRepository) FindPage(ctx context.Context, tenantID, id uuid.UUID) (*page.BookingPage, error) {
	row, err := r.queries.GetBookingPageByID(ctx, r.db, sqlc.GetBookingPageByIDParams{TenantID: tenantID, ID: id})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking page not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking page", err)
	}
	return decodePage(row)
}

func (r *PageRepository) FindPageBySlug(ctx context.Context, slug string) (*page.BookingPage, error) {
	row, err := r.queries.GetBookingPageBySlug(ctx, r.db, slug)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking page not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking page by slug", err)
	}
	return decodePage(row)
}

func (r *PageRepository) CreateService(ctx context.Context, s *page.Service) error {
	if err := r.queries.CreatePageService(ctx, r.db, converter.ServiceToInfra(s)); err != nil {
		return infra.WrapRepoErr("failed to create page service", err)
	}
	return nil
}

func (r *PageRepository) FindService(ctx context.Context, pageID, id uuid.UUID) (*page.Service, error) {
	row, err := r.queries.GetPageService(ctx, r.db, sqlc.GetPageServiceParams{PageID: pageID, ID: id})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("page service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find page service", err)
	}
	return converter.ServiceFromRow(row), nil
}

func (r *PageRepository) ListServices(ctx context.Context, pageID uuid.UUID) ([]*page.Service, error) {
	rows, err := r.queries.ListPageServices(ctx, r.db, pageID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list page services", err)
	}
	return converter.ServicesFromRows(rows), nil
}

func decodePage(row sqlc.BookingPages) (*page.BookingPage, error) {
	p, err := converter.BookingPageFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking page", err, infra.KindDBFailure)
	}
	return p, nil
}
