package repository

import (
	"context"

	"booking-core/internal/domain/resource"
	"booking-core/internal/infra"
	"booking-core/internal/infra/repository/converter"
	sqlc "booking-core/internal/infra/sqlc/generated"
	"booking-core/internal/pkg/pgconv"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ResourceQueries interface {
	CreateResource(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateResourceParams) error
	GetResourceByID(ctx context.Context, db sqlc.DBTX, arg sqlc.GetResourceByIDParams) (sqlc.Resources, error)
	GetResourceByIDForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetResourceByIDForUpdateParams) (sqlc.Resources, error)
	GetResourcesByIDs(ctx context.Context, db sqlc.DBTX, arg sqlc.GetResourcesByIDsParams) ([]sqlc.Resources, error)
	ListResourcesByTenant(ctx context.Context, db sqlc.DBTX, tenantID uuid.UUID) ([]sqlc.Resources, error)
	UpdateResource(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateResourceParams) error
}

type ResourceRepository struct {
	queries ResourceQueries
	db      Beginner
}

var _ shared.ResourceRegistry = (*ResourceRepository)(nil)

func NewResourceRepository(queries ResourceQueries, db Beginner) *ResourceRepository {
	return &ResourceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ResourceRepository) CreateResource(ctx context.Context, res *resource.Resource) error {
	if err := r.queries.CreateResource(ctx, r.db, converter.ResourceToInfra(res)); err != nil {
		return infra.WrapRepoErr("failed to create resource", err)
	}
	return nil
}

// UpdateResource locks the row so concurrent patches apply one after the other.
func (r *ResourceRepository) UpdateResource(ctx context.Context, tenantID, id uuid.UUID, mutate func(res *resource.Resource) error) (*resource.Resource, error) {
	var updated *resource.Resource
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		row, err := r.queries.GetResourceByIDForUpdate(ctx, tx, sqlc.GetResourceByIDForUpdateParams{TenantID: tenantID, ID: id})
		if err != nil {
			if pgconv.IsNoRows(err) {
				return infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
			}
			return infra.WrapRepoErr("failed to get resource", err)
		}

		res := converter.ResourceFromRow(row)
		if err := mutate(res); err != nil {
			return err
		}
		if err := r.queries.UpdateResource(ctx, tx, converter.ResourceUpdateToInfra(res)); err != nil {
			return infra.WrapRepoErr("failed to update resource", err)
		}
		updated = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *ResourceRepository) FindResource(ctx context.Context, tenantID, id uuid.UUID) (*resource.Resource, error) {
	row, err := r.queries.GetResourceByID(ctx, r.db, sqlc.GetResourceByIDParams{TenantID: tenantID, ID: id})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource", err)
	}
	return converter.ResourceFromRow(row), nil
}

func (r *ResourceRepository) FindResources(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]*resource.Resource, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.queries.GetResourcesByIDs(ctx, r.db, sqlc.GetResourcesByIDsParams{TenantID: tenantID, Ids: ids})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find resources", err)
	}
	return converter.ResourcesFromRows(rows), nil
}

func (r *ResourceRepository) ListResources(ctx context.Context, tenantID uuid.UUID) ([]*resource.Resource, error) {
	rows, err := r.queries.ListResourcesByTenant(ctx, r.db, tenantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list resources", err)
	}
	return converter.ResourcesFromRows(rows), nil
}
