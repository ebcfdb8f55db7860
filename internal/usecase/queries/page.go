package queries

import (
	"context"

	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/shared"
)

//go:generate mockgen -source=page.go -destination=../../testutil/mock/queries/page.go -package=queriesmock
type PageQueries interface {
	GetPublicPage(ctx context.Context, slug string) (*PageView, error)
}

type pageQueriesImpl struct {
	pages PageReadStore
}

func NewPageQueries(pages PageReadStore) PageQueries {
	return &pageQueriesImpl{pages: pages}
}

func (q *pageQueriesImpl) GetPublicPage(ctx context.Context, slug string) (*PageView, error) {
	p, err := q.pages.FindPageBySlug(ctx, slug)
	if err != nil {
		if errs.Is(err, shared.ErrRecordNotFound) {
			return nil, errs.Mark(err, ErrNotFound)
		}
		return nil, err
	}
	if !p.IsPublished() {
		return nil, ErrNotFound
	}
	services, err := q.pages.ListServices(ctx, p.ID())
	if err != nil {
		return nil, err
	}
	return NewPageView(p, services), nil
}
