package memory

import (
	"context"
	"slices"
	"strings"

	"booking-core/internal/domain/page"
	"booking-core/internal/domain/resource"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	_ shared.ResourceRegistry = (*Store)(nil)
	_ shared.PageRegistry     = (*Store)(nil)
)

func cloneResource(r *resource.Resource) *resource.Resource {
	return resource.ReconstructResource(r.ID(), r.TenantID(), r.Type(), r.Name(), r.Capacity(), r.IsActive(), r.CreatedAt(), r.UpdatedAt())
}

func (s *Store) CreateResource(_ context.Context, r *resource.Resource) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.resources[r.ID()]; ok {
		return errs.Wrapf(shared.ErrDuplicateRecord, "resource %s", r.ID())
	}
	s.resources[r.ID()] = cloneResource(r)
	return nil
}

func (s *Store) UpdateResource(_ context.Context, tenantID, id uuid.UUID, mutate func(r *resource.Resource) error) (*resource.Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.resources[id]
	if !ok || cur.TenantID() != tenantID {
		return nil, errs.Wrapf(shared.ErrRecordNotFound, "resource %s", id)
	}
	r := cloneResource(cur)
	if err := mutate(r); err != nil {
		return nil, err
	}
	s.resources[id] = cloneResource(r)
	return r, nil
}

func (s *Store) FindResource(_ context.Context, tenantID, id uuid.UUID) (*resource.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.resources[id]
	if !ok || r.TenantID() != tenantID {
		return nil, errs.Wrapf(shared.ErrRecordNotFound, "resource %s", id)
	}
	return cloneResource(r), nil
}

func (s *Store) FindResources(_ context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]*resource.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*resource.Resource, 0, len(ids))
	for _, id := range ids {
		if r, ok := s.resources[id]; ok && r.TenantID() == tenantID {
			out = append(out, cloneResource(r))
		}
	}
	return out, nil
}

func (s *Store) ListResources(_ context.Context, tenantID uuid.UUID) ([]*resource.Resource, error) {
	s.mu.RLock()
	out := make([]*resource.Resource, 0)
	for _, r := range s.resources {
		if r.TenantID() == tenantID {
			out = append(out, cloneResource(r))
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b *resource.Resource) int {
		if c := strings.Compare(a.Name(), b.Name()); c != 0 {
			return c
		}
		return strings.Compare(a.ID().String(), b.ID().String())
	})
	return out, nil
}

func (s *Store) CreatePage(_ context.Context, p *page.BookingPage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.slugs[p.Slug()]; ok {
		return errs.Wrapf(shared.ErrDuplicateRecord, "slug %q", p.Slug())
	}
	s.pages[p.ID()] = p
	s.slugs[p.Slug()] = p.ID()
	return nil
}

func (s *Store) FindPage(_ context.Context, tenantID, id uuid.UUID) (*page.BookingPage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.pages[id]
	if !ok || p.TenantID() != tenantID {
		return nil, errs.Wrapf(shared.ErrRecordNotFound, "page %s", id)
	}
	return p, nil
}

func (s *Store) FindPageBySlug(_ context.Context, slug string) (*page.BookingPage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.slugs[slug]
	if !ok {
		return nil, errs.Wrapf(shared.ErrRecordNotFound, "slug %q", slug)
	}
	return s.pages[id], nil
}

func (s *Store) CreateService(_ context.Context, svc *page.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pages[svc.PageID()]; !ok {
		return errs.Wrapf(shared.ErrRecordNotFound, "page %s", svc.PageID())
	}
	if _, ok := s.services[svc.ID()]; ok {
		return errs.Wrapf(shared.ErrDuplicateRecord, "service %s", svc.ID())
	}
	s.services[svc.ID()] = svc
	return nil
}

func (s *Store) FindService(_ context.Context, pageID, id uuid.UUID) (*page.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	svc, ok := s.services[id]
	if !ok || svc.PageID() != pageID {
		return nil, errs.Wrapf(shared.ErrRecordNotFound, "service %s", id)
	}
	return svc, nil
}

func (s *Store) ListServices(_ context.Context, pageID uuid.UUID) ([]*page.Service, error) {
	s.mu.RLock()
	out := make([]*page.Service, 0)
	for _, svc := range s.services {
		if svc.PageID() == pageID {
			out = append(out, svc)
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b *page.Service) int {
		if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
			return c
		}
		return strings.Compare(a.ID().String(), b.ID().String())
	})
	return out, nil
}
