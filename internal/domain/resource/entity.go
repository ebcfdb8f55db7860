package resource

import (
	"errors"
	"strings"
	"time"

	"booking-core/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrEmptyResourceName   = errors.New("resource name cannot be empty")
	ErrResourceNameTooLong = errors.New("resource name is too long (max 255 characters)")
	ErrInvalidCapacity     = errors.New("capacity must be at least 1")
	ErrInvalidType         = errors.New("resource type must be ROOM, EQUIPMENT or STAFF")
)

const (
	MaxResourceNameLength = 255
)

type Type string

const (
	TypeRoom      Type = "ROOM"
	TypeEquipment Type = "EQUIPMENT"
	TypeStaff     Type = "STAFF"
)

func ParseType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	switch t {
	case TypeRoom, TypeEquipment, TypeStaff:
		return t, nil
	default:
		return "", ErrInvalidType
	}
}

func (t Type) String() string {
	return string(t)
}

// Resource is a bookable unit owned by a tenant. Capacity is descriptive;
// the ledger admits one allocation per resource at any instant.
type Resource struct {
	id           uuid.UUID
	tenantID     uuid.UUID
	resourceType Type
	name         string
	capacity     int
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewResource(tenantID uuid.UUID, resourceType Type, name string, capacity int, now time.Time) (*Resource, error) {
	if err := validateResourceName(name); err != nil {
		return nil, err
	}
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}
	if _, err := ParseType(string(resourceType)); err != nil {
		return nil, err
	}

	now = now.UTC()
	return &Resource{
		id:           uuid.New(),
		tenantID:     tenantID,
		resourceType: resourceType,
		name:         strings.TrimSpace(name),
		capacity:     capacity,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructResource(id, tenantID uuid.UUID, resourceType Type, name string, capacity int, isActive bool, createdAt, updatedAt time.Time) *Resource {
	return &Resource{
		id:           id,
		tenantID:     tenantID,
		resourceType: resourceType,
		name:         name,
		capacity:     capacity,
		isActive:     isActive,
		createdAt:    createdAt.UTC(),
		updatedAt:    updatedAt.UTC(),
	}
}

// Patch holds optional changes; nil fields are left untouched.
type Patch struct {
	Name     *string
	Capacity *int
	IsActive *bool
}

// Apply validates every supplied field before mutating, so a rejected patch leaves r untouched.
// updatedAt moves only when something actually changed.
func (r *Resource) Apply(p Patch, now time.Time) error {
	if p.Name != nil {
		if err := validateResourceName(*p.Name); err != nil {
			return err
		}
		trimmed := strings.TrimSpace(*p.Name)
		p.Name = &trimmed
	}
	if p.Capacity != nil {
		if err := validateCapacity(*p.Capacity); err != nil {
			return err
		}
	}

	changed := patch.Changed(p.Name, r.name) ||
		patch.Changed(p.Capacity, r.capacity) ||
		patch.Changed(p.IsActive, r.isActive)

	r.name = patch.Coalesce(p.Name, r.name)
	r.capacity = patch.Coalesce(p.Capacity, r.capacity)
	r.isActive = patch.Coalesce(p.IsActive, r.isActive)
	if changed {
		r.updatedAt = now.UTC()
	}
	return nil
}

func validateResourceName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return ErrResourceNameTooLong
	}
	return nil
}

func validateCapacity(capacity int) error {
	if capacity < 1 {
		return ErrInvalidCapacity
	}
	return nil
}

func (r *Resource) ID() uuid.UUID        { return r.id }
func (r *Resource) TenantID() uuid.UUID  { return r.tenantID }
func (r *Resource) Type() Type           { return r.resourceType }
func (r *Resource) Name() string         { return r.name }
func (r *Resource) Capacity() int        { return r.capacity }
func (r *Resource) IsActive() bool       { return r.isActive }
func (r *Resource) CreatedAt() time.Time { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time { return r.updatedAt }
