package request

import (
	"booking-core/internal/usecase/commands"

	"github.com/google/uuid"
)

type RegisterResourceRequest struct {
	Type     string `json:"type" binding:"required"`
	Name     string `json:"name" binding:"required,max=200"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
}

func (r RegisterResourceRequest) ToInput(tenantID uuid.UUID) commands.RegisterResourceInput {
	return commands.RegisterResourceInput{
		TenantID: tenantID,
		Type:     r.Type,
		Name:     r.Name,
		Capacity: r.Capacity,
	}
}

// UpdateResourceRequest leaves absent fields untouched.
type UpdateResourceRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,max=200"`
	Capacity *int    `json:"capacity,omitempty" binding:"omitempty,min=1"`
	IsActive *bool   `json:"isActive,omitempty"`
}

func (r UpdateResourceRequest) ToInput(tenantID, id uuid.UUID) commands.UpdateResourceInput {
	return commands.UpdateResourceInput{
		TenantID: tenantID,
		ID:       id,
		Name:     r.Name,
		Capacity: r.Capacity,
		IsActive: r.IsActive,
	}
}
