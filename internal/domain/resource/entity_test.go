//go:build unit

package resource_test

import (
	"strings"
	"testing"
	"time"

	"booking-core/internal/domain/resource"
	"booking-core/internal/pkg/ptr"
	"booking-core/internal/testutil/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ResourceBuilder)
	errIs  error
}

func TestResource(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewResourceBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, resource.TypeRoom, actual.Type())
		assert.Equal(t, 4, actual.Capacity())
		assert.True(t, actual.IsActive())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	runCases(t, []testCase{
		{name: "empty name", mutate: func(b *builder.ResourceBuilder) { b.Name = "  " }, errIs: resource.ErrEmptyResourceName},
		{name: "name too long", mutate: func(b *builder.ResourceBuilder) { b.Name = strings.Repeat("a", 256) }, errIs: resource.ErrResourceNameTooLong},
		{name: "maximum name length", mutate: func(b *builder.ResourceBuilder) { b.Name = strings.Repeat("a", 255) }},
		{name: "zero capacity", mutate: func(b *builder.ResourceBuilder) { b.Capacity = 0 }, errIs: resource.ErrInvalidCapacity},
		{name: "unknown type", mutate: func(b *builder.ResourceBuilder) { b.Type = "DESK" }, errIs: resource.ErrInvalidType},
		{name: "staff", mutate: func(b *builder.ResourceBuilder) { b.Type = "STAFF" }},
	})
}

func TestParseType(t *testing.T) {
	got, err := resource.ParseType(" equipment ")
	require.NoError(t, err)
	assert.Equal(t, resource.TypeEquipment, got)

	_, err = resource.ParseType("")
	assert.ErrorIs(t, err, resource.ErrInvalidType)
}

func TestResource_Apply(t *testing.T) {
	later := time.Date(2028, 6, 2, 9, 0, 0, 0, time.UTC)

	t.Run("partial patch", func(t *testing.T) {
		r, err := builder.NewResourceBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, r.Apply(resource.Patch{Name: ptr.To("  Board room "), IsActive: ptr.To(false)}, later))
		assert.Equal(t, "Board room", r.Name())
		assert.Equal(t, 4, r.Capacity())
		assert.False(t, r.IsActive())
		assert.Equal(t, later, r.UpdatedAt())
	})

	t.Run("no-op patch keeps updatedAt", func(t *testing.T) {
		r, err := builder.NewResourceBuilder().BuildDomain()
		require.NoError(t, err)
		created := r.UpdatedAt()

		require.NoError(t, r.Apply(resource.Patch{Name: ptr.To("R1"), Capacity: ptr.To(4)}, later))
		assert.Equal(t, created, r.UpdatedAt())
	})

	t.Run("invalid patch leaves the resource untouched", func(t *testing.T) {
		r, err := builder.NewResourceBuilder().BuildDomain()
		require.NoError(t, err)

		err = r.Apply(resource.Patch{Name: ptr.To("Renamed"), Capacity: ptr.To(0)}, later)
		require.ErrorIs(t, err, resource.ErrInvalidCapacity)
		assert.Equal(t, "R1", r.Name())
		assert.Equal(t, 4, r.Capacity())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewResourceBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
