//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"booking-core/internal/infra"
	"booking-core/internal/infra/repository"
	"booking-core/internal/infra/repository/converter"
	sqlc "booking-core/internal/infra/sqlc/generated"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/testutil/builder"
	repositorymock "booking-core/internal/testutil/mock/repository"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// CreatePage Tests
// =============================================================================

func TestPageRepository_CreatePage(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		queryErr   error
		expectKind infra.RepositoryErrorKind
		expectMark error
	}{
		{name: "success: page created"},
		{
			name:       "error: slug already taken",
			queryErr:   &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			expectKind: infra.KindDuplicateKey,
			expectMark: shared.ErrDuplicateRecord,
		},
		{
			name:       "error: database error occurs",
			queryErr:   errors.New("database connection error"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockPageQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPageRepository(mockQueries, mockDB)

			p, err := builder.NewPageBuilder().BuildDomain()
			require.NoError(t, err)

			mockQueries.EXPECT().CreateBookingPage(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingPageParams) error {
					assert.Equal(t, p.ID(), arg.ID)
					assert.JSONEq(t, `{"mon":[{"start":"09:00","end":"17:00"}],"wed":[{"start":"09:00","end":"12:00"},{"start":"13:00","end":"17:00"}]}`, string(arg.WorkingHours))
					return tc.queryErr
				})

			actualErr := repo.CreatePage(ctx, p)

			if tc.expectKind == "" {
				assert.NoError(t, actualErr)
				return
			}
			require.Error(t, actualErr)
			assert.True(t, infra.IsKind(actualErr, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualErr)
			if tc.expectMark != nil {
				assert.True(t, errs.Is(actualErr, tc.expectMark))
			}
		})
	}
}

// =============================================================================
// Find Tests
// =============================================================================

func TestPageRepository_FindPageBySlug(t *testing.T) {
	ctx := context.Background()
	b := builder.NewPageBuilder()
	hours, err := converter.EncodeWorkingHours(b.Hours)
	require.NoError(t, err)

	testCases := []struct {
		name       string
		row        sqlc.BookingPages
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: page found", row: b.BuildInfra(hours)},
		{name: "error: unknown slug", queryErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: corrupt working hours", row: b.BuildInfra([]byte(`{"funday":[]}`)), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockPageQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPageRepository(mockQueries, mockDB)

			mockQueries.EXPECT().GetBookingPageBySlug(ctx, mockDB, "acme-clinic").Return(tc.row, tc.queryErr)

			got, actualErr := repo.FindPageBySlug(ctx, "acme-clinic")

			if tc.expectKind != "" {
				require.Error(t, actualErr)
				assert.True(t, infra.IsKind(actualErr, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, actualErr)
			assert.Equal(t, tc.row.ID, got.ID())
			assert.Equal(t, "Europe/Berlin", got.Timezone())
			assert.Equal(t, b.Hours, got.WorkingHours())
		})
	}

	t.Run("not found is visible above infra", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPageQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPageRepository(mockQueries, mockDB)

		tenantID, id := uuid.New(), uuid.New()
		mockQueries.EXPECT().GetBookingPageByID(ctx, mockDB, sqlc.GetBookingPageByIDParams{TenantID: tenantID, ID: id}).
			Return(sqlc.BookingPages{}, pgx.ErrNoRows)

		_, err := repo.FindPage(ctx, tenantID, id)
		assert.True(t, errs.Is(err, shared.ErrRecordNotFound))
	})
}

func TestPageRepository_Services(t *testing.T) {
	ctx := context.Background()
	pageID, roomID := uuid.New(), uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockPageQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewPageRepository(mockQueries, mockDB)

	rows := []sqlc.PageServices{{
		ID:              uuid.New(),
		PageID:          pageID,
		TenantID:        uuid.New(),
		Name:            "Consultation",
		DurationMinutes: 45,
		ResourceIds:     []uuid.UUID{roomID},
		CreatedAt:       pgtype.Timestamptz{Valid: true},
	}}
	mockQueries.EXPECT().ListPageServices(ctx, mockDB, pageID).Return(rows, nil)

	services, err := repo.ListServices(ctx, pageID)
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Consultation", services[0].Name())
	assert.Equal(t, 45, int(services[0].Duration().Minutes()))
	assert.Equal(t, []uuid.UUID{roomID}, services[0].ResourceIDs())

	mockQueries.EXPECT().GetPageService(ctx, mockDB, gomock.Any()).Return(sqlc.PageServices{}, pgx.ErrNoRows)
	_, err = repo.FindService(ctx, pageID, uuid.New())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
