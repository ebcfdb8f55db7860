package components

import (
	"time"

	"booking-core/internal/domain/availability"
	"booking-core/internal/domain/booking"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/pkg/config"
	"booking-core/internal/usecase/commands"
	"booking-core/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewHoldPolicy,
	NewDefaultWorkingHours,
	NewAvailabilitySettings,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewHoldCommands,
		commands.NewBookingCommands,
		commands.NewResourceCommands,
		commands.NewPageCommands,
		commands.NewPublicCommands,
		commands.NewIdempotencyGuard,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
		queries.NewResourceQueries,
		queries.NewPageQueries,
	),
)

func NewHoldPolicy(cfg config.Config) booking.HoldPolicy {
	return booking.HoldPolicy{
		MinTTL:     cfg.Hold.MinTTL,
		MaxTTL:     cfg.Hold.MaxTTL,
		DefaultTTL: cfg.Hold.DefaultTTL,
	}
}

// NewDefaultWorkingHours applies to pages without their own hours and to raw resource searches.
func NewDefaultWorkingHours(cfg config.Config) (availability.WorkingHours, error) {
	window, err := availability.NewWindow(cfg.Availability.DayStart, cfg.Availability.DayEnd)
	if err != nil {
		return nil, err
	}
	days := make([]time.Weekday, 0, len(cfg.Availability.WorkDays))
	for _, d := range cfg.Availability.WorkDays {
		wd, err := availability.ParseWeekday(d)
		if err != nil {
			return nil, err
		}
		days = append(days, wd)
	}
	return availability.DefaultWorkingHours(days, window), nil
}

func NewAvailabilitySettings(cfg config.Config, hours availability.WorkingHours) queries.AvailabilitySettings {
	return queries.AvailabilitySettings{
		Granularity:  cfg.Availability.Granularity,
		MaxHorizon:   time.Duration(cfg.Availability.MaxHorizonDays) * 24 * time.Hour,
		DefaultHours: hours,
	}
}
