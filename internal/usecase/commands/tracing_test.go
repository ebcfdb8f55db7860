//go:build unit

package commands_test

import (
	"sync"

	"booking-core/internal/usecase/commands"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

var (
	spanRecorder  = tracetest.NewSpanRecorder()
	installTracer sync.Once
)

// recordedSpans installs the recorder as the global provider once; tracers created
// before that delegate to it.
func recordedSpans() *tracetest.SpanRecorder {
	installTracer.Do(func() {
		otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spanRecorder)))
	})
	return spanRecorder
}

func endedSince(rec *tracetest.SpanRecorder, from int, name string) []sdktrace.ReadOnlySpan {
	var out []sdktrace.ReadOnlySpan
	for _, sp := range rec.Ended()[from:] {
		if sp.Name() == name {
			out = append(out, sp)
		}
	}
	return out
}

func (s *commandsTestSuite) TestPublicConfirm_Traced() {
	rec := recordedSpans()
	serviceID := s.setupPage()

	h, err := s.public.HoldSlot(s.ctx, commands.PublicHoldInput{Slug: "acme-clinic", ServiceID: serviceID, StartAt: at(10, 0)})
	s.Require().NoError(err)

	mark := len(rec.Ended())
	_, err = s.public.Confirm(s.ctx, commands.PublicConfirmInput{
		Slug: "acme-clinic", HoldID: h.ID, Name: "Jane Doe", Email: "jane@example.com",
	})
	s.Require().NoError(err)

	confirms := endedSince(rec, mark, "PublicCommands.Confirm")
	s.Require().Len(confirms, 1)
	s.NotEqual(codes.Error, confirms[0].Status().Code)

	inner := endedSince(rec, mark, "BookingCommands.ConfirmFromHold")
	s.Require().Len(inner, 1)
	s.Equal(confirms[0].SpanContext().SpanID(), inner[0].Parent().SpanID())

	s.Run("failure is recorded on the span", func() {
		mark := len(rec.Ended())
		_, err := s.public.Confirm(s.ctx, commands.PublicConfirmInput{
			Slug: "nobody-here", HoldID: h.ID, Name: "Jane Doe", Email: "jane@example.com",
		})
		s.Require().Error(err)

		failed := endedSince(rec, mark, "PublicCommands.Confirm")
		s.Require().Len(failed, 1)
		s.Equal(codes.Error, failed[0].Status().Code)
	})
}
