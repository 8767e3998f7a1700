package calendar

//go:generate go run go.uber.org/mock/mockgen -source=./calendar.go -destination=./mocks/calendar_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"luxe/config"
	"luxe/infras/otel"
	"luxe/shared/constant"
	"luxe/shared/logger"
)

// Calendar resolves public holidays for a date range. Implementations return
// a map of YYYY-MM-DD dates to holiday names.
type Calendar interface {
	Holidays(ctx context.Context, start, end time.Time) (map[string]string, error)
}

type calendarImpl struct {
	cfg  *config.Config
	otel otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Calendar {
	return &calendarImpl{
		cfg:  cfg,
		otel: ot,
	}
}

func (c *calendarImpl) Holidays(ctx context.Context, start, end time.Time) (res map[string]string, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".calendar.Holidays")
	defer scope.End()
	defer scope.TraceIfError(err)

	res = map[string]string{}

	svc, err := gcal.NewService(ctx, option.WithAPIKey(c.cfg.External.Calendar.APIKey))
	if err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to build calendar client: %w", err)
	}

	events, err := svc.Events.List(c.cfg.External.Calendar.CalendarID).
		TimeMin(start.Format(constant.StayDateFormat) + "T00:00:00Z").
		TimeMax(end.Format(constant.StayDateFormat) + "T23:59:59Z").
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to list holiday events: %w", err)
	}

	for _, event := range events.Items {
		date := eventDate(event)
		if date == constant.Empty {
			continue
		}

		res[date] = event.Summary
	}

	log.Debug().Int("holidays", len(res)).Msg("resolved holiday window")

	return res, nil
}

// eventDate normalizes an event start to a YYYY-MM-DD key. Holiday calendars
// publish all-day events, but timed events are handled as well.
func eventDate(event *gcal.Event) string {
	if event.Start == nil {
		return constant.Empty
	}

	if event.Start.Date != constant.Empty {
		return event.Start.Date
	}

	if event.Start.DateTime != constant.Empty {
		if t, err := time.Parse(time.RFC3339, event.Start.DateTime); err == nil {
			return t.Format(constant.StayDateFormat)
		}
	}

	return constant.Empty
}
