package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"luxe/config"
	"luxe/infras/calendar"
	"luxe/infras/otel"
	"luxe/infras/predictor"
	bookingRepo "luxe/internal/domains/booking/repository"
	"luxe/internal/domains/pricing/model"
	"luxe/internal/domains/pricing/model/dto"
	roomModel "luxe/internal/domains/room/model"
	roomRepo "luxe/internal/domains/room/repository"
	"luxe/shared"
	"luxe/shared/cache"
	"luxe/shared/constant"
	gDto "luxe/shared/dto"
	"luxe/shared/failure"
)

const (
	cacheHolidays = "pricing:holidays"
)

type Pricing interface {
	Quotes(ctx context.Context, req dto.StayQuery) (dto.GetQuotesResponse, error)
}

type serviceImpl struct {
	rooms    roomRepo.Room
	bookings bookingRepo.Booking
	calendar calendar.Calendar
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	learned  PriceStrategy
	fallback PriceStrategy
}

func New(rooms roomRepo.Room, bookings bookingRepo.Booking, cal calendar.Calendar, pred predictor.Predictor, cfg *config.Config, cache cache.RedisCache, ot otel.Otel) Pricing {
	return &serviceImpl{
		rooms:    rooms,
		bookings: bookings,
		calendar: cal,
		cfg:      cfg,
		cache:    cache,
		otel:     ot,
		learned:  NewLearnedModel(pred),
		fallback: NewRuleBasedFallback(),
	}
}

// Quotes prices every room in the catalog for one stay window. The holiday
// window and the occupancy estimate are resolved once per request; rooms are
// then priced independently so a bad row never poisons the rest.
func (s *serviceImpl) Quotes(ctx context.Context, req dto.StayQuery) (res dto.GetQuotesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quotes")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, checkOut, err := req.Validate(s.cfg.Pricing.MaxStayDays)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	rooms, err := s.rooms.GetAll(ctx, gDto.QueryParams{SortBy: roomModel.FieldRoomID, SortDir: "ASC"}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms for pricing")

		return res, fmt.Errorf("failed to get rooms for pricing: %w", err)
	}

	if len(rooms) == 0 {
		return res, failure.NotFound("no rooms in catalog") // nolint:wrapcheck
	}

	holidays := s.holidayWindow(ctx, req, checkIn, checkOut)
	occupancy := s.occupancy(ctx, checkIn, checkOut, rooms)

	res.Rooms = make([]dto.RoomQuote, 0, len(rooms))

	for _, room := range rooms {
		quote, err := s.quoteRoom(ctx, room, checkIn, checkOut, holidays, occupancy)
		if err != nil {
			log.Warn().Err(err).Int("roomID", room.RoomID).Msg("skipping room, failed to price")

			continue
		}

		res.Rooms = append(res.Rooms, quote)
	}

	if len(res.Rooms) == 0 {
		return res, failure.InternalError(errors.New("no valid room prices could be calculated")) // nolint:wrapcheck
	}

	return res, nil
}

// holidayWindow resolves holidays for the stay, going to the calendar API on
// cache miss. Lookup failures degrade to an empty set so pricing never stalls
// on the collaborator.
func (s *serviceImpl) holidayWindow(ctx context.Context, req dto.StayQuery, checkIn, checkOut time.Time) model.HolidaySet {
	cacheKey := shared.BuildCacheKey(cacheHolidays, req.CheckIn, req.CheckOut)

	var res model.HolidaySet

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for holiday window")

		return res
	}

	holidays, err := s.calendar.Holidays(ctx, checkIn, checkOut)
	if err != nil {
		log.Warn().Err(err).Msg("holiday lookup failed, pricing without holiday signal")

		return model.HolidaySet{}
	}

	res = model.HolidaySet(holidays)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.HolidayTTL); err != nil {
		log.Error().Err(err).Msg("failed to save holiday window to cache")
	}

	return res
}

// occupancy estimates demand for the stay from the booking ledger. A ledger
// failure degrades to the configured default rate.
func (s *serviceImpl) occupancy(ctx context.Context, checkIn, checkOut time.Time, rooms []roomModel.Room) float64 {
	totalUnits := 0
	for _, room := range rooms {
		totalUnits += room.TotalRooms
	}

	bookings, err := s.bookings.GetAll(ctx, gDto.QueryParams{}, bookingRepo.FilterOverlapping(0, checkIn, checkOut))
	if err != nil {
		log.Warn().Err(err).Msg("failed to load bookings, using default occupancy")

		return s.cfg.Pricing.DefaultOccupancy
	}

	return EstimateOccupancy(checkIn, checkOut, totalUnits, bookings, s.cfg.Pricing.DefaultOccupancy)
}

func (s *serviceImpl) quoteRoom(ctx context.Context, room roomModel.Room, checkIn, checkOut time.Time, holidays model.HolidaySet, occupancy float64) (dto.RoomQuote, error) {
	features := BuildFeatures(checkIn, checkOut, room.RoomID, holidays)

	price, factors, err := s.learned.Price(ctx, room.BasePrice, features, occupancy)
	if err != nil {
		log.Warn().Err(err).Int("roomID", room.RoomID).Msg("prediction failed, using rule-based pricing")

		price, factors, err = s.fallback.Price(ctx, room.BasePrice, features, occupancy)
		if err != nil {
			return dto.RoomQuote{}, err // nolint:wrapcheck
		}
	}

	return dto.RoomQuote{
		RoomID:       room.RoomID,
		Price:        FancyRound(price),
		BasePrice:    room.BasePrice,
		PriceFactors: factors,
	}, nil
}
