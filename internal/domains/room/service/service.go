package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"luxe/config"
	"luxe/infras/otel"
	"luxe/infras/s3"
	bookingModel "luxe/internal/domains/booking/model"
	bookingRepo "luxe/internal/domains/booking/repository"
	"luxe/internal/domains/room/model"
	"luxe/internal/domains/room/model/dto"
	"luxe/internal/domains/room/repository"
	"luxe/shared"
	"luxe/shared/cache"
	"luxe/shared/constant"
	gDto "luxe/shared/dto"
	"luxe/shared/failure"
	"luxe/shared/timezone"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
	cacheCountRoom  = "room:count"
	cacheRoomStats  = "room:stats"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id string) error
	Delete(ctx context.Context, id string) error
	Availability(ctx context.Context, query dto.AvailabilityQuery, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomAvailabilityResponse, error)
	NextAvailableDates(ctx context.Context) map[int]string
	Stats(ctx context.Context) (dto.RoomStatsResponse, error)
}

type serviceImpl struct {
	repo     repository.Room
	bookings bookingRepo.Booking
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	s3       s3.S3
}

func New(repo repository.Room, bookings bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Room {
	return &serviceImpl{
		repo:     repo,
		bookings: bookings,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		s3:       s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	imageURL := constant.Empty
	var uploadedObjectName string
	if req.Image != nil {
		bucketName := s.cfg.External.S3.BucketName
		filename := uuid.NewString()

		// Get original extension
		parts := strings.Split(req.Image.Filename, ".")
		if len(parts) > 1 {
			filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
		}

		url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.ImageFile, req.Image, filename)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload image to S3")

			return fmt.Errorf("failed to upload image: %w", err)
		}
		imageURL = url
		uploadedObjectName = filename
	}

	if err = s.repo.Insert(ctx, req.ToModel(constant.SystemActor, imageURL)); err != nil {
		if uploadedObjectName != constant.Empty {
			bucketName := s.cfg.External.S3.BucketName
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, uploadedObjectName)
		}

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
		shared.InvalidateCaches(c, s.cache, cacheRoomStats)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	currentRoom, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return err
	}

	if currentRoom.ID == constant.Empty {
		log.Error().Msg("room not found")

		return failure.NotFound("room not found")
	}

	return s.updateInternal(ctx, req, currentRoom, filter)
}

func (s *serviceImpl) updateInternal(ctx context.Context, req dto.UpdateRoomRequest, currentRoom model.Room, filter gDto.FilterGroup) error {
	imageURL := constant.Empty
	var uploadedObjectName string
	bucketName := s.cfg.External.S3.BucketName

	if req.Image != nil {
		filename := uuid.NewString()

		// Get original extension
		parts := strings.Split(req.Image.Filename, ".")
		if len(parts) > 1 {
			filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
		}

		url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.ImageFile, req.Image, filename)
		if err != nil {
			return fmt.Errorf("failed to upload image: %w", err)
		}
		imageURL = url
		uploadedObjectName = filename
	}

	updatedFields := shared.TransformFields(req, constant.SystemActor)
	if imageURL != constant.Empty {
		updatedFields[model.FieldImage] = imageURL
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update room")

		// Cleanup: delete newly uploaded image if DB update fails
		if uploadedObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, uploadedObjectName)
		}

		return fmt.Errorf("failed to update room: %w", err)
	}

	// Delete old image if update succeeded and new image was uploaded
	if imageURL != constant.Empty && currentRoom.Image != constant.Empty {
		oldObjectName := s.s3.GetObjectNameFromURL(bucketName, currentRoom.Image)
		if oldObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, oldObjectName)
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, currentRoom.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete room cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
		shared.InvalidateCaches(c, s.cache, cacheRoomStats)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		log.Error().Msg("room not found")

		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
		shared.InvalidateCaches(c, s.cache, cacheRoomStats)
	}()

	return nil
}

// Availability lists the catalog with open inventory per room. Without a stay
// window every unit counts as free.
func (s *serviceImpl) Availability(ctx context.Context, query dto.AvailabilityQuery, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer scope.TraceIfError(err)

	if (query.CheckIn == constant.Empty) != (query.CheckOut == constant.Empty) {
		return res, failure.BadRequestFromString("check_in and check_out must be provided together") // nolint:wrapcheck
	}

	rooms, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.Rooms = make([]dto.RoomAvailabilityResponse, len(rooms))
	for i, room := range rooms {
		res.Rooms[i].FromModel(room)
		res.Rooms[i].Available = room.TotalRooms
	}

	if !query.HasRange() {
		return res, nil
	}

	checkIn, checkOut, err := query.Range()
	if err != nil {
		return res, failure.BadRequestFromString("dates must use the YYYY-MM-DD format") // nolint:wrapcheck
	}

	if checkOut.Before(checkIn) {
		return res, failure.BadRequestFromString("check_out must not precede check_in") // nolint:wrapcheck
	}

	occupied, err := s.occupiedByRoom(ctx, checkIn, checkOut)
	if err != nil {
		log.Error().Err(err).Msg("failed to load bookings for availability")

		return res, fmt.Errorf("failed to load bookings for availability: %w", err)
	}

	for i := range res.Rooms {
		count := occupied[res.Rooms[i].RoomID]

		res.Rooms[i].OccupiedCount = count
		res.Rooms[i].Available = max(res.Rooms[i].TotalRooms-count, 0)
	}

	return res, nil
}

func (s *serviceImpl) occupiedByRoom(ctx context.Context, checkIn, checkOut time.Time) (map[int]int, error) {
	bookings, err := s.bookings.GetAll(ctx, gDto.QueryParams{}, bookingRepo.FilterOverlapping(0, checkIn, checkOut))
	if err != nil {
		return nil, err // nolint:wrapcheck
	}

	occupied := map[int]int{}
	for i := range bookings {
		occupied[bookings[i].RoomID]++
	}

	return occupied, nil
}

// NextAvailableDates reports, for each fully booked room, the first date a
// unit frees up. Collaborator failures degrade to an empty result so the
// dashboard keeps rendering.
func (s *serviceImpl) NextAvailableDates(ctx context.Context) map[int]string {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".NextAvailableDates")
	defer scope.End()

	res := map[int]string{}

	rooms, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms for next available dates")

		return res
	}

	for _, room := range rooms {
		bookings, err := s.bookings.GetAll(ctx, gDto.QueryParams{}, bookingRepo.FilterConfirmedByRoom(room.RoomID))
		if err != nil {
			log.Error().Err(err).Int("roomID", room.RoomID).Msg("failed to get bookings for next available dates")

			continue
		}

		if next, ok := nextAvailableDate(room, bookings); ok {
			res[room.RoomID] = next.Format(constant.StayDateFormat)
		}
	}

	return res
}

// nextAvailableDate reports when a fully booked room type frees up. Rooms with
// spare units or no bookings at all are skipped.
func nextAvailableDate(room model.Room, bookings []bookingModel.Booking) (time.Time, bool) {
	if len(bookings) == 0 || room.TotalRooms <= 0 {
		return time.Time{}, false
	}

	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CheckOut.Before(bookings[j].CheckOut)
	})

	latest := bookings[len(bookings)-1].CheckOut

	active := 0
	for i := range bookings {
		if !bookings[i].CheckOut.Before(latest) {
			active++
		}
	}

	if active >= room.TotalRooms {
		return latest.AddDate(0, 0, 1), true
	}

	return time.Time{}, false
}

// Stats aggregates front-desk counters: total units, units occupied today and
// the occupancy percentage.
func (s *serviceImpl) Stats(ctx context.Context) (res dto.RoomStatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheRoomStats, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheRoomStats).Msg("cache hit for room stats")

		return res, nil
	}

	rooms, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms for stats")

		return res, fmt.Errorf("failed to get rooms for stats: %w", err)
	}

	today := timezone.Now()

	occupiedToday, err := s.bookings.Count(ctx, bookingRepo.FilterOverlapping(0, today, today))
	if err != nil {
		log.Error().Err(err).Msg("failed to count active bookings for stats")

		return res, fmt.Errorf("failed to count active bookings for stats: %w", err)
	}

	for _, room := range rooms {
		res.TotalRooms += room.TotalRooms
	}

	if occupiedToday > res.TotalRooms {
		occupiedToday = res.TotalRooms
	}

	res.OccupiedRooms = occupiedToday

	if res.TotalRooms > 0 {
		res.OccupancyRate = occupiedToday * 100 / res.TotalRooms
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheRoomStats, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room stats to cache")
		}
	}()

	return res, nil
}
