package room

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"luxe/infras/otel"
	"luxe/internal/domains/room/model"
	"luxe/internal/domains/room/model/dto"
	"luxe/internal/domains/room/service"
	"luxe/shared"
	"luxe/shared/constant"
	gDto "luxe/shared/dto"
	"luxe/shared/validator"
	"luxe/transport/http/response"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/availability", handler.GetAvailability)
		routerGroup.Get("/next-available", handler.GetNextAvailableDates)
		routerGroup.Get("/stats", handler.GetRoomStats)
		routerGroup.Get("/{id}", handler.GetRoomByID)
		routerGroup.Patch("/{id}", handler.UpdateRoom)
		routerGroup.Delete("/{id}", handler.DeleteRoom)
	})
}

// CreateRoom handles the creation of a new room type.
// @Summary Create a new room type
// @Description Create a new room type with the provided details.
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param room_id formData integer true "Room type key"
// @Param type formData string true "Room type name"
// @Param base_price formData number true "Base nightly price"
// @Param total_rooms formData integer false "Units of this type"
// @Param description formData string false "Room description"
// @Param amenities formData []string false "Amenities (repeatable)"
// @Param capacity formData integer false "Guest capacity"
// @Param image formData file false "Room image"
// @Success 201 {object} response.Message "Room created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [post]
func (handler *Handler) CreateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, err)

		return
	}

	req := dto.CreateRoomRequest{
		Type:        request.FormValue("type"),
		Description: request.FormValue("description"),
		Amenities:   request.Form["amenities"],
	}

	if roomIDStr := request.FormValue("room_id"); roomIDStr != "" {
		if v, err := shared.ConvertStringToInt(roomIDStr); err == nil {
			req.RoomID = v
		}
	}

	if priceStr := request.FormValue("base_price"); priceStr != "" {
		if v, err := shared.ConvertStringToFloat(priceStr); err == nil {
			req.BasePrice = v
		}
	}

	if totalStr := request.FormValue("total_rooms"); totalStr != "" {
		if v, err := shared.ConvertStringToInt(totalStr); err == nil {
			req.TotalRooms = v
		}
	}

	if capStr := request.FormValue("capacity"); capStr != "" {
		if v, err := shared.ConvertStringToInt(capStr); err == nil {
			req.Capacity = v
		}
	}

	file, fileHeader, err := request.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Room created successfully")

	response.WithMessage(writer, http.StatusCreated, "Room created successfully")
}

// GetRooms retrieves all room types based on query parameters.
// @Summary Get all rooms
// @Description Retrieve all room types with optional filtering and pagination.
// @Tags Room
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param type query string false "Filter by room type name"
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldType,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldType),
				Table:    model.TableName,
			},
		},
	}

	rooms, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetAvailability lists rooms with open inventory for a stay window.
// @Summary Get room availability
// @Description List room types with available units for an optional date range.
// @Tags Room
// @Accept json
// @Produce json
// @Param check_in query string false "Check-in date (YYYY-MM-DD)"
// @Param check_out query string false "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetRoomAvailabilityResponse] "Rooms with availability"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/availability [get]
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	query := dto.AvailabilityQuery{
		CheckIn:  r.URL.Query().Get(constant.RequestParamCheckIn),
		CheckOut: r.URL.Query().Get(constant.RequestParamCheckOut),
	}

	if err := validator.ValidateStruct(&query); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	rooms, err := handler.service.Availability(ctx, query, gDto.QueryParams{SortBy: model.FieldRoomID, SortDir: "ASC"}, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room availability retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetNextAvailableDates reports when fully booked rooms free up.
// @Summary Get next available dates
// @Description For each fully booked room type, report the first date a unit frees up.
// @Tags Room
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[map[int]string] "Next available dates by room"
// @Router /v1/rooms/next-available [get]
func (handler *Handler) GetNextAvailableDates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNextAvailableDates")
	defer scope.End()

	dates := handler.service.NextAvailableDates(ctx)

	scope.AddEvent("Next available dates retrieved successfully")

	response.WithJSON(w, http.StatusOK, dates)
}

// GetRoomStats aggregates front-desk counters.
// @Summary Get room statistics
// @Description Total units, units occupied today and the occupancy percentage.
// @Tags Room
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.RoomStatsResponse] "Room statistics"
// @Failure 500 {object} response.Error
// @Router /v1/rooms/stats [get]
func (handler *Handler) GetRoomStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomStats")
	defer scope.End()

	stats, err := handler.service.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room stats")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room stats retrieved successfully")

	response.WithJSON(w, http.StatusOK, stats)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Description Retrieve a room by its unique identifier.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [get]
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithJSON(w, http.StatusOK, room)
}

// UpdateRoom updates an existing room by its ID.
// @Summary Update a room by ID
// @Description Update the details of an existing room type.
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Room ID"
// @Param type formData string false "Room type name"
// @Param base_price formData number false "Base nightly price"
// @Param total_rooms formData integer false "Units of this type"
// @Param description formData string false "Room description"
// @Param capacity formData integer false "Guest capacity"
// @Param image formData file false "Room image"
// @Success 200 {object} response.Message "Room updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [patch]
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UpdateRoomRequest{
		Type:        r.FormValue("type"),
		Description: r.FormValue("description"),
	}

	if priceStr := r.FormValue("base_price"); priceStr != "" {
		if v, err := shared.ConvertStringToFloat(priceStr); err == nil {
			req.BasePrice = v
		}
	}

	if totalStr := r.FormValue("total_rooms"); totalStr != "" {
		if v, err := shared.ConvertStringToInt(totalStr); err == nil {
			req.TotalRooms = v
		}
	}

	if capStr := r.FormValue("capacity"); capStr != "" {
		if v, err := shared.ConvertStringToInt(capStr); err == nil {
			req.Capacity = v
		}
	}

	file, fileHeader, err := r.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room updated successfully")

	response.WithMessage(w, http.StatusOK, "Room updated successfully")
}

// DeleteRoom deletes a room by its ID.
// @Summary Delete a room by ID
// @Description Delete a room type using its unique identifier.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Message "Room deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [delete]
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room deleted successfully")

	response.WithMessage(w, http.StatusOK, "Room deleted successfully")
}
