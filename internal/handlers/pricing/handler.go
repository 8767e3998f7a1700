package pricing

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"luxe/infras/otel"
	"luxe/internal/domains/pricing/model/dto"
	"luxe/internal/domains/pricing/service"
	"luxe/shared/constant"
	"luxe/shared/validator"
	"luxe/transport/http/response"
)

type Handler struct {
	service service.Pricing
	otel    otel.Otel
}

func New(service service.Pricing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/pricing", func(routerGroup chi.Router) {
		routerGroup.Get("/quotes", handler.GetQuotes)
	})
}

// GetQuotes prices every room for a stay window.
// @Summary Get dynamic price quotes
// @Description Quote a nightly price per room type for the requested stay, blending the learned model with rule-based fallbacks.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetQuotesResponse] "Quotes per room"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing/quotes [get]
func (handler *Handler) GetQuotes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQuotes")
	defer scope.End()

	req := dto.StayQuery{
		CheckIn:  r.URL.Query().Get(constant.RequestParamCheckIn),
		CheckOut: r.URL.Query().Get(constant.RequestParamCheckOut),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	quotes, err := handler.service.Quotes(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to quote rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Quotes computed successfully")

	response.WithJSON(w, http.StatusOK, quotes)
}
