package lookup

import (
	"net/http"
	"rentdesk/infras/otel"
	"rentdesk/internal/domains/lookup/model"
	"rentdesk/internal/domains/lookup/service"
	"rentdesk/shared/constant"
	"rentdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Lookup
	otel    otel.Otel
}

func New(service service.Lookup, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/getEquipment_status_ids", handler.Statuses(model.KindEquipment))
	r.Get("/getCustomer_status_ids", handler.Statuses(model.KindCustomer))
	r.Get("/getRentals_status_ids", handler.Statuses(model.KindRental))
	r.Get("/getVehicle_status_ids", handler.Statuses(model.KindVehicle))
	r.Get("/getCompanies", handler.Companies)
}

// Statuses lists the status options of one entity, ordered by id.
// @Summary Status options
// @Tags Lookup
// @Produce json
// @Success 200 {array} dto.Option
// @Failure 500 {object} response.Error
// @Router /getEquipment_status_ids [get]
// @Router /getCustomer_status_ids [get]
// @Router /getRentals_status_ids [get]
// @Router /getVehicle_status_ids [get]
func (handler *Handler) Statuses(kind model.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Statuses")
		defer scope.End()

		scope.SetAttribute("lookup.kind", string(kind))

		options, err := handler.service.Statuses(ctx, kind)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("kind", string(kind)).Msg("failed to get statuses")

			response.WithError(w, err)

			return
		}

		response.WithBody(w, http.StatusOK, options)
	}
}

// Companies lists the companies a customer can belong to.
// @Summary Company options
// @Tags Lookup
// @Produce json
// @Success 200 {array} dto.Option
// @Failure 500 {object} response.Error
// @Router /getCompanies [get]
func (handler *Handler) Companies(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Companies")
	defer scope.End()

	options, err := handler.service.Companies(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get companies")

		response.WithError(w, err)

		return
	}

	response.WithBody(w, http.StatusOK, options)
}
