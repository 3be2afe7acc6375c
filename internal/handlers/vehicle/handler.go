package vehicle

import (
	"net/http"
	"rentdesk/infras/otel"
	"rentdesk/internal/domains/vehicle/model/dto"
	"rentdesk/internal/domains/vehicle/service"
	"rentdesk/shared"
	"rentdesk/shared/constant"
	"rentdesk/shared/patch"
	"rentdesk/shared/validator"
	"rentdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	MessageVehicleCreated = "Vehicle created successfully"
	MessageVehicleUpdated = "Vehicle updated successfully"
)

type Handler struct {
	service service.Vehicle
	otel    otel.Otel
}

func New(service service.Vehicle, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Post("/create_vehicle", handler.Create)
	r.Put("/update_vehicles/{id}", handler.Update)
}

// Create handles vehicle creation
// @Summary Create a vehicle
// @Description Registers a customer's vehicle. The status defaults to active.
// @Tags Vehicles
// @Accept json
// @Produce json
// @Param request body dto.CreateVehicleRequest true "Create Vehicle Request"
// @Success 201 {object} response.Message "Vehicle created successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /create_vehicle [post]
// @Security BearerAuth
func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateVehicle")
	defer scope.End()

	req := dto.CreateVehicleRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create vehicle")

		response.WithError(w, err)

		return
	}

	scope.AddEvent(MessageVehicleCreated)

	response.WithMessageData(w, http.StatusCreated, MessageVehicleCreated, map[string]any{"vehicle_id": id})
}

// Update handles partial vehicle updates
// @Summary Update a vehicle
// @Description Writes only the fields present in the payload. Unknown fields are rejected.
// @Tags Vehicles
// @Accept json
// @Produce json
// @Param id path int true "Vehicle ID"
// @Param request body object true "Fields to update"
// @Success 200 {object} response.Message "Vehicle updated successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /update_vehicles/{id} [put]
// @Security BearerAuth
func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateVehicle")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	payload, err := patch.Decode(r.Body)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("vehicle_id", id).Msg("failed to decode update payload")

		response.WithError(w, err)

		return
	}

	if err = handler.service.Update(ctx, id, payload); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("vehicle_id", id).Msg("failed to update vehicle")

		response.WithError(w, err)

		return
	}

	scope.AddEvent(MessageVehicleUpdated)

	response.WithMessage(w, http.StatusOK, MessageVehicleUpdated)
}
