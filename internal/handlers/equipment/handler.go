package equipment

import (
	"net/http"
	"rentdesk/infras/otel"
	"rentdesk/internal/domains/equipment/model/dto"
	"rentdesk/internal/domains/equipment/service"
	"rentdesk/shared"
	"rentdesk/shared/constant"
	"rentdesk/shared/patch"
	"rentdesk/shared/validator"
	"rentdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	MessageEquipmentCreated = "Equipment created successfully"
	MessageEquipmentUpdated = "Equipment updated successfully"
)

type Handler struct {
	service service.Equipment
	otel    otel.Otel
}

func New(service service.Equipment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Post("/create_equipment", handler.Create)
	r.Put("/update_equipment/{id}", handler.Update)
}

// Create handles equipment creation
// @Summary Create an equipment item
// @Description Adds an equipment item to the pool. The status defaults to available.
// @Tags Equipment
// @Accept json
// @Produce json
// @Param request body dto.CreateEquipmentRequest true "Create Equipment Request"
// @Success 201 {object} response.Message "Equipment created successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /create_equipment [post]
// @Security BearerAuth
func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEquipment")
	defer scope.End()

	req := dto.CreateEquipmentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create equipment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent(MessageEquipmentCreated)

	response.WithMessageData(w, http.StatusCreated, MessageEquipmentCreated, map[string]any{"equipment_id": id})
}

// Update handles partial equipment updates
// @Summary Update an equipment item
// @Description Writes only the fields present in the payload. Unknown fields are rejected.
// @Tags Equipment
// @Accept json
// @Produce json
// @Param id path int true "Equipment ID"
// @Param request body object true "Fields to update"
// @Success 200 {object} response.Message "Equipment updated successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /update_equipment/{id} [put]
// @Security BearerAuth
func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEquipment")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	payload, err := patch.Decode(r.Body)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("equipment_id", id).Msg("failed to decode update payload")

		response.WithError(w, err)

		return
	}

	if err = handler.service.Update(ctx, id, payload); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("equipment_id", id).Msg("failed to update equipment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent(MessageEquipmentUpdated)

	response.WithMessage(w, http.StatusOK, MessageEquipmentUpdated)
}
