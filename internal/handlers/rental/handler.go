package rental

import (
	"net/http"
	"rentdesk/infras/otel"
	"rentdesk/internal/domains/rental/model/dto"
	"rentdesk/internal/domains/rental/service"
	"rentdesk/shared"
	"rentdesk/shared/constant"
	"rentdesk/shared/patch"
	"rentdesk/shared/validator"
	"rentdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	MessageRentalCreated = "Rental created successfully"
	MessageRentalUpdated = "Rental updated successfully"
)

type Handler struct {
	service service.Rental
	otel    otel.Otel
}

func New(service service.Rental, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Post("/create_rental", handler.Create)
	r.Put("/update_rentals/{id}", handler.Update)
}

// Create handles rental creation
// @Summary Create a rental
// @Description Records a rental for an existing customer and equipment item. The agent is taken from the session.
// @Tags Rentals
// @Accept json
// @Produce json
// @Param request body dto.CreateRentalRequest true "Create Rental Request"
// @Success 201 {object} response.Message "Rental created successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /create_rental [post]
// @Security BearerAuth
func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRental")
	defer scope.End()

	req := dto.CreateRentalRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create rental")

		response.WithError(w, err)

		return
	}

	scope.AddEvent(MessageRentalCreated)

	response.WithMessageData(w, http.StatusCreated, MessageRentalCreated, map[string]any{"rental_id": id})
}

// Update handles partial rental updates
// @Summary Update a rental
// @Description Writes only the fields present in the payload. Unknown fields are rejected.
// @Tags Rentals
// @Accept json
// @Produce json
// @Param id path int true "Rental ID"
// @Param request body object true "Fields to update"
// @Success 200 {object} response.Message "Rental updated successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /update_rentals/{id} [put]
// @Security BearerAuth
func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRental")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	payload, err := patch.Decode(r.Body)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("rental_id", id).Msg("failed to decode update payload")

		response.WithError(w, err)

		return
	}

	if err = handler.service.Update(ctx, id, payload); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("rental_id", id).Msg("failed to update rental")

		response.WithError(w, err)

		return
	}

	scope.AddEvent(MessageRentalUpdated)

	response.WithMessage(w, http.StatusOK, MessageRentalUpdated)
}
