package customer

import (
	"net/http"
	"rentdesk/infras/otel"
	"rentdesk/internal/domains/customer/model/dto"
	"rentdesk/internal/domains/customer/service"
	"rentdesk/shared"
	"rentdesk/shared/constant"
	"rentdesk/shared/patch"
	"rentdesk/shared/validator"
	"rentdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const MessageCustomerUpdated = "Customer updated successfully"

type Handler struct {
	service service.Customer
	otel    otel.Otel
}

func New(service service.Customer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Post("/create_customer", handler.Create)
	r.Put("/update_customer/{id}", handler.Update)
	r.Post("/changeStatus", handler.ChangeStatus)
}

// Create handles customer intake
// @Summary Create a customer with their first rental
// @Description Reserves the lowest-id available equipment item of the requested type, creates the customer and links them with a new active rental, all in one transaction.
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body dto.CreateCustomerRequest true "Create Customer Request"
// @Success 200 {object} dto.CreateCustomerResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error "No equipment of that type is available"
// @Failure 500 {object} response.Error
// @Router /create_customer [post]
// @Security BearerAuth
func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCustomer")
	defer scope.End()

	req := dto.CreateCustomerRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create customer")

		response.WithError(w, err)

		return
	}

	scope.AddEvent(dto.MessageCustomerCreated)

	response.WithBody(w, http.StatusOK, res)
}

// Update handles partial customer updates
// @Summary Update a customer
// @Description Writes only the fields present in the payload. Status changes go through /changeStatus.
// @Tags Customers
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Param request body object true "Fields to update"
// @Success 200 {object} response.Message "Customer updated successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /update_customer/{id} [put]
// @Security BearerAuth
func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCustomer")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	payload, err := patch.Decode(r.Body)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("customer_id", id).Msg("failed to decode update payload")

		response.WithError(w, err)

		return
	}

	if err = handler.service.Update(ctx, id, payload); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("customer_id", id).Msg("failed to update customer")

		response.WithError(w, err)

		return
	}

	scope.AddEvent(MessageCustomerUpdated)

	response.WithMessage(w, http.StatusOK, MessageCustomerUpdated)
}

// ChangeStatus handles the customer status form
// @Summary Change a customer's status
// @Description Sets the customer Active or Inactive. Deactivating returns the equipment on the customer's active rentals to the available pool.
// @Tags Customers
// @Accept x-www-form-urlencoded
// @Produce json
// @Param customer_id formData int true "Customer ID"
// @Param status formData string true "Active or Inactive"
// @Success 200 {object} dto.ChangeStatusResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /changeStatus [post]
// @Security BearerAuth
func (handler *Handler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangeStatus")
	defer scope.End()

	id, err := shared.ParseID(r.PostFormValue(constant.RequestParamCustomerID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	status := r.PostFormValue(constant.RequestParamStatus)
	scope.SetAttribute("customer.status", status)

	res, err := handler.service.ChangeStatus(ctx, id, status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("customer_id", id).Str("status", status).Msg("failed to change customer status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent(dto.MessageStatusChanged)

	response.WithBody(w, http.StatusOK, res)
}
