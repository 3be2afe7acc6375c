package page

import (
	"net/http"
	"rentdesk/infras/otel"
	equipmentService "rentdesk/internal/domains/equipment/service"
	"rentdesk/internal/domains/listing/service"
	"rentdesk/shared"
	"rentdesk/shared/constant"
	gDto "rentdesk/shared/dto"
	"rentdesk/shared/session"
	"rentdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	listing   service.Listing
	equipment equipmentService.Equipment
	otel      otel.Otel
}

func New(listing service.Listing, equipment equipmentService.Equipment, otel otel.Otel) Handler {
	return Handler{
		listing:   listing,
		equipment: equipment,
		otel:      otel,
	}
}

type Index struct {
	AgentID   int64  `json:"AgentID"`
	AgentName string `json:"AgentName"`
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/", handler.Index)
	r.Get(constant.RouteDisplay, handler.Display)
	r.Get("/modals", handler.Modals)
	r.Get("/printedPage/{customer_id}", handler.PrintedPage)
	r.Get("/availableEquipment", handler.AvailableEquipment)
}

// Index returns the signed-in agent.
// @Summary Landing page
// @Tags Pages
// @Produce json
// @Success 200 {object} response.Data[Index]
// @Success 302 "Redirect to /login without a session"
// @Router / [get]
func (handler *Handler) Index(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	response.WithJSON(w, http.StatusOK, Index{AgentID: sess.AgentID, AgentName: sess.AgentName})
}

// Display lists active rentals with their customer and equipment.
// @Summary Active rentals
// @Description Customers joined with their rentals and equipment, limited to active customers, active rentals and rented equipment, newest first.
// @Tags Pages
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Data[[]model.DisplayRow]
// @Success 302 "Redirect to /login without a session"
// @Failure 500 {object} response.Error
// @Router /display [get]
func (handler *Handler) Display(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Display")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	rows, err := handler.listing.Display(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get display rows")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rows)
}

// Modals returns the four editing listings.
// @Summary Editing listings
// @Description Customers, equipment, rentals and vehicles with their status names, each newest first.
// @Tags Pages
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Data[dto.Modals]
// @Success 302 "Redirect to /login without a session"
// @Failure 500 {object} response.Error
// @Router /modals [get]
func (handler *Handler) Modals(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Modals")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	modals, err := handler.listing.Modals(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get modal listings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, modals)
}

// PrintedPage returns one customer for printing.
// @Summary Printable customer record
// @Tags Pages
// @Produce json
// @Param customer_id path int true "Customer ID"
// @Success 200 {object} response.Data[model.PrintedPage]
// @Success 302 "Redirect to /login without a session"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /printedPage/{customer_id} [get]
func (handler *Handler) PrintedPage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PrintedPage")
	defer scope.End()

	customerID, err := shared.ParseID(chi.URLParam(r, constant.RequestParamCustomerID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	page, err := handler.listing.PrintedPage(ctx, customerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("customer_id", customerID).Msg("failed to get printed page")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, page)
}

// AvailableEquipment lists the equipment types that can be rented now.
// @Summary Available equipment types
// @Tags Pages
// @Produce json
// @Success 200 {object} response.Data[[]string]
// @Failure 401 {object} response.Error
// @Router /availableEquipment [get]
// @Security BearerAuth
func (handler *Handler) AvailableEquipment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AvailableEquipment")
	defer scope.End()

	types, err := handler.equipment.AvailableTypes(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available equipment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, types)
}
