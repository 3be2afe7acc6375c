package page_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"rentdesk/infras/otel/mocks"
	"rentdesk/internal/domains/equipment/model/dto"
	"rentdesk/internal/domains/listing/model"
	listingDto "rentdesk/internal/domains/listing/model/dto"
	"rentdesk/internal/handlers/page"
	gDto "rentdesk/shared/dto"
	"rentdesk/shared/failure"
	"rentdesk/shared/session"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubListing struct {
	params     gDto.QueryParams
	customerID int64
	err        error
}

func (s *stubListing) Display(_ context.Context, params gDto.QueryParams) ([]model.DisplayRow, error) {
	s.params = params

	return []model.DisplayRow{{CustomerID: 3, RentalID: 4, FirstName: "Ana"}}, s.err
}

func (s *stubListing) Modals(_ context.Context, params gDto.QueryParams) (listingDto.Modals, error) {
	s.params = params

	return listingDto.Modals{Customers: []model.CustomerRow{{CustomerID: 3}}}, s.err
}

func (s *stubListing) PrintedPage(_ context.Context, customerID int64) (model.PrintedPage, error) {
	s.customerID = customerID

	return model.PrintedPage{CustomerRow: model.CustomerRow{CustomerID: customerID}}, s.err
}

type stubEquipment struct {
	types []string
}

func (s *stubEquipment) Create(context.Context, dto.CreateEquipmentRequest) (int64, error) {
	return 0, nil
}

func (s *stubEquipment) Update(context.Context, int64, map[string]json.RawMessage) error {
	return nil
}

func (s *stubEquipment) AvailableTypes(context.Context) ([]string, error) {
	return s.types, nil
}

func newRouter(listing *stubListing, equipment *stubEquipment) http.Handler {
	h := page.New(listing, equipment, mocks.NewOtel())
	r := chi.NewRouter()
	h.Router(r)

	return r
}

func TestHandler_Display(t *testing.T) {
	listing := &stubListing{}
	rec := httptest.NewRecorder()

	newRouter(listing, &stubEquipment{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/display?page=2&limit=5", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, listing.params.Page)
	assert.Equal(t, 5, listing.params.Limit)

	var body struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.EqualValues(t, 4, body.Data[0]["RentalID"])
}

func TestHandler_Modals_Error(t *testing.T) {
	listing := &stubListing{err: failure.InternalError(assert.AnError)}
	tracer := mocks.NewOtel()
	h := page.New(listing, &stubEquipment{}, tracer)
	r := chi.NewRouter()
	h.Router(r)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/modals", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
	assert.Equal(t, []string{"handler.Modals"}, tracer.Spans())
	assert.Len(t, tracer.Errors(), 1)
}

func TestHandler_PrintedPage(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		err      error
		wantCode int
	}{
		{name: "found", path: "/printedPage/12", wantCode: http.StatusOK},
		{name: "non-integer id", path: "/printedPage/abc", wantCode: http.StatusBadRequest},
		{name: "unknown customer", path: "/printedPage/99", err: failure.NotFound("customer not found"), wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listing := &stubListing{err: tt.err}
			rec := httptest.NewRecorder()

			newRouter(listing, &stubEquipment{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_IndexAndAvailableEquipment(t *testing.T) {
	router := newRouter(&stubListing{}, &stubEquipment{types: []string{"Camera", "Tracker"}})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(session.WithSession(req.Context(), session.Session{AgentID: 1, AgentName: "admin"}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"AgentID":1,"AgentName":"admin"}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/availableEquipment", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":["Camera","Tracker"]}`, rec.Body.String())
}
