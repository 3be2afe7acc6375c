package rental_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"rentdesk/infras/otel/mocks"
	"rentdesk/internal/domains/rental/model/dto"
	"rentdesk/internal/handlers/rental"
	"rentdesk/shared/failure"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validRental = `{"CustomerID":3,"EquipmentID":4,"RentalDate":"2024-05-01","ReturnDate":"2024-05-08","ReturnTime":"17:30"}`

type stubService struct {
	created   *dto.CreateRentalRequest
	updatedID int64
	payload   map[string]json.RawMessage
	err       error
}

func (s *stubService) Create(_ context.Context, req dto.CreateRentalRequest) (int64, error) {
	s.created = &req

	return 21, s.err
}

func (s *stubService) Update(_ context.Context, id int64, payload map[string]json.RawMessage) error {
	s.updatedID = id
	s.payload = payload

	return s.err
}

func newRouter(svc *stubService) http.Handler {
	h := rental.New(svc, mocks.NewOtel())
	r := chi.NewRouter()
	h.Router(r)

	return r
}

func TestHandler_Create(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "success",
			body:     validRental,
			wantCode: http.StatusCreated,
			wantBody: `{"message":"Rental created successfully","rental_id":21}`,
		},
		{
			name:     "missing fields are listed",
			body:     `{"CustomerID":3,"RentalDate":"2024-05-01","ReturnDate":"2024-05-08"}`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"missing required fields","details":"EquipmentID, ReturnTime"}`,
		},
		{
			name:     "unknown customer",
			body:     validRental,
			err:      failure.NotFound("customer not found"),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"customer not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{err: tt.err}
			rec := httptest.NewRecorder()

			newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/create_rental", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}

	t.Run("request reaches the service", func(t *testing.T) {
		svc := &stubService{}

		newRouter(svc).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/create_rental", strings.NewReader(validRental)))

		require.NotNil(t, svc.created)
		assert.Equal(t, int64(3), *svc.created.CustomerID)
		assert.Equal(t, "2024-05-08", svc.created.ReturnDate.String())
		assert.Nil(t, svc.created.InternalNote)
	})
}

func TestHandler_Update(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		body     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "success",
			path:     "/update_rentals/9",
			body:     `{"InternalNote":null}`,
			wantCode: http.StatusOK,
			wantBody: `{"message":"Rental updated successfully"}`,
		},
		{
			name:     "non-integer id",
			path:     "/update_rentals/9a",
			body:     `{"InternalNote":null}`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"invalid id parameter"}`,
		},
		{
			name:     "unknown rental",
			path:     "/update_rentals/9",
			body:     `{"StatusID":2}`,
			err:      failure.NotFound("rental not found"),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"rental not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{err: tt.err}
			rec := httptest.NewRecorder()

			newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPut, tt.path, strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())

			if tt.name == "success" {
				assert.Equal(t, int64(9), svc.updatedID)
				assert.Equal(t, "null", string(svc.payload["InternalNote"]))
			}
		})
	}
}
