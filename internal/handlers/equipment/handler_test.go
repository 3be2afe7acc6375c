package equipment_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"rentdesk/infras/otel/mocks"
	"rentdesk/internal/domains/equipment/model/dto"
	"rentdesk/internal/handlers/equipment"
	"rentdesk/shared/failure"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	created   *dto.CreateEquipmentRequest
	updatedID int64
	payload   map[string]json.RawMessage
	err       error
}

func (s *stubService) Create(_ context.Context, req dto.CreateEquipmentRequest) (int64, error) {
	s.created = &req

	return 14, s.err
}

func (s *stubService) Update(_ context.Context, id int64, payload map[string]json.RawMessage) error {
	s.updatedID = id
	s.payload = payload

	return s.err
}

func (s *stubService) AvailableTypes(context.Context) ([]string, error) {
	return nil, s.err
}

func newRouter(svc *stubService) http.Handler {
	h := equipment.New(svc, mocks.NewOtel())
	r := chi.NewRouter()
	h.Router(r)

	return r
}

func TestHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &stubService{}
		rec := httptest.NewRecorder()

		newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/create_equipment",
			strings.NewReader(`{"EquipmentType":"Scissor Lift","Condition":"Good"}`)))

		require.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, svc.created)
		assert.Equal(t, "Scissor Lift", *svc.created.EquipmentType)
		assert.Nil(t, svc.created.StatusID)
		assert.JSONEq(t, `{"message":"Equipment created successfully","equipment_id":14}`, rec.Body.String())
	})

	t.Run("missing condition", func(t *testing.T) {
		svc := &stubService{}
		rec := httptest.NewRecorder()

		newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/create_equipment",
			strings.NewReader(`{"EquipmentType":"Scissor Lift"}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, svc.created)
	})

	t.Run("database failure is not leaked", func(t *testing.T) {
		svc := &stubService{err: assert.AnError}
		rec := httptest.NewRecorder()

		newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/create_equipment",
			strings.NewReader(`{"EquipmentType":"Scissor Lift","Condition":"Good"}`)))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
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
			path:     "/update_equipment/3",
			body:     `{"Condition":"Worn"}`,
			wantCode: http.StatusOK,
			wantBody: `{"message":"Equipment updated successfully"}`,
		},
		{
			name:     "non-integer id",
			path:     "/update_equipment/three",
			body:     `{"Condition":"Worn"}`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"invalid id parameter"}`,
		},
		{
			name:     "empty body",
			path:     "/update_equipment/3",
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"update request cannot be empty"}`,
		},
		{
			name:     "unknown equipment",
			path:     "/update_equipment/3",
			body:     `{"Condition":"Worn"}`,
			err:      failure.NotFound("equipment not found"),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"equipment not found"}`,
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
				assert.Equal(t, int64(3), svc.updatedID)
				assert.JSONEq(t, `"Worn"`, string(svc.payload["Condition"]))
			}
		})
	}
}
