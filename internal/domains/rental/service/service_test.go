package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"rentdesk/infras/otel/mocks"
	rentalMocks "rentdesk/internal/domains/rental/mocks"
	"rentdesk/internal/domains/rental/model"
	"rentdesk/internal/domains/rental/model/dto"
	"rentdesk/internal/domains/rental/service"
	"rentdesk/shared"
	cacheMocks "rentdesk/shared/cache/mocks"
	"rentdesk/shared/constant"
	"rentdesk/shared/failure"
	gModel "rentdesk/shared/model"
	"rentdesk/shared/session"
)

func agentContext() context.Context {
	return session.WithSession(context.Background(), session.Session{AgentID: 7, AgentName: "lee", StatusID: constant.AgentStatusActive})
}

func validRequest(t *testing.T) dto.CreateRentalRequest {
	t.Helper()

	var req dto.CreateRentalRequest

	body := `{"CustomerID":3,"EquipmentID":4,"RentalDate":"2024-05-01","ReturnDate":"2024-05-08","ReturnTime":"17:30"}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	return req
}

func expectInvalidation(redis *cacheMocks.MockRedisCache) {
	gomock.InOrder(
		redis.EXPECT().Incr(gomock.Any(), "rentdesk:generation:listing", shared.CacheGenerationWindow).Return(int64(1), nil),
		redis.EXPECT().Clear(gomock.Any(), "rentdesk:listing:*").Return(nil),
	)
}

func TestRentalService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := rentalMocks.NewMockRental(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, mockCache, mocks.NewOtel())

	t.Run("agent comes from the session", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rental model.Rental) (int64, error) {
				assert.Equal(t, int64(7), rental.AgentID)
				assert.Equal(t, int64(7), *rental.UpdatedByAgentID)
				assert.Equal(t, constant.RentalStatusActive, rental.StatusID)
				assert.Equal(t, "2024-05-08", rental.ReturnDate.String())
				assert.Equal(t, gModel.Clock{Hour: 17, Minute: 30}, rental.ReturnTime)
				assert.Nil(t, rental.InternalNote)

				return 21, nil
			})
		expectInvalidation(mockCache)

		id, err := svc.Create(agentContext(), validRequest(t))

		require.NoError(t, err)
		assert.Equal(t, int64(21), id)
	})

	t.Run("missing fields are listed", func(t *testing.T) {
		req := validRequest(t)
		req.EquipmentID = nil
		req.ReturnTime = nil

		_, err := svc.Create(agentContext(), req)

		f, ok := failure.As(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, f.Code)
		assert.Equal(t, "EquipmentID, ReturnTime", f.Details)
	})

	t.Run("unknown customer", func(t *testing.T) {
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(0), &pq.Error{Code: "23503"})

		_, err := svc.Create(agentContext(), validRequest(t))

		f, ok := failure.As(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, f.Code)
		assert.Equal(t, failure.DetailForeignKeyViolation, f.Details)
	})

	t.Run("database down", func(t *testing.T) {
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("boom"))

		_, err := svc.Create(agentContext(), validRequest(t))

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
		assert.Equal(t, "internal server error", err.Error())
	})
}

func TestRentalService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := rentalMocks.NewMockRental(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, mockCache, mocks.NewOtel())

	payload := func(body string) map[string]json.RawMessage {
		out := map[string]json.RawMessage{}
		require.NoError(t, json.Unmarshal([]byte(body), &out))

		return out
	}

	tests := []struct {
		name      string
		body      string
		setupMock func()
		wantCode  int
		details   string
	}{
		{
			name: "clears the internal note",
			body: `{"InternalNote":null,"ReturnDate":"2024-06-01"}`,
			setupMock: func() {
				date, _ := gModel.ParseDate("2024-06-01")

				mockRepo.EXPECT().
					Update(gomock.Any(), map[string]any{
						model.FieldInternalNote:        nil,
						model.FieldReturnDate:          date,
						constant.FieldUpdatedByAgentID: int64(7),
					}, gomock.Any()).
					Return(int64(1), nil)
				expectInvalidation(mockCache)
			},
		},
		{
			name:      "malformed date",
			body:      `{"RentalDate":"05/01/2024"}`,
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
			details:   "RentalDate: " + gModel.ErrInvalidDate.Error(),
		},
		{
			name:      "unknown keys",
			body:      `{"AgentID":1,"Colour":"red"}`,
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
			details:   "AgentID, Colour",
		},
		{
			name: "unknown rental",
			body: `{"StatusID":2}`,
			setupMock: func() {
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(agentContext(), 9, payload(tt.body))

			if tt.wantCode == 0 {
				require.NoError(t, err)

				return
			}

			f, ok := failure.As(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, f.Code)

			if tt.details != "" {
				assert.Equal(t, tt.details, f.Details)
			}
		})
	}
}
