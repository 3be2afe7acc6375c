package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"rentdesk/config"
	"rentdesk/infras/otel/mocks"
	lookupMocks "rentdesk/internal/domains/lookup/mocks"
	"rentdesk/internal/domains/lookup/model"
	"rentdesk/internal/domains/lookup/model/dto"
	"rentdesk/internal/domains/lookup/service"
	"rentdesk/shared/cache"
	cacheMocks "rentdesk/shared/cache/mocks"
	"rentdesk/shared/failure"
)

func TestLookupService_Statuses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := lookupMocks.NewMockLookup(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	tests := []struct {
		name      string
		kind      model.Kind
		setupMock func()
		want      []dto.Option
		wantCode  int
	}{
		{
			name: "cache miss loads table",
			kind: model.KindEquipment,
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), "rentdesk:lookup:equipment", gomock.Any()).Return(cache.Nil)
				mockRepo.EXPECT().Statuses(gomock.Any(), model.KindEquipment).Return([]model.Status{
					{ID: 1, Name: "Rented"},
					{ID: 2, Name: "Available"},
				}, nil)
				mockCache.EXPECT().Save(gomock.Any(), "rentdesk:lookup:equipment", gomock.Any(), 3600).Return(nil)
			},
			want: []dto.Option{{ID: 1, Name: "Rented"}, {ID: 2, Name: "Available"}},
		},
		{
			name: "cache hit",
			kind: model.KindCustomer,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "rentdesk:lookup:customer", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*(value.(*[]dto.Option)) = []dto.Option{{ID: 1, Name: "Active"}}

						return nil
					})
			},
			want: []dto.Option{{ID: 1, Name: "Active"}},
		},
		{
			name:      "unknown kind",
			kind:      model.Kind("spaceship"),
			setupMock: func() {},
			wantCode:  http.StatusNotFound,
		},
		{
			name: "repository error",
			kind: model.KindRental,
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
				mockRepo.EXPECT().Statuses(gomock.Any(), model.KindRental).Return(nil, errors.New("boom"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			got, err := svc.Statuses(context.Background(), tt.kind)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookupService_Companies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := lookupMocks.NewMockLookup(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())

	mockCache.EXPECT().Get(gomock.Any(), "rentdesk:lookup:company", gomock.Any()).Return(errors.New("redis down"))
	mockRepo.EXPECT().Companies(gomock.Any()).Return([]model.Company{{ID: 3, Name: "Acme Hauling"}}, nil)
	mockCache.EXPECT().Save(gomock.Any(), "rentdesk:lookup:company", []dto.Option{{ID: 3, Name: "Acme Hauling"}}, 0).
		Return(errors.New("redis down"))

	got, err := svc.Companies(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []dto.Option{{ID: 3, Name: "Acme Hauling"}}, got)
}
