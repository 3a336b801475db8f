package handlers

import (
	"net/http"
	"testing"

	"walletlink/internal/dto"
	"walletlink/internal/models"
	"walletlink/internal/services"
	"walletlink/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryHandler_Create(t *testing.T) {
	actor := memberActor()
	body := dto.CreateCategoryRequest{Name: "Groceries", Shared: true, IconID: uuid.New(), ColorID: uuid.New()}

	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantCode   string
	}{
		{name: "created", wantStatus: http.StatusCreated},
		{name: "unknown icon", serviceErr: services.ErrIconNotFound, wantStatus: http.StatusNotFound, wantCode: "CATALOG_001"},
		{name: "unknown color", serviceErr: services.ErrColorNotFound, wantStatus: http.StatusNotFound, wantCode: "CATALOG_002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := service_mocks.NewMockCategoryServiceInterface(ctrl)
			handler := NewCategoryHandler(service)

			var created *models.Category
			if tt.serviceErr == nil {
				created = &models.Category{ID: uuid.New(), Name: body.Name, Shared: true, UserID: actor.UserID}
			}
			service.EXPECT().CreateCategory(actor, gomock.Any()).Return(created, tt.serviceErr)

			c, rec := newRequestContext(newTestEcho(), http.MethodPost, "/categories", body, actor)

			require.NoError(t, handler.CreateCategory(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				resp := decodeError(t, rec)
				assert.Equal(t, tt.wantCode, resp.Error.Code)
				assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			}
		})
	}
}

func TestCategoryHandler_UpdateNotAccessible(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := service_mocks.NewMockCategoryServiceInterface(ctrl)
	handler := NewCategoryHandler(service)
	actor := memberActor()
	id := uuid.New()
	shared := false

	service.EXPECT().UpdateCategory(actor, id, gomock.Any()).Return(nil, services.ErrCategoryNotAccessible)

	c, rec := newRequestContext(newTestEcho(), http.MethodPost, "/categories/"+id.String(), dto.UpdateCategoryRequest{Shared: &shared}, actor)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, handler.UpdateCategory(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCategoryHandler_DeleteInUse(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := service_mocks.NewMockCategoryServiceInterface(ctrl)
	handler := NewCategoryHandler(service)
	actor := memberActor()
	id := uuid.New()

	service.EXPECT().DeleteCategory(actor, id).Return(services.ErrCategoryHasTransactions)

	c, rec := newRequestContext(newTestEcho(), http.MethodDelete, "/categories/"+id.String(), nil, actor)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, handler.DeleteCategory(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CATEGORY_003", decodeError(t, rec).Error.Code)
}

func TestCategoryHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := service_mocks.NewMockCategoryServiceInterface(ctrl)
	handler := NewCategoryHandler(service)
	actor := memberActor()

	service.EXPECT().ListCategories(actor).Return([]models.Category{{ID: uuid.New(), Name: "Rent"}}, nil)

	c, rec := newRequestContext(newTestEcho(), http.MethodGet, "/categories", nil, actor)

	require.NoError(t, handler.ListCategories(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var data []models.Category
	decodeSuccess(t, rec, &data)
	require.Len(t, data, 1)
	assert.Equal(t, "Rent", data[0].Name)
}
