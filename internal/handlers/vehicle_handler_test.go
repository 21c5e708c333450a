package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/maynagashev/motormate/internal/middleware"
	"github.com/maynagashev/motormate/internal/models"
	"github.com/maynagashev/motormate/internal/services"
)

// MockVehicleService - мок для services.VehicleService.
type MockVehicleService struct {
	mock.Mock
}

func (m *MockVehicleService) Create(ctx context.Context, userID int64, req *models.CreateVehicleRequest) (*models.Vehicle, error) {
	args := m.Called(ctx, userID, req)
	vehicle, _ := args.Get(0).(*models.Vehicle)
	return vehicle, args.Error(1)
}

func (m *MockVehicleService) List(ctx context.Context, userID int64) ([]models.Vehicle, error) {
	args := m.Called(ctx, userID)
	vehicles, _ := args.Get(0).([]models.Vehicle)
	return vehicles, args.Error(1)
}

func (m *MockVehicleService) Get(ctx context.Context, userID, vehicleID int64) (*models.Vehicle, error) {
	args := m.Called(ctx, userID, vehicleID)
	vehicle, _ := args.Get(0).(*models.Vehicle)
	return vehicle, args.Error(1)
}

func (m *MockVehicleService) Update(ctx context.Context, userID, vehicleID int64, req *models.UpdateVehicleRequest) (*models.Vehicle, error) {
	args := m.Called(ctx, userID, vehicleID, req)
	vehicle, _ := args.Get(0).(*models.Vehicle)
	return vehicle, args.Error(1)
}

func (m *MockVehicleService) Delete(ctx context.Context, userID, vehicleID int64) error {
	args := m.Called(ctx, userID, vehicleID)
	return args.Error(0)
}

// newAuthedRequest создает запрос с userID в контексте и параметром {id} роутера chi.
func newAuthedRequest(t *testing.T, method, target string, userID int64, idParam string, body io.Reader) *http.Request {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	if idParam != "" {
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add("id", idParam)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, routeCtx)
	}
	return req.WithContext(ctx)
}

func TestVehicleHandler_Create(t *testing.T) {
	userID := int64(1)

	t.Run("Успешное создание", func(t *testing.T) {
		mockService := new(MockVehicleService)
		handler := NewVehicleHandler(mockService)

		created := &models.Vehicle{ID: 10, UserID: userID, Name: "Рабочая машина"}
		mockService.On("Create", mock.Anything, userID, mock.AnythingOfType("*models.CreateVehicleRequest")).
			Return(created, nil).Once()

		body := `{"name":"Рабочая машина","make":"Toyota","model":"Corolla","year":2020,"vin":"VIN123","registration_no":"А123БВ77"}`
		req := newAuthedRequest(t, http.MethodPost, "/api/vehicles", userID, "", strings.NewReader(body))
		rr := httptest.NewRecorder()

		handler.Create(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var resp models.Vehicle
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, int64(10), resp.ID)
		mockService.AssertExpectations(t)
	})

	t.Run("Ошибка валидации", func(t *testing.T) {
		mockService := new(MockVehicleService)
		handler := NewVehicleHandler(mockService)

		mockService.On("Create", mock.Anything, userID, mock.AnythingOfType("*models.CreateVehicleRequest")).
			Return(nil, services.NewValidationError("name", "название обязательно")).Once()

		req := newAuthedRequest(t, http.MethodPost, "/api/vehicles", userID, "", strings.NewReader(`{}`))
		rr := httptest.NewRecorder()

		handler.Create(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Невалидный JSON", func(t *testing.T) {
		mockService := new(MockVehicleService)
		handler := NewVehicleHandler(mockService)

		req := newAuthedRequest(t, http.MethodPost, "/api/vehicles", userID, "", strings.NewReader(`{не json`))
		rr := httptest.NewRecorder()

		handler.Create(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Нет userID в контексте", func(t *testing.T) {
		mockService := new(MockVehicleService)
		handler := NewVehicleHandler(mockService)

		req := httptest.NewRequest(http.MethodPost, "/api/vehicles", strings.NewReader(`{}`))
		rr := httptest.NewRecorder()

		handler.Create(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestVehicleHandler_List(t *testing.T) {
	userID := int64(1)

	t.Run("Список ТС", func(t *testing.T) {
		mockService := new(MockVehicleService)
		handler := NewVehicleHandler(mockService)

		vehicles := []models.Vehicle{{ID: 1, UserID: userID}, {ID: 2, UserID: userID}}
		mockService.On("List", mock.Anything, userID).Return(vehicles, nil).Once()

		req := newAuthedRequest(t, http.MethodGet, "/api/vehicles", userID, "", nil)
		rr := httptest.NewRecorder()

		handler.List(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []models.Vehicle
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
		mockService.AssertExpectations(t)
	})

	t.Run("Пустой список сериализуется как массив", func(t *testing.T) {
		mockService := new(MockVehicleService)
		handler := NewVehicleHandler(mockService)

		mockService.On("List", mock.Anything, userID).Return([]models.Vehicle{}, nil).Once()

		req := newAuthedRequest(t, http.MethodGet, "/api/vehicles", userID, "", nil)
		rr := httptest.NewRecorder()

		handler.List(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})
}

func TestVehicleHandler_Get(t *testing.T) {
	userID := int64(1)
	vehicleID := int64(10)

	tests := []struct {
		name           string
		idParam        string
		serviceErr     error
		expectedStatus int
	}{
		{"Успешное получение", "10", nil, http.StatusOK},
		{"Чужое ТС", "10", services.ErrNotOwned, http.StatusUnauthorized},
		{"ТС не найдено", "10", services.ErrVehicleNotFound, http.StatusNotFound},
		{"Внутренняя ошибка", "10", errors.New("db error"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockVehicleService)
			handler := NewVehicleHandler(mockService)

			if tt.serviceErr == nil {
				mockService.On("Get", mock.Anything, userID, vehicleID).
					Return(&models.Vehicle{ID: vehicleID, UserID: userID}, nil).Once()
			} else {
				mockService.On("Get", mock.Anything, userID, vehicleID).
					Return(nil, tt.serviceErr).Once()
			}

			req := newAuthedRequest(t, http.MethodGet, "/api/vehicles/"+tt.idParam, userID, tt.idParam, nil)
			rr := httptest.NewRecorder()

			handler.Get(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			mockService.AssertExpectations(t)
		})
	}

	t.Run("Некорректный идентификатор", func(t *testing.T) {
		mockService := new(MockVehicleService)
		handler := NewVehicleHandler(mockService)

		req := newAuthedRequest(t, http.MethodGet, "/api/vehicles/abc", userID, "abc", nil)
		rr := httptest.NewRecorder()

		handler.Get(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockService.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestVehicleHandler_Update(t *testing.T) {
	userID := int64(1)
	vehicleID := int64(10)

	t.Run("Успешное обновление", func(t *testing.T) {
		mockService := new(MockVehicleService)
		handler := NewVehicleHandler(mockService)

		updated := &models.Vehicle{ID: vehicleID, UserID: userID, Name: "Новое название"}
		mockService.On("Update", mock.Anything, userID, vehicleID, mock.AnythingOfType("*models.UpdateVehicleRequest")).
			Return(updated, nil).Once()

		req := newAuthedRequest(t, http.MethodPut, "/api/vehicles/10", userID, "10",
			strings.NewReader(`{"name":"Новое название"}`))
		rr := httptest.NewRecorder()

		handler.Update(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp models.Vehicle
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Новое название", resp.Name)
		mockService.AssertExpectations(t)
	})

	t.Run("Чужое ТС", func(t *testing.T) {
		mockService := new(MockVehicleService)
		handler := NewVehicleHandler(mockService)

		mockService.On("Update", mock.Anything, userID, vehicleID, mock.AnythingOfType("*models.UpdateVehicleRequest")).
			Return(nil, services.ErrNotOwned).Once()

		req := newAuthedRequest(t, http.MethodPut, "/api/vehicles/10", userID, "10",
			strings.NewReader(`{"name":"Не мое"}`))
		rr := httptest.NewRecorder()

		handler.Update(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestVehicleHandler_Delete(t *testing.T) {
	userID := int64(1)
	vehicleID := int64(10)

	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{"Успешное удаление", nil, http.StatusNoContent},
		{"Чужое ТС", services.ErrNotOwned, http.StatusUnauthorized},
		{"ТС не найдено", services.ErrVehicleNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockVehicleService)
			handler := NewVehicleHandler(mockService)

			mockService.On("Delete", mock.Anything, userID, vehicleID).Return(tt.serviceErr).Once()

			req := newAuthedRequest(t, http.MethodDelete, "/api/vehicles/10", userID, "10", nil)
			rr := httptest.NewRecorder()

			handler.Delete(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			mockService.AssertExpectations(t)
		})
	}
}
