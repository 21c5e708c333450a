package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/maynagashev/motormate/internal/mocks"
	"github.com/maynagashev/motormate/internal/models"
	"github.com/maynagashev/motormate/internal/repository"
)

func validCreateVehicleRequest() *models.CreateVehicleRequest {
	return &models.CreateVehicleRequest{
		Name:           "Рабочая машина",
		Make:           "Toyota",
		Model:          "Corolla",
		Year:           2020,
		VIN:            "JTDBU4EE9A9123456",
		RegistrationNo: "А123БВ77",
	}
}

func TestVehicleService_Create(t *testing.T) {
	ctx := context.Background()
	userID := int64(1)

	t.Run("Успешное создание с типом топлива по умолчанию", func(t *testing.T) {
		mockRepo := mocks.NewVehicleRepository(t)
		service := NewVehicleService(mockRepo)

		vehicleID := int64(10)
		created := &models.Vehicle{ID: vehicleID, UserID: userID, Name: "Рабочая машина", FuelType: "petrol", IsActive: true}

		mockRepo.EXPECT().
			CreateVehicle(ctx, mock.AnythingOfType("*models.Vehicle")).
			Run(func(_ context.Context, vehicle *models.Vehicle) {
				assert.Equal(t, userID, vehicle.UserID)
				assert.Equal(t, "petrol", vehicle.FuelType)
				assert.True(t, vehicle.IsActive)
			}).
			Return(vehicleID, nil).Once()
		mockRepo.EXPECT().GetVehicleByID(ctx, vehicleID).Return(created, nil).Once()

		result, err := service.Create(ctx, userID, validCreateVehicleRequest())

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, vehicleID, result.ID)
	})

	t.Run("Явно заданный тип топлива сохраняется", func(t *testing.T) {
		mockRepo := mocks.NewVehicleRepository(t)
		service := NewVehicleService(mockRepo)

		req := validCreateVehicleRequest()
		req.FuelType = "diesel"
		vehicleID := int64(11)

		mockRepo.EXPECT().
			CreateVehicle(ctx, mock.AnythingOfType("*models.Vehicle")).
			Run(func(_ context.Context, vehicle *models.Vehicle) {
				assert.Equal(t, "diesel", vehicle.FuelType)
			}).
			Return(vehicleID, nil).Once()
		mockRepo.EXPECT().GetVehicleByID(ctx, vehicleID).
			Return(&models.Vehicle{ID: vehicleID, UserID: userID}, nil).Once()

		_, err := service.Create(ctx, userID, req)
		require.NoError(t, err)
	})

	t.Run("Ошибки валидации", func(t *testing.T) {
		tests := []struct {
			name          string
			mutate        func(*models.CreateVehicleRequest)
			expectedField string
		}{
			{"Пустое название", func(r *models.CreateVehicleRequest) { r.Name = "" }, "name"},
			{"Пустая марка", func(r *models.CreateVehicleRequest) { r.Make = "" }, "make"},
			{"Пустая модель", func(r *models.CreateVehicleRequest) { r.Model = "" }, "model"},
			{"Год меньше допустимого", func(r *models.CreateVehicleRequest) { r.Year = 1800 }, "year"},
			{"Год больше допустимого", func(r *models.CreateVehicleRequest) { r.Year = 2500 }, "year"},
			{"Пустой VIN", func(r *models.CreateVehicleRequest) { r.VIN = "" }, "vin"},
			{"Пустой регистрационный номер", func(r *models.CreateVehicleRequest) { r.RegistrationNo = "" }, "registration_no"},
			{"Отрицательный одометр", func(r *models.CreateVehicleRequest) { r.Odometer = int64Ptr(-1) }, "odometer"},
			{"Нулевой объем бака", func(r *models.CreateVehicleRequest) { r.TankCapacity = float64Ptr(0) }, "tank_capacity"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				// Репозиторий не должен вызываться при ошибке валидации
				mockRepo := mocks.NewVehicleRepository(t)
				service := NewVehicleService(mockRepo)

				req := validCreateVehicleRequest()
				tt.mutate(req)

				result, err := service.Create(ctx, userID, req)

				require.Error(t, err)
				assert.Nil(t, result)

				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.expectedField, validationErr.Field)
			})
		}
	})
}

func TestVehicleService_Get(t *testing.T) {
	ctx := context.Background()
	userID := int64(1)
	vehicleID := int64(10)

	t.Run("Успешное получение своего ТС", func(t *testing.T) {
		mockRepo := mocks.NewVehicleRepository(t)
		service := NewVehicleService(mockRepo)

		vehicle := &models.Vehicle{ID: vehicleID, UserID: userID, Name: "Рабочая машина"}
		mockRepo.EXPECT().GetVehicleByID(ctx, vehicleID).Return(vehicle, nil).Once()

		result, err := service.Get(ctx, userID, vehicleID)

		require.NoError(t, err)
		assert.Equal(t, vehicle, result)
	})

	t.Run("Чужое ТС", func(t *testing.T) {
		mockRepo := mocks.NewVehicleRepository(t)
		service := NewVehicleService(mockRepo)

		foreign := &models.Vehicle{ID: vehicleID, UserID: 999}
		mockRepo.EXPECT().GetVehicleByID(ctx, vehicleID).Return(foreign, nil).Once()

		result, err := service.Get(ctx, userID, vehicleID)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotOwned)
		assert.Nil(t, result)
	})

	t.Run("ТС не найдено", func(t *testing.T) {
		mockRepo := mocks.NewVehicleRepository(t)
		service := NewVehicleService(mockRepo)

		mockRepo.EXPECT().GetVehicleByID(ctx, vehicleID).
			Return(nil, repository.ErrVehicleNotFound).Once()

		result, err := service.Get(ctx, userID, vehicleID)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrVehicleNotFound)
		assert.Nil(t, result)
	})
}

func TestVehicleService_Update(t *testing.T) {
	ctx := context.Background()
	userID := int64(1)
	vehicleID := int64(10)

	t.Run("Частичное обновление: nil-поля не изменяются", func(t *testing.T) {
		mockRepo := mocks.NewVehicleRepository(t)
		service := NewVehicleService(mockRepo)

		existing := &models.Vehicle{
			ID:       vehicleID,
			UserID:   userID,
			Name:     "Старое название",
			Make:     "Toyota",
			Model:    "Corolla",
			Year:     2020,
			FuelType: "petrol",
			IsActive: true,
		}
		newName := "Новое название"
		req := &models.UpdateVehicleRequest{Name: &newName}

		mockRepo.EXPECT().GetVehicleByID(ctx, vehicleID).Return(existing, nil).Once()
		mockRepo.EXPECT().
			UpdateVehicle(ctx, mock.AnythingOfType("*models.Vehicle")).
			Run(func(_ context.Context, vehicle *models.Vehicle) {
				assert.Equal(t, newName, vehicle.Name)
				// Остальные поля остаются прежними
				assert.Equal(t, "Toyota", vehicle.Make)
				assert.Equal(t, 2020, vehicle.Year)
			}).
			Return(nil).Once()
		updated := &models.Vehicle{ID: vehicleID, UserID: userID, Name: newName, Make: "Toyota"}
		mockRepo.EXPECT().GetVehicleByID(ctx, vehicleID).Return(updated, nil).Once()

		result, err := service.Update(ctx, userID, vehicleID, req)

		require.NoError(t, err)
		assert.Equal(t, newName, result.Name)
	})

	t.Run("Обновление чужого ТС запрещено", func(t *testing.T) {
		mockRepo := mocks.NewVehicleRepository(t)
		service := NewVehicleService(mockRepo)

		foreign := &models.Vehicle{ID: vehicleID, UserID: 999}
		mockRepo.EXPECT().GetVehicleByID(ctx, vehicleID).Return(foreign, nil).Once()

		newName := "Не мое"
		result, err := service.Update(ctx, userID, vehicleID, &models.UpdateVehicleRequest{Name: &newName})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotOwned)
		assert.Nil(t, result)
	})

	t.Run("Пустое название в обновлении", func(t *testing.T) {
		mockRepo := mocks.NewVehicleRepository(t)
		service := NewVehicleService(mockRepo)

		existing := &models.Vehicle{ID: vehicleID, UserID: userID, Name: "Название"}
		mockRepo.EXPECT().GetVehicleByID(ctx, vehicleID).Return(existing, nil).Once()

		empty := ""
		result, err := service.Update(ctx, userID, vehicleID, &models.UpdateVehicleRequest{Name: &empty})

		require.Error(t, err)
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Nil(t, result)
	})
}

func TestVehicleService_Delete(t *testing.T) {
	ctx := context.Background()
	userID := int64(1)
	vehicleID := int64(10)

	t.Run("Успешное удаление", func(t *testing.T) {
		mockRepo := mocks.NewVehicleRepository(t)
		service := NewVehicleService(mockRepo)

		vehicle := &models.Vehicle{ID: vehicleID, UserID: userID}
		mockRepo.EXPECT().GetVehicleByID(ctx, vehicleID).Return(vehicle, nil).Once()
		mockRepo.EXPECT().DeleteVehicle(ctx, vehicleID).Return(nil).Once()

		err := service.Delete(ctx, userID, vehicleID)
		require.NoError(t, err)
	})

	t.Run("Удаление чужого ТС: DeleteVehicle не вызывается", func(t *testing.T) {
		mockRepo := mocks.NewVehicleRepository(t)
		service := NewVehicleService(mockRepo)

		foreign := &models.Vehicle{ID: vehicleID, UserID: 999}
		mockRepo.EXPECT().GetVehicleByID(ctx, vehicleID).Return(foreign, nil).Once()

		err := service.Delete(ctx, userID, vehicleID)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotOwned)
		mockRepo.AssertNotCalled(t, "DeleteVehicle", mock.Anything, mock.Anything)
	})

	t.Run("ТС не найдено", func(t *testing.T) {
		mockRepo := mocks.NewVehicleRepository(t)
		service := NewVehicleService(mockRepo)

		mockRepo.EXPECT().GetVehicleByID(ctx, vehicleID).
			Return(nil, repository.ErrVehicleNotFound).Once()

		err := service.Delete(ctx, userID, vehicleID)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrVehicleNotFound)
	})

	t.Run("Ошибка репозитория при удалении", func(t *testing.T) {
		mockRepo := mocks.NewVehicleRepository(t)
		service := NewVehicleService(mockRepo)

		vehicle := &models.Vehicle{ID: vehicleID, UserID: userID}
		mockRepo.EXPECT().GetVehicleByID(ctx, vehicleID).Return(vehicle, nil).Once()
		mockRepo.EXPECT().DeleteVehicle(ctx, vehicleID).Return(errors.New("db error")).Once()

		err := service.Delete(ctx, userID, vehicleID)
		require.Error(t, err)
	})
}
