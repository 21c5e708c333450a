package services

import (
	"context"
	"errors"
	"log"

	"github.com/maynagashev/motormate/internal/models"
	"github.com/maynagashev/motormate/internal/repository"
)

// VehicleService определяет интерфейс для сервиса транспортных средств.
// Все операции над существующими записями проверяют владельца:
// несовпадение user_id записи с ID вызывающего -> ErrNotOwned.
type VehicleService interface {
	Create(ctx context.Context, userID int64, req *models.CreateVehicleRequest) (*models.Vehicle, error)
	List(ctx context.Context, userID int64) ([]models.Vehicle, error)
	Get(ctx context.Context, userID, vehicleID int64) (*models.Vehicle, error)
	Update(ctx context.Context, userID, vehicleID int64, req *models.UpdateVehicleRequest) (*models.Vehicle, error)
	Delete(ctx context.Context, userID, vehicleID int64) error
}

// Допустимый диапазон года выпуска.
const (
	minVehicleYear = 1900
	maxVehicleYear = 2100
)

const defaultFuelType = "petrol"

// Убедимся, что vehicleService удовлетворяет интерфейсу VehicleService.
var _ VehicleService = (*vehicleService)(nil)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
}

// NewVehicleService создает новый экземпляр сервиса ТС.
func NewVehicleService(vehicleRepo repository.VehicleRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo}
}

// Create создает новое ТС для пользователя.
func (s *vehicleService) Create(
	ctx context.Context,
	userID int64,
	req *models.CreateVehicleRequest,
) (*models.Vehicle, error) {
	if err := validateCreateVehicle(req); err != nil {
		return nil, err
	}

	fuelType := req.FuelType
	if fuelType == "" {
		fuelType = defaultFuelType
	}

	vehicle := &models.Vehicle{
		UserID:          userID,
		Name:            req.Name,
		Make:            req.Make,
		Model:           req.Model,
		Year:            req.Year,
		VIN:             req.VIN,
		RegistrationNo:  req.RegistrationNo,
		PurchaseDate:    req.PurchaseDate,
		Color:           req.Color,
		FuelType:        fuelType,
		Odometer:        req.Odometer,
		TankCapacity:    req.TankCapacity,
		InsuranceExpiry: req.InsuranceExpiry,
		LastServiceDate: req.LastServiceDate,
		IsActive:        true, // Новые ТС всегда активны
	}

	vehicleID, err := s.vehicleRepo.CreateVehicle(ctx, vehicle)
	if err != nil {
		log.Printf("[VehicleService] Ошибка репозитория при создании ТС для пользователя %d: %v", userID, err)
		return nil, errors.New("внутренняя ошибка сервера при создании ТС")
	}

	created, err := s.vehicleRepo.GetVehicleByID(ctx, vehicleID)
	if err != nil {
		log.Printf("[VehicleService] Ошибка чтения созданного ТС ID %d: %v", vehicleID, err)
		return nil, errors.New("внутренняя ошибка сервера при создании ТС")
	}

	return created, nil
}

// List возвращает все ТС пользователя.
func (s *vehicleService) List(ctx context.Context, userID int64) ([]models.Vehicle, error) {
	vehicles, err := s.vehicleRepo.ListVehiclesByUserID(ctx, userID)
	if err != nil {
		log.Printf("[VehicleService] Ошибка репозитория при получении списка ТС пользователя %d: %v", userID, err)
		return nil, errors.New("внутренняя ошибка сервера при получении списка ТС")
	}
	return vehicles, nil
}

// Get возвращает ТС по ID после проверки владельца.
func (s *vehicleService) Get(ctx context.Context, userID, vehicleID int64) (*models.Vehicle, error) {
	return s.getOwned(ctx, userID, vehicleID)
}

// Update частично обновляет ТС: nil-поля запроса не изменяются.
func (s *vehicleService) Update(
	ctx context.Context,
	userID, vehicleID int64,
	req *models.UpdateVehicleRequest,
) (*models.Vehicle, error) {
	vehicle, err := s.getOwned(ctx, userID, vehicleID)
	if err != nil {
		return nil, err
	}

	if err = applyVehicleUpdate(vehicle, req); err != nil {
		return nil, err
	}

	if err = s.vehicleRepo.UpdateVehicle(ctx, vehicle); err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return nil, ErrVehicleNotFound
		}
		log.Printf("[VehicleService] Ошибка репозитория при обновлении ТС ID %d: %v", vehicleID, err)
		return nil, errors.New("внутренняя ошибка сервера при обновлении ТС")
	}

	updated, err := s.vehicleRepo.GetVehicleByID(ctx, vehicleID)
	if err != nil {
		log.Printf("[VehicleService] Ошибка чтения обновленного ТС ID %d: %v", vehicleID, err)
		return nil, errors.New("внутренняя ошибка сервера при обновлении ТС")
	}

	return updated, nil
}

// Delete удаляет ТС после проверки владельца.
func (s *vehicleService) Delete(ctx context.Context, userID, vehicleID int64) error {
	if _, err := s.getOwned(ctx, userID, vehicleID); err != nil {
		return err
	}

	if err := s.vehicleRepo.DeleteVehicle(ctx, vehicleID); err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return ErrVehicleNotFound
		}
		log.Printf("[VehicleService] Ошибка репозитория при удалении ТС ID %d: %v", vehicleID, err)
		return errors.New("внутренняя ошибка сервера при удалении ТС")
	}

	log.Printf("[VehicleService] ТС ID %d удалено пользователем %d", vehicleID, userID)
	return nil
}

// getOwned загружает ТС и проверяет, что оно принадлежит пользователю.
func (s *vehicleService) getOwned(ctx context.Context, userID, vehicleID int64) (*models.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetVehicleByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return nil, ErrVehicleNotFound
		}
		log.Printf("[VehicleService] Ошибка репозитория при поиске ТС ID %d: %v", vehicleID, err)
		return nil, errors.New("внутренняя ошибка сервера при получении ТС")
	}

	// Проверка владельца: простое сравнение идентификаторов
	if vehicle.UserID != userID {
		log.Printf("[VehicleService] Пользователь %d запросил чужое ТС ID %d (владелец %d)",
			userID, vehicleID, vehicle.UserID)
		return nil, ErrNotOwned
	}

	return vehicle, nil
}

// validateCreateVehicle проверяет обязательные поля запроса на создание ТС.
func validateCreateVehicle(req *models.CreateVehicleRequest) error {
	if req.Name == "" {
		return NewValidationError("name", "название обязательно")
	}
	if req.Make == "" {
		return NewValidationError("make", "марка обязательна")
	}
	if req.Model == "" {
		return NewValidationError("model", "модель обязательна")
	}
	if req.Year < minVehicleYear || req.Year > maxVehicleYear {
		return NewValidationError("year", "недопустимый год выпуска")
	}
	if req.VIN == "" {
		return NewValidationError("vin", "VIN обязателен")
	}
	if req.RegistrationNo == "" {
		return NewValidationError("registration_no", "регистрационный номер обязателен")
	}
	if req.Odometer != nil && *req.Odometer < 0 {
		return NewValidationError("odometer", "показание одометра не может быть отрицательным")
	}
	if req.TankCapacity != nil && *req.TankCapacity <= 0 {
		return NewValidationError("tank_capacity", "объем бака должен быть положительным")
	}
	return nil
}

// applyVehicleUpdate переносит заданные (не nil) поля запроса в запись ТС.
func applyVehicleUpdate(vehicle *models.Vehicle, req *models.UpdateVehicleRequest) error {
	if req.Name != nil {
		if *req.Name == "" {
			return NewValidationError("name", "название не может быть пустым")
		}
		vehicle.Name = *req.Name
	}
	if req.Make != nil {
		if *req.Make == "" {
			return NewValidationError("make", "марка не может быть пустой")
		}
		vehicle.Make = *req.Make
	}
	if req.Model != nil {
		if *req.Model == "" {
			return NewValidationError("model", "модель не может быть пустой")
		}
		vehicle.Model = *req.Model
	}
	if req.Year != nil {
		if *req.Year < minVehicleYear || *req.Year > maxVehicleYear {
			return NewValidationError("year", "недопустимый год выпуска")
		}
		vehicle.Year = *req.Year
	}
	if req.VIN != nil {
		if *req.VIN == "" {
			return NewValidationError("vin", "VIN не может быть пустым")
		}
		vehicle.VIN = *req.VIN
	}
	if req.RegistrationNo != nil {
		if *req.RegistrationNo == "" {
			return NewValidationError("registration_no", "регистрационный номер не может быть пустым")
		}
		vehicle.RegistrationNo = *req.RegistrationNo
	}
	if req.PurchaseDate != nil {
		vehicle.PurchaseDate = req.PurchaseDate
	}
	if req.Color != nil {
		vehicle.Color = req.Color
	}
	if req.FuelType != nil {
		vehicle.FuelType = *req.FuelType
	}
	if req.Odometer != nil {
		if *req.Odometer < 0 {
			return NewValidationError("odometer", "показание одометра не может быть отрицательным")
		}
		vehicle.Odometer = req.Odometer
	}
	if req.TankCapacity != nil {
		if *req.TankCapacity <= 0 {
			return NewValidationError("tank_capacity", "объем бака должен быть положительным")
		}
		vehicle.TankCapacity = req.TankCapacity
	}
	if req.InsuranceExpiry != nil {
		vehicle.InsuranceExpiry = req.InsuranceExpiry
	}
	if req.LastServiceDate != nil {
		vehicle.LastServiceDate = req.LastServiceDate
	}
	if req.IsActive != nil {
		vehicle.IsActive = *req.IsActive
	}
	return nil
}
