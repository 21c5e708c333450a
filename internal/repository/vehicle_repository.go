package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/maynagashev/motormate/internal/models"
)

// VehicleRepository определяет методы для работы с транспортными средствами.
type VehicleRepository interface {
	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) (int64, error)
	GetVehicleByID(ctx context.Context, vehicleID int64) (*models.Vehicle, error)
	ListVehiclesByUserID(ctx context.Context, userID int64) ([]models.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	DeleteVehicle(ctx context.Context, vehicleID int64) error
}

// Список колонок ТС, используемый во всех SELECT-запросах.
const vehicleColumns = `id, user_id, name, make, model, year, vin, registration_no, purchase_date,
	color, fuel_type, odometer, tank_capacity, insurance_expiry, last_service_date, is_active,
	created_at, updated_at`

// postgresVehicleRepository реализует VehicleRepository для PostgreSQL.
type postgresVehicleRepository struct {
	db *sqlx.DB
}

// NewPostgresVehicleRepository создает новый экземпляр репозитория ТС.
func NewPostgresVehicleRepository(db *sqlx.DB) VehicleRepository {
	return &postgresVehicleRepository{db: db}
}

// CreateVehicle создает новую запись о ТС.
// Возвращает ID созданной записи или ошибку.
func (r *postgresVehicleRepository) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) (int64, error) {
	query := `INSERT INTO vehicles (user_id, name, make, model, year, vin, registration_no,
	          purchase_date, color, fuel_type, odometer, tank_capacity, insurance_expiry,
	          last_service_date, is_active)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	          RETURNING id`
	var vehicleID int64

	err := r.db.QueryRowxContext(ctx, query,
		vehicle.UserID, vehicle.Name, vehicle.Make, vehicle.Model, vehicle.Year,
		vehicle.VIN, vehicle.RegistrationNo, vehicle.PurchaseDate, vehicle.Color,
		vehicle.FuelType, vehicle.Odometer, vehicle.TankCapacity,
		vehicle.InsuranceExpiry, vehicle.LastServiceDate, vehicle.IsActive,
	).Scan(&vehicleID)
	if err != nil {
		log.Printf("[VehicleRepo] Ошибка при создании ТС '%s' для пользователя %d: %v",
			vehicle.Name, vehicle.UserID, err)
		return 0, fmt.Errorf("ошибка выполнения запроса на создание ТС: %w", err)
	}

	log.Printf("[VehicleRepo] ТС '%s' (ID: %d) успешно создано для пользователя %d",
		vehicle.Name, vehicleID, vehicle.UserID)
	return vehicleID, nil
}

// GetVehicleByID находит ТС по его ID.
// Проверку владельца выполняет сервисный слой.
func (r *postgresVehicleRepository) GetVehicleByID(ctx context.Context, vehicleID int64) (*models.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id=$1`
	var vehicle models.Vehicle

	err := r.db.GetContext(ctx, &vehicle, query, vehicleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("[VehicleRepo] ТС с ID %d не найдено", vehicleID)
			return nil, ErrVehicleNotFound
		}
		log.Printf("[VehicleRepo] Ошибка при поиске ТС ID %d: %v", vehicleID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение ТС: %w", err)
	}

	return &vehicle, nil
}

// ListVehiclesByUserID возвращает все ТС указанного пользователя.
func (r *postgresVehicleRepository) ListVehiclesByUserID(ctx context.Context, userID int64) ([]models.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE user_id=$1 ORDER BY created_at DESC`

	vehicles := make([]models.Vehicle, 0)
	err := r.db.SelectContext(ctx, &vehicles, query, userID)
	if err != nil {
		log.Printf("[VehicleRepo] Ошибка при получении списка ТС пользователя %d: %v", userID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение списка ТС: %w", err)
	}

	log.Printf("[VehicleRepo] Получено %d ТС для пользователя %d", len(vehicles), userID)
	return vehicles, nil
}

// UpdateVehicle сохраняет измененную запись о ТС целиком (last-write-wins).
func (r *postgresVehicleRepository) UpdateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	query := `UPDATE vehicles SET name=$1, make=$2, model=$3, year=$4, vin=$5, registration_no=$6,
	          purchase_date=$7, color=$8, fuel_type=$9, odometer=$10, tank_capacity=$11,
	          insurance_expiry=$12, last_service_date=$13, is_active=$14, updated_at=now()
	          WHERE id=$15`

	res, err := r.db.ExecContext(ctx, query,
		vehicle.Name, vehicle.Make, vehicle.Model, vehicle.Year, vehicle.VIN,
		vehicle.RegistrationNo, vehicle.PurchaseDate, vehicle.Color, vehicle.FuelType,
		vehicle.Odometer, vehicle.TankCapacity, vehicle.InsuranceExpiry,
		vehicle.LastServiceDate, vehicle.IsActive, vehicle.ID,
	)
	if err != nil {
		log.Printf("[VehicleRepo] Ошибка при обновлении ТС ID %d: %v", vehicle.ID, err)
		return fmt.Errorf("ошибка выполнения запроса на обновление ТС: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка получения количества обновленных строк: %w", err)
	}
	if rows == 0 {
		log.Printf("[VehicleRepo] ТС с ID %d не найдено при обновлении", vehicle.ID)
		return ErrVehicleNotFound
	}

	log.Printf("[VehicleRepo] ТС ID %d успешно обновлено", vehicle.ID)
	return nil
}

// DeleteVehicle удаляет ТС по его ID. Связанные расходы удаляются каскадно на уровне БД.
func (r *postgresVehicleRepository) DeleteVehicle(ctx context.Context, vehicleID int64) error {
	query := `DELETE FROM vehicles WHERE id=$1`

	res, err := r.db.ExecContext(ctx, query, vehicleID)
	if err != nil {
		log.Printf("[VehicleRepo] Ошибка при удалении ТС ID %d: %v", vehicleID, err)
		return fmt.Errorf("ошибка выполнения запроса на удаление ТС: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка получения количества удаленных строк: %w", err)
	}
	if rows == 0 {
		log.Printf("[VehicleRepo] ТС с ID %d не найдено при удалении", vehicleID)
		return ErrVehicleNotFound
	}

	log.Printf("[VehicleRepo] ТС ID %d успешно удалено", vehicleID)
	return nil
}

// Кастомная ошибка репозитория.
var (
	ErrVehicleNotFound = errors.New("транспортное средство не найдено")
)
