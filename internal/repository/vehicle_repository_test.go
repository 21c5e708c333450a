package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maynagashev/motormate/internal/models"
)

var vehicleTestColumns = []string{
	"id", "user_id", "name", "make", "model", "year", "vin", "registration_no", "purchase_date",
	"color", "fuel_type", "odometer", "tank_capacity", "insurance_expiry", "last_service_date",
	"is_active", "created_at", "updated_at",
}

// vehicleRow формирует строку результата для ТС с минимальным набором заполненных полей.
func vehicleRow(id, userID int64, name string, createdAt time.Time) []driver.Value {
	return []driver.Value{
		id, userID, name, "Toyota", "Corolla", 2020, "VIN123", "А123БВ77", nil,
		nil, "petrol", nil, nil, nil, nil,
		true, createdAt, createdAt,
	}
}

func TestPostgresVehicleRepository_CreateVehicle(t *testing.T) {
	ctx := context.Background()
	insertQuery := regexp.QuoteMeta(`INSERT INTO vehicles`)

	t.Run("Успешное создание", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgresVehicleRepository(db)

		vehicle := &models.Vehicle{
			UserID:         1,
			Name:           "Рабочая машина",
			Make:           "Toyota",
			Model:          "Corolla",
			Year:           2020,
			VIN:            "VIN123",
			RegistrationNo: "А123БВ77",
			FuelType:       "petrol",
			IsActive:       true,
		}

		mock.ExpectQuery(insertQuery).
			WithArgs(vehicle.UserID, vehicle.Name, vehicle.Make, vehicle.Model, vehicle.Year,
				vehicle.VIN, vehicle.RegistrationNo, vehicle.PurchaseDate, vehicle.Color,
				vehicle.FuelType, vehicle.Odometer, vehicle.TankCapacity,
				vehicle.InsuranceExpiry, vehicle.LastServiceDate, vehicle.IsActive).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(10)))

		vehicleID, err := repo.CreateVehicle(ctx, vehicle)

		require.NoError(t, err)
		assert.Equal(t, int64(10), vehicleID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка БД", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgresVehicleRepository(db)

		mock.ExpectQuery(insertQuery).
			WillReturnError(errors.New("connection refused"))

		vehicleID, err := repo.CreateVehicle(ctx, &models.Vehicle{})

		require.Error(t, err)
		assert.Zero(t, vehicleID)
	})
}

func TestPostgresVehicleRepository_GetVehicleByID(t *testing.T) {
	ctx := context.Background()
	selectQuery := regexp.QuoteMeta(`FROM vehicles WHERE id=$1`)

	t.Run("ТС найдено", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgresVehicleRepository(db)

		now := time.Now()
		mock.ExpectQuery(selectQuery).
			WithArgs(int64(10)).
			WillReturnRows(sqlmock.NewRows(vehicleTestColumns).
				AddRow(vehicleRow(10, 1, "Рабочая машина", now)...))

		vehicle, err := repo.GetVehicleByID(ctx, 10)

		require.NoError(t, err)
		require.NotNil(t, vehicle)
		assert.Equal(t, int64(10), vehicle.ID)
		assert.Equal(t, int64(1), vehicle.UserID)
		assert.Equal(t, "Рабочая машина", vehicle.Name)
		assert.True(t, vehicle.IsActive)
	})

	t.Run("ТС не найдено", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgresVehicleRepository(db)

		mock.ExpectQuery(selectQuery).
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		vehicle, err := repo.GetVehicleByID(ctx, 99)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrVehicleNotFound)
		assert.Nil(t, vehicle)
	})
}

func TestPostgresVehicleRepository_ListVehiclesByUserID(t *testing.T) {
	ctx := context.Background()
	selectQuery := regexp.QuoteMeta(`FROM vehicles WHERE user_id=$1 ORDER BY created_at DESC`)

	t.Run("Несколько ТС", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgresVehicleRepository(db)

		now := time.Now()
		rows := sqlmock.NewRows(vehicleTestColumns).
			AddRow(vehicleRow(2, 1, "Вторая", now)...).
			AddRow(vehicleRow(1, 1, "Первая", now.Add(-time.Hour))...)
		mock.ExpectQuery(selectQuery).WithArgs(int64(1)).WillReturnRows(rows)

		vehicles, err := repo.ListVehiclesByUserID(ctx, 1)

		require.NoError(t, err)
		require.Len(t, vehicles, 2)
		assert.Equal(t, int64(2), vehicles[0].ID)
		assert.Equal(t, int64(1), vehicles[1].ID)
	})

	t.Run("Пустой список", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgresVehicleRepository(db)

		mock.ExpectQuery(selectQuery).
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows(vehicleTestColumns))

		vehicles, err := repo.ListVehiclesByUserID(ctx, 2)

		require.NoError(t, err)
		assert.Empty(t, vehicles)
		assert.NotNil(t, vehicles)
	})
}

func TestPostgresVehicleRepository_UpdateVehicle(t *testing.T) {
	ctx := context.Background()
	updateQuery := regexp.QuoteMeta(`UPDATE vehicles SET`)

	t.Run("Успешное обновление", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgresVehicleRepository(db)

		vehicle := &models.Vehicle{ID: 10, Name: "Новое название", Make: "Toyota", Model: "Corolla",
			Year: 2020, VIN: "VIN123", RegistrationNo: "А123БВ77", FuelType: "petrol", IsActive: true}

		mock.ExpectExec(updateQuery).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateVehicle(ctx, vehicle)
		require.NoError(t, err)
	})

	t.Run("ТС не найдено при обновлении", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgresVehicleRepository(db)

		mock.ExpectExec(updateQuery).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateVehicle(ctx, &models.Vehicle{ID: 99})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrVehicleNotFound)
	})
}

func TestPostgresVehicleRepository_DeleteVehicle(t *testing.T) {
	ctx := context.Background()
	deleteQuery := regexp.QuoteMeta(`DELETE FROM vehicles WHERE id=$1`)

	t.Run("Успешное удаление", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgresVehicleRepository(db)

		mock.ExpectExec(deleteQuery).
			WithArgs(int64(10)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteVehicle(ctx, 10)
		require.NoError(t, err)
	})

	t.Run("ТС не найдено при удалении", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgresVehicleRepository(db)

		mock.ExpectExec(deleteQuery).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteVehicle(ctx, 99)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrVehicleNotFound)
	})
}
