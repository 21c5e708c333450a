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

// ExpenseRepository определяет методы для работы с записями о расходах.
type ExpenseRepository interface {
	CreateExpense(ctx context.Context, expense *models.Expense) (int64, error)
	GetExpenseByID(ctx context.Context, expenseID int64) (*models.Expense, error)
	ListExpensesByUserID(ctx context.Context, userID int64) ([]models.Expense, error)
	UpdateExpense(ctx context.Context, expense *models.Expense) error
	DeleteExpense(ctx context.Context, expenseID int64) error
	SetReceiptObjectKey(ctx context.Context, expenseID int64, objectKey string) error
}

// Список колонок расхода, используемый во всех SELECT-запросах.
const expenseColumns = `id, user_id, vehicle_id, category, amount, date, odometer,
	fuel_price_per_litre, fuel_litres, odometer_before, odometer_after, calculated_mileage,
	description, notes, status, receipt_object_key, created_at, updated_at`

// postgresExpenseRepository реализует ExpenseRepository для PostgreSQL.
type postgresExpenseRepository struct {
	db *sqlx.DB
}

// NewPostgresExpenseRepository создает новый экземпляр репозитория расходов.
func NewPostgresExpenseRepository(db *sqlx.DB) ExpenseRepository {
	return &postgresExpenseRepository{db: db}
}

// CreateExpense создает новую запись о расходе.
// Возвращает ID созданной записи или ошибку.
func (r *postgresExpenseRepository) CreateExpense(ctx context.Context, expense *models.Expense) (int64, error) {
	query := `INSERT INTO expenses (user_id, vehicle_id, category, amount, date, odometer,
	          fuel_price_per_litre, fuel_litres, odometer_before, odometer_after,
	          calculated_mileage, description, notes, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	          RETURNING id`
	var expenseID int64

	err := r.db.QueryRowxContext(ctx, query,
		expense.UserID, expense.VehicleID, expense.Category, expense.Amount, expense.Date,
		expense.Odometer, expense.FuelPricePerLitre, expense.FuelLitres,
		expense.OdometerBefore, expense.OdometerAfter, expense.CalculatedMileage,
		expense.Description, expense.Notes, expense.Status,
	).Scan(&expenseID)
	if err != nil {
		log.Printf("[ExpenseRepo] Ошибка при создании расхода для пользователя %d: %v", expense.UserID, err)
		return 0, fmt.Errorf("ошибка выполнения запроса на создание расхода: %w", err)
	}

	log.Printf("[ExpenseRepo] Расход (ID: %d) успешно создан для пользователя %d (ТС %d)",
		expenseID, expense.UserID, expense.VehicleID)
	return expenseID, nil
}

// GetExpenseByID находит расход по его ID.
// Проверку владельца выполняет сервисный слой.
func (r *postgresExpenseRepository) GetExpenseByID(ctx context.Context, expenseID int64) (*models.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id=$1`
	var expense models.Expense

	err := r.db.GetContext(ctx, &expense, query, expenseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("[ExpenseRepo] Расход с ID %d не найден", expenseID)
			return nil, ErrExpenseNotFound
		}
		log.Printf("[ExpenseRepo] Ошибка при поиске расхода ID %d: %v", expenseID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение расхода: %w", err)
	}

	return &expense, nil
}

// ListExpensesByUserID возвращает все расходы указанного пользователя,
// отсортированные по дате по убыванию (сортировка по умолчанию).
// Дальнейшую фильтрацию и пересортировку выполняет сервисный слой.
func (r *postgresExpenseRepository) ListExpensesByUserID(ctx context.Context, userID int64) ([]models.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE user_id=$1 ORDER BY date DESC`

	expenses := make([]models.Expense, 0)
	err := r.db.SelectContext(ctx, &expenses, query, userID)
	if err != nil {
		log.Printf("[ExpenseRepo] Ошибка при получении списка расходов пользователя %d: %v", userID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение списка расходов: %w", err)
	}

	log.Printf("[ExpenseRepo] Получено %d расходов для пользователя %d", len(expenses), userID)
	return expenses, nil
}

// UpdateExpense сохраняет измененную запись о расходе целиком (last-write-wins).
func (r *postgresExpenseRepository) UpdateExpense(ctx context.Context, expense *models.Expense) error {
	query := `UPDATE expenses SET vehicle_id=$1, category=$2, amount=$3, date=$4, odometer=$5,
	          fuel_price_per_litre=$6, fuel_litres=$7, odometer_before=$8, odometer_after=$9,
	          calculated_mileage=$10, description=$11, notes=$12, status=$13, updated_at=now()
	          WHERE id=$14`

	res, err := r.db.ExecContext(ctx, query,
		expense.VehicleID, expense.Category, expense.Amount, expense.Date, expense.Odometer,
		expense.FuelPricePerLitre, expense.FuelLitres, expense.OdometerBefore,
		expense.OdometerAfter, expense.CalculatedMileage, expense.Description,
		expense.Notes, expense.Status, expense.ID,
	)
	if err != nil {
		log.Printf("[ExpenseRepo] Ошибка при обновлении расхода ID %d: %v", expense.ID, err)
		return fmt.Errorf("ошибка выполнения запроса на обновление расхода: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка получения количества обновленных строк: %w", err)
	}
	if rows == 0 {
		log.Printf("[ExpenseRepo] Расход с ID %d не найден при обновлении", expense.ID)
		return ErrExpenseNotFound
	}

	log.Printf("[ExpenseRepo] Расход ID %d успешно обновлен", expense.ID)
	return nil
}

// DeleteExpense удаляет расход по его ID.
func (r *postgresExpenseRepository) DeleteExpense(ctx context.Context, expenseID int64) error {
	query := `DELETE FROM expenses WHERE id=$1`

	res, err := r.db.ExecContext(ctx, query, expenseID)
	if err != nil {
		log.Printf("[ExpenseRepo] Ошибка при удалении расхода ID %d: %v", expenseID, err)
		return fmt.Errorf("ошибка выполнения запроса на удаление расхода: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка получения количества удаленных строк: %w", err)
	}
	if rows == 0 {
		log.Printf("[ExpenseRepo] Расход с ID %d не найден при удалении", expenseID)
		return ErrExpenseNotFound
	}

	log.Printf("[ExpenseRepo] Расход ID %d успешно удален", expenseID)
	return nil
}

// SetReceiptObjectKey записывает ключ загруженного чека для расхода.
func (r *postgresExpenseRepository) SetReceiptObjectKey(ctx context.Context, expenseID int64, objectKey string) error {
	query := `UPDATE expenses SET receipt_object_key=$1, updated_at=now() WHERE id=$2`

	res, err := r.db.ExecContext(ctx, query, objectKey, expenseID)
	if err != nil {
		log.Printf("[ExpenseRepo] Ошибка при сохранении ключа чека для расхода ID %d: %v", expenseID, err)
		return fmt.Errorf("ошибка выполнения запроса на сохранение ключа чека: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка получения количества обновленных строк: %w", err)
	}
	if rows == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

// Кастомная ошибка репозитория.
var (
	ErrExpenseNotFound = errors.New("расход не найден")
)
