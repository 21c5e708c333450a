package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/maynagashev/motormate/internal/models"
	"github.com/maynagashev/motormate/internal/repository"
	"github.com/maynagashev/motormate/internal/storage"
)

// ExpenseService определяет интерфейс для сервиса расходов.
// Все операции над существующими записями проверяют владельца:
// несовпадение user_id записи с ID вызывающего -> ErrNotOwned.
type ExpenseService interface {
	Create(ctx context.Context, userID int64, req *models.CreateExpenseRequest) (*models.Expense, error)
	List(ctx context.Context, userID int64, filter models.ExpenseFilter) ([]models.Expense, error)
	Stats(ctx context.Context, userID int64, filter models.ExpenseFilter) (*models.ExpenseStats, error)
	Get(ctx context.Context, userID, expenseID int64) (*models.Expense, error)
	Update(ctx context.Context, userID, expenseID int64, req *models.UpdateExpenseRequest) (*models.Expense, error)
	Delete(ctx context.Context, userID, expenseID int64) error
	UploadReceipt(ctx context.Context, userID, expenseID int64, reader io.Reader, size int64, contentType string) error
	DownloadReceipt(ctx context.Context, userID, expenseID int64) (io.ReadCloser, *models.Expense, error)
}

// Убедимся, что expenseService удовлетворяет интерфейсу ExpenseService.
var _ ExpenseService = (*expenseService)(nil)

type expenseService struct {
	expenseRepo repository.ExpenseRepository
	vehicleRepo repository.VehicleRepository // Для проверки владельца ТС при создании/переносе расхода
	fileStorage storage.FileStorage          // Хранилище чеков
}

// NewExpenseService создает новый экземпляр сервиса расходов.
func NewExpenseService(
	expenseRepo repository.ExpenseRepository,
	vehicleRepo repository.VehicleRepository,
	fileStorage storage.FileStorage,
) ExpenseService {
	return &expenseService{
		expenseRepo: expenseRepo,
		vehicleRepo: vehicleRepo,
		fileStorage: fileStorage,
	}
}

// Create создает новую запись о расходе.
// Производные поля (calculated_mileage и сумма из цены за литр) вычисляются здесь,
// значения от клиента для них игнорируются.
func (s *expenseService) Create(
	ctx context.Context,
	userID int64,
	req *models.CreateExpenseRequest,
) (*models.Expense, error) {
	category := req.Category
	if category == "" {
		category = models.CategoryFuel // Категория по умолчанию, как в исходной схеме
	}
	status := req.Status
	if status == "" {
		status = models.StatusPending
	}

	if err := validateExpenseFields(category, status, req.Amount, req.Odometer,
		req.FuelPricePerLitre, req.FuelLitres, req.OdometerBefore, req.OdometerAfter); err != nil {
		return nil, err
	}

	// Расход можно привязать только к собственному ТС
	if err := s.checkVehicleOwned(ctx, userID, req.VehicleID); err != nil {
		return nil, err
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	expense := &models.Expense{
		UserID:            userID,
		VehicleID:         req.VehicleID,
		Category:          category,
		Amount:            req.Amount,
		Date:              date,
		Odometer:          req.Odometer,
		FuelPricePerLitre: req.FuelPricePerLitre,
		FuelLitres:        req.FuelLitres,
		OdometerBefore:    req.OdometerBefore,
		OdometerAfter:     req.OdometerAfter,
		Description:       req.Description,
		Notes:             req.Notes,
		Status:            status,
	}

	applyDerivedFields(expense)

	expenseID, err := s.expenseRepo.CreateExpense(ctx, expense)
	if err != nil {
		log.Printf("[ExpenseService] Ошибка репозитория при создании расхода для пользователя %d: %v", userID, err)
		return nil, errors.New("внутренняя ошибка сервера при создании расхода")
	}

	created, err := s.expenseRepo.GetExpenseByID(ctx, expenseID)
	if err != nil {
		log.Printf("[ExpenseService] Ошибка чтения созданного расхода ID %d: %v", expenseID, err)
		return nil, errors.New("внутренняя ошибка сервера при создании расхода")
	}

	return created, nil
}

// List возвращает отфильтрованный и отсортированный список расходов пользователя.
func (s *expenseService) List(
	ctx context.Context,
	userID int64,
	filter models.ExpenseFilter,
) ([]models.Expense, error) {
	expenses, err := s.expenseRepo.ListExpensesByUserID(ctx, userID)
	if err != nil {
		log.Printf("[ExpenseService] Ошибка репозитория при получении расходов пользователя %d: %v", userID, err)
		return nil, errors.New("внутренняя ошибка сервера при получении списка расходов")
	}

	return FilterExpenses(expenses, filter, time.Now()), nil
}

// Stats возвращает статистику, вычисленную по отфильтрованному списку расходов.
func (s *expenseService) Stats(
	ctx context.Context,
	userID int64,
	filter models.ExpenseFilter,
) (*models.ExpenseStats, error) {
	filtered, err := s.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	return ComputeStats(filtered, time.Now()), nil
}

// Get возвращает расход по ID после проверки владельца.
func (s *expenseService) Get(ctx context.Context, userID, expenseID int64) (*models.Expense, error) {
	return s.getOwned(ctx, userID, expenseID)
}

// Update частично обновляет расход: nil-поля запроса не изменяются.
// Производные поля пересчитываются после применения изменений.
func (s *expenseService) Update(
	ctx context.Context,
	userID, expenseID int64,
	req *models.UpdateExpenseRequest,
) (*models.Expense, error) {
	expense, err := s.getOwned(ctx, userID, expenseID)
	if err != nil {
		return nil, err
	}

	// Перенос расхода на другое ТС разрешен только в пределах своих ТС
	if req.VehicleID != nil && *req.VehicleID != expense.VehicleID {
		if err = s.checkVehicleOwned(ctx, userID, *req.VehicleID); err != nil {
			return nil, err
		}
		expense.VehicleID = *req.VehicleID
	}

	applyExpenseUpdate(expense, req)

	if err = validateExpenseFields(expense.Category, expense.Status, expense.Amount, expense.Odometer,
		expense.FuelPricePerLitre, expense.FuelLitres, expense.OdometerBefore, expense.OdometerAfter); err != nil {
		return nil, err
	}

	applyDerivedFields(expense)

	if err = s.expenseRepo.UpdateExpense(ctx, expense); err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return nil, ErrExpenseNotFound
		}
		log.Printf("[ExpenseService] Ошибка репозитория при обновлении расхода ID %d: %v", expenseID, err)
		return nil, errors.New("внутренняя ошибка сервера при обновлении расхода")
	}

	updated, err := s.expenseRepo.GetExpenseByID(ctx, expenseID)
	if err != nil {
		log.Printf("[ExpenseService] Ошибка чтения обновленного расхода ID %d: %v", expenseID, err)
		return nil, errors.New("внутренняя ошибка сервера при обновлении расхода")
	}

	return updated, nil
}

// Delete удаляет расход после проверки владельца.
// Прикрепленный чек удаляется из объектного хранилища по принципу best-effort.
func (s *expenseService) Delete(ctx context.Context, userID, expenseID int64) error {
	expense, err := s.getOwned(ctx, userID, expenseID)
	if err != nil {
		return err
	}

	if err = s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return ErrExpenseNotFound
		}
		log.Printf("[ExpenseService] Ошибка репозитория при удалении расхода ID %d: %v", expenseID, err)
		return errors.New("внутренняя ошибка сервера при удалении расхода")
	}

	if expense.HasReceipt() && s.fileStorage != nil {
		if delErr := s.fileStorage.DeleteFile(ctx, *expense.ReceiptObjectKey); delErr != nil {
			// Запись уже удалена, осиротевший объект не критичен
			log.Printf("[ExpenseService] Не удалось удалить чек '%s' расхода ID %d: %v",
				*expense.ReceiptObjectKey, expenseID, delErr)
		}
	}

	log.Printf("[ExpenseService] Расход ID %d удален пользователем %d", expenseID, userID)
	return nil
}

// UploadReceipt загружает чек для расхода в объектное хранилище
// и сохраняет ключ объекта в записи расхода.
func (s *expenseService) UploadReceipt(
	ctx context.Context,
	userID, expenseID int64,
	reader io.Reader,
	size int64,
	contentType string,
) error {
	expense, err := s.getOwned(ctx, userID, expenseID)
	if err != nil {
		return err
	}

	objectKey := fmt.Sprintf("receipts/%d/%s", userID, uuid.NewString())

	if err = s.fileStorage.UploadFile(ctx, objectKey, reader, size, contentType); err != nil {
		log.Printf("[ExpenseService] Ошибка загрузки чека для расхода ID %d: %v", expenseID, err)
		return errors.New("внутренняя ошибка сервера при загрузке чека")
	}

	if err = s.expenseRepo.SetReceiptObjectKey(ctx, expenseID, objectKey); err != nil {
		log.Printf("[ExpenseService] Ошибка сохранения ключа чека для расхода ID %d: %v", expenseID, err)
		return errors.New("внутренняя ошибка сервера при сохранении чека")
	}

	// Старый чек (если был) становится недостижимым, удаляем его
	if expense.HasReceipt() {
		if delErr := s.fileStorage.DeleteFile(ctx, *expense.ReceiptObjectKey); delErr != nil {
			log.Printf("[ExpenseService] Не удалось удалить прежний чек '%s' расхода ID %d: %v",
				*expense.ReceiptObjectKey, expenseID, delErr)
		}
	}

	log.Printf("[ExpenseService] Чек для расхода ID %d успешно загружен (ключ %s)", expenseID, objectKey)
	return nil
}

// DownloadReceipt возвращает поток с чеком расхода и саму запись расхода.
// Возвращенный io.ReadCloser необходимо закрыть после использования.
func (s *expenseService) DownloadReceipt(
	ctx context.Context,
	userID, expenseID int64,
) (io.ReadCloser, *models.Expense, error) {
	expense, err := s.getOwned(ctx, userID, expenseID)
	if err != nil {
		return nil, nil, err
	}

	if !expense.HasReceipt() {
		return nil, nil, ErrReceiptNotFound
	}

	reader, err := s.fileStorage.DownloadFile(ctx, *expense.ReceiptObjectKey)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, nil, ErrReceiptNotFound
		}
		log.Printf("[ExpenseService] Ошибка скачивания чека расхода ID %d: %v", expenseID, err)
		return nil, nil, errors.New("внутренняя ошибка сервера при скачивании чека")
	}

	return reader, expense, nil
}

// getOwned загружает расход и проверяет, что он принадлежит пользователю.
func (s *expenseService) getOwned(ctx context.Context, userID, expenseID int64) (*models.Expense, error) {
	expense, err := s.expenseRepo.GetExpenseByID(ctx, expenseID)
	if err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return nil, ErrExpenseNotFound
		}
		log.Printf("[ExpenseService] Ошибка репозитория при поиске расхода ID %d: %v", expenseID, err)
		return nil, errors.New("внутренняя ошибка сервера при получении расхода")
	}

	// Проверка владельца: простое сравнение идентификаторов
	if expense.UserID != userID {
		log.Printf("[ExpenseService] Пользователь %d запросил чужой расход ID %d (владелец %d)",
			userID, expenseID, expense.UserID)
		return nil, ErrNotOwned
	}

	return expense, nil
}

// checkVehicleOwned проверяет, что ТС существует и принадлежит пользователю.
func (s *expenseService) checkVehicleOwned(ctx context.Context, userID, vehicleID int64) error {
	if vehicleID <= 0 {
		return NewValidationError("vehicle_id", "ТС обязательно")
	}

	vehicle, err := s.vehicleRepo.GetVehicleByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return ErrVehicleNotFound
		}
		log.Printf("[ExpenseService] Ошибка репозитория при проверке ТС ID %d: %v", vehicleID, err)
		return errors.New("внутренняя ошибка сервера при проверке ТС")
	}

	if vehicle.UserID != userID {
		log.Printf("[ExpenseService] Пользователь %d привязывает расход к чужому ТС ID %d (владелец %d)",
			userID, vehicleID, vehicle.UserID)
		return ErrNotOwned
	}

	return nil
}

// applyDerivedFields пересчитывает производные поля расхода:
// сумму из цены за литр и литров, а также calculated_mileage.
func applyDerivedFields(expense *models.Expense) {
	if amount, ok := DeriveAmount(expense.FuelPricePerLitre, expense.FuelLitres); ok {
		expense.Amount = amount
	}
	expense.CalculatedMileage = CalculateMileage(expense.OdometerBefore, expense.OdometerAfter, expense.FuelLitres)
}

// validateExpenseFields проверяет числовые и перечислимые поля расхода.
// Отрицательные значения отклоняются; соотношение показаний одометра
// не проверяется — при odometer_after <= odometer_before производный
// пробег просто не вычисляется.
func validateExpenseFields(
	category, status string,
	amount float64,
	odometer *int64,
	pricePerLitre, litres *float64,
	odometerBefore, odometerAfter *int64,
) error {
	if !models.ValidCategory(category) {
		return NewValidationError("category", "недопустимая категория")
	}
	if !models.ValidStatus(status) {
		return NewValidationError("status", "недопустимый статус")
	}
	if amount < 0 {
		return NewValidationError("amount", "сумма не может быть отрицательной")
	}
	if odometer != nil && *odometer < 0 {
		return NewValidationError("odometer", "показание одометра не может быть отрицательным")
	}
	if pricePerLitre != nil && *pricePerLitre < 0 {
		return NewValidationError("fuel_price_per_litre", "цена за литр не может быть отрицательной")
	}
	if litres != nil && *litres < 0 {
		return NewValidationError("fuel_litres", "количество литров не может быть отрицательным")
	}
	if odometerBefore != nil && *odometerBefore < 0 {
		return NewValidationError("odometer_before", "показание одометра не может быть отрицательным")
	}
	if odometerAfter != nil && *odometerAfter < 0 {
		return NewValidationError("odometer_after", "показание одометра не может быть отрицательным")
	}
	return nil
}

// applyExpenseUpdate переносит заданные (не nil) поля запроса в запись расхода.
// Поле vehicle_id обрабатывается отдельно в Update (нужна проверка владельца ТС).
func applyExpenseUpdate(expense *models.Expense, req *models.UpdateExpenseRequest) {
	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.Date != nil {
		expense.Date = *req.Date
	}
	if req.Odometer != nil {
		expense.Odometer = req.Odometer
	}
	if req.FuelPricePerLitre != nil {
		expense.FuelPricePerLitre = req.FuelPricePerLitre
	}
	if req.FuelLitres != nil {
		expense.FuelLitres = req.FuelLitres
	}
	if req.OdometerBefore != nil {
		expense.OdometerBefore = req.OdometerBefore
	}
	if req.OdometerAfter != nil {
		expense.OdometerAfter = req.OdometerAfter
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Notes != nil {
		expense.Notes = *req.Notes
	}
	if req.Status != nil {
		expense.Status = *req.Status
	}
}
