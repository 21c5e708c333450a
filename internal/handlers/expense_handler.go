package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/maynagashev/motormate/internal/middleware"
	"github.com/maynagashev/motormate/internal/models"
	"github.com/maynagashev/motormate/internal/services"
)

// ExpenseHandler обрабатывает HTTP-запросы, связанные с расходами.
type ExpenseHandler struct {
	expenseService services.ExpenseService
}

// NewExpenseHandler создает новый экземпляр ExpenseHandler.
func NewExpenseHandler(es services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: es}
}

// Create обрабатывает POST запрос на создание расхода.
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[ExpenseHandler:Create] Не удалось получить userID из контекста")
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	var req models.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ExpenseHandler:Create] Ошибка декодирования запроса: %v", err)
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	expense, err := h.expenseService.Create(r.Context(), userID, &req)
	if err != nil {
		h.writeExpenseError(w, userID, 0, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err = json.NewEncoder(w).Encode(expense); err != nil {
		log.Printf("[ExpenseHandler:Create] Ошибка кодирования ответа: %v", err)
	}
}

// List обрабатывает GET запрос на получение расходов с фильтрацией и сортировкой.
// Поддерживаемые параметры: search, category, vehicle, period, sort.
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[ExpenseHandler:List] Не удалось получить userID из контекста")
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	filter, err := parseExpenseFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	expenses, err := h.expenseService.List(r.Context(), userID, filter)
	if err != nil {
		log.Printf("[ExpenseHandler:List] Внутренняя ошибка для пользователя %d: %v", userID, err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(expenses); err != nil {
		log.Printf("[ExpenseHandler:List] Ошибка кодирования ответа: %v", err)
	}
}

// Stats обрабатывает GET запрос на получение статистики по отфильтрованным расходам.
// Принимает те же параметры фильтрации, что и List.
func (h *ExpenseHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[ExpenseHandler:Stats] Не удалось получить userID из контекста")
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	filter, err := parseExpenseFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stats, err := h.expenseService.Stats(r.Context(), userID, filter)
	if err != nil {
		log.Printf("[ExpenseHandler:Stats] Внутренняя ошибка для пользователя %d: %v", userID, err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(stats); err != nil {
		log.Printf("[ExpenseHandler:Stats] Ошибка кодирования ответа: %v", err)
	}
}

// Get обрабатывает GET запрос на получение одного расхода.
func (h *ExpenseHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[ExpenseHandler:Get] Не удалось получить userID из контекста")
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	expenseID, err := parseIDParam(r)
	if err != nil {
		http.Error(w, "Расход не найден", http.StatusNotFound)
		return
	}

	expense, err := h.expenseService.Get(r.Context(), userID, expenseID)
	if err != nil {
		h.writeExpenseError(w, userID, expenseID, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(expense); err != nil {
		log.Printf("[ExpenseHandler:Get] Ошибка кодирования ответа: %v", err)
	}
}

// Update обрабатывает PUT запрос на частичное обновление расхода.
func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[ExpenseHandler:Update] Не удалось получить userID из контекста")
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	expenseID, err := parseIDParam(r)
	if err != nil {
		http.Error(w, "Расход не найден", http.StatusNotFound)
		return
	}

	var req models.UpdateExpenseRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ExpenseHandler:Update] Ошибка декодирования запроса: %v", err)
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	expense, err := h.expenseService.Update(r.Context(), userID, expenseID, &req)
	if err != nil {
		h.writeExpenseError(w, userID, expenseID, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(expense); err != nil {
		log.Printf("[ExpenseHandler:Update] Ошибка кодирования ответа: %v", err)
	}
}

// Delete обрабатывает DELETE запрос на удаление расхода.
func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[ExpenseHandler:Delete] Не удалось получить userID из контекста")
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	expenseID, err := parseIDParam(r)
	if err != nil {
		http.Error(w, "Расход не найден", http.StatusNotFound)
		return
	}

	if err = h.expenseService.Delete(r.Context(), userID, expenseID); err != nil {
		h.writeExpenseError(w, userID, expenseID, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadReceipt обрабатывает POST запрос на загрузку чека для расхода.
// Тело запроса — файл целиком, размер берется из Content-Length.
func (h *ExpenseHandler) UploadReceipt(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[ExpenseHandler:UploadReceipt] Не удалось получить userID из контекста")
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	expenseID, err := parseIDParam(r)
	if err != nil {
		http.Error(w, "Расход не найден", http.StatusNotFound)
		return
	}

	// Получаем размер файла из заголовка Content-Length
	size, err := strconv.ParseInt(r.Header.Get("Content-Length"), 10, 64)
	if err != nil || size <= 0 {
		log.Printf("[ExpenseHandler:UploadReceipt] Неверный или отсутствующий заголовок Content-Length")
		http.Error(w, "Неверный или отсутствующий заголовок Content-Length", http.StatusBadRequest)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		// По умолчанию считаем бинарным потоком
		contentType = "application/octet-stream"
	}

	if err = h.expenseService.UploadReceipt(r.Context(), userID, expenseID, r.Body, size, contentType); err != nil {
		h.writeExpenseError(w, userID, expenseID, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Чек успешно загружен\n"))
	log.Printf("[ExpenseHandler:UploadReceipt] Чек для расхода %d пользователя %d загружен", expenseID, userID)
}

// DownloadReceipt обрабатывает GET запрос на скачивание чека расхода.
func (h *ExpenseHandler) DownloadReceipt(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[ExpenseHandler:DownloadReceipt] Не удалось получить userID из контекста")
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	expenseID, err := parseIDParam(r)
	if err != nil {
		http.Error(w, "Расход не найден", http.StatusNotFound)
		return
	}

	reader, expense, err := h.expenseService.DownloadReceipt(r.Context(), userID, expenseID)
	if err != nil {
		h.writeExpenseError(w, userID, expenseID, err)
		return
	}
	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			log.Printf("[ExpenseHandler:DownloadReceipt] Ошибка закрытия reader: %v", closeErr)
		}
	}()

	w.Header().Set("Content-Disposition", `attachment; filename="receipt"`)
	w.Header().Set("Content-Type", "application/octet-stream")

	if _, err = io.Copy(w, reader); err != nil {
		log.Printf("[ExpenseHandler:DownloadReceipt] Ошибка копирования данных чека расхода %d: %v",
			expense.ID, err)
		return
	}
}

// writeExpenseError сопоставляет ошибки сервиса расходов с HTTP-статусами.
func (h *ExpenseHandler) writeExpenseError(w http.ResponseWriter, userID, expenseID int64, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
	case errors.Is(err, services.ErrNotOwned):
		log.Printf("[ExpenseHandler] Пользователь %d обратился к чужой записи (расход ID %d)", userID, expenseID)
		http.Error(w, "Нет доступа", http.StatusUnauthorized)
	case errors.Is(err, services.ErrExpenseNotFound):
		http.Error(w, "Расход не найден", http.StatusNotFound)
	case errors.Is(err, services.ErrVehicleNotFound):
		http.Error(w, "ТС не найдено", http.StatusNotFound)
	case errors.Is(err, services.ErrReceiptNotFound):
		http.Error(w, "Чек не найден", http.StatusNotFound)
	default:
		log.Printf("[ExpenseHandler] Внутренняя ошибка для расхода ID %d пользователя %d: %v",
			expenseID, userID, err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}

// parseExpenseFilter разбирает параметры фильтрации из строки запроса.
// Неизвестные значения period и sort отклоняются с ошибкой валидации.
func parseExpenseFilter(r *http.Request) (models.ExpenseFilter, error) {
	q := r.URL.Query()

	filter := models.ExpenseFilter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Period:   q.Get("period"),
		Sort:     q.Get("sort"),
	}

	if filter.Category != "" && !models.ValidCategory(filter.Category) {
		return models.ExpenseFilter{}, errors.New("category: недопустимая категория")
	}

	switch filter.Period {
	case "", models.PeriodAll:
		filter.Period = models.PeriodAll
	case models.PeriodWeek, models.PeriodMonth, models.PeriodQuarter, models.PeriodYear:
	default:
		return models.ExpenseFilter{}, errors.New("period: недопустимое окно дат")
	}

	switch filter.Sort {
	case "":
		filter.Sort = models.SortDateDesc
	case models.SortDateDesc, models.SortDateAsc, models.SortAmountDesc, models.SortAmountAsc:
	default:
		return models.ExpenseFilter{}, errors.New("sort: недопустимый ключ сортировки")
	}

	if vehicleStr := q.Get("vehicle"); vehicleStr != "" {
		vehicleID, err := strconv.ParseInt(vehicleStr, 10, 64)
		if err != nil || vehicleID <= 0 {
			return models.ExpenseFilter{}, errors.New("vehicle: некорректный идентификатор ТС")
		}
		filter.VehicleID = vehicleID
	}

	return filter, nil
}
