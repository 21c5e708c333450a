package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/maynagashev/motormate/internal/middleware"
	"github.com/maynagashev/motormate/internal/models"
	"github.com/maynagashev/motormate/internal/services"
)

// VehicleHandler обрабатывает HTTP-запросы, связанные с транспортными средствами.
type VehicleHandler struct {
	vehicleService services.VehicleService
}

// NewVehicleHandler создает новый экземпляр VehicleHandler.
func NewVehicleHandler(vs services.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vs}
}

// Create обрабатывает POST запрос на создание ТС.
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[VehicleHandler:Create] Не удалось получить userID из контекста")
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	var req models.CreateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[VehicleHandler:Create] Ошибка декодирования запроса: %v", err)
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	vehicle, err := h.vehicleService.Create(r.Context(), userID, &req)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			http.Error(w, validationErr.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("[VehicleHandler:Create] Внутренняя ошибка для пользователя %d: %v", userID, err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err = json.NewEncoder(w).Encode(vehicle); err != nil {
		log.Printf("[VehicleHandler:Create] Ошибка кодирования ответа: %v", err)
	}
}

// List обрабатывает GET запрос на получение всех ТС пользователя.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[VehicleHandler:List] Не удалось получить userID из контекста")
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	vehicles, err := h.vehicleService.List(r.Context(), userID)
	if err != nil {
		log.Printf("[VehicleHandler:List] Внутренняя ошибка для пользователя %d: %v", userID, err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(vehicles); err != nil {
		log.Printf("[VehicleHandler:List] Ошибка кодирования ответа: %v", err)
	}
}

// Get обрабатывает GET запрос на получение одного ТС.
func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[VehicleHandler:Get] Не удалось получить userID из контекста")
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	vehicleID, err := parseIDParam(r)
	if err != nil {
		// Некорректный идентификатор неотличим от несуществующего
		http.Error(w, "ТС не найдено", http.StatusNotFound)
		return
	}

	vehicle, err := h.vehicleService.Get(r.Context(), userID, vehicleID)
	if err != nil {
		h.writeVehicleError(w, userID, vehicleID, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(vehicle); err != nil {
		log.Printf("[VehicleHandler:Get] Ошибка кодирования ответа: %v", err)
	}
}

// Update обрабатывает PUT запрос на частичное обновление ТС.
func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[VehicleHandler:Update] Не удалось получить userID из контекста")
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	vehicleID, err := parseIDParam(r)
	if err != nil {
		http.Error(w, "ТС не найдено", http.StatusNotFound)
		return
	}

	var req models.UpdateVehicleRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[VehicleHandler:Update] Ошибка декодирования запроса: %v", err)
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	vehicle, err := h.vehicleService.Update(r.Context(), userID, vehicleID, &req)
	if err != nil {
		h.writeVehicleError(w, userID, vehicleID, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(vehicle); err != nil {
		log.Printf("[VehicleHandler:Update] Ошибка кодирования ответа: %v", err)
	}
}

// Delete обрабатывает DELETE запрос на удаление ТС.
func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[VehicleHandler:Delete] Не удалось получить userID из контекста")
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	vehicleID, err := parseIDParam(r)
	if err != nil {
		http.Error(w, "ТС не найдено", http.StatusNotFound)
		return
	}

	if err = h.vehicleService.Delete(r.Context(), userID, vehicleID); err != nil {
		h.writeVehicleError(w, userID, vehicleID, err)
		return
	}

	w.WriteHeader(http.StatusNoContent) // 204 No Content - успешное удаление без тела ответа
}

// writeVehicleError сопоставляет ошибки сервиса ТС с HTTP-статусами.
func (h *VehicleHandler) writeVehicleError(w http.ResponseWriter, userID, vehicleID int64, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
	case errors.Is(err, services.ErrNotOwned):
		log.Printf("[VehicleHandler] Пользователь %d обратился к чужому ТС ID %d", userID, vehicleID)
		http.Error(w, "Нет доступа", http.StatusUnauthorized)
	case errors.Is(err, services.ErrVehicleNotFound):
		http.Error(w, "ТС не найдено", http.StatusNotFound)
	default:
		log.Printf("[VehicleHandler] Внутренняя ошибка для ТС ID %d пользователя %d: %v", vehicleID, userID, err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}

// parseIDParam извлекает числовой параметр {id} из URL запроса.
func parseIDParam(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("некорректный идентификатор")
	}
	return id, nil
}
