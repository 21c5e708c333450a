package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/maynagashev/motormate/internal/middleware"
	"github.com/maynagashev/motormate/internal/services"
)

// DashboardHandler обрабатывает HTTP-запросы сводки главной страницы.
type DashboardHandler struct {
	dashboardService services.DashboardService
}

// NewDashboardHandler создает новый экземпляр DashboardHandler.
func NewDashboardHandler(ds services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: ds}
}

// Get обрабатывает GET запрос на получение сводки пользователя.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[DashboardHandler:Get] Не удалось получить userID из контекста")
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	dashboard, err := h.dashboardService.GetDashboard(r.Context(), userID)
	if err != nil {
		log.Printf("[DashboardHandler:Get] Внутренняя ошибка для пользователя %d: %v", userID, err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(dashboard); err != nil {
		log.Printf("[DashboardHandler:Get] Ошибка кодирования ответа: %v", err)
	}
}
