package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/maynagashev/motormate/internal/models"
	"github.com/maynagashev/motormate/internal/repository"
)

// DashboardService определяет интерфейс для сводки главной страницы.
type DashboardService interface {
	GetDashboard(ctx context.Context, userID int64) (*models.Dashboard, error)
}

// Пороговые значения эвристик "здоровья" ТС.
const (
	insuranceWarnWindow = 30 * 24 * time.Hour  // Страховка истекает в ближайшие 30 дней
	serviceOverdueAfter = 180 * 24 * time.Hour // Последнее ТО было более полугода назад
)

// Убедимся, что dashboardService удовлетворяет интерфейсу DashboardService.
var _ DashboardService = (*dashboardService)(nil)

type dashboardService struct {
	vehicleRepo repository.VehicleRepository
	expenseRepo repository.ExpenseRepository
}

// NewDashboardService создает новый экземпляр сервиса дашборда.
func NewDashboardService(
	vehicleRepo repository.VehicleRepository,
	expenseRepo repository.ExpenseRepository,
) DashboardService {
	return &dashboardService{vehicleRepo: vehicleRepo, expenseRepo: expenseRepo}
}

// GetDashboard собирает сводку: общие суммы, суммы за текущий месяц,
// агрегаты по каждому ТС и эвристики его состояния.
func (s *dashboardService) GetDashboard(ctx context.Context, userID int64) (*models.Dashboard, error) {
	vehicles, err := s.vehicleRepo.ListVehiclesByUserID(ctx, userID)
	if err != nil {
		log.Printf("[DashboardService] Ошибка получения ТС пользователя %d: %v", userID, err)
		return nil, errors.New("внутренняя ошибка сервера при формировании сводки")
	}

	expenses, err := s.expenseRepo.ListExpensesByUserID(ctx, userID)
	if err != nil {
		log.Printf("[DashboardService] Ошибка получения расходов пользователя %d: %v", userID, err)
		return nil, errors.New("внутренняя ошибка сервера при формировании сводки")
	}

	now := time.Now()
	dashboard := &models.Dashboard{
		Vehicles:    make([]models.VehicleSummary, 0, len(vehicles)),
		GeneratedAt: now,
	}

	// Агрегаты по ТС за один проход по расходам
	totals := make(map[int64]float64, len(vehicles))
	counts := make(map[int64]int, len(vehicles))
	for _, e := range expenses {
		dashboard.Total += e.Amount
		if e.Date.Year() == now.Year() && e.Date.Month() == now.Month() {
			dashboard.ThisMonth += e.Amount
		}
		totals[e.VehicleID] += e.Amount
		counts[e.VehicleID]++
	}

	for i := range vehicles {
		v := &vehicles[i]
		health, issues := VehicleHealth(v, now)
		dashboard.Vehicles = append(dashboard.Vehicles, models.VehicleSummary{
			Vehicle:      v,
			Total:        totals[v.ID],
			ExpenseCount: counts[v.ID],
			Health:       health,
			HealthIssues: issues,
		})
	}

	return dashboard, nil
}

// VehicleHealth оценивает состояние ТС по простым эвристикам:
// истекшая или истекающая страховка, давно не проводившееся ТО, флаг активности.
// Возвращает итоговый статус и список найденных проблем.
func VehicleHealth(v *models.Vehicle, now time.Time) (string, []string) {
	if !v.IsActive {
		return models.HealthInactive, nil
	}

	var issues []string
	health := models.HealthOK

	if v.InsuranceExpiry != nil {
		switch {
		case v.InsuranceExpiry.Before(now):
			issues = append(issues, "страховка истекла")
			health = models.HealthAttention
		case v.InsuranceExpiry.Before(now.Add(insuranceWarnWindow)):
			issues = append(issues, "страховка истекает в течение 30 дней")
			if health == models.HealthOK {
				health = models.HealthWarning
			}
		}
	}

	if v.LastServiceDate != nil && now.Sub(*v.LastServiceDate) > serviceOverdueAfter {
		issues = append(issues, "давно не проводилось ТО")
		if health == models.HealthOK {
			health = models.HealthWarning
		}
	}

	return health, issues
}
