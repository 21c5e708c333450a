package services

import (
	"sort"
	"strings"
	"time"

	"github.com/maynagashev/motormate/internal/models"
)

// FilterExpenses применяет к списку расходов критерии фильтрации и сортировки,
// не изменяя исходный срез. Параметр now задает точку отсчета для относительных
// окон дат (week/month/quarter/year).
func FilterExpenses(expenses []models.Expense, filter models.ExpenseFilter, now time.Time) []models.Expense {
	filtered := make([]models.Expense, 0, len(expenses))

	// Нижняя граница окна дат; нулевое значение — без ограничения
	var since time.Time
	switch filter.Period {
	case models.PeriodWeek:
		since = now.AddDate(0, 0, -7)
	case models.PeriodMonth:
		since = now.AddDate(0, -1, 0)
	case models.PeriodQuarter:
		since = now.AddDate(0, -3, 0)
	case models.PeriodYear:
		since = now.AddDate(-1, 0, 0)
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))

	for _, e := range expenses {
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Description), search) &&
			!strings.Contains(strings.ToLower(e.Category), search) {
			continue
		}
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		if filter.VehicleID != 0 && e.VehicleID != filter.VehicleID {
			continue
		}
		if !since.IsZero() && e.Date.Before(since) {
			continue
		}
		filtered = append(filtered, e)
	}

	// Стабильная сортировка по единственному выбранному компаратору,
	// без вторичного ключа
	switch filter.Sort {
	case models.SortDateAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Date.Before(filtered[j].Date)
		})
	case models.SortAmountDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Amount > filtered[j].Amount
		})
	case models.SortAmountAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Amount < filtered[j].Amount
		})
	default: // models.SortDateDesc — сортировка по умолчанию
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Date.After(filtered[j].Date)
		})
	}

	return filtered
}

// ComputeStats вычисляет статистику по уже отфильтрованному списку расходов.
// "Текущий месяц" определяется по календарному месяцу параметра now.
func ComputeStats(expenses []models.Expense, now time.Time) *models.ExpenseStats {
	stats := &models.ExpenseStats{
		Count:      len(expenses),
		ByCategory: make(map[string]models.CategoryStat),
	}

	for _, e := range expenses {
		stats.Total += e.Amount

		if e.Date.Year() == now.Year() && e.Date.Month() == now.Month() {
			stats.ThisMonth += e.Amount
		}

		cat := stats.ByCategory[e.Category]
		cat.Total += e.Amount
		cat.Count++
		stats.ByCategory[e.Category] = cat
	}

	if stats.Count > 0 {
		stats.Average = stats.Total / float64(stats.Count)
	}

	return stats
}
