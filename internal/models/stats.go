package models

import "time"

// Окна относительной фильтрации по дате.
const (
	PeriodWeek    = "week"
	PeriodMonth   = "month"
	PeriodQuarter = "quarter"
	PeriodYear    = "year"
	PeriodAll     = "all"
)

// Ключи сортировки списка расходов.
const (
	SortDateDesc   = "date-desc"
	SortDateAsc    = "date-asc"
	SortAmountDesc = "amount-desc"
	SortAmountAsc  = "amount-asc"
)

// ExpenseFilter описывает критерии фильтрации и сортировки списка расходов.
// Пустые значения означают отсутствие соответствующего фильтра.
type ExpenseFilter struct {
	Search    string // Подстрока (без учета регистра) по описанию и категории
	Category  string
	VehicleID int64  // 0 — все ТС
	Period    string // week|month|quarter|year|all
	Sort      string // date-desc (по умолчанию) | date-asc | amount-desc | amount-asc
}

// CategoryStat содержит агрегаты по одной категории.
type CategoryStat struct {
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// ExpenseStats содержит статистику, вычисленную по отфильтрованному списку.
type ExpenseStats struct {
	Total      float64                 `json:"total"`
	ThisMonth  float64                 `json:"this_month"`
	Average    float64                 `json:"average"`
	Count      int                     `json:"count"`
	ByCategory map[string]CategoryStat `json:"by_category"`
}

// Статусы "здоровья" ТС для дашборда.
const (
	HealthOK       = "ok"
	HealthWarning  = "warning"
	HealthAttention = "attention"
	HealthInactive = "inactive"
)

// VehicleSummary содержит агрегаты по одному ТС для дашборда.
type VehicleSummary struct {
	Vehicle      *Vehicle `json:"vehicle"`
	Total        float64  `json:"total"`
	ExpenseCount int      `json:"expense_count"`
	Health       string   `json:"health"`
	HealthIssues []string `json:"health_issues,omitempty"`
}

// Dashboard представляет сводку для главной страницы.
type Dashboard struct {
	Total       float64          `json:"total"`
	ThisMonth   float64          `json:"this_month"`
	Vehicles    []VehicleSummary `json:"vehicles"`
	GeneratedAt time.Time        `json:"generated_at"`
}
