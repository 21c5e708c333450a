package models

import "time"

// Категории расходов.
const (
	CategoryFuel        = "fuel"
	CategoryMaintenance = "maintenance"
	CategoryService     = "service"
	CategoryInsurance   = "insurance"
	CategoryOther       = "other"
)

// Статусы расхода.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
)

// ValidCategory проверяет, что категория входит в допустимый набор.
func ValidCategory(category string) bool {
	switch category {
	case CategoryFuel, CategoryMaintenance, CategoryService, CategoryInsurance, CategoryOther:
		return true
	}
	return false
}

// ValidStatus проверяет, что статус входит в допустимый набор.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusProcessing, StatusCompleted:
		return true
	}
	return false
}

// Expense представляет одну запись о расходе, привязанную к ТС и пользователю.
// Поле calculated_mileage является производным (вычисляется сервером из
// показаний одометра и залитых литров) и никогда не принимается от клиента.
type Expense struct {
	ID                int64      `db:"id" json:"id"`
	UserID            int64      `db:"user_id" json:"user_id"`
	VehicleID         int64      `db:"vehicle_id" json:"vehicle_id"`
	Category          string     `db:"category" json:"category"`
	Amount            float64    `db:"amount" json:"amount"`
	Date              time.Time  `db:"date" json:"date"`
	Odometer          *int64     `db:"odometer" json:"odometer,omitempty"`
	FuelPricePerLitre *float64   `db:"fuel_price_per_litre" json:"fuel_price_per_litre,omitempty"`
	FuelLitres        *float64   `db:"fuel_litres" json:"fuel_litres,omitempty"`
	OdometerBefore    *int64     `db:"odometer_before" json:"odometer_before,omitempty"`
	OdometerAfter     *int64     `db:"odometer_after" json:"odometer_after,omitempty"`
	CalculatedMileage *float64   `db:"calculated_mileage" json:"calculated_mileage,omitempty"`
	Description       string     `db:"description" json:"description"`
	Notes             string     `db:"notes" json:"notes"`
	Status            string     `db:"status" json:"status"`
	ReceiptObjectKey  *string    `db:"receipt_object_key" json:"-"` // Ключ чека в MinIO, наружу не отдаем
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`
}

// HasReceipt сообщает, загружен ли для расхода чек.
func (e *Expense) HasReceipt() bool {
	return e.ReceiptObjectKey != nil && *e.ReceiptObjectKey != ""
}

// CreateExpenseRequest представляет тело запроса на создание расхода.
// Поле calculated_mileage отсутствует намеренно: оно всегда вычисляется сервером.
type CreateExpenseRequest struct {
	VehicleID         int64      `json:"vehicle_id"`
	Category          string     `json:"category"`
	Amount            float64    `json:"amount"`
	Date              *time.Time `json:"date"`
	Odometer          *int64     `json:"odometer"`
	FuelPricePerLitre *float64   `json:"fuel_price_per_litre"`
	FuelLitres        *float64   `json:"fuel_litres"`
	OdometerBefore    *int64     `json:"odometer_before"`
	OdometerAfter     *int64     `json:"odometer_after"`
	Description       string     `json:"description"`
	Notes             string     `json:"notes"`
	Status            string     `json:"status"`
}

// UpdateExpenseRequest представляет тело запроса на частичное обновление расхода.
// Nil-поля не изменяются.
type UpdateExpenseRequest struct {
	VehicleID         *int64     `json:"vehicle_id"`
	Category          *string    `json:"category"`
	Amount            *float64   `json:"amount"`
	Date              *time.Time `json:"date"`
	Odometer          *int64     `json:"odometer"`
	FuelPricePerLitre *float64   `json:"fuel_price_per_litre"`
	FuelLitres        *float64   `json:"fuel_litres"`
	OdometerBefore    *int64     `json:"odometer_before"`
	OdometerAfter     *int64     `json:"odometer_after"`
	Description       *string    `json:"description"`
	Notes             *string    `json:"notes"`
	Status            *string    `json:"status"`
}
