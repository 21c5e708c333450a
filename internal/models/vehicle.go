package models

import "time"

// Vehicle представляет транспортное средство пользователя.
// Каждое ТС принадлежит ровно одному пользователю (поле user_id),
// на него могут ссылаться ноль и более расходов.
type Vehicle struct {
	ID              int64      `db:"id" json:"id"`
	UserID          int64      `db:"user_id" json:"user_id"`
	Name            string     `db:"name" json:"name"`
	Make            string     `db:"make" json:"make"`
	Model           string     `db:"model" json:"model"`
	Year            int        `db:"year" json:"year"`
	VIN             string     `db:"vin" json:"vin"`
	RegistrationNo  string     `db:"registration_no" json:"registration_no"`
	PurchaseDate    *time.Time `db:"purchase_date" json:"purchase_date,omitempty"`
	Color           *string    `db:"color" json:"color,omitempty"`
	FuelType        string     `db:"fuel_type" json:"fuel_type"`
	Odometer        *int64     `db:"odometer" json:"odometer,omitempty"`
	TankCapacity    *float64   `db:"tank_capacity" json:"tank_capacity,omitempty"`
	InsuranceExpiry *time.Time `db:"insurance_expiry" json:"insurance_expiry,omitempty"`
	LastServiceDate *time.Time `db:"last_service_date" json:"last_service_date,omitempty"`
	IsActive        bool       `db:"is_active" json:"is_active"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

// CreateVehicleRequest представляет тело запроса на создание ТС.
type CreateVehicleRequest struct {
	Name            string     `json:"name"`
	Make            string     `json:"make"`
	Model           string     `json:"model"`
	Year            int        `json:"year"`
	VIN             string     `json:"vin"`
	RegistrationNo  string     `json:"registration_no"`
	PurchaseDate    *time.Time `json:"purchase_date"`
	Color           *string    `json:"color"`
	FuelType        string     `json:"fuel_type"`
	Odometer        *int64     `json:"odometer"`
	TankCapacity    *float64   `json:"tank_capacity"`
	InsuranceExpiry *time.Time `json:"insurance_expiry"`
	LastServiceDate *time.Time `json:"last_service_date"`
}

// UpdateVehicleRequest представляет тело запроса на частичное обновление ТС.
// Nil-поля не изменяются (семантика PATCH поверх PUT, как в исходном API).
type UpdateVehicleRequest struct {
	Name            *string    `json:"name"`
	Make            *string    `json:"make"`
	Model           *string    `json:"model"`
	Year            *int       `json:"year"`
	VIN             *string    `json:"vin"`
	RegistrationNo  *string    `json:"registration_no"`
	PurchaseDate    *time.Time `json:"purchase_date"`
	Color           *string    `json:"color"`
	FuelType        *string    `json:"fuel_type"`
	Odometer        *int64     `json:"odometer"`
	TankCapacity    *float64   `json:"tank_capacity"`
	InsuranceExpiry *time.Time `json:"insurance_expiry"`
	LastServiceDate *time.Time `json:"last_service_date"`
	IsActive        *bool      `json:"is_active"`
}
