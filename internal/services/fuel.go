package services

import "math"

// round2 округляет значение до двух знаков после запятой.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CalculateMileage вычисляет пробег на литр топлива по дельте одометра.
// Возвращает nil, если данных недостаточно: любое из значений отсутствует,
// odometerAfter <= odometerBefore или fuelLitres <= 0.
func CalculateMileage(odometerBefore, odometerAfter *int64, fuelLitres *float64) *float64 {
	if odometerBefore == nil || odometerAfter == nil || fuelLitres == nil {
		return nil
	}
	if *odometerAfter <= *odometerBefore || *fuelLitres <= 0 {
		return nil
	}

	mileage := round2(float64(*odometerAfter-*odometerBefore) / *fuelLitres)
	return &mileage
}

// DeriveAmount вычисляет сумму расхода из цены за литр и количества литров.
// Возвращает (сумма, true), если оба значения заданы и положительны,
// иначе (0, false) — в этом случае используется сумма, указанная клиентом.
func DeriveAmount(pricePerLitre, litres *float64) (float64, bool) {
	if pricePerLitre == nil || litres == nil {
		return 0, false
	}
	if *pricePerLitre <= 0 || *litres <= 0 {
		return 0, false
	}
	return round2(*pricePerLitre * *litres), true
}
