package main

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maynagashev/motormate/internal/handlers"
)

// TestSetupRouter проверяет, что все ожидаемые маршруты зарегистрированы.
// Сами обработчики не вызываются, поэтому сервисы не нужны.
func TestSetupRouter(t *testing.T) {
	deps := &dependencies{
		authHandler:      handlers.NewAuthHandler(nil),
		vehicleHandler:   handlers.NewVehicleHandler(nil),
		expenseHandler:   handlers.NewExpenseHandler(nil),
		dashboardHandler: handlers.NewDashboardHandler(nil),
		jwtSecret:        "test-secret",
	}

	r := setupRouter(deps)
	require.NotNil(t, r)

	// Собираем все зарегистрированные маршруты
	registered := make(map[string]bool)
	err := chi.Walk(r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	require.NoError(t, err)

	expectedRoutes := []string{
		"GET /ping",
		"POST /api/auth/register",
		"POST /api/auth/login",
		"POST /api/vehicles/",
		"GET /api/vehicles/",
		"GET /api/vehicles/{id}",
		"PUT /api/vehicles/{id}",
		"DELETE /api/vehicles/{id}",
		"POST /api/expenses/",
		"GET /api/expenses/",
		"GET /api/expenses/stats",
		"GET /api/expenses/{id}",
		"PUT /api/expenses/{id}",
		"DELETE /api/expenses/{id}",
		"POST /api/expenses/{id}/receipt",
		"GET /api/expenses/{id}/receipt",
		"GET /api/dashboard",
	}

	for _, route := range expectedRoutes {
		assert.True(t, registered[route], "маршрут %s не зарегистрирован", route)
	}
}
