package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq" // Драйвер PostgreSQL

	"github.com/maynagashev/motormate/internal/handlers"
	appmiddleware "github.com/maynagashev/motormate/internal/middleware"
	"github.com/maynagashev/motormate/internal/repository"
	"github.com/maynagashev/motormate/internal/services"
	"github.com/maynagashev/motormate/internal/storage"
	"github.com/maynagashev/motormate/migrations"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 30 * time.Second

	minioUseSSL = false // Для локальной разработки
)

// Структура для хранения инициализированных зависимостей.
type dependencies struct {
	db               *sqlx.DB
	fileStorage      storage.FileStorage // Используем интерфейс
	authHandler      *handlers.AuthHandler
	vehicleHandler   *handlers.VehicleHandler
	expenseHandler   *handlers.ExpenseHandler
	dashboardHandler *handlers.DashboardHandler
	jwtSecret        string
}

// main - точка входа. Вызывает run и обрабатывает ошибку.
func main() {
	if err := run(); err != nil {
		log.Printf("Ошибка выполнения сервера: %v", err)
		os.Exit(1)
	}
}

// run содержит основную логику запуска сервера и возвращает ошибку.
func run() error {
	log.Println("Запуск сервера MotorMate...")

	// Загружаем .env, если он есть (удобно для локальной разработки)
	if err := godotenv.Load(); err != nil {
		log.Println("Файл .env не найден, используются переменные окружения")
	}

	cfg, err := parseFlags()
	if err != nil {
		return fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	// Инициализация зависимостей
	deps, err := setupDependencies(cfg)
	if err != nil {
		return fmt.Errorf("ошибка инициализации зависимостей: %w", err)
	}
	// Отложенное закрытие соединения с БД
	defer func() {
		if deps.db != nil {
			if closeErr := deps.db.Close(); closeErr != nil {
				log.Printf("Ошибка закрытия соединения с БД: %v", closeErr)
			}
		}
	}()

	// Настройка роутера
	r := setupRouter(deps)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	if cfg.useTLS() {
		log.Printf("Запуск HTTPS-сервера на порту %s...", cfg.Port)
		err = server.ListenAndServeTLS(cfg.CertFile, cfg.KeyFile)
	} else {
		log.Printf("Запуск HTTP-сервера на порту %s...", cfg.Port)
		err = server.ListenAndServe()
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("ошибка запуска сервера: %w", err)
	}
	return nil
}

// setupDependencies инициализирует и возвращает все необходимые зависимости сервера.
func setupDependencies(cfg *config) (*dependencies, error) {
	deps := &dependencies{jwtSecret: cfg.JWTSecret}
	var err error

	// 1. Подключение к БД и применение миграций
	deps.db, err = repository.NewPostgresDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации БД: %w", err)
	}
	if err = repository.RunMigrations(deps.db, migrations.Embed); err != nil {
		if dbCloseErr := deps.db.Close(); dbCloseErr != nil {
			log.Printf("Ошибка закрытия соединения с БД при ошибке миграций: %v", dbCloseErr)
		}
		return nil, fmt.Errorf("ошибка применения миграций: %w", err)
	}

	// 2. Инициализация клиента MinIO для хранения чеков
	minioCfg := storage.MinioConfig{
		Endpoint:        cfg.MinioEndpoint,
		AccessKeyID:     cfg.MinioUser,
		SecretAccessKey: cfg.MinioPassword,
		UseSSL:          minioUseSSL,
		BucketName:      cfg.MinioBucket,
	}
	deps.fileStorage, err = storage.NewMinioClient(minioCfg)
	if err != nil {
		if dbCloseErr := deps.db.Close(); dbCloseErr != nil {
			log.Printf("Ошибка закрытия соединения с БД при ошибке MinIO: %v", dbCloseErr)
		}
		return nil, fmt.Errorf("ошибка инициализации клиента MinIO: %w", err)
	}

	// 3. Создание репозиториев
	userRepo := repository.NewPostgresUserRepository(deps.db)
	vehicleRepo := repository.NewPostgresVehicleRepository(deps.db)
	expenseRepo := repository.NewPostgresExpenseRepository(deps.db)

	// 4. Создание сервисов
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	vehicleService := services.NewVehicleService(vehicleRepo)
	expenseService := services.NewExpenseService(expenseRepo, vehicleRepo, deps.fileStorage)
	dashboardService := services.NewDashboardService(vehicleRepo, expenseRepo)

	// 5. Создание обработчиков
	deps.authHandler = handlers.NewAuthHandler(authService)
	deps.vehicleHandler = handlers.NewVehicleHandler(vehicleService)
	deps.expenseHandler = handlers.NewExpenseHandler(expenseService)
	deps.dashboardHandler = handlers.NewDashboardHandler(dashboardService)

	return deps, nil
}

// setupRouter настраивает и возвращает роутер chi.
func setupRouter(deps *dependencies) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// --- Маршруты --- //
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong\n"))
	})

	// Определяем базовый маршрут /api
	r.Route("/api", func(r chi.Router) {
		// Публичные маршруты (регистрация, вход)
		r.Post("/auth/register", deps.authHandler.Register)
		r.Post("/auth/login", deps.authHandler.Login)

		// Приватные маршруты (требуют аутентификации)
		r.Group(func(r chi.Router) {
			// Применяем middleware аутентификации ко всей группе
			r.Use(appmiddleware.NewAuthenticator(deps.jwtSecret))

			// Маршруты транспортных средств
			r.Route("/vehicles", func(r chi.Router) {
				r.Post("/", deps.vehicleHandler.Create)
				r.Get("/", deps.vehicleHandler.List)
				r.Get("/{id}", deps.vehicleHandler.Get)
				r.Put("/{id}", deps.vehicleHandler.Update)
				r.Delete("/{id}", deps.vehicleHandler.Delete)
			})

			// Маршруты расходов
			r.Route("/expenses", func(r chi.Router) {
				r.Post("/", deps.expenseHandler.Create)
				r.Get("/", deps.expenseHandler.List)
				r.Get("/stats", deps.expenseHandler.Stats)
				r.Get("/{id}", deps.expenseHandler.Get)
				r.Put("/{id}", deps.expenseHandler.Update)
				r.Delete("/{id}", deps.expenseHandler.Delete)
				r.Post("/{id}/receipt", deps.expenseHandler.UploadReceipt)
				r.Get("/{id}/receipt", deps.expenseHandler.DownloadReceipt)
			})

			// Сводка главной страницы
			r.Get("/dashboard", deps.dashboardHandler.Get)
		})
	})
	return r
}
