package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maynagashev/motormate/internal/models"
)

// newMockDB создает sqlx-обертку над go-sqlmock для тестов репозиториев.
func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestPostgresUserRepository_CreateUser(t *testing.T) {
	ctx := context.Background()
	insertQuery := regexp.QuoteMeta(`INSERT INTO users (email, password_hash) VALUES ($1, $2) RETURNING id`)

	t.Run("Успешное создание", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgresUserRepository(db)

		user := &models.User{Email: "test@example.com", PasswordHash: "hash"}
		mock.ExpectQuery(insertQuery).
			WithArgs(user.Email, user.PasswordHash).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

		userID, err := repo.CreateUser(ctx, user)

		require.NoError(t, err)
		assert.Equal(t, int64(1), userID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Нарушение уникальности email", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgresUserRepository(db)

		user := &models.User{Email: "taken@example.com", PasswordHash: "hash"}
		mock.ExpectQuery(insertQuery).
			WithArgs(user.Email, user.PasswordHash).
			WillReturnError(&pq.Error{Code: pgUniqueViolationCode})

		userID, err := repo.CreateUser(ctx, user)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmailTaken)
		assert.Zero(t, userID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Прочая ошибка БД", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgresUserRepository(db)

		user := &models.User{Email: "test@example.com", PasswordHash: "hash"}
		mock.ExpectQuery(insertQuery).
			WithArgs(user.Email, user.PasswordHash).
			WillReturnError(errors.New("connection refused"))

		userID, err := repo.CreateUser(ctx, user)

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrEmailTaken)
		assert.Zero(t, userID)
	})
}

func TestPostgresUserRepository_GetUserByEmail(t *testing.T) {
	ctx := context.Background()
	selectQuery := regexp.QuoteMeta(`SELECT id, email, password_hash, created_at, updated_at FROM users WHERE email=$1`)
	userColumns := []string{"id", "email", "password_hash", "created_at", "updated_at"}

	t.Run("Пользователь найден", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgresUserRepository(db)

		now := time.Now()
		mock.ExpectQuery(selectQuery).
			WithArgs("test@example.com").
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(int64(1), "test@example.com", "hash", now, now))

		user, err := repo.GetUserByEmail(ctx, "test@example.com")

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "test@example.com", user.Email)
		assert.Equal(t, "hash", user.PasswordHash)
	})

	t.Run("Пользователь не найден", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgresUserRepository(db)

		mock.ExpectQuery(selectQuery).
			WithArgs("unknown@example.com").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetUserByEmail(ctx, "unknown@example.com")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestPostgresUserRepository_GetUserByID(t *testing.T) {
	ctx := context.Background()
	selectQuery := regexp.QuoteMeta(`SELECT id, email, password_hash, created_at, updated_at FROM users WHERE id=$1`)

	t.Run("Пользователь найден", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgresUserRepository(db)

		now := time.Now()
		mock.ExpectQuery(selectQuery).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at", "updated_at"}).
				AddRow(int64(42), "test@example.com", "hash", now, now))

		user, err := repo.GetUserByID(ctx, 42)

		require.NoError(t, err)
		assert.Equal(t, int64(42), user.ID)
	})

	t.Run("Пользователь не найден", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgresUserRepository(db)

		mock.ExpectQuery(selectQuery).
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetUserByID(ctx, 99)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, user)
	})
}
