package services

import (
	"context"
	"errors"
	"testing"

	"blogapi/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	return gormDB, mock
}

func TestUserService_CreateUser_UniqueRaceIsConflict(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewUserService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
	mock.ExpectRollback()

	_, err := svc.CreateUser(context.Background(), &models.CreateUserRequest{Username: "alice"})
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindConflict), "got %v", err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_GetAllUsers_StoreFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewUserService(db)

	mock.ExpectQuery(`SELECT \* FROM "users" ORDER BY id`).
		WillReturnError(errors.New("connection reset by peer"))

	_, err := svc.GetAllUsers(context.Background())
	require.Error(t, err)
	_, isAppErr := models.AsAppError(err)
	assert.False(t, isAppErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostService_DeletePost_RollsBackOnFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewPostService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "posts" WHERE "posts"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "user_id"}).AddRow(3, "t", "c", 1))
	mock.ExpectExec(`DELETE FROM "comments" WHERE post_id = \$1`).
		WillReturnError(errors.New("lock timeout"))
	mock.ExpectRollback()

	err := svc.DeletePost(context.Background(), 3)
	assert.EqualError(t, err, "lock timeout")
	assert.NoError(t, mock.ExpectationsWereMet())
}
