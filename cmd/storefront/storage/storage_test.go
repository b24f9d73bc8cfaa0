//go:build unit
// +build unit

package storage_test

import (
	"testing"
	"time"

	"storefront/cmd/storefront/models"
	"storefront/cmd/storefront/storage"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_HashPassword(t *testing.T) {
	s := &storage.StorageDB{}
	password := "secret"
	hashedPassword, err := s.HashPassword(password)

	require.NoError(t, err)
	assert.NotEqual(t, "", hashedPassword)
	assert.True(t, s.CheckPasswordHash(password, hashedPassword))
}

func Test_SaveLoginPassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := &storage.StorageDB{DBConn: db}

	mock.ExpectExec("INSERT INTO users").
		WithArgs("testuser", "testuser_hashed").
		WillReturnResult(sqlmock.NewResult(1, 1))

	ok := s.SaveLoginPassword("testuser", "testuser_hashed")

	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_AddOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := &storage.StorageDB{DBConn: db}

	order := models.Order{
		OrderID:       "a81bc81b-dead-4e5d-abff-90865d1e13b1",
		Status:        "PENDING",
		PaymentStatus: "PENDING",
		TotalAmount:   19.5,
		CreatedAt:     "2024-03-07T09:30:00Z",
	}

	mock.ExpectExec("INSERT INTO orders").
		WithArgs(order.OrderID, "client-1", order.Status, order.PaymentStatus, order.TotalAmount, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = s.AddOrder("client-1", order)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_GetOrders_PreservesRowOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := &storage.StorageDB{DBConn: db}

	later := time.Date(2024, 3, 7, 9, 30, 0, 0, time.UTC)
	earlier := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "status", "payment_status", "total_amount", "created_at"}).
		AddRow("order-2", "PROCESSING", "PAID", 42.0, later).
		AddRow("order-1", "DELIVERED", "PAID", 19.5, earlier)

	mock.ExpectQuery("SELECT id, status, payment_status, total_amount, created_at").
		WithArgs("client-1").
		WillReturnRows(rows)

	orders, err := s.GetOrders("client-1")

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "order-2", orders[0].OrderID)
	assert.Equal(t, "order-1", orders[1].OrderID)
	assert.Equal(t, "2024-03-07T09:30:00Z", orders[0].CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_GetOrders_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := &storage.StorageDB{DBConn: db}

	rows := sqlmock.NewRows([]string{"id", "status", "payment_status", "total_amount", "created_at"})
	mock.ExpectQuery("SELECT id, status, payment_status, total_amount, created_at").
		WithArgs("client-9").
		WillReturnRows(rows)

	orders, err := s.GetOrders("client-9")

	require.NoError(t, err)
	assert.Empty(t, orders)
}

func Test_GetUnsettledOrders(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := &storage.StorageDB{DBConn: db}

	rows := sqlmock.NewRows([]string{"id"}).AddRow("order-1").AddRow("order-2")
	mock.ExpectQuery("SELECT id FROM orders").
		WithArgs(5).
		WillReturnRows(rows)

	ids, err := s.GetUnsettledOrders(5)

	require.NoError(t, err)
	assert.Equal(t, []string{"order-1", "order-2"}, ids)
}

func Test_UpdatePaymentStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := &storage.StorageDB{DBConn: db}

	mock.ExpectExec("UPDATE orders SET payment_status").
		WithArgs("PAID", "order-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = s.UpdatePaymentStatus("order-1", "PAID")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_UpdatePaymentStatus_UnknownOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := &storage.StorageDB{DBConn: db}

	mock.ExpectExec("UPDATE orders SET payment_status").
		WithArgs("PAID", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = s.UpdatePaymentStatus("missing", "PAID")

	assert.ErrorIs(t, err, storage.ErrOrderNotFound)
}
