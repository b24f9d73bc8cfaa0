package storage

import (
	"database/sql"
	"embed"
	"errors"
	"log"
	"time"

	"storefront/cmd/storefront/config"
	"storefront/cmd/storefront/models"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type StorageService interface {
	HashPassword(password string) (string, error)
	CheckPasswordHash(password, hash string) bool
	SaveLoginPassword(login, hashedPassword string) bool
	GetHashedPasswordByLogin(login string) string
	SaveUID(userID, login string) error
	GetLoginByUID(userID string) string
	AddOrder(clientID string, order models.Order) error
	GetOrders(clientID string) ([]models.Order, error)
	GetUnsettledOrders(limit int) ([]string, error)
	UpdatePaymentStatus(orderID, status string) error
	UpdateOrderStatus(orderID, status string) error
}

type StorageDB struct {
	DBConn *sql.DB
}

var (
	ErrOpenDBConnection = errors.New("error opening database connection")
	ErrConnecting       = errors.New("error connecting to database")
	ErrOrderNotFound    = errors.New("error order not found")
)

//go:embed db/migrations/*.sql
var embedMigrations embed.FS

func UpDBMigrations(db *sql.DB) {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		log.Printf("error setting SQL dialect\n")
	}

	if err := goose.Up(db, "db/migrations"); err != nil {
		log.Printf("error migration %s\n", err.Error())
	}
}

func NewStorage(c *config.Config) (*StorageDB, error) {
	dbConn, err := sql.Open("pgx", c.DBConnection)
	if err != nil {
		return nil, ErrOpenDBConnection
	}

	if err := dbConn.Ping(); err != nil {
		return nil, ErrConnecting
	}

	UpDBMigrations(dbConn)

	return &StorageDB{
		DBConn: dbConn,
	}, nil
}

func (s *StorageDB) SaveLoginPassword(login, hashedPassword string) bool {
	_, err := s.DBConn.Exec("INSERT INTO users (login, password) VALUES ($1, $2)", login, hashedPassword)
	return err == nil
}

func (s *StorageDB) GetHashedPasswordByLogin(login string) string {
	var hashedPassword string
	_ = s.DBConn.QueryRow("SELECT password FROM users WHERE login=$1", login).Scan(&hashedPassword)
	return hashedPassword
}

func (s *StorageDB) SaveUID(userID, login string) error {
	_, err := s.DBConn.Exec("UPDATE users SET uid = $1 WHERE login = $2", userID, login)
	return err
}

func (s *StorageDB) GetLoginByUID(userID string) string {
	var login string
	_ = s.DBConn.QueryRow("SELECT login FROM users WHERE uid=$1", userID).Scan(&login)
	return login
}

var insertNewOrder = "INSERT INTO orders (id, client_id, status, payment_status, total_amount, created_at) VALUES ($1, $2, $3, $4, $5, $6)"

func (s *StorageDB) AddOrder(clientID string, order models.Order) error {
	createdAt, err := time.Parse(time.RFC3339, order.CreatedAt)
	if err != nil {
		createdAt = time.Now()
	}

	_, err = s.DBConn.Exec(insertNewOrder,
		order.OrderID, clientID, order.Status, order.PaymentStatus, order.TotalAmount, createdAt)
	return err
}

// GetOrders returns a client's orders newest first. The result ordering
// is the contract with the order-history view, which renders rows
// exactly as returned.
func (s *StorageDB) GetOrders(clientID string) ([]models.Order, error) {
	rows, err := s.DBConn.Query(`
		SELECT id, status, payment_status, total_amount, created_at
		FROM orders
		WHERE client_id = $1
		ORDER BY created_at DESC`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		var createdAt time.Time
		if err := rows.Scan(&o.OrderID, &o.Status, &o.PaymentStatus, &o.TotalAmount, &createdAt); err != nil {
			return nil, err
		}
		o.CreatedAt = createdAt.Format(time.RFC3339)
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// GetUnsettledOrders lists order ids whose payment status is still
// pending, for the payment reconciliation workers.
func (s *StorageDB) GetUnsettledOrders(limit int) ([]string, error) {
	rows, err := s.DBConn.Query(`
		SELECT id FROM orders
		WHERE payment_status = 'PENDING'
		ORDER BY created_at
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (s *StorageDB) UpdatePaymentStatus(orderID, status string) error {
	res, err := s.DBConn.Exec("UPDATE orders SET payment_status = $1 WHERE id = $2", status, orderID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (s *StorageDB) UpdateOrderStatus(orderID, status string) error {
	res, err := s.DBConn.Exec("UPDATE orders SET status = $1 WHERE id = $2", status, orderID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrOrderNotFound
	}
	return nil
}
