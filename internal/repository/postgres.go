package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"saddleworks-backend/internal/models"
)

// PostgresOrderRepository is the swappable persistent implementation,
// selected when DATABASE_URL is set. The saddle snapshot and the notes are
// stored as JSONB so the snapshot semantics match the in-memory store.
type PostgresOrderRepository struct {
	db *sql.DB
}

func NewPostgresOrderRepository(connectionString string) (*PostgresOrderRepository, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresOrderRepository{db: db}, nil
}

const orderColumns = `id, order_number, customer_name, customer_email, bike_shop_name,
		saddle, fitting_file, special_requirements, status, order_date,
		estimated_completion, progress, notes`

func (r *PostgresOrderRepository) ListAll() ([]models.Order, error) {
	rows, err := r.db.Query(`
		SELECT ` + orderColumns + `
		FROM orders
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]models.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *PostgresOrderRepository) FindByID(id int) (*models.Order, error) {
	row := r.db.QueryRow(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = $1
	`, id)

	order, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

func (r *PostgresOrderRepository) Insert(order *models.Order) (*models.Order, error) {
	saddleJSON, err := json.Marshal(order.Saddle)
	if err != nil {
		return nil, fmt.Errorf("failed to encode saddle snapshot: %w", err)
	}
	notesJSON, err := json.Marshal(order.Notes)
	if err != nil {
		return nil, fmt.Errorf("failed to encode notes: %w", err)
	}

	err = r.db.QueryRow(`
		INSERT INTO orders (order_number, customer_name, customer_email, bike_shop_name,
			saddle, fitting_file, special_requirements, status, order_date,
			estimated_completion, progress, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`, order.OrderNumber, order.CustomerName, order.CustomerEmail, order.BikeShopName,
		saddleJSON, order.FittingFile, order.SpecialRequirements, order.Status,
		order.OrderDate, order.EstimatedCompletion, order.Progress, notesJSON,
	).Scan(&order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}

func (r *PostgresOrderRepository) Update(order *models.Order) error {
	notesJSON, err := json.Marshal(order.Notes)
	if err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}

	res, err := r.db.Exec(`
		UPDATE orders
		SET status = $1, progress = $2, notes = $3
		WHERE id = $4
	`, order.Status, order.Progress, notesJSON, order.ID)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *PostgresOrderRepository) Close() error {
	return r.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*models.Order, error) {
	var (
		order       models.Order
		saddleJSON  []byte
		notesJSON   []byte
		fittingFile sql.NullString
	)
	err := row.Scan(
		&order.ID, &order.OrderNumber, &order.CustomerName, &order.CustomerEmail,
		&order.BikeShopName, &saddleJSON, &fittingFile, &order.SpecialRequirements,
		&order.Status, &order.OrderDate, &order.EstimatedCompletion,
		&order.Progress, &notesJSON,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(saddleJSON, &order.Saddle); err != nil {
		return nil, fmt.Errorf("failed to decode saddle snapshot: %w", err)
	}
	order.Notes = make([]models.OrderNote, 0)
	if len(notesJSON) > 0 {
		if err := json.Unmarshal(notesJSON, &order.Notes); err != nil {
			return nil, fmt.Errorf("failed to decode notes: %w", err)
		}
	}
	if fittingFile.Valid {
		order.FittingFile = &fittingFile.String
	}
	return &order, nil
}

var _ OrderRepository = (*PostgresOrderRepository)(nil)
