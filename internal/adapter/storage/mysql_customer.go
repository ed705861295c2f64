package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rl1809/pos-backend/internal/core/domain"
)

const customerColumns = `id, customer_name, customer_address, gender, birth_date, created_at, updated_at`

func (m *MySQLAdapter) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		var c domain.Customer
		if err := scanCustomer(rows, &c); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (m *MySQLAdapter) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	var c domain.Customer
	row := m.db.QueryRowContext(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = ?`, id)
	if err := scanCustomer(row, &c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "Customer"}
		}
		return nil, fmt.Errorf("query customer: %w", err)
	}
	return &c, nil
}

func (m *MySQLAdapter) CreateCustomer(ctx context.Context, c *domain.Customer) error {
	now := time.Now().UTC().Truncate(time.Second)
	c.CreatedAt, c.UpdatedAt = now, now

	_, err := m.db.ExecContext(ctx, `
		INSERT INTO customers (id, customer_name, customer_address, gender, birth_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Address, c.Gender, c.BirthDate, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

func (m *MySQLAdapter) UpdateCustomer(ctx context.Context, id string, u domain.CustomerUpdate) (*domain.Customer, error) {
	if _, err := m.GetCustomer(ctx, id); err != nil {
		return nil, err
	}
	if u.Empty() {
		return m.GetCustomer(ctx, id)
	}

	set := []string{}
	args := []any{}
	if u.Name != nil {
		set = append(set, "customer_name = ?")
		args = append(args, *u.Name)
	}
	if u.Address != nil {
		set = append(set, "customer_address = ?")
		args = append(args, *u.Address)
	}
	if u.Gender != nil {
		set = append(set, "gender = ?")
		args = append(args, *u.Gender)
	}
	if u.BirthDate != nil {
		set = append(set, "birth_date = ?")
		args = append(args, *u.BirthDate)
	}
	set = append(set, "updated_at = ?")
	args = append(args, time.Now().UTC().Truncate(time.Second), id)

	_, err := m.db.ExecContext(ctx, `UPDATE customers SET `+strings.Join(set, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return m.GetCustomer(ctx, id)
}

func (m *MySQLAdapter) DeleteCustomer(ctx context.Context, id string) error {
	result, err := m.db.ExecContext(ctx, `DELETE FROM customers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return &domain.NotFoundError{Entity: "Customer"}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner, c *domain.Customer) error {
	return row.Scan(&c.ID, &c.Name, &c.Address, &c.Gender, &c.BirthDate, &c.CreatedAt, &c.UpdatedAt)
}
