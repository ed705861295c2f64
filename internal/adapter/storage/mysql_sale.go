package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rl1809/pos-backend/internal/core/domain"
)

const saleSelect = `
	SELECT s.id, s.customer_id, s.product_id, s.order_date, s.quantity, s.total_price, s.created_at, s.updated_at,
	       c.id, c.customer_name, c.customer_address, c.gender, c.birth_date, c.created_at, c.updated_at,
	       p.id, p.product_code, p.product_name, p.stock, p.price, p.created_at, p.updated_at
	FROM sales s
	JOIN customers c ON c.id = s.customer_id
	JOIN products p ON p.id = s.product_id`

func (m *MySQLAdapter) ListSales(ctx context.Context) ([]domain.Sale, error) {
	rows, err := m.db.QueryContext(ctx, saleSelect+` ORDER BY s.id`)
	if err != nil {
		return nil, fmt.Errorf("query sales: %w", err)
	}
	defer rows.Close()

	sales := []domain.Sale{}
	for rows.Next() {
		var s domain.Sale
		if err := scanSale(rows, &s); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

func (m *MySQLAdapter) GetSale(ctx context.Context, id int64) (*domain.Sale, error) {
	var s domain.Sale
	row := m.db.QueryRowContext(ctx, saleSelect+` WHERE s.id = ?`, id)
	if err := scanSale(row, &s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "Sale"}
		}
		return nil, fmt.Errorf("query sale: %w", err)
	}
	return &s, nil
}

// CreateSale locks the product row, checks stock, then commits the sale
// insert and the stock decrement together. Concurrent creations against the
// same product serialize on the row lock, so two requests cannot both take
// the last unit.
func (m *MySQLAdapter) CreateSale(ctx context.Context, sale *domain.Sale) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var price decimal.Decimal
	var stock int
	err = tx.QueryRowContext(ctx, `
		SELECT price, stock FROM products WHERE id = ? FOR UPDATE`, sale.ProductID,
	).Scan(&price, &stock)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.NotFoundError{Entity: "Product"}
	}
	if err != nil {
		return fmt.Errorf("lock product: %w", err)
	}

	if stock < sale.Quantity {
		return domain.ErrInsufficientStock
	}

	sale.TotalPrice = price.Mul(decimal.NewFromInt(int64(sale.Quantity)))
	now := time.Now().UTC().Truncate(time.Second)
	sale.CreatedAt, sale.UpdatedAt = now, now

	result, err := tx.ExecContext(ctx, `
		INSERT INTO sales (customer_id, product_id, order_date, quantity, total_price, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sale.CustomerID, sale.ProductID, sale.OrderDate, sale.Quantity, sale.TotalPrice,
		sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		if isMySQLError(err, mysqlNoReferencedRow) {
			return &domain.NotFoundError{Entity: "Customer"}
		}
		return fmt.Errorf("insert sale: %w", err)
	}

	sale.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("sale insert id: %w", err)
	}

	decremented, err := tx.ExecContext(ctx, `
		UPDATE products SET stock = stock - ?, updated_at = ?
		WHERE id = ? AND stock >= ?`,
		sale.Quantity, now, sale.ProductID, sale.Quantity,
	)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	rows, _ := decremented.RowsAffected()
	if rows == 0 {
		return domain.ErrInsufficientStock
	}

	return tx.Commit()
}

func (m *MySQLAdapter) UpdateSale(ctx context.Context, id int64, u domain.SaleUpdate) (*domain.Sale, error) {
	if _, err := m.GetSale(ctx, id); err != nil {
		return nil, err
	}
	if u.Empty() {
		return m.GetSale(ctx, id)
	}

	set := []string{}
	args := []any{}
	if u.CustomerID != nil {
		set = append(set, "customer_id = ?")
		args = append(args, *u.CustomerID)
	}
	if u.ProductID != nil {
		set = append(set, "product_id = ?")
		args = append(args, *u.ProductID)
	}
	if u.OrderDate != nil {
		set = append(set, "order_date = ?")
		args = append(args, *u.OrderDate)
	}
	if u.Quantity != nil {
		set = append(set, "quantity = ?")
		args = append(args, *u.Quantity)
	}
	if u.TotalPrice != nil {
		set = append(set, "total_price = ?")
		args = append(args, *u.TotalPrice)
	}
	set = append(set, "updated_at = ?")
	args = append(args, time.Now().UTC().Truncate(time.Second), id)

	_, err := m.db.ExecContext(ctx, `UPDATE sales SET `+strings.Join(set, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		if isMySQLError(err, mysqlNoReferencedRow) {
			return nil, domain.Validationf("referenced customer or product does not exist")
		}
		return nil, fmt.Errorf("update sale: %w", err)
	}
	return m.GetSale(ctx, id)
}

func (m *MySQLAdapter) DeleteSale(ctx context.Context, id int64) error {
	result, err := m.db.ExecContext(ctx, `DELETE FROM sales WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return &domain.NotFoundError{Entity: "Sale"}
	}
	return nil
}

func scanSale(row rowScanner, s *domain.Sale) error {
	var c domain.Customer
	var p domain.Product
	err := row.Scan(
		&s.ID, &s.CustomerID, &s.ProductID, &s.OrderDate, &s.Quantity, &s.TotalPrice, &s.CreatedAt, &s.UpdatedAt,
		&c.ID, &c.Name, &c.Address, &c.Gender, &c.BirthDate, &c.CreatedAt, &c.UpdatedAt,
		&p.ID, &p.Code, &p.Name, &p.Stock, &p.Price, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	s.Customer = &c
	s.Product = &p
	return nil
}
