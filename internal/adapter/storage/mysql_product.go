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

const productColumns = `id, product_code, product_name, stock, price, created_at, updated_at`

func (m *MySQLAdapter) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (m *MySQLAdapter) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	row := m.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	return productFromRow(row)
}

func (m *MySQLAdapter) GetProductByCode(ctx context.Context, code string) (*domain.Product, error) {
	row := m.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE product_code = ?`, code)
	return productFromRow(row)
}

func (m *MySQLAdapter) CreateProduct(ctx context.Context, p *domain.Product) error {
	now := time.Now().UTC().Truncate(time.Second)
	p.CreatedAt, p.UpdatedAt = now, now

	result, err := m.db.ExecContext(ctx, `
		INSERT INTO products (product_code, product_name, stock, price, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.Code, p.Name, p.Stock, p.Price, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isMySQLError(err, mysqlDuplicateEntry) {
			return domain.Validationf("The product code has already been taken.")
		}
		return fmt.Errorf("insert product: %w", err)
	}

	p.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("product insert id: %w", err)
	}
	return nil
}

func (m *MySQLAdapter) UpdateProduct(ctx context.Context, id int64, u domain.ProductUpdate) (*domain.Product, error) {
	if _, err := m.GetProduct(ctx, id); err != nil {
		return nil, err
	}
	if u.Empty() {
		return m.GetProduct(ctx, id)
	}

	set := []string{}
	args := []any{}
	if u.Code != nil {
		set = append(set, "product_code = ?")
		args = append(args, *u.Code)
	}
	if u.Name != nil {
		set = append(set, "product_name = ?")
		args = append(args, *u.Name)
	}
	if u.Stock != nil {
		set = append(set, "stock = ?")
		args = append(args, *u.Stock)
	}
	if u.Price != nil {
		set = append(set, "price = ?")
		args = append(args, *u.Price)
	}
	set = append(set, "updated_at = ?")
	args = append(args, time.Now().UTC().Truncate(time.Second), id)

	_, err := m.db.ExecContext(ctx, `UPDATE products SET `+strings.Join(set, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		if isMySQLError(err, mysqlDuplicateEntry) {
			return nil, domain.Validationf("The product code has already been taken.")
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return m.GetProduct(ctx, id)
}

func (m *MySQLAdapter) DeleteProduct(ctx context.Context, id int64) error {
	result, err := m.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return &domain.NotFoundError{Entity: "Product"}
	}
	return nil
}

func productFromRow(row *sql.Row) (*domain.Product, error) {
	var p domain.Product
	if err := scanProduct(row, &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "Product"}
		}
		return nil, fmt.Errorf("query product: %w", err)
	}
	return &p, nil
}

func scanProduct(row rowScanner, p *domain.Product) error {
	return row.Scan(&p.ID, &p.Code, &p.Name, &p.Stock, &p.Price, &p.CreatedAt, &p.UpdatedAt)
}
