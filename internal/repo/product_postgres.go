package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/storekit/catalog-api/internal/models"
)

const productColumns = "product_id, product_name, description, quantity, price, date_modified"

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

func (r *PostgresProductRepository) CreateBatch(ctx context.Context, products []models.Product) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `INSERT INTO products (product_name, description, quantity, price)
		VALUES ($1, $2, $3, $4) RETURNING ` + productColumns

	created := make([]models.Product, 0, len(products))
	for _, p := range products {
		var row models.Product
		err := tx.QueryRowContext(ctx, query, p.Name, p.Description, p.Quantity, p.Price).
			Scan(&row.ID, &row.Name, &row.Description, &row.Quantity, &row.Price, &row.DateModified)
		if err != nil {
			return nil, err
		}
		created = append(created, row)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *PostgresProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY date_modified DESC`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Quantity, &p.Price, &p.DateModified); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) GetByID(ctx context.Context, id int) (models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var p models.Product
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Quantity, &p.Price, &p.DateModified)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) Update(ctx context.Context, p models.Product) (models.Product, error) {
	query := `UPDATE products
		SET product_name = $1, description = $2, quantity = $3, price = $4, date_modified = now()
		WHERE product_id = $5
		RETURNING ` + productColumns
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var updated models.Product
	err := r.db.QueryRowContext(ctx, query, p.Name, p.Description, p.Quantity, p.Price, p.ID).
		Scan(&updated.ID, &updated.Name, &updated.Description, &updated.Quantity, &updated.Price, &updated.DateModified)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return updated, err
}

// UpdateFields builds a SET clause from the allow-listed subset of fields.
// Column names are only ever taken from UpdatableProductColumns, never from
// caller input, so no caller-supplied text reaches the statement.
func (r *PostgresProductRepository) UpdateFields(ctx context.Context, id int, fields map[string]any) (models.Product, error) {
	assignments := []string{}
	args := []any{}
	argIdx := 1

	for _, col := range UpdatableProductColumns {
		value, ok := fields[col]
		if !ok {
			continue
		}
		assignments = append(assignments, fmt.Sprintf("%s = $%d", col, argIdx))
		args = append(args, value)
		argIdx++
	}

	if len(assignments) == 0 {
		return r.GetByID(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE products SET %s, date_modified = now() WHERE product_id = $%d RETURNING %s`,
		strings.Join(assignments, ", "), argIdx, productColumns)
	args = append(args, id)

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var p models.Product
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&p.ID, &p.Name, &p.Description, &p.Quantity, &p.Price, &p.DateModified)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) Delete(ctx context.Context, id int) (models.Product, error) {
	query := `DELETE FROM products WHERE product_id = $1 RETURNING ` + productColumns
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var p models.Product
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Quantity, &p.Price, &p.DateModified)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}
