package repo

import (
	"context"

	"github.com/storekit/catalog-api/internal/models"
)

// UpdatableProductColumns is the allow-list of column names a partial update
// may touch. Caller-supplied keys outside this list are discarded before any
// SQL text is built; the identifier is deliberately absent.
var UpdatableProductColumns = []string{"product_name", "description", "quantity", "price"}

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	// CreateBatch inserts all products in one transaction; either every
	// row is inserted or none are.
	CreateBatch(ctx context.Context, products []models.Product) ([]models.Product, error)
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (models.Product, error)
	Update(ctx context.Context, p models.Product) (models.Product, error)
	// UpdateFields applies a partial update restricted to
	// UpdatableProductColumns, refreshing date_modified. An empty field
	// set returns the current row without writing.
	UpdateFields(ctx context.Context, id int, fields map[string]any) (models.Product, error)
	// Delete removes the row and returns its last snapshot.
	Delete(ctx context.Context, id int) (models.Product, error)
}
