package repo

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/storekit/catalog-api/internal/models"
)

// InMemoryProductRepository is a map-backed ProductRepository for tests. It
// mirrors the transactional semantics of the Postgres implementation,
// including all-or-nothing batch inserts and the partial-update allow-list.
type InMemoryProductRepository struct {
	mu       sync.Mutex
	products map[int]models.Product
	nextID   int
	failOn   string
}

func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{products: map[int]models.Product{}, nextID: 1}
}

// FailOnName makes batch inserts fail when a product with the given name is
// reached, for exercising rollback behavior.
func (r *InMemoryProductRepository) FailOnName(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failOn = name
}

func (r *InMemoryProductRepository) CreateBatch(_ context.Context, products []models.Product) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range products {
		if r.failOn != "" && p.Name == r.failOn {
			return nil, fmt.Errorf("simulated insert failure for %q", p.Name)
		}
	}

	created := make([]models.Product, 0, len(products))
	for _, p := range products {
		p.ID = r.nextID
		p.DateModified = time.Now().UTC()
		r.nextID++
		r.products[p.ID] = p
		created = append(created, p)
	}
	return created, nil
}

func (r *InMemoryProductRepository) GetAll(_ context.Context) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool {
		if products[i].DateModified.Equal(products[j].DateModified) {
			return products[i].ID > products[j].ID
		}
		return products[i].DateModified.After(products[j].DateModified)
	})
	return products, nil
}

func (r *InMemoryProductRepository) GetByID(_ context.Context, id int) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getLocked(id)
}

func (r *InMemoryProductRepository) getLocked(id int) (models.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (r *InMemoryProductRepository) Update(_ context.Context, p models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[p.ID]; !ok {
		return models.Product{}, ErrProductNotFound
	}
	p.DateModified = time.Now().UTC()
	r.products[p.ID] = p
	return p, nil
}

func (r *InMemoryProductRepository) UpdateFields(_ context.Context, id int, fields map[string]any) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.getLocked(id)
	if err != nil {
		return models.Product{}, err
	}

	touched := false
	for _, col := range UpdatableProductColumns {
		value, ok := fields[col]
		if !ok {
			continue
		}
		switch col {
		case "product_name":
			p.Name, _ = value.(string)
		case "description":
			p.Description, _ = value.(string)
		case "quantity":
			p.Quantity = toInt(value)
		case "price":
			p.Price = toFloat(value)
		}
		touched = true
	}

	if !touched {
		return p, nil
	}

	p.DateModified = time.Now().UTC()
	r.products[id] = p
	return p, nil
}

func (r *InMemoryProductRepository) Delete(_ context.Context, id int) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.getLocked(id)
	if err != nil {
		return models.Product{}, err
	}
	delete(r.products, id)
	return p, nil
}

func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = map[int]models.Product{}
	r.nextID = 1
	r.failOn = ""
}

// JSON numbers decode as float64; quantity also arrives as int from tests.
func toInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return 0
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return 0
}
