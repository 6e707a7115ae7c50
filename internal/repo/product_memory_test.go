package repo

import (
	"context"
	"testing"

	"github.com/storekit/catalog-api/internal/models"
)

func TestUpdateFields_AllowListOnly(t *testing.T) {
	r := NewInMemoryProductRepository()
	ctx := context.Background()

	created, err := r.CreateBatch(ctx, []models.Product{{Name: "Widget", Quantity: 5, Price: 9.99}})
	if err != nil {
		t.Fatalf("CreateBatch failed: %v", err)
	}
	id := created[0].ID

	updated, err := r.UpdateFields(ctx, id, map[string]any{
		"quantity":   float64(7),
		"product_id": 999,
		"bogus":      "x",
	})
	if err != nil {
		t.Fatalf("UpdateFields failed: %v", err)
	}

	if updated.ID != id {
		t.Errorf("identifier must not be reassignable, got id %d", updated.ID)
	}
	if updated.Quantity != 7 {
		t.Errorf("expected quantity 7, got %d", updated.Quantity)
	}
	if updated.Name != "Widget" {
		t.Errorf("expected untouched name, got %q", updated.Name)
	}
}

func TestUpdateFields_EmptySetReturnsRowUnchanged(t *testing.T) {
	r := NewInMemoryProductRepository()
	ctx := context.Background()

	created, _ := r.CreateBatch(ctx, []models.Product{{Name: "Widget", Quantity: 5, Price: 9.99}})
	before := created[0]

	after, err := r.UpdateFields(ctx, before.ID, map[string]any{"product_id": 999})
	if err != nil {
		t.Fatalf("UpdateFields failed: %v", err)
	}
	if !after.DateModified.Equal(before.DateModified) {
		t.Error("empty effective field set must not refresh date_modified")
	}
}

func TestCreateBatch_AllOrNothing(t *testing.T) {
	r := NewInMemoryProductRepository()
	ctx := context.Background()

	r.FailOnName("bad")
	_, err := r.CreateBatch(ctx, []models.Product{
		{Name: "good", Quantity: 1, Price: 1},
		{Name: "bad", Quantity: 1, Price: 1},
	})
	if err == nil {
		t.Fatal("expected batch to fail")
	}

	products, _ := r.GetAll(ctx)
	if len(products) != 0 {
		t.Errorf("expected no rows after failed batch, got %d", len(products))
	}
}
