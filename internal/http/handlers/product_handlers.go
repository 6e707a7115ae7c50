package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/storekit/catalog-api/internal/models"
	"github.com/storekit/catalog-api/internal/repo"
)

// GetProductsHandler godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProductListResult
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll(r.Context())
	if err != nil {
		WriteInternalError(w, err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, ProductListResult{Message: "products retrieved", Products: products})
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResult
// @Failure 404 {object} ErrorResponse
// @Router /product/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	product, err := productRepo.GetByID(r.Context(), id)
	if err != nil {
		writeProductError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ProductResult{Message: "product retrieved", Product: product})
}

// CreateProductsHandler godoc
// @Summary Create products in bulk
// @Description Inserts all items in one transaction; one invalid item rejects the whole batch.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param products body []ProductRequest true "Products to add"
// @Success 201 {object} ProductListResult
// @Failure 400 {object} ErrorResponse
// @Router /products [post]
func CreateProductsHandler(w http.ResponseWriter, r *http.Request) {
	var reqs []ProductRequest
	if err := readJSON(w, r, &reqs); err != nil {
		WriteError(w, http.StatusBadRequest, CodeValidationError, "request body must be a JSON array of products")
		return
	}
	if len(reqs) == 0 {
		WriteError(w, http.StatusBadRequest, CodeValidationError, "at least one product is required")
		return
	}

	products := make([]models.Product, 0, len(reqs))
	for i, req := range reqs {
		if validationErrors := validateProduct(req); len(validationErrors) > 0 {
			fields := make([]string, len(validationErrors))
			for j, ve := range validationErrors {
				fields[j] = ve.Description
			}
			WriteError(w, http.StatusBadRequest, CodeValidationError,
				fmt.Sprintf("item %d: %s", i, strings.Join(fields, "; ")))
			return
		}
		products = append(products, models.Product{
			Name:        req.Name,
			Description: req.Description,
			Quantity:    *req.Quantity,
			Price:       *req.Price,
		})
	}

	created, err := productRepo.CreateBatch(r.Context(), products)
	if err != nil {
		WriteInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ProductListResult{Message: "products created", Products: created})
}

// UpdateProductHandler godoc
// @Summary Replace a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param product body ProductRequest true "Updated product"
// @Success 200 {object} ProductResult
// @Failure 404 {object} ErrorResponse
// @Router /product/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, CodeValidationError, "invalid input")
		return
	}

	if validationErrors := validateProduct(req); len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   CodeValidationError,
			"message": "product is invalid",
			"errors":  validationErrors,
		})
		return
	}

	updated, err := productRepo.Update(r.Context(), models.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Quantity:    *req.Quantity,
		Price:       *req.Price,
	})
	if err != nil {
		writeProductError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ProductResult{Message: "product updated", Product: updated})
}

// PatchProductHandler godoc
// @Summary Partially update a product
// @Description Applies only the allow-listed fields present in the body; the identifier is never updatable. An empty effective field set returns the row unchanged.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param fields body map[string]any true "Fields to update"
// @Success 200 {object} ProductResult
// @Failure 404 {object} ErrorResponse
// @Router /product/{id} [patch]
func PatchProductHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	var body map[string]any
	if err := readJSON(w, r, &body); err != nil {
		WriteError(w, http.StatusBadRequest, CodeValidationError, "invalid input")
		return
	}

	// Only allow-listed columns survive; product_id and unknown keys are
	// dropped here so caller input never shapes the statement.
	fields := map[string]any{}
	for key, value := range body {
		if slices.Contains(repo.UpdatableProductColumns, key) {
			fields[key] = value
		}
	}

	if msg := validatePatchFields(fields); msg != "" {
		WriteError(w, http.StatusBadRequest, CodeValidationError, msg)
		return
	}

	updated, err := productRepo.UpdateFields(r.Context(), id, fields)
	if err != nil {
		writeProductError(w, err)
		return
	}

	message := "product updated"
	if len(fields) == 0 {
		message = "no updatable fields supplied"
	}
	writeJSON(w, http.StatusOK, ProductResult{Message: message, Product: updated})
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResult
// @Failure 404 {object} ErrorResponse
// @Router /product/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	deleted, err := productRepo.Delete(r.Context(), id)
	if err != nil {
		writeProductError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ProductResult{Message: "product deleted", Product: deleted})
}

// DeleteProductsHandler godoc
// @Summary Delete products in bulk
// @Description Deletes each id independently; missing ids are reported as failed without aborting the rest.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ids body BulkDeleteRequest true "Product ids to delete"
// @Success 200 {object} BulkDeleteResult
// @Failure 400 {object} ErrorResponse
// @Router /products [delete]
func DeleteProductsHandler(w http.ResponseWriter, r *http.Request) {
	var req BulkDeleteRequest
	if err := readJSON(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, CodeValidationError, "invalid input")
		return
	}
	if len(req.IDs) == 0 {
		WriteError(w, http.StatusBadRequest, CodeValidationError, "ids is required")
		return
	}

	deleted := []models.Product{}
	failed := []int{}
	for _, id := range req.IDs {
		p, err := productRepo.Delete(r.Context(), id)
		if err != nil {
			failed = append(failed, id)
			continue
		}
		deleted = append(deleted, p)
	}

	writeJSON(w, http.StatusOK, BulkDeleteResult{
		Message: fmt.Sprintf("%d of %d products deleted", len(deleted), len(req.IDs)),
		Deleted: deleted,
		Failed:  failed,
	})
}

func productID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, CodeValidationError, "invalid product ID")
		return 0, false
	}
	return id, true
}

func writeProductError(w http.ResponseWriter, err error) {
	if errors.Is(err, repo.ErrProductNotFound) {
		WriteError(w, http.StatusNotFound, CodeNotFound, "product not found")
		return
	}
	WriteInternalError(w, err)
}

func validatePatchFields(fields map[string]any) string {
	if name, ok := fields["product_name"].(string); ok && strings.TrimSpace(name) == "" {
		return "product_name cannot be empty"
	}
	if qty, ok := fields["quantity"].(float64); ok && qty < 0 {
		return "quantity cannot be negative"
	}
	if price, ok := fields["price"].(float64); ok && price <= 0 {
		return "price must be greater than zero"
	}
	return ""
}
