package handlers

import "github.com/storekit/catalog-api/internal/models"

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

type AuthResult struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    models.User `json:"user"`
}

type ProductRequest struct {
	Name        string   `json:"product_name"`
	Description string   `json:"description"`
	Quantity    *int     `json:"quantity"`
	Price       *float64 `json:"price"`
}

type ProductResult struct {
	Message string         `json:"message"`
	Product models.Product `json:"product"`
}

type ProductListResult struct {
	Message  string           `json:"message"`
	Products []models.Product `json:"products"`
}

type UserResult struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
}

type UserListResult struct {
	Message string        `json:"message"`
	Users   []models.User `json:"users"`
}

type BulkDeleteRequest struct {
	IDs []int `json:"ids"`
}

type BulkDeleteResult struct {
	Message string           `json:"message"`
	Deleted []models.Product `json:"deleted"`
	Failed  []int            `json:"failed,omitempty"`
}

type MetadataResult struct {
	Message string `json:"message"`
	Service string `json:"service"`
	Version string `json:"version"`
}

type HealthResult struct {
	Message  string `json:"message"`
	Database string `json:"database"`
}
