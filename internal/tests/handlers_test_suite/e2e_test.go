package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	handler "github.com/storekit/catalog-api/internal/http/handlers"
)

// TestFullLifecycle walks the whole surface: signup, login, empty catalog,
// bulk create, fetch, delete, and the 404 afterwards.
func TestFullLifecycle(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newTestRouter()

	signup := postJSON(r, "/signup", handler.CredentialsRequest{Username: "lifecycle", Password: "secret1"}, "")
	if signup.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d: %s", signup.Code, signup.Body.String())
	}
	var signupResult handler.AuthResult
	if err := json.NewDecoder(signup.Body).Decode(&signupResult); err != nil {
		t.Fatalf("signup: error decoding response: %v", err)
	}
	if signupResult.Token == "" {
		t.Fatal("signup: expected a token")
	}

	login := postJSON(r, "/login", handler.CredentialsRequest{Username: "lifecycle", Password: "secret1"}, "")
	if login.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", login.Code)
	}
	var loginResult handler.AuthResult
	if err := json.NewDecoder(login.Body).Decode(&loginResult); err != nil {
		t.Fatalf("login: error decoding response: %v", err)
	}
	sessionToken := loginResult.Token

	list := doJSON(r, http.MethodGet, "/products", nil, sessionToken)
	if list.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", list.Code)
	}
	var listResult handler.ProductListResult
	if err := json.NewDecoder(list.Body).Decode(&listResult); err != nil {
		t.Fatalf("list: error decoding response: %v", err)
	}
	if len(listResult.Products) != 0 {
		t.Fatalf("list: expected empty catalog, got %d products", len(listResult.Products))
	}

	create := postJSON(r, "/products", []handler.ProductRequest{
		{Name: "Widget", Quantity: intPtr(5), Price: floatPtr(9.99)},
	}, sessionToken)
	if create.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", create.Code, create.Body.String())
	}
	var createResult handler.ProductListResult
	if err := json.NewDecoder(create.Body).Decode(&createResult); err != nil {
		t.Fatalf("create: error decoding response: %v", err)
	}
	if len(createResult.Products) != 1 || createResult.Products[0].ID == 0 {
		t.Fatalf("create: expected one product with a new id, got %+v", createResult.Products)
	}
	id := createResult.Products[0].ID

	get := doJSON(r, http.MethodGet, fmt.Sprintf("/product/%d", id), nil, sessionToken)
	if get.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", get.Code)
	}
	var getResult handler.ProductResult
	if err := json.NewDecoder(get.Body).Decode(&getResult); err != nil {
		t.Fatalf("get: error decoding response: %v", err)
	}
	if getResult.Product.Name != "Widget" || getResult.Product.Quantity != 5 || getResult.Product.Price != 9.99 {
		t.Fatalf("get: row does not match creation: %+v", getResult.Product)
	}

	del := doJSON(r, http.MethodDelete, fmt.Sprintf("/product/%d", id), nil, sessionToken)
	if del.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", del.Code)
	}

	gone := doJSON(r, http.MethodGet, fmt.Sprintf("/product/%d", id), nil, sessionToken)
	if gone.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", gone.Code)
	}
}
