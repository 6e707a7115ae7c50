package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/storekit/catalog-api/internal/auth"
	api "github.com/storekit/catalog-api/internal/http"
	handler "github.com/storekit/catalog-api/internal/http/handlers"
	rl "github.com/storekit/catalog-api/internal/http/rate_limiter"
	"github.com/storekit/catalog-api/internal/models"
	"github.com/storekit/catalog-api/internal/repo"
)

var (
	token       string
	productRepo *repo.InMemoryProductRepository
	userRepo    *repo.InMemoryUserRepository
	dbUp        = true
)

// fakeDatabase stands in for the connection manager; readiness is toggled
// per test through dbUp.
type fakeDatabase struct{}

func (fakeDatabase) Ready() bool                  { return dbUp }
func (fakeDatabase) Ping(_ context.Context) error { return nil }

func init() {
	setupTestRepos("secret1")

	tokenService := auth.NewService("test-secret", time.Hour)
	handler.SetTokenService(tokenService)
	handler.SetDatabaseStatus(fakeDatabase{})
	api.SetTokenService(tokenService)
	api.SetReadyCheck(func() bool { return dbUp })

	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret1")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	userRepo = repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := auth.HashPassword(password)
	userRepo.Create(context.Background(), models.User{
		Username:     "admin",
		PasswordHash: hash,
	})
}

// newTestRouter builds a fresh router and resets the per-IP rate limiter;
// httptest requests all share one RemoteAddr.
func newTestRouter() http.Handler {
	rl.CleanupAllVisitors()
	return api.NewRouter()
}

func clearAllProducts() {
	productRepo.Clear()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	w := postJSON(r, "/login", handler.CredentialsRequest{Username: username, Password: password}, "")

	var resp handler.AuthResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func postJSON(r http.Handler, path string, payload any, authToken string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doJSON(r http.Handler, method, path string, payload any, authToken string) *httptest.ResponseRecorder {
	var req *http.Request
	if payload != nil {
		body, _ := json.Marshal(payload)
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func createProducts(r http.Handler, reqs []handler.ProductRequest) *httptest.ResponseRecorder {
	return postJSON(r, "/products", reqs, token)
}
