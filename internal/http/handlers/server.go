package handlers

import (
	"context"

	"github.com/storekit/catalog-api/internal/auth"
	"github.com/storekit/catalog-api/internal/repo"
)

// DatabaseStatus is the slice of the connection manager the health endpoint
// and readiness checks need.
type DatabaseStatus interface {
	Ready() bool
	Ping(ctx context.Context) error
}

var (
	productRepo  repo.ProductRepository
	userRepo     repo.UserRepository
	tokenService *auth.Service
	dbStatus     DatabaseStatus
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetTokenService(s *auth.Service) {
	tokenService = s
}

func SetDatabaseStatus(s DatabaseStatus) {
	dbStatus = s
}
