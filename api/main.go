package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/storekit/catalog-api/internal/auth"
	"github.com/storekit/catalog-api/internal/config"
	"github.com/storekit/catalog-api/internal/db"
	api "github.com/storekit/catalog-api/internal/http"
	"github.com/storekit/catalog-api/internal/http/handlers"
	rl "github.com/storekit/catalog-api/internal/http/rate_limiter"
	"github.com/storekit/catalog-api/internal/http/throttle"
	"github.com/storekit/catalog-api/internal/redissvc"
	"github.com/storekit/catalog-api/internal/repo"
)

// @title Catalog API
// @version 1.0
// @description Authenticated CRUD API over users and products.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	ctx := context.Background()

	go rl.StartVisitorCleanupLoop()

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("Could not connect to Redis: %v", err)
		}
		defer rdb.Close()

		throttle.SetRedisService(redissvc.NewRedisService(rdb, ctx))
		throttle.Configure(cfg.LoginMaxFails, cfg.LoginLockout)
	} else {
		log.Println("REDIS_ADDR not set; login throttle disabled")
	}

	database, err := db.Open(cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		log.Fatal("❌ Could not open database:", err)
	}
	defer database.Close()

	// Soft-fails: the process serves 503s until the database comes up.
	database.Initialize(ctx)

	tokenService := auth.NewService(cfg.JWTSecret, cfg.TokenTTL)

	handlers.SetProductRepo(repo.NewPostgresProductRepository(database.DB()))
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database.DB()))
	handlers.SetTokenService(tokenService)
	handlers.SetDatabaseStatus(database)
	handlers.SetProductionMode(cfg.IsProduction())

	api.SetTokenService(tokenService)
	api.SetReadyCheck(database.Ready)
	api.SetAllowedOrigins(cfg.AllowedOrigins)

	r := api.NewRouter()
	log.Println("✅ Server running on :" + cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
