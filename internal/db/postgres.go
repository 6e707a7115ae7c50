package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    user_id    SERIAL PRIMARY KEY,
    username   TEXT NOT NULL UNIQUE,
    password   TEXT NOT NULL,
    email      TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS products (
    product_id    SERIAL PRIMARY KEY,
    product_name  TEXT NOT NULL,
    description   TEXT NOT NULL DEFAULT '',
    quantity      INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
    price         NUMERIC(10,2) NOT NULL,
    date_modified TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// Manager owns the connection pool and the readiness flag. Handlers must
// consult Ready before touching the database and return 503 when it is false.
type Manager struct {
	db    *sql.DB
	ready atomic.Bool
}

// Open creates the pool without touching the network. maxConns bounds both
// open and idle connections.
func Open(databaseURL string, maxConns int) (*Manager, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("environment variable DATABASE_URL not found")
	}

	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns)
	db.SetConnMaxLifetime(30 * time.Minute)

	return &Manager{db: db}, nil
}

// Initialize pings the database and creates the schema if absent. It fails
// soft: on error the manager stays not-ready and the process keeps running.
func (m *Manager) Initialize(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := m.db.PingContext(ctx); err != nil {
		log.Printf("❌ database unreachable, service starts degraded: %v", err)
		return
	}

	if _, err := m.db.ExecContext(ctx, schema); err != nil {
		log.Printf("❌ schema initialization failed: %v", err)
		return
	}

	m.ready.Store(true)
	log.Println("✅ database ready")
}

// Ready reports whether the schema was initialized and the pool is usable.
func (m *Manager) Ready() bool {
	return m.ready.Load()
}

// DB exposes the underlying pool for the repositories.
func (m *Manager) DB() *sql.DB {
	return m.db
}

// Ping verifies current connectivity, independent of the readiness flag.
func (m *Manager) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return m.db.PingContext(ctx)
}

func (m *Manager) Close() error {
	m.ready.Store(false)
	return m.db.Close()
}
