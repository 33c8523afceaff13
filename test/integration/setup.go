package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema creates the database schema for testing. Timestamps are TEXT
// because the API stores caller-supplied strings verbatim.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL,
			created_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS products (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			price NUMERIC(12, 2) NOT NULL,
			stock INTEGER NOT NULL,
			created_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS orders (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL,
			status TEXT NOT NULL,
			total_price NUMERIC(12, 2) NOT NULL,
			created_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS order_items (
			id BIGSERIAL PRIMARY KEY,
			order_id BIGINT NOT NULL,
			product_id BIGINT NOT NULL,
			quantity INTEGER NOT NULL,
			line_total NUMERIC(12, 2) NOT NULL,
			created_at TEXT NOT NULL
		);
	`

	if _, err := pool.Exec(ctx, schema); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeedProducts inserts test product data and returns the ids keyed by name.
func SeedProducts(t *testing.T, pool *pgxpool.Pool) map[string]int64 {
	t.Helper()

	ctx := context.Background()

	products := []struct {
		name        string
		description string
		price       float64
		stock       int
	}{
		{"Kopi Arabika", "Biji kopi arabika 250g", 85000, 40},
		{"Teh Melati", "Teh melati celup isi 25", 32000, 120},
		{"Gula Aren", "Gula aren cair 500ml", 18000, 75},
	}

	ids := make(map[string]int64, len(products))
	for _, p := range products {
		var id int64
		err := pool.QueryRow(ctx,
			`INSERT INTO products (name, description, price, stock, created_at)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			p.name, p.description, p.price, p.stock, "2024-01-01 08:00:00",
		).Scan(&id)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.name, err)
		}
		ids[p.name] = id
	}
	return ids
}

// SeedOrder inserts an order header for the given user and returns its id.
func SeedOrder(t *testing.T, pool *pgxpool.Pool, userID int64) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO orders (user_id, status, total_price, created_at)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		userID, "diproses", 0, "2024-01-02 09:00:00",
	).Scan(&id)
	if err != nil {
		t.Fatalf("failed to seed order: %v", err)
	}
	return id
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"order_items", "orders", "products", "users"}
	for _, table := range tables {
		if _, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
