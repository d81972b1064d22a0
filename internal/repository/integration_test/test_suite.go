package integration_test

import (
	"context"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"service/internal/migrations"
	"service/pkg/querier"
)

const (
	image    = "postgres:16-alpine"
	dbName   = "delivery_test"
	user     = "test"
	password = "test"
)

var (
	querierInstance *querier.Querier
	querierOnce     sync.Once
)

// GetQuerier поднимает один контейнер postgres на пакет и накатывает миграции.
// Контейнер удаляется ryuk после завершения процесса тестов.
func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		ctx := context.Background()

		container, err := tcpostgres.Run(ctx,
			image,
			tcpostgres.WithDatabase(dbName),
			tcpostgres.WithUsername(user),
			tcpostgres.WithPassword(password),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second),
			),
		)
		if err != nil {
			log.Fatalf("failed to start postgres container: %v", err)
		}

		connString, err := container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			log.Fatalf("failed to get connection string: %v", err)
		}

		pool, err := pgxpool.New(ctx, connString)
		if err != nil {
			log.Fatalf("failed to create pool: %v", err)
		}

		if err := migrations.Up(ctx, pool); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}

		querierInstance = querier.New(pool, pgxv5.DefaultCtxGetter)
	})

	return querierInstance
}

func SetupDB(t *testing.T, setupSql string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	q := GetQuerier()
	if setupSql == "" {
		return
	}

	_, err := q.Exec(ctx, setupSql)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE users, delivery_boys, deliveries, orders, bills RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
