//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/bagdasarian/club-shop/internal/app"
	"github.com/bagdasarian/club-shop/internal/config"
	"github.com/bagdasarian/club-shop/internal/db"
	"github.com/bagdasarian/club-shop/internal/domain"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx, "postgres:17.7",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	database, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	require.NoError(t, database.Ping())

	// Миграции те же, что накатывает приложение при старте
	_, err = db.Migrate(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		database.Close()
		require.NoError(t, postgresContainer.Terminate(ctx))
	})

	return database
}

func setupTestRedis(t *testing.T) *redis.Client {
	ctx := context.Background()

	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)

	endpoint, err := redisContainer.Endpoint(ctx, "")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: endpoint})
	require.NoError(t, rdb.Ping(ctx).Err())

	t.Cleanup(func() {
		rdb.Close()
		require.NoError(t, redisContainer.Terminate(ctx))
	})

	return rdb
}

func newServices(t *testing.T, database *sql.DB, rdb *redis.Client) *app.Services {
	t.Helper()

	log, _ := logtest.NewNullLogger()
	cfg := &config.Config{
		Redis: config.RedisConfig{TTL: time.Minute},
		Shop:  config.ShopConfig{DefaultMarginPercent: decimal.NewFromInt(10)},
	}
	return app.NewServices(database, rdb, cfg, log)
}

// shopFixture - команда, участник, категория и два товара:
// Cola по 0.60 и Water по 1.10 при наценке 10%
type shopFixture struct {
	member *domain.TeamMember
	cola   *domain.Product
	water  *domain.Product
}

func seedShop(t *testing.T, svc *app.Services) shopFixture {
	t.Helper()
	ctx := context.Background()

	team, err := svc.Teams.CreateTeam(ctx, &domain.Team{
		Number:    12,
		StartDate: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	member, err := svc.Members.CreateMember(ctx, &domain.TeamMember{Name: "Anna", TeamID: team.ID})
	require.NoError(t, err)

	category, err := svc.Categories.CreateCategory(ctx, &domain.Category{Name: "Drinks", Visible: true})
	require.NoError(t, err)

	cola, err := svc.Products.CreateProduct(ctx, &domain.Product{
		Name:       "Cola",
		CategoryID: category.ID,
		Visible:    true,
		CostExTax:  decimal.RequireFromString("12.00"),
		PackSize:   24,
		TaxRate:    domain.TaxRateReduced,
	})
	require.NoError(t, err)

	water, err := svc.Products.CreateProduct(ctx, &domain.Product{
		Name:       "Water",
		CategoryID: category.ID,
		Visible:    true,
		CostExTax:  decimal.RequireFromString("24.00"),
		PackSize:   24,
		TaxRate:    domain.TaxRateZero,
	})
	require.NoError(t, err)

	require.Equal(t, "0.60", cola.Price.StringFixed(2))
	require.Equal(t, "1.10", water.Price.StringFixed(2))

	return shopFixture{member: member, cola: cola, water: water}
}

func balanceOf(t *testing.T, svc *app.Services, memberID int64) string {
	t.Helper()

	member, err := svc.Members.GetMember(context.Background(), memberID)
	require.NoError(t, err)
	return member.Balance.StringFixed(2)
}
