package repository_test

import (
	"context"
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/cartstate-demo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	postgresContainer, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(
			"../migrations/01_cart_slots.up.sql"),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", fmt.Errorf("pc.ConnectionString: %w", err)
	}

	return postgresContainer, connStr, nil
}

func startRedis(ctx context.Context) (*tcredis.RedisContainer, string, error) {
	redisContainer, err := tcredis.Run(ctx, "redis:7.4-alpine")
	if err != nil {
		return nil, "", fmt.Errorf("redis.Run: %w", err)
	}

	endpoint, err := redisContainer.Endpoint(ctx, "")
	if err != nil {
		return nil, "", fmt.Errorf("rc.Endpoint: %w", err)
	}

	return redisContainer, endpoint, nil
}

func randomCart(n int) domain.Cart {
	cart := domain.Cart{}
	for i := range n {
		cart = cart.Append(domain.CartItem{
			Product: domain.Product{
				ID:    i + 1,
				Title: gofakeit.ProductName(),
				Price: decimal.NewFromFloat(gofakeit.Price(1, 100)).Round(2),
				Image: gofakeit.URL(),
			},
			Amount: gofakeit.IntRange(1, 10),
		})
	}
	return cart
}
