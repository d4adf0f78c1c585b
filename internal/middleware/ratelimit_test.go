package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRateLimitEnforcesLimit(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := CheckRateLimit(ctx, rdb, "login", "ip:1.2.3.4", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should pass", i+1)
	}

	allowed, err := CheckRateLimit(ctx, rdb, "login", "ip:1.2.3.4", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed, "fourth request should be throttled")

	// A different caller has its own counter.
	allowed, err = CheckRateLimit(ctx, rdb, "login", "ip:5.6.7.8", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)

	// The window expiring resets the counter.
	mr.FastForward(2 * time.Minute)
	allowed, err = CheckRateLimit(ctx, rdb, "login", "ip:1.2.3.4", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestCheckRateLimitDisabledInDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	for i := 0; i < 10; i++ {
		allowed, err := CheckRateLimit(context.Background(), nil, "login", "ip:1.2.3.4", 1, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}

func TestRateLimitMiddlewareFailsOpen(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	app := fiber.New()
	app.Get("/x", RateLimit(nil, 1, time.Minute, "x"), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRateLimitMiddlewareThrottles(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	app := fiber.New()
	app.Get("/x", RateLimit(rdb, 2, time.Minute, "x"), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil))
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}
