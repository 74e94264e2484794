package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pix-bank/internal/adapter/http/middleware"
	redisStore "pix-bank/internal/adapter/storage/redis"
	"pix-bank/internal/core/ports"
	"pix-bank/internal/core/ports/mocks"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRateLimitRouter(store ports.RateLimitStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	rule := middleware.RateLimitRule{Limit: 3, Window: time.Minute}
	r.POST("/transfers", middleware.RateLimiter(store, middleware.GroupTransfers, rule, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"status": "ok"})
	})
	return r
}

func doPost(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodPost, "/transfers", nil)
	req.RemoteAddr = remoteAddr
	router.ServeHTTP(w, req)
	return w
}

func newMiniredisStore(t *testing.T) (*redisStore.RateLimitStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisStore.NewRateLimitStore(client), mr
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	store, _ := newMiniredisStore(t)
	router := setupRateLimitRouter(store)

	for i := 0; i < 3; i++ {
		w := doPost(router, "10.0.0.1:5000")
		assert.Equal(t, http.StatusCreated, w.Code, "request %d should succeed", i+1)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	store, _ := newMiniredisStore(t)
	router := setupRateLimitRouter(store)

	for i := 0; i < 3; i++ {
		doPost(router, "10.0.0.1:5000")
	}

	w := doPost(router, "10.0.0.1:5000")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "RATE_001")
}

func TestRateLimiter_PerClientIP(t *testing.T) {
	store, _ := newMiniredisStore(t)
	router := setupRateLimitRouter(store)

	for i := 0; i < 4; i++ {
		doPost(router, "10.0.0.1:5000")
	}

	w := doPost(router, "10.0.0.2:5000")
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRateLimiter_WindowReset(t *testing.T) {
	store, mr := newMiniredisStore(t)
	router := setupRateLimitRouter(store)

	for i := 0; i < 4; i++ {
		doPost(router, "10.0.0.1:5000")
	}
	mr.FastForward(61 * time.Second)

	w := doPost(router, "10.0.0.1:5000")
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRateLimiter_DegradedModeOnStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRateLimitStore(ctrl)
	store.EXPECT().Allow(gomock.Any(), "10.0.0.1:transfers", int64(3), time.Minute).
		Return(nil, errors.New("connection refused"))

	router := setupRateLimitRouter(store)
	w := doPost(router, "10.0.0.1:5000")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}

func TestDefaultRateLimitRules(t *testing.T) {
	rules := middleware.DefaultRateLimitRules()
	for _, group := range []string{
		middleware.GroupAccounts,
		middleware.GroupMovements,
		middleware.GroupTransfers,
		middleware.GroupInvestments,
		middleware.GroupReads,
	} {
		rule, ok := rules[group]
		assert.True(t, ok, "missing rule for %s", group)
		assert.Positive(t, rule.Limit)
		assert.Positive(t, rule.Window)
	}
}
