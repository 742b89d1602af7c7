package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redispkg "gdgoc.backend/pkg/redis"
)

func startMiniRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("skip: miniredis unavailable in this environment: %v", err)
	}
	cli := redisv9.NewClient(&redisv9.Options{Addr: srv.Addr()})
	redispkg.SetClient(cli)
	t.Cleanup(func() {
		redispkg.SetClient(nil)
		_ = cli.Close()
		srv.Close()
	})
	return srv
}

func newIdempotentRouter(calls *int, status int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/contact", IdempotencyMiddleware(), func(c *gin.Context) {
		*calls++
		c.JSON(status, gin.H{"call": *calls})
	})
	return r
}

func postWithKey(r http.Handler, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{}`))
	if key != "" {
		req.Header.Set(IdempotencyHeader, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotencyMiddleware_NoHeaderPassthrough(t *testing.T) {
	calls := 0
	r := newIdempotentRouter(&calls, http.StatusCreated)

	postWithKey(r, "")
	postWithKey(r, "")
	assert.Equal(t, 2, calls)
}

func TestIdempotencyMiddleware_RedisDisabledPassthrough(t *testing.T) {
	redispkg.SetClient(nil)
	calls := 0
	r := newIdempotentRouter(&calls, http.StatusCreated)

	w := postWithKey(r, "k1")
	postWithKey(r, "k1")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 2, calls)
}

func TestIdempotencyMiddleware_ReplaysFirstResponse(t *testing.T) {
	startMiniRedis(t)
	calls := 0
	r := newIdempotentRouter(&calls, http.StatusCreated)

	first := postWithKey(r, "form-1")
	second := postWithKey(r, "form-1")

	assert.Equal(t, 1, calls)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "true", second.Header().Get(IdempotencyHitHeader))
	assert.Contains(t, second.Header().Get("Content-Type"), "application/json")

	postWithKey(r, "form-2")
	assert.Equal(t, 2, calls)
}

func TestIdempotencyMiddleware_FailureAllowsRetry(t *testing.T) {
	srv := startMiniRedis(t)
	calls := 0
	r := newIdempotentRouter(&calls, http.StatusBadRequest)

	postWithKey(r, "bad")
	postWithKey(r, "bad")
	assert.Equal(t, 2, calls)
	assert.False(t, srv.Exists("idempotency:POST:/contact:bad"))
}

func TestIdempotencyMiddleware_ProcessingConflict(t *testing.T) {
	srv := startMiniRedis(t)
	require.NoError(t, srv.Set("idempotency:POST:/contact:busy", processingMarker))

	calls := 0
	r := newIdempotentRouter(&calls, http.StatusCreated)
	w := postWithKey(r, "busy")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_IDEMPOTENCY_CONFLICT")
	assert.Zero(t, calls)
}

func TestIdempotencyMiddleware_KeyTooLong(t *testing.T) {
	calls := 0
	r := newIdempotentRouter(&calls, http.StatusCreated)
	w := postWithKey(r, strings.Repeat("k", maxKeyLength+1))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, calls)
}

func TestIdempotencyMiddleware_LockRace(t *testing.T) {
	origGet, origSetNX := redisGet, redisSetNX
	t.Cleanup(func() { redisGet, redisSetNX = origGet, origSetNX })

	redisGet = func(context.Context, string) (string, error) { return "", redisv9.Nil }
	redisSetNX = func(context.Context, string, interface{}, time.Duration) (bool, error) { return false, nil }

	calls := 0
	r := newIdempotentRouter(&calls, http.StatusCreated)
	w := postWithKey(r, "race")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), CodeIdempotencyConflict)
	assert.Contains(t, w.Body.String(), "Request already in progress")
	assert.Zero(t, calls)
}

func TestIdempotencyMiddleware_StoreErrorStillServes(t *testing.T) {
	origGet, origSetNX, origSet, origDel := redisGet, redisSetNX, redisSet, redisDel
	t.Cleanup(func() { redisGet, redisSetNX, redisSet, redisDel = origGet, origSetNX, origSet, origDel })

	deleted := false
	redisGet = func(context.Context, string) (string, error) { return "", redisv9.Nil }
	redisSetNX = func(context.Context, string, interface{}, time.Duration) (bool, error) { return true, nil }
	redisSet = func(context.Context, string, interface{}, time.Duration) error { return errors.New("write failed") }
	redisDel = func(context.Context, string) error { deleted = true; return nil }

	calls := 0
	r := newIdempotentRouter(&calls, http.StatusCreated)
	w := postWithKey(r, "k")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, deleted)
}
