package cache

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"ems-portal/internal/core/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedis(t *testing.T) *RedisSessionStore {
	t.Helper()

	if os.Getenv("TEST_INTEGRATION") == "" {
		t.Skip("skipping integration test: TEST_INTEGRATION is not set")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "docker.io/redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client, err := Connect(ctx, fmt.Sprintf("%s:%s", host, port.Port()), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisSessionStore(client, time.Hour)
}

func TestRedisSessionStore(t *testing.T) {
	store := setupRedis(t)
	ctx := context.Background()

	_, err := store.Get(ctx, "c1", session.KeyAdmin)
	assert.ErrorIs(t, err, session.ErrNoValue)

	require.NoError(t, store.Put(ctx, "c1", session.KeyAdmin, []byte(`{"id":1}`)))
	require.NoError(t, store.Put(ctx, "c1", session.KeyEmployee, []byte(`{"id":2}`)))

	raw, err := store.Get(ctx, "c1", session.KeyAdmin)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1}`, string(raw))

	ttl, err := store.client.TTL(ctx, redisKey("c1", session.KeyAdmin)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 59*time.Minute)

	require.NoError(t, store.Delete(ctx, "c1", session.KeyAdmin))
	require.NoError(t, store.Delete(ctx, "c1", session.KeyAdmin))
	_, err = store.Get(ctx, "c1", session.KeyAdmin)
	assert.ErrorIs(t, err, session.ErrNoValue)

	_, err = store.Get(ctx, "c1", session.KeyEmployee)
	assert.NoError(t, err)
}

func TestRedisKey(t *testing.T) {
	assert.Equal(t, "ems:session:abc:admin_session", redisKey("abc", session.KeyAdmin))
}
