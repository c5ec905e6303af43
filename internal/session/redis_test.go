package session

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"fitness-bot/internal/dialog"
	"fitness-bot/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// GO_TEST_INTEGRATION=1 go test ./internal/session -run Redis -v -count=1

func startRedis(t *testing.T, ttl time.Duration) *RedisStore {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "docker.io/redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "6379/tcp")

	st, err := NewRedisStore(ctx, fmt.Sprintf("redis://%s:%s/0", host, port.Port()), ttl)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestIntegration_RedisStore_RoundTrip(t *testing.T) {
	st := startRedis(t, time.Hour)
	ctx := context.Background()

	s, err := st.Load(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, dialog.Default(), s)

	want := dialog.State{Kind: dialog.KindAddingTraining, UserID: uuid.New(), Category: models.TrainingHome}
	require.NoError(t, st.Save(ctx, 10, want))

	got, err := st.Load(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, want, got)

	require.NoError(t, st.Save(ctx, 10, dialog.State{Kind: dialog.KindAwaitingPhoneNumber}))
	got, err = st.Load(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, dialog.State{Kind: dialog.KindAwaitingPhoneNumber}, got)

	require.NoError(t, st.Delete(ctx, 10))
	got, err = st.Load(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, dialog.Default(), got)
}

func TestIntegration_RedisStore_Expires(t *testing.T) {
	st := startRedis(t, time.Second)
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, 11, dialog.State{Kind: dialog.KindMainMenu, UserID: uuid.New()}))

	// Load refreshes the expiry, so wait without touching the key.
	time.Sleep(2 * time.Second)

	s, err := st.Load(ctx, 11)
	require.NoError(t, err)
	require.Equal(t, dialog.Default(), s)
}
