package db

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"fitness-bot/internal/config"
	"fitness-bot/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Integration tests against a real PostgreSQL started with testcontainers-go.
//
//   GO_TEST_INTEGRATION=1 go test ./internal/db -v -count=1

func startPostgres(t *testing.T) (*PostgresDB, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "docker.io/postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "fitness"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
		ProviderType:     tc.ProviderDocker,
	})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/fitness?sslmode=disable", host, port.Port())

	var st *PostgresDB
	require.Eventually(t, func() bool {
		st, err = NewPostgresDB(ctx, config.DB{URL: dsn, MaxOpenConns: 4})
		return err == nil
	}, 30*time.Second, 500*time.Millisecond)

	require.NoError(t, st.Migrate(ctx))
	// Applying the schema twice must be harmless.
	require.NoError(t, st.Migrate(ctx))

	return st, func() {
		st.Close()
		_ = c.Terminate(context.Background())
	}
}

func TestIntegration_Users(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	u := &models.User{TelegramID: 42, Name: "Olena", PhoneNumber: "+380501112233"}
	require.NoError(t, st.CreateUser(ctx, u))
	require.NotEqual(t, uuid.Nil, u.ID)
	require.WithinDuration(t, time.Now(), u.CreatedAt, 5*time.Second)

	dup := &models.User{TelegramID: 43, Name: "Other", PhoneNumber: u.PhoneNumber}
	require.ErrorIs(t, st.CreateUser(ctx, dup), ErrAlreadyExists)

	got, err := st.UserByPhone(ctx, u.PhoneNumber)
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Nil(t, got.Age)

	exists, err := st.UserExists(ctx, 42)
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = st.UserExists(ctx, 7)
	require.NoError(t, err)
	require.False(t, exists)

	age, height, weight := 30, 180, 75
	require.NoError(t, st.UpdateUser(ctx, u.ID, ProfileUpdate{Age: &age, Height: &height, Weight: &weight}))

	got, err = st.UserByTelegramID(ctx, 42)
	require.NoError(t, err)
	require.Equal(t, 30, *got.Age)
	require.Equal(t, 180, *got.Height)
	require.Equal(t, 75, *got.Weight)

	_, err = st.UserByID(ctx, uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, st.UpdateUser(ctx, uuid.New(), ProfileUpdate{Age: &age}), ErrNotFound)
}

func TestIntegration_MeasurementsHistory(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	u := &models.User{TelegramID: 1, Name: "A", PhoneNumber: "+1"}
	require.NoError(t, st.CreateUser(ctx, u))

	_, err := st.LatestMeasurement(ctx, u.ID)
	require.ErrorIs(t, err, ErrNotFound)

	for i := 0; i < 3; i++ {
		m := &models.Measurement{UserID: u.ID, Chest: 100 + i, Waist: 90, Hips: 100, ArmBiceps: 35, LegBiceps: 60, Calf: 40}
		require.NoError(t, st.AddMeasurement(ctx, m))
		time.Sleep(5 * time.Millisecond)
	}

	history, err := st.Measurements(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	require.Equal(t, 100, history[0].Chest)
	require.Equal(t, 102, history[2].Chest)

	latest, err := st.LatestMeasurement(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, 102, latest.Chest)
}

func TestIntegration_PlansUpsert(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	u := &models.User{TelegramID: 1, Name: "A", PhoneNumber: "+1"}
	require.NoError(t, st.CreateUser(ctx, u))

	first, err := st.SaveTraining(ctx, u.ID, models.TrainingGym, "squats")
	require.NoError(t, err)
	require.Nil(t, first.UpdatedAt)

	second, err := st.SaveTraining(ctx, u.ID, models.TrainingGym, "deadlifts")
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.NotNil(t, second.UpdatedAt)

	_, err = st.Training(ctx, u.ID, models.TrainingHome)
	require.ErrorIs(t, err, ErrNotFound)

	got, err := st.Training(ctx, u.ID, models.TrainingGym)
	require.NoError(t, err)
	require.Equal(t, "deadlifts", got.Content)

	require.NoError(t, st.DeleteTraining(ctx, u.ID, models.TrainingGym))
	require.ErrorIs(t, st.DeleteTraining(ctx, u.ID, models.TrainingGym), ErrNotFound)

	_, err = st.SaveDiet(ctx, u.ID, "oats")
	require.NoError(t, err)
	_, err = st.SaveDiet(ctx, u.ID, "rice")
	require.NoError(t, err)
	d, err := st.Diet(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "rice", d.Content)
	require.NoError(t, st.DeleteDiet(ctx, u.ID))
	require.ErrorIs(t, st.DeleteDiet(ctx, u.ID), ErrNotFound)
}

func TestIntegration_ContextDeadline(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	_, err := st.UserByPhone(ctx, "+1")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}
