package db

import (
	"context"
	"testing"
	"time"

	"fitness-bot/internal/config"
	"fitness-bot/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newMemoryWithUser(t *testing.T) (*MemoryDB, *models.User) {
	t.Helper()
	st := NewMemoryDB()
	u := &models.User{TelegramID: 10, Name: "Taras", PhoneNumber: "+380000000001"}
	require.NoError(t, st.CreateUser(context.Background(), u))
	return st, u
}

func TestMemory_CreateUser_DuplicatePhone(t *testing.T) {
	st, u := newMemoryWithUser(t)

	err := st.CreateUser(context.Background(), &models.User{TelegramID: 11, PhoneNumber: u.PhoneNumber})
	require.ErrorIs(t, err, ErrAlreadyExists)
}

func TestMemory_UserLookups(t *testing.T) {
	st, u := newMemoryWithUser(t)
	ctx := context.Background()

	byID, err := st.UserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.PhoneNumber, byID.PhoneNumber)

	byPhone, err := st.UserByPhone(ctx, u.PhoneNumber)
	require.NoError(t, err)
	require.Equal(t, u.ID, byPhone.ID)

	byTG, err := st.UserByTelegramID(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, u.ID, byTG.ID)

	_, err = st.UserByPhone(ctx, "+0")
	require.ErrorIs(t, err, ErrNotFound)

	ok, err := st.UserExists(ctx, 10)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = st.UserExists(ctx, 99)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemory_UpdateUser_Partial(t *testing.T) {
	st, u := newMemoryWithUser(t)
	ctx := context.Background()

	email := "taras@example.com"
	require.NoError(t, st.UpdateUser(ctx, u.ID, ProfileUpdate{Email: &email}))

	age := 33
	require.NoError(t, st.UpdateUser(ctx, u.ID, ProfileUpdate{Age: &age}))

	got, err := st.UserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, email, *got.Email)
	require.Equal(t, 33, *got.Age)
	require.Nil(t, got.Height)

	// Returned users are copies.
	*got.Age = 99
	again, err := st.UserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, 33, *again.Age)

	require.ErrorIs(t, st.UpdateUser(ctx, uuid.New(), ProfileUpdate{Age: &age}), ErrNotFound)
}

func TestMemory_MeasurementsAppendOnly(t *testing.T) {
	st, u := newMemoryWithUser(t)
	ctx := context.Background()

	tick := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	st.now = func() time.Time {
		tick = tick.Add(time.Hour)
		return tick
	}

	_, err := st.LatestMeasurement(ctx, u.ID)
	require.ErrorIs(t, err, ErrNotFound)

	for _, chest := range []int{100, 101, 102} {
		require.NoError(t, st.AddMeasurement(ctx, &models.Measurement{UserID: u.ID, Chest: chest}))
	}

	history, err := st.Measurements(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	require.Equal(t, []int{100, 101, 102}, []int{history[0].Chest, history[1].Chest, history[2].Chest})

	latest, err := st.LatestMeasurement(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, 102, latest.Chest)

	require.Error(t, st.AddMeasurement(ctx, &models.Measurement{UserID: uuid.New()}))
}

func TestMemory_TrainingUpsertPerCategory(t *testing.T) {
	st, u := newMemoryWithUser(t)
	ctx := context.Background()

	first, err := st.SaveTraining(ctx, u.ID, models.TrainingHome, "push-ups")
	require.NoError(t, err)
	second, err := st.SaveTraining(ctx, u.ID, models.TrainingHome, "plank")
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.NotNil(t, second.UpdatedAt)

	_, err = st.SaveTraining(ctx, u.ID, models.TrainingGym, "bench")
	require.NoError(t, err)

	home, err := st.Training(ctx, u.ID, models.TrainingHome)
	require.NoError(t, err)
	require.Equal(t, "plank", home.Content)

	_, err = st.SaveTraining(ctx, u.ID, "yoga", "x")
	require.Error(t, err)

	require.NoError(t, st.DeleteTraining(ctx, u.ID, models.TrainingHome))
	require.ErrorIs(t, st.DeleteTraining(ctx, u.ID, models.TrainingHome), ErrNotFound)

	gym, err := st.Training(ctx, u.ID, models.TrainingGym)
	require.NoError(t, err)
	require.Equal(t, "bench", gym.Content)
}

func TestMemory_DietUpsert(t *testing.T) {
	st, u := newMemoryWithUser(t)
	ctx := context.Background()

	_, err := st.Diet(ctx, u.ID)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = st.SaveDiet(ctx, u.ID, "oats")
	require.NoError(t, err)
	_, err = st.SaveDiet(ctx, u.ID, "buckwheat")
	require.NoError(t, err)

	d, err := st.Diet(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "buckwheat", d.Content)

	require.NoError(t, st.DeleteDiet(ctx, u.ID))
	require.ErrorIs(t, st.DeleteDiet(ctx, u.ID), ErrNotFound)
}

func TestNew_Backends(t *testing.T) {
	st, err := New(context.Background(), config.BackendMemory, config.DB{})
	require.NoError(t, err)
	require.IsType(t, &MemoryDB{}, st)
	st.Close()

	_, err = New(context.Background(), "sqlite", config.DB{})
	require.Error(t, err)
}
