package db

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"fitness-bot/internal/models"

	"github.com/google/uuid"
)

type trainingKey struct {
	userID   uuid.UUID
	category models.TrainingCategory
}

// MemoryDB keeps everything in process memory. It backs local runs and tests and
// follows the same error contract as PostgresDB.
type MemoryDB struct {
	mu           sync.RWMutex
	users        map[uuid.UUID]models.User
	measurements map[uuid.UUID][]models.Measurement
	trainings    map[trainingKey]models.Training
	diets        map[uuid.UUID]models.Diet
	now          func() time.Time
}

func NewMemoryDB() *MemoryDB {
	return &MemoryDB{
		users:        make(map[uuid.UUID]models.User),
		measurements: make(map[uuid.UUID][]models.Measurement),
		trainings:    make(map[trainingKey]models.Training),
		diets:        make(map[uuid.UUID]models.Diet),
		now:          time.Now,
	}
}

func (m *MemoryDB) Close() {}

func (m *MemoryDB) CreateUser(_ context.Context, user *models.User) error {
	const op = "db/memory/CreateUser"

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.PhoneNumber == user.PhoneNumber {
			return fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if _, ok := m.users[user.ID]; ok {
		return fmt.Errorf("%s: %w", op, ErrAlreadyExists)
	}

	now := m.now()
	user.CreatedAt, user.UpdatedAt = now, now
	m.users[user.ID] = cloneUser(*user)
	return nil
}

func (m *MemoryDB) UserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("db/memory/UserByID: %w", ErrNotFound)
	}
	c := cloneUser(u)
	return &c, nil
}

func (m *MemoryDB) UserByPhone(_ context.Context, phone string) (*models.User, error) {
	return m.findUser("db/memory/UserByPhone", func(u models.User) bool { return u.PhoneNumber == phone })
}

func (m *MemoryDB) UserByTelegramID(_ context.Context, telegramID int64) (*models.User, error) {
	return m.findUser("db/memory/UserByTelegramID", func(u models.User) bool { return u.TelegramID == telegramID })
}

func (m *MemoryDB) UserExists(ctx context.Context, telegramID int64) (bool, error) {
	_, err := m.UserByTelegramID(ctx, telegramID)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (m *MemoryDB) findUser(op string, match func(models.User) bool) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var found *models.User
	for _, u := range m.users {
		if !match(u) {
			continue
		}
		if found == nil || u.CreatedAt.Before(found.CreatedAt) {
			c := cloneUser(u)
			found = &c
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return found, nil
}

func (m *MemoryDB) UpdateUser(_ context.Context, id uuid.UUID, update ProfileUpdate) error {
	const op = "db/memory/UpdateUser"

	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if update.empty() {
		return nil
	}
	if update.Email != nil {
		u.Email = ptr(*update.Email)
	}
	if update.Age != nil {
		u.Age = ptr(*update.Age)
	}
	if update.Height != nil {
		u.Height = ptr(*update.Height)
	}
	if update.Weight != nil {
		u.Weight = ptr(*update.Weight)
	}
	u.UpdatedAt = m.now()
	m.users[id] = u
	return nil
}

func (m *MemoryDB) AddMeasurement(_ context.Context, ms *models.Measurement) error {
	const op = "db/memory/AddMeasurement"

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[ms.UserID]; !ok {
		return fmt.Errorf("%s: unknown user %s", op, ms.UserID)
	}
	if ms.ID == uuid.Nil {
		ms.ID = uuid.New()
	}
	ms.CreatedAt = m.now()
	m.measurements[ms.UserID] = append(m.measurements[ms.UserID], *ms)
	return nil
}

func (m *MemoryDB) LatestMeasurement(_ context.Context, userID uuid.UUID) (*models.Measurement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	history := m.measurements[userID]
	if len(history) == 0 {
		return nil, fmt.Errorf("db/memory/LatestMeasurement: %w", ErrNotFound)
	}
	latest := history[len(history)-1]
	return &latest, nil
}

func (m *MemoryDB) Measurements(_ context.Context, userID uuid.UUID) ([]models.Measurement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	history := append([]models.Measurement(nil), m.measurements[userID]...)
	sort.SliceStable(history, func(i, j int) bool { return history[i].CreatedAt.Before(history[j].CreatedAt) })
	return history, nil
}

func (m *MemoryDB) SaveTraining(_ context.Context, userID uuid.UUID, category models.TrainingCategory, content string) (*models.Training, error) {
	const op = "db/memory/SaveTraining"

	if !category.Valid() {
		return nil, fmt.Errorf("%s: unknown training category %q", op, category)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[userID]; !ok {
		return nil, fmt.Errorf("%s: unknown user %s", op, userID)
	}

	key := trainingKey{userID: userID, category: category}
	now := m.now()
	t, ok := m.trainings[key]
	if ok {
		t.Content = content
		t.UpdatedAt = &now
	} else {
		t = models.Training{ID: uuid.New(), UserID: userID, Category: category, Content: content, CreatedAt: now}
	}
	m.trainings[key] = t
	return &t, nil
}

func (m *MemoryDB) Training(_ context.Context, userID uuid.UUID, category models.TrainingCategory) (*models.Training, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.trainings[trainingKey{userID: userID, category: category}]
	if !ok {
		return nil, fmt.Errorf("db/memory/Training: %w", ErrNotFound)
	}
	return &t, nil
}

func (m *MemoryDB) DeleteTraining(_ context.Context, userID uuid.UUID, category models.TrainingCategory) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := trainingKey{userID: userID, category: category}
	if _, ok := m.trainings[key]; !ok {
		return fmt.Errorf("db/memory/DeleteTraining: %w", ErrNotFound)
	}
	delete(m.trainings, key)
	return nil
}

func (m *MemoryDB) SaveDiet(_ context.Context, userID uuid.UUID, content string) (*models.Diet, error) {
	const op = "db/memory/SaveDiet"

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[userID]; !ok {
		return nil, fmt.Errorf("%s: unknown user %s", op, userID)
	}

	now := m.now()
	d, ok := m.diets[userID]
	if ok {
		d.Content = content
		d.UpdatedAt = &now
	} else {
		d = models.Diet{ID: uuid.New(), UserID: userID, Content: content, CreatedAt: now}
	}
	m.diets[userID] = d
	return &d, nil
}

func (m *MemoryDB) Diet(_ context.Context, userID uuid.UUID) (*models.Diet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	d, ok := m.diets[userID]
	if !ok {
		return nil, fmt.Errorf("db/memory/Diet: %w", ErrNotFound)
	}
	return &d, nil
}

func (m *MemoryDB) DeleteDiet(_ context.Context, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.diets[userID]; !ok {
		return fmt.Errorf("db/memory/DeleteDiet: %w", ErrNotFound)
	}
	delete(m.diets, userID)
	return nil
}

func cloneUser(u models.User) models.User {
	if u.Email != nil {
		u.Email = ptr(*u.Email)
	}
	if u.Age != nil {
		u.Age = ptr(*u.Age)
	}
	if u.Height != nil {
		u.Height = ptr(*u.Height)
	}
	if u.Weight != nil {
		u.Weight = ptr(*u.Weight)
	}
	return u
}

func ptr[T any](v T) *T { return &v }

var _ Storage = (*MemoryDB)(nil)
