package reservation

import (
	"context"
	"sort"
	"sync"

	"github.com/m04kA/NC-GuesthouseService/internal/domain"
)

// Repository in-memory хранилище бронирований
// Единственный владелец коллекции Reservation: мутации проходят только через
// Create/Update/Delete. Хранилище не выполняет бизнес-валидацию - вызывающая
// сторона обязана прогнать черновик через валидатор и калькулятор цены до записи.
//
// Mutex защищает коллекцию от конкурентного доступа со стороны HTTP-слоя,
// но контракт остается однопользовательским: одна логическая мутация за раз.
type Repository struct {
	mu           sync.Mutex
	reservations map[int64]*domain.Reservation
	nextID       int64
	timeProvider TimeProvider
}

// NewRepository создает пустое хранилище бронирований
func NewRepository() *Repository {
	return &Repository{
		reservations: make(map[int64]*domain.Reservation),
		nextID:       1,
		timeProvider: &RealTimeProvider{},
	}
}

// Create добавляет новое бронирование
// Присваивает свежий уникальный ID (монотонный счетчик, коллизии невозможны)
// и проставляет CreatedAt. Значения ID и CreatedAt из входной структуры игнорируются.
func (r *Repository) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *res
	stored.ID = r.nextID
	stored.CreatedAt = r.timeProvider.Now()
	r.nextID++

	r.reservations[stored.ID] = &stored

	result := stored
	return &result, nil
}

// Update целиком заменяет бронирование с указанным ID
// CreatedAt переносится из прежней версии, а не генерируется заново.
// Возвращает ErrReservationNotFound, если ID неизвестен.
func (r *Repository) Update(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.reservations[res.ID]
	if !ok {
		return nil, ErrReservationNotFound
	}

	stored := *res
	stored.CreatedAt = prev.CreatedAt
	r.reservations[stored.ID] = &stored

	result := stored
	return &result, nil
}

// Delete удаляет бронирование по ID
// Идемпотентно: удаление неизвестного ID не является ошибкой.
func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.reservations, id)
	return nil
}

// GetByID возвращает бронирование по ID
func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.reservations[id]
	if !ok {
		return nil, ErrReservationNotFound
	}

	result := *res
	return &result, nil
}

// List возвращает снимок всех бронирований, отсортированный по дате заезда
// Возвращаются копии: мутировать состояние хранилища через результат нельзя.
func (r *Repository) List(_ context.Context) ([]*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*domain.Reservation, 0, len(r.reservations))
	for _, res := range r.reservations {
		c := *res
		result = append(result, &c)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CheckIn != result[j].CheckIn {
			return result[i].CheckIn.IsBefore(result[j].CheckIn)
		}
		return result[i].ID < result[j].ID
	})

	return result, nil
}
