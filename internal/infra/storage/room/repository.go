package room

import (
	"context"
	"sort"

	"github.com/m04kA/NC-GuesthouseService/internal/domain"
)

// Repository статичный каталог комнат гостевого дома
// Заполняется один раз при старте из конфигурации и далее не изменяется,
// поэтому синхронизация не требуется.
type Repository struct {
	rooms map[int64]*domain.Room
}

// NewRepository создает каталог комнат из переданного списка
func NewRepository(rooms []*domain.Room) *Repository {
	m := make(map[int64]*domain.Room, len(rooms))
	for _, r := range rooms {
		c := *r
		m[r.ID] = &c
	}
	return &Repository{rooms: m}
}

// GetByID возвращает комнату по ID
func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, ErrRoomNotFound
	}

	result := *room
	return &result, nil
}

// List возвращает все комнаты, отсортированные по ID
func (r *Repository) List(_ context.Context) ([]*domain.Room, error) {
	result := make([]*domain.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		c := *room
		result = append(result, &c)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}
