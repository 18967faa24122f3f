package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/NC-GuesthouseService/internal/domain"
	roomRepo "github.com/m04kA/NC-GuesthouseService/internal/infra/storage/room"
	"github.com/m04kA/NC-GuesthouseService/pkg/types"
)

// Check проверяет доступность комнаты по переданному списку бронирований
// Комната занята, если существует бронирование той же комнаты с id != excludeID,
// не отмененное, чей диапазон пересекается с [checkIn, checkOut).
// excludeID - прежняя версия редактируемого бронирования, nil для новых черновиков.
// Чистая функция без побочных эффектов.
func Check(roomID int64, checkIn, checkOut types.DateString, excludeID *int64, existing []*domain.Reservation) bool {
	for _, res := range existing {
		if excludeID != nil && res.ID == *excludeID {
			continue
		}
		if res.RoomID != roomID {
			continue
		}
		if res.IsCancelled() {
			continue
		}
		if domain.RangesOverlap(checkIn, checkOut, res.CheckIn, res.CheckOut) {
			return false
		}
	}
	return true
}

// Service проверка доступности комнат поверх хранилища
type Service struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(reservationRepo ReservationRepository, roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		logger:          logger,
	}
}

// IsRoomAvailable проверяет, свободна ли комната на указанный диапазон дат
func (s *Service) IsRoomAvailable(ctx context.Context, roomID int64, checkIn, checkOut types.DateString, excludeID *int64) (bool, error) {
	if _, err := s.roomRepo.GetByID(ctx, roomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("IsRoomAvailable: room id=%d not found", roomID)
			return false, ErrRoomNotFound
		}
		s.logger.Error("IsRoomAvailable: failed to get room id=%d: %v", roomID, err)
		return false, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	existing, err := s.reservationRepo.List(ctx)
	if err != nil {
		s.logger.Error("IsRoomAvailable: failed to list reservations: %v", err)
		return false, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	available := Check(roomID, checkIn, checkOut, excludeID, existing)

	s.logger.Info("IsRoomAvailable: room=%d, range=%s..%s, available=%t",
		roomID, checkIn, checkOut, available)

	return available, nil
}
