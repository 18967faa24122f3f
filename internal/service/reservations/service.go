package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/NC-GuesthouseService/internal/domain"
	reservationRepo "github.com/m04kA/NC-GuesthouseService/internal/infra/storage/reservation"
	"github.com/m04kA/NC-GuesthouseService/internal/service/reservations/models"
)

// Service сервис чтения и удаления бронирований
type Service struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res), nil
}

// List получает список бронирований
// Опционально фильтрует по статусу (pending | confirmed | cancelled).
func (s *Service) List(ctx context.Context, status *string) (*models.ReservationListResponse, error) {
	s.logger.Info("List: fetching reservations, status=%v", status)

	var statusFilter *domain.ReservationStatus
	if status != nil {
		converted, ok := domain.ToReservationStatus(*status)
		if !ok {
			s.logger.Warn("List: invalid status filter %q", *status)
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *status)
		}
		statusFilter = &converted
	}

	list, err := s.reservationRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	if statusFilter != nil {
		filtered := make([]*domain.Reservation, 0, len(list))
		for _, r := range list {
			if r.Status == *statusFilter {
				filtered = append(filtered, r)
			}
		}
		list = filtered
	}

	s.logger.Info("List: fetched %d reservations", len(list))
	return models.FromDomainReservationList(list), nil
}

// ListRooms возвращает каталог комнат
func (s *Service) ListRooms(ctx context.Context) ([]*models.RoomResponse, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListRooms: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRooms - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoomList(rooms), nil
}

// Delete удаляет бронирование по ID
// Идемпотентно: удаление неизвестного ID не является ошибкой.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting reservation id=%d", id)

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: reservation id=%d deleted", id)
	return nil
}
