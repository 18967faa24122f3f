package update_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/NC-GuesthouseService/internal/domain"
	reservationRepo "github.com/m04kA/NC-GuesthouseService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/NC-GuesthouseService/internal/infra/storage/room"
	"github.com/m04kA/NC-GuesthouseService/internal/service/pricing"
	"github.com/m04kA/NC-GuesthouseService/internal/service/rules"
	"github.com/m04kA/NC-GuesthouseService/pkg/types"
)

// UseCase use case для обновления бронирования
// При проверке доступности прежняя версия самого бронирования исключается,
// иначе любое редактирование дат конфликтовало бы с самим собой.
type UseCase struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case обновления бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: id=%d, guest=%s, room=%d, checkIn=%s, checkOut=%s",
		req.ID, req.GuestName, req.RoomID, req.CheckIn, req.CheckOut)

	// 1. Валидация формы входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что бронирование существует
	if _, err := uc.reservationRepo.GetByID(ctx, req.ID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("UpdateReservation: reservation id=%d not found", req.ID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("UpdateReservation: failed to get reservation id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	// 3. Проверяем существование комнаты
	if _, err := uc.roomRepo.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("UpdateReservation: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("UpdateReservation: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 4. Собираем новую версию
	status, _ := domain.ToReservationStatus(req.Status)
	draft := &domain.Reservation{
		ID:         req.ID,
		GuestName:  req.GuestName,
		Email:      req.Email,
		Phone:      req.Phone,
		RoomID:     req.RoomID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Adults:     req.Adults,
		Children:   req.Children,
		CribOption: req.CribOption,
		Status:     status,
	}

	// 5. Правила дома; isNew=false - проверка будущей даты не применяется,
	// прежняя версия исключается из проверки доступности
	existing, err := uc.reservationRepo.List(ctx)
	if err != nil {
		uc.logger.Error("UpdateReservation: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	today := types.NewDateString(uc.timeProvider.Now())
	if violations := rules.Validate(draft, existing, false, today); len(violations) > 0 {
		uc.logger.Warn("UpdateReservation: %d rule violations for id=%d", len(violations), req.ID)
		return nil, &ValidationError{Violations: violations}
	}

	// 6. Пересчитываем цену: даты или опции могли измениться
	draft.TotalPrice = pricing.CalculatePrice(req.CheckIn, req.CheckOut, req.CribOption)

	// 7. Заменяем версию в хранилище (CreatedAt переносит хранилище)
	updated, err := uc.reservationRepo.Update(ctx, draft)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("UpdateReservation: failed to update reservation id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("UpdateReservation: successfully updated reservation id=%d, totalPrice=%d",
		updated.ID, updated.TotalPrice)

	return &Response{
		ID:         updated.ID,
		GuestName:  updated.GuestName,
		Email:      updated.Email,
		Phone:      updated.Phone,
		RoomID:     updated.RoomID,
		CheckIn:    updated.CheckIn,
		CheckOut:   updated.CheckOut,
		Adults:     updated.Adults,
		Children:   updated.Children,
		CribOption: updated.CribOption,
		Status:     string(updated.Status),
		TotalPrice: updated.TotalPrice,
		CreatedAt:  updated.CreatedAt,
	}, nil
}
