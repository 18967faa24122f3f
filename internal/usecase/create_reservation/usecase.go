package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/NC-GuesthouseService/internal/domain"
	roomRepo "github.com/m04kA/NC-GuesthouseService/internal/infra/storage/room"
	"github.com/m04kA/NC-GuesthouseService/internal/service/pricing"
	"github.com/m04kA/NC-GuesthouseService/internal/service/rules"
	"github.com/m04kA/NC-GuesthouseService/pkg/types"
)

// UseCase use case для создания бронирования
// Последовательность фиксирована: проверка формы → правила дома → расчет цены → запись.
// Хранилище не валидирует и не пересчитывает - все решения принимаются здесь.
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

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: guest=%s, room=%d, checkIn=%s, checkOut=%s",
		req.GuestName, req.RoomID, req.CheckIn, req.CheckOut)

	// 1. Валидация формы входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем референсную дату
	today := types.NewDateString(uc.timeProvider.Now())

	// 3. Проверяем существование комнаты
	if _, err := uc.roomRepo.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateReservation: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateReservation: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 4. Собираем черновик
	draft := &domain.Reservation{
		GuestName:  req.GuestName,
		Email:      req.Email,
		Phone:      req.Phone,
		RoomID:     req.RoomID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Adults:     req.Adults,
		Children:   req.Children,
		CribOption: req.CribOption,
		Status:     resolveStatus(req.Status),
	}

	// 5. Прогоняем черновик через правила дома
	existing, err := uc.reservationRepo.List(ctx)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	if violations := rules.Validate(draft, existing, true, today); len(violations) > 0 {
		uc.logger.Warn("CreateReservation: %d rule violations for guest=%s", len(violations), req.GuestName)
		return nil, &ValidationError{Violations: violations}
	}

	// 6. Считаем цену непосредственно перед записью
	draft.TotalPrice = pricing.CalculatePrice(req.CheckIn, req.CheckOut, req.CribOption)

	// 7. Сохраняем бронирование (ID и CreatedAt присваивает хранилище)
	created, err := uc.reservationRepo.Create(ctx, draft)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d, totalPrice=%d",
		created.ID, created.TotalPrice)

	return &Response{
		ID:         created.ID,
		GuestName:  created.GuestName,
		Email:      created.Email,
		Phone:      created.Phone,
		RoomID:     created.RoomID,
		CheckIn:    created.CheckIn,
		CheckOut:   created.CheckOut,
		Adults:     created.Adults,
		Children:   created.Children,
		CribOption: created.CribOption,
		Status:     string(created.Status),
		TotalPrice: created.TotalPrice,
		CreatedAt:  created.CreatedAt,
	}, nil
}
