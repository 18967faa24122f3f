package get_dashboard

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/m04kA/NC-GuesthouseService/internal/domain"
	"github.com/m04kA/NC-GuesthouseService/pkg/types"
)

// UseCase use case для сводки по гостевому дому
// Все показатели вычисляются из снимка хранилища на момент запроса
// относительно референсной даты от timeProvider.
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

// Execute собирает статистику: счетчики по статусам, выручку текущего
// месяца, ближайшие заезды и текущую занятость комнат
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	reservations, err := uc.reservationRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetDashboard: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	rooms, err := uc.roomRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetDashboard: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	today := types.NewDateString(now)
	thisMonth := now.Format(domain.MonthFormat)
	windowEnd := types.NewDateString(now.AddDate(0, 0, domain.UpcomingArrivalsWindowDays))

	roomNames := make(map[int64]string, len(rooms))
	for _, room := range rooms {
		roomNames[room.ID] = room.Name
	}

	resp := &Response{
		TotalReservations: len(reservations),
		UpcomingArrivals:  make([]ArrivalInfo, 0),
		CurrentStays:      make([]StayInfo, 0),
		TotalRooms:        len(rooms),
	}

	for _, res := range reservations {
		switch res.Status {
		case domain.StatusConfirmed:
			resp.ConfirmedReservations++
		case domain.StatusPending:
			resp.PendingReservations++
		}

		if res.Status != domain.StatusConfirmed {
			continue
		}

		// Выручка месяца: по дате заезда, только подтвержденные
		// Сравнение по префиксу YYYY-MM корректно для валидных дат хранилища
		if strings.HasPrefix(res.CheckIn.String(), thisMonth) {
			resp.MonthlyRevenue += res.TotalPrice
		}

		// Ближайшие заезды: строго внутри окна (today, today+7)
		if today.IsBefore(res.CheckIn) && res.CheckIn.IsBefore(windowEnd) {
			resp.UpcomingArrivals = append(resp.UpcomingArrivals, ArrivalInfo{
				ReservationID: res.ID,
				GuestName:     res.GuestName,
				RoomID:        res.RoomID,
				RoomName:      roomNames[res.RoomID],
				CheckIn:       res.CheckIn,
				CheckOut:      res.CheckOut,
				TotalGuests:   res.TotalGuests(),
			})
		}

		// Текущее проживание: checkIn < today < checkOut
		if res.CheckIn.IsBefore(today) && today.IsBefore(res.CheckOut) {
			resp.CurrentStays = append(resp.CurrentStays, StayInfo{
				ReservationID: res.ID,
				GuestName:     res.GuestName,
				RoomID:        res.RoomID,
				RoomName:      roomNames[res.RoomID],
				CheckOut:      res.CheckOut,
			})
		}
	}

	sort.Slice(resp.UpcomingArrivals, func(i, j int) bool {
		return resp.UpcomingArrivals[i].CheckIn.IsBefore(resp.UpcomingArrivals[j].CheckIn)
	})

	resp.OccupiedRooms = len(resp.CurrentStays)
	if len(rooms) > 0 {
		resp.OccupancyRate = int(math.Round(float64(resp.OccupiedRooms) / float64(len(rooms)) * 100))
	}

	uc.logger.Info("GetDashboard: total=%d, confirmed=%d, pending=%d, occupancy=%d%%",
		resp.TotalReservations, resp.ConfirmedReservations, resp.PendingReservations, resp.OccupancyRate)

	return resp, nil
}
