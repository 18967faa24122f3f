package get_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/NC-GuesthouseService/internal/domain"
	"github.com/m04kA/NC-GuesthouseService/pkg/types"
)

// UseCase use case для календарной сетки месяца
// Сетка строится полными неделями: от понедельника недели, содержащей
// первое число, до воскресенья недели, содержащей последнее.
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

// Execute строит сетку месяца с бронированиями по дням
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now()

	month := req.Month
	if month == "" {
		month = now.Format(domain.MonthFormat)
	}

	firstOfMonth, err := time.Parse(domain.MonthFormat, month)
	if err != nil {
		uc.logger.Warn("GetCalendar: invalid month %q: %v", req.Month, err)
		return nil, fmt.Errorf("%w: %q", ErrInvalidMonth, req.Month)
	}

	reservations, err := uc.reservationRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	rooms, err := uc.roomRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	roomNames := make(map[int64]string, len(rooms))
	for _, room := range rooms {
		roomNames[room.ID] = room.Name
	}

	// Границы сетки: неделя начинается с понедельника
	gridStart := firstOfMonth.AddDate(0, 0, -mondayOffset(firstOfMonth))
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)
	gridEnd := lastOfMonth.AddDate(0, 0, 6-mondayOffset(lastOfMonth))

	today := types.NewDateString(now)

	resp := &Response{
		Month: month,
		Days:  make([]Day, 0, 42),
	}

	for cur := gridStart; !cur.After(gridEnd); cur = cur.AddDate(0, 0, 1) {
		date := types.NewDateString(cur)

		day := Day{
			Date:           date,
			InCurrentMonth: cur.Format(domain.MonthFormat) == month,
			IsToday:        date == today,
			IsClosed:       cur.Weekday() == domain.ClosedWeekday,
			Reservations:   make([]DayReservation, 0),
		}

		for _, res := range reservations {
			if res.IsCancelled() {
				continue
			}
			if res.CoversDay(date) {
				day.Reservations = append(day.Reservations, DayReservation{
					ReservationID: res.ID,
					GuestName:     res.GuestName,
					RoomID:        res.RoomID,
					RoomName:      roomNames[res.RoomID],
					Status:        string(res.Status),
				})
			}
		}

		resp.Days = append(resp.Days, day)
	}

	uc.logger.Info("GetCalendar: month=%s, days=%d", month, len(resp.Days))

	return resp, nil
}

// mondayOffset количество дней от понедельника той же недели до t
func mondayOffset(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
