package rules

import (
	"github.com/m04kA/NC-GuesthouseService/internal/domain"
	"github.com/m04kA/NC-GuesthouseService/internal/service/availability"
	"github.com/m04kA/NC-GuesthouseService/pkg/types"
)

// Validate прогоняет черновик бронирования через все правила дома
// Возвращает список сообщений о нарушениях (пустой список = черновик валиден).
//
// Проверки выполняются независимо, без short-circuit: все нарушения
// собираются за один проход, порядок сообщений фиксирован:
// 1. порядок дат;
// 2. закрытый понедельник;
// 3. доступность комнаты (прежняя версия самого бронирования исключается при isNew=false);
// 4. вместимость (всего, взрослые, дети);
// 5. заезд не в прошлом (только для новых бронирований).
//
// Референсная дата today передается явно, чтобы проверки были детерминированными.
// Функция чистая: не мутирует ни черновик, ни существующие бронирования.
func Validate(draft *domain.Reservation, existing []*domain.Reservation, isNew bool, today types.DateString) []string {
	violations := make([]string, 0)

	// 1. Порядок дат
	if !draft.CheckOut.IsAfter(draft.CheckIn) {
		violations = append(violations, MsgCheckOutNotAfterCheckIn)
	}

	// 2. Закрытый день недели в [checkIn, checkOut)
	if domain.RangeContainsWeekday(draft.CheckIn, draft.CheckOut, domain.ClosedWeekday) {
		violations = append(violations, MsgClosedOnMonday)
	}

	// 3. Доступность комнаты
	var excludeID *int64
	if !isNew {
		excludeID = &draft.ID
	}
	if !availability.Check(draft.RoomID, draft.CheckIn, draft.CheckOut, excludeID, existing) {
		violations = append(violations, MsgRoomUnavailable)
	}

	// 4. Вместимость
	if draft.TotalGuests() > domain.MaxGuestsPerRoom {
		violations = append(violations, MsgTooManyGuests)
	}
	if draft.Adults > domain.MaxAdults {
		violations = append(violations, MsgTooManyAdults)
	}
	if draft.Children > domain.MaxChildren {
		violations = append(violations, MsgTooManyChildren)
	}

	// 5. Заезд в будущем - только для новых бронирований
	if isNew && draft.CheckIn.IsBefore(today) {
		violations = append(violations, MsgCheckInInPast)
	}

	return violations
}
