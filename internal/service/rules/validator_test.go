package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/NC-GuesthouseService/internal/domain"
	"github.com/m04kA/NC-GuesthouseService/pkg/types"
)

const today = types.DateString("2025-06-01")

func validDraft() *domain.Reservation {
	// 2025-06-10 вторник, 2025-06-13 пятница: без понедельника
	return &domain.Reservation{
		GuestName: "Marie Dubois",
		Email:     "marie.dubois@email.com",
		RoomID:    1,
		CheckIn:   "2025-06-10",
		CheckOut:  "2025-06-13",
		Adults:    2,
		Children:  1,
		Status:    domain.StatusPending,
	}
}

func TestValidate_ValidDraft(t *testing.T) {
	violations := Validate(validDraft(), nil, true, today)
	assert.Empty(t, violations)
}

func TestValidate_MondayOnly(t *testing.T) {
	// 2025-06-09 - понедельник; остальные правила соблюдены
	draft := validDraft()
	draft.CheckIn = "2025-06-09"
	draft.CheckOut = "2025-06-10"

	violations := Validate(draft, nil, true, today)
	assert.Equal(t, []string{MsgClosedOnMonday}, violations)
}

func TestValidate_DateOrder(t *testing.T) {
	draft := validDraft()
	draft.CheckIn = "2025-06-13"
	draft.CheckOut = "2025-06-13"

	violations := Validate(draft, nil, true, today)
	assert.Contains(t, violations, MsgCheckOutNotAfterCheckIn)
}

func TestValidate_RoomUnavailable(t *testing.T) {
	existing := []*domain.Reservation{
		{ID: 7, RoomID: 1, CheckIn: "2025-06-11", CheckOut: "2025-06-14", Status: domain.StatusConfirmed},
	}

	violations := Validate(validDraft(), existing, true, today)
	assert.Equal(t, []string{MsgRoomUnavailable}, violations)
}

func TestValidate_UpdateExcludesOwnPriorVersion(t *testing.T) {
	draft := validDraft()
	draft.ID = 7

	// Единственное пересечение - прежняя версия самого черновика
	existing := []*domain.Reservation{
		{ID: 7, RoomID: 1, CheckIn: "2025-06-11", CheckOut: "2025-06-14", Status: domain.StatusConfirmed},
	}

	violations := Validate(draft, existing, false, today)
	assert.Empty(t, violations)
}

func TestValidate_Occupancy(t *testing.T) {
	tests := []struct {
		name     string
		adults   int
		children int
		want     []string
	}{
		{name: "too many adults", adults: 3, children: 0, want: []string{MsgTooManyAdults}},
		{name: "too many children", adults: 1, children: 2, want: []string{MsgTooManyChildren}},
		{
			name:     "everything over limit",
			adults:   3,
			children: 2,
			want:     []string{MsgTooManyGuests, MsgTooManyAdults, MsgTooManyChildren},
		},
		{name: "at the limit", adults: 2, children: 1, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			draft.Adults = tt.adults
			draft.Children = tt.children

			violations := Validate(draft, nil, true, today)
			assert.Equal(t, tt.want, violations)
		})
	}
}

func TestValidate_CheckInInPast(t *testing.T) {
	draft := validDraft()
	draft.CheckIn = "2025-05-28"
	draft.CheckOut = "2025-05-30"

	violations := Validate(draft, nil, true, today)
	assert.Equal(t, []string{MsgCheckInInPast}, violations)

	// Для обновлений проверка будущей даты не применяется
	draft.ID = 1
	violations = Validate(draft, nil, false, today)
	assert.Empty(t, violations)
}

func TestValidate_CheckInToday(t *testing.T) {
	// Заезд в сам референсный день разрешен
	draft := validDraft()
	draft.CheckIn = "2025-06-03"
	draft.CheckOut = "2025-06-06"

	violations := Validate(draft, nil, true, types.DateString("2025-06-03"))
	assert.Empty(t, violations)
}

// TestValidate_CollectsAllViolationsInOrder все нарушения собираются за один проход,
// порядок сообщений фиксирован
func TestValidate_CollectsAllViolationsInOrder(t *testing.T) {
	existing := []*domain.Reservation{
		{ID: 9, RoomID: 1, CheckIn: "2025-05-20", CheckOut: "2025-05-24", Status: domain.StatusConfirmed},
	}

	draft := validDraft()
	// 2025-05-26 - понедельник; диапазон инвертирован; комната занята; перебор гостей; дата в прошлом
	draft.CheckIn = "2025-05-23"
	draft.CheckOut = "2025-05-23"
	draft.Adults = 3
	draft.Children = 2

	violations := Validate(draft, existing, true, today)

	assert.Equal(t, []string{
		MsgCheckOutNotAfterCheckIn,
		MsgRoomUnavailable,
		MsgTooManyGuests,
		MsgTooManyAdults,
		MsgTooManyChildren,
		MsgCheckInInPast,
	}, violations)
}

func TestValidate_DoesNotMutateInputs(t *testing.T) {
	draft := validDraft()
	existing := []*domain.Reservation{
		{ID: 7, RoomID: 1, CheckIn: "2025-06-11", CheckOut: "2025-06-14", Status: domain.StatusConfirmed},
	}

	before := *draft
	first := Validate(draft, existing, true, today)
	second := Validate(draft, existing, true, today)

	assert.Equal(t, before, *draft)
	assert.Equal(t, first, second, "validator is pure given the same inputs")
}
