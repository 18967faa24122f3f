package create_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NC-GuesthouseService/internal/service/rules"
	createReservation "github.com/m04kA/NC-GuesthouseService/internal/usecase/create_reservation"
)

type fakeUseCase struct {
	resp *createReservation.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *createReservation.Request) (*createReservation.Response, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"guestName": "Marie Dubois",
	"email": "marie.dubois@email.com",
	"roomId": 1,
	"checkIn": "2025-06-10",
	"checkOut": "2025-06-13",
	"adults": 2,
	"children": 1,
	"cribOption": true
}`

func TestHandler_Handle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createReservation.Response{
		ID:         1,
		GuestName:  "Marie Dubois",
		Email:      "marie.dubois@email.com",
		RoomID:     1,
		CheckIn:    "2025-06-10",
		CheckOut:   "2025-06-13",
		Adults:     2,
		Children:   1,
		CribOption: true,
		Status:     "pending",
		TotalPrice: 16000,
		CreatedAt:  time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(validBody))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(16000), resp.TotalPrice)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2025-06-01T10:00:00Z", resp.CreatedAt)
}

func TestHandler_Handle_Violations(t *testing.T) {
	uc := &fakeUseCase{err: &createReservation.ValidationError{
		Violations: []string{rules.MsgClosedOnMonday, rules.MsgRoomUnavailable},
	}}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(validBody))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Error      string   `json:"error"`
		Violations []string `json:"violations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{rules.MsgClosedOnMonday, rules.MsgRoomUnavailable}, resp.Violations)
}

func TestHandler_Handle_RoomNotFound(t *testing.T) {
	uc := &fakeUseCase{err: createReservation.ErrRoomNotFound}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(validBody))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Handle_InvalidBody(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(`{"guestName": `))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Handle_UnknownField(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations",
		strings.NewReader(`{"guestName": "Marie", "unknown": 1}`))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
