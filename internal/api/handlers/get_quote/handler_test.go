package get_quote

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_Handle(t *testing.T) {
	h := NewHandler(nopLogger{})

	// Пятница - понедельник: будни пт, выходные сб и вс
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/quote?checkIn=2025-06-13&checkOut=2025-06-16&cribOption=true", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Nights)
	assert.Equal(t, 1, resp.WeekdayNights)
	assert.Equal(t, 2, resp.WeekendNights)
	assert.Equal(t, int64(19000), resp.BasePrice)
	assert.Equal(t, int64(1000), resp.CribSurcharge)
	assert.Equal(t, int64(20000), resp.Total)
}

func TestHandler_Handle_InvalidDates(t *testing.T) {
	h := NewHandler(nopLogger{})

	for _, url := range []string{
		"/api/v1/quote?checkIn=13-06-2025&checkOut=2025-06-16",
		"/api/v1/quote?checkOut=2025-06-16",
		"/api/v1/quote?checkIn=2025-06-13&checkOut=demain",
	} {
		req := httptest.NewRequest(http.MethodGet, url, nil)
		rec := httptest.NewRecorder()

		h.Handle(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "url %s", url)
	}
}

func TestHandler_Handle_InvalidCribOption(t *testing.T) {
	h := NewHandler(nopLogger{})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/quote?checkIn=2025-06-13&checkOut=2025-06-16&cribOption=oui", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
