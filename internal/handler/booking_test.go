package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/booking"
	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/model"
)

// stubStore returns canned answers so handler tests exercise only the
// HTTP mapping, not the engine.
type stubStore struct {
	booked     bool
	markOK     bool
	deleteOK   bool
	records    []model.Booking
	pending    []model.PendingRequest
	insertedID uint64
}

func (s *stubStore) BookedExists(context.Context, string, string, int) (bool, error) {
	return s.booked, nil
}

func (s *stubStore) InsertPending(_ context.Context, b *model.Booking) error {
	b.ID = s.insertedID
	return nil
}

func (s *stubStore) MarkBooked(context.Context, uint64) (bool, error)   { return s.markOK, nil }
func (s *stubStore) DeletePending(context.Context, uint64) (bool, error) { return s.deleteOK, nil }

func (s *stubStore) ListByRoomDate(context.Context, string, string) ([]model.Booking, error) {
	return s.records, nil
}

func (s *stubStore) ListPending(context.Context) ([]model.PendingRequest, error) {
	return s.pending, nil
}

func (s *stubStore) ApprovedDetail(context.Context, uint64) (model.ApprovedDetail, error) {
	return model.ApprovedDetail{Email: "u@example.com", Room: "R1", Date: "2030-05-10", Period: 5}, nil
}

// recorderDispatcher captures dispatched events instead of delivering them.
type recorderDispatcher struct {
	events []booking.Event
}

func (r *recorderDispatcher) Dispatch(events []booking.Event) {
	r.events = append(r.events, events...)
}

func newBookingContext(method, target, body string, userID uint64) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("role", "REGULAR")
	return c, rec
}

func TestCreateBookingAccepted(t *testing.T) {
	t.Parallel()
	store := &stubStore{insertedID: 11}
	disp := &recorderDispatcher{}
	h := NewBookingHandler(booking.NewService(store), disp, nil)

	c, rec := newBookingContext(http.MethodPost, "/v1/bookings",
		`{"room":"R1","date":"2030-05-10","period":5,"purpose":"seminar"}`, 7)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, disp.events, 2)
	assert.Equal(t, booking.SlotPending{UserID: 7, Room: "R1", Date: "2030-05-10", Period: 5}, disp.events[0])
}

func TestCreateBookingErrorMapping(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name     string
		store    *stubStore
		body     string
		wantCode int
	}{
		{
			name:     "missing fields",
			store:    &stubStore{},
			body:     `{"room":"","date":"2030-05-10","period":5,"purpose":"x"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "past slot",
			store:    &stubStore{},
			body:     `{"room":"R1","date":"2001-01-01","period":1,"purpose":"x"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "slot taken",
			store:    &stubStore{booked: true},
			body:     `{"room":"R1","date":"2030-05-10","period":5,"purpose":"x"}`,
			wantCode: http.StatusConflict,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			disp := &recorderDispatcher{}
			h := NewBookingHandler(booking.NewService(tc.store), disp, nil)

			c, rec := newBookingContext(http.MethodPost, "/v1/bookings", tc.body, 7)
			require.NoError(t, h.Create(c))

			assert.Equal(t, tc.wantCode, rec.Code)
			assert.Empty(t, disp.events, "failed request must not dispatch events")
		})
	}
}

func TestAvailabilityReturnsSevenSlots(t *testing.T) {
	t.Parallel()
	status := model.StatusBooked
	store := &stubStore{records: []model.Booking{
		{UserID: 9, Room: "R1", Date: "2030-05-10", Period: 2, Purpose: "lecture", Status: status},
	}}
	h := NewBookingHandler(booking.NewService(store), &recorderDispatcher{}, nil)

	c, rec := newBookingContext(http.MethodGet, "/v1/bookings/availability?room=R1&date=2030-05-10", "", 7)
	require.NoError(t, h.Availability(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"booked":false,"status":null,"purpose":null},
		{"booked":true,"status":"booked","purpose":"lecture"},
		{"booked":false,"status":null,"purpose":null},
		{"booked":false,"status":null,"purpose":null},
		{"booked":false,"status":null,"purpose":null},
		{"booked":false,"status":null,"purpose":null},
		{"booked":false,"status":null,"purpose":null}
	]`, rec.Body.String())
}

func TestAvailabilityMissingParams(t *testing.T) {
	t.Parallel()
	h := NewBookingHandler(booking.NewService(&stubStore{}), &recorderDispatcher{}, nil)

	c, rec := newBookingContext(http.MethodGet, "/v1/bookings/availability?room=R1", "", 7)
	require.NoError(t, h.Availability(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
