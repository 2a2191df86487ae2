package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/booking"
	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/model"
)

func TestApproveHappyPath(t *testing.T) {
	t.Parallel()
	disp := &recorderDispatcher{}
	h := NewHODHandler(booking.NewService(&stubStore{markOK: true}), disp)

	c, rec := newBookingContext(http.MethodPost, "/v1/bookings/approve", `{"request_id":11}`, 1)
	require.NoError(t, h.Approve(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	// A broadcast invalidation plus the approval mail event.
	require.Len(t, disp.events, 2)
	assert.Equal(t, booking.PendingChanged{RequestID: 11}, disp.events[0])
	mail, ok := disp.events[1].(booking.ApprovalMail)
	require.True(t, ok)
	assert.Equal(t, "u@example.com", mail.Detail.Email)
}

func TestApproveAlreadyProcessedIs404(t *testing.T) {
	t.Parallel()
	disp := &recorderDispatcher{}
	h := NewHODHandler(booking.NewService(&stubStore{markOK: false}), disp)

	c, rec := newBookingContext(http.MethodPost, "/v1/bookings/approve", `{"request_id":11}`, 1)
	require.NoError(t, h.Approve(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, disp.events)
}

func TestDecisionRequiresRequestID(t *testing.T) {
	t.Parallel()
	h := NewHODHandler(booking.NewService(&stubStore{markOK: true, deleteOK: true}), &recorderDispatcher{})

	c, rec := newBookingContext(http.MethodPost, "/v1/bookings/approve", `{}`, 1)
	require.NoError(t, h.Approve(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newBookingContext(http.MethodPost, "/v1/bookings/reject", `{}`, 1)
	require.NoError(t, h.Reject(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRejectHappyPath(t *testing.T) {
	t.Parallel()
	disp := &recorderDispatcher{}
	h := NewHODHandler(booking.NewService(&stubStore{deleteOK: true}), disp)

	c, rec := newBookingContext(http.MethodPost, "/v1/bookings/reject", `{"request_id":11}`, 1)
	require.NoError(t, h.Reject(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, disp.events, 1)
	assert.Equal(t, booking.PendingChanged{RequestID: 11}, disp.events[0])
}

func TestRejectAlreadyProcessedIs404(t *testing.T) {
	t.Parallel()
	h := NewHODHandler(booking.NewService(&stubStore{deleteOK: false}), &recorderDispatcher{})

	c, rec := newBookingContext(http.MethodPost, "/v1/bookings/reject", `{"request_id":11}`, 1)
	require.NoError(t, h.Reject(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPendingList(t *testing.T) {
	t.Parallel()
	store := &stubStore{pending: []model.PendingRequest{
		{ID: 3, DisplayName: "alice", Room: "R1", Date: "2030-05-10", Period: 5, Purpose: "seminar"},
	}}
	h := NewHODHandler(booking.NewService(store), &recorderDispatcher{})

	c, rec := newBookingContext(http.MethodGet, "/v1/bookings/pending", "", 1)
	require.NoError(t, h.Pending(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[
		{"id":3,"username":"alice","room":"R1","date":"2030-05-10","period":5,"purpose":"seminar"}
	]}`, rec.Body.String())
}
