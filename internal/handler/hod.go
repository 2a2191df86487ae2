package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/booking"
)

// HODHandler serves the approval endpoints.  Routes using it sit behind
// the HOD role guard, so by the time a handler runs the caller is known
// to hold the HOD role.
type HODHandler struct {
	Service  *booking.Service
	Dispatch Dispatcher
}

func NewHODHandler(svc *booking.Service, d Dispatcher) *HODHandler {
	if svc == nil || d == nil {
		panic("nil dependency passed to NewHODHandler")
	}
	return &HODHandler{Service: svc, Dispatch: d}
}

type decisionReq struct {
	RequestID uint64 `json:"request_id"`
}

// Pending handles GET /v1/bookings/pending: every pending request across
// all rooms, oldest first, with the requester's display name attached.
func (h *HODHandler) Pending(c echo.Context) error {
	items, err := h.Service.Pending(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load pending requests"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Approve handles POST /v1/bookings/approve.  The state change is a
// conditional update keyed on pending status, so losing a race with a
// concurrent approve or reject surfaces as a 404 here.
func (h *HODHandler) Approve(c echo.Context) error {
	var req decisionReq
	if err := c.Bind(&req); err != nil || req.RequestID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "request_id is required"})
	}

	events, err := h.Service.Approve(c.Request().Context(), req.RequestID)
	if err != nil {
		if errors.Is(err, booking.ErrAlreadyProcessed) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "request not found or already processed"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "approval failed"})
	}
	h.Dispatch.Dispatch(events)

	return c.JSON(http.StatusOK, echo.Map{"message": "booking approved"})
}

// Reject handles POST /v1/bookings/reject.  Rejection deletes the pending
// row outright, freeing the slot for other requests.
func (h *HODHandler) Reject(c echo.Context) error {
	var req decisionReq
	if err := c.Bind(&req); err != nil || req.RequestID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "request_id is required"})
	}

	events, err := h.Service.Reject(c.Request().Context(), req.RequestID)
	if err != nil {
		if errors.Is(err, booking.ErrAlreadyProcessed) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "request not found or already processed"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "rejection failed"})
	}
	h.Dispatch.Dispatch(events)

	return c.JSON(http.StatusOK, echo.Map{"message": "booking rejected"})
}
