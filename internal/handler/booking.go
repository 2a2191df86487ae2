package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/booking"
	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/repository"
)

// BookingHandler serves the slot-booking endpoints available to every
// authenticated user: creating requests, reading availability and listing
// one's own requests.  JWT authentication has already run; the acting
// identity comes from the request context.
type BookingHandler struct {
	Service  *booking.Service
	Dispatch Dispatcher
	Bookings *repository.BookingRepo
}

// NewBookingHandler constructs a BookingHandler.  Service and dispatcher
// must be non-nil; the repo is only needed for the my-bookings listing.
func NewBookingHandler(svc *booking.Service, d Dispatcher, repo *repository.BookingRepo) *BookingHandler {
	if svc == nil || d == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{Service: svc, Dispatch: d, Bookings: repo}
}

type createBookingReq struct {
	Room    string `json:"room"`
	Date    string `json:"date"`
	Period  int    `json:"period"`
	Purpose string `json:"purpose"`
}

// Create handles POST /v1/bookings.  On success the request is recorded as
// pending and 201 is returned; the push events fire in the background.
func (h *BookingHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	events, err := h.Service.Request(c.Request().Context(), booking.RequestInput{
		Room:    req.Room,
		Date:    req.Date,
		Period:  req.Period,
		Purpose: req.Purpose,
		UserID:  userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking data"})
		case errors.Is(err, booking.ErrPastSlot):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "cannot book for past times"})
		case errors.Is(err, booking.ErrSlotTaken):
			return c.JSON(http.StatusConflict, echo.Map{"error": "this slot is already booked"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking failed"})
	}
	h.Dispatch.Dispatch(events)

	return c.JSON(http.StatusCreated, echo.Map{"message": "booking request sent for HOD approval"})
}

// Availability handles GET /v1/bookings/availability?room=&date=.  The
// response is always a 7-element array ordered by period; other users'
// pending requests appear free to this viewer.
func (h *BookingHandler) Availability(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	room := c.QueryParam("room")
	date := c.QueryParam("date")

	views, err := h.Service.Availability(c.Request().Context(), room, date, userID)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "room and date are required"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, views)
}

type myBookingItem struct {
	ID      uint64 `json:"id"`
	Room    string `json:"room"`
	Date    string `json:"date"`
	Period  int    `json:"period"`
	Purpose string `json:"purpose"`
	Status  string `json:"status"`
	EndTime string `json:"end_time"`
}

// Mine handles GET /v1/bookings/mine, returning the caller's own requests
// newest first.  Unlike availability, nothing is masked here: these are
// all the caller's records.
func (h *BookingHandler) Mine(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	records, err := h.Bookings.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
	}
	items := make([]myBookingItem, 0, len(records))
	for _, b := range records {
		items = append(items, myBookingItem{
			ID:      b.ID,
			Room:    b.Room,
			Date:    b.Date,
			Period:  b.Period,
			Purpose: b.Purpose,
			Status:  b.Status,
			EndTime: b.EndTime.UTC().Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
