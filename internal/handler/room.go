package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/repository"
)

// RoomHandler serves the seeded room catalog.  The listing is identical
// for every caller, which is what lets the route sit behind the Redis
// response cache.
type RoomHandler struct {
	Rooms *repository.RoomRepo
}

// List handles GET /v1/rooms.
func (h *RoomHandler) List(c echo.Context) error {
	rooms, err := h.Rooms.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load rooms"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": rooms})
}
