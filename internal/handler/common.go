package handler // handler defines http handlers

import (
    "errors"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/booking"
)

// Dispatcher consumes the post-commit event lists returned by booking
// transitions.  Declared here so handler tests can substitute a recorder.
type Dispatcher interface {
    Dispatch(events []booking.Event)
}

// getUserID extracts the user_id from echo.Context and converts it to uint64.
// JWTAuth stores it as uint64 but older clients of this helper may have
// stashed other numeric types, so the switch stays tolerant.
func getUserID(c echo.Context) (uint64, error) {
    v := c.Get("user_id")
    switch t := v.(type) {
    case uint64:
        return t, nil
    case int:
        return uint64(t), nil
    case int64:
        return uint64(t), nil
    case float64:
        return uint64(t), nil
    case string:
        if n, err := strconv.ParseUint(t, 10, 64); err == nil {
            return n, nil
        }
    }
    return 0, errors.New("invalid user_id in context")
}
