package router

// This file registers the booking routes: the user-facing request and
// availability endpoints, the HOD approval endpoints and the websocket
// event stream.  Role guards keep the approval endpoints HOD-only.

import (
	"github.com/labstack/echo/v4"

	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/handler"
	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/middleware"
)

// RegisterBooking registers booking endpoints available to every
// authenticated user under /v1.  The room catalog optionally sits behind
// the Redis response cache; pass nil to skip caching.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, r *handler.RoomHandler, jwtSecret string, cache echo.MiddlewareFunc) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("REGULAR", "HOD"),
	)
	g.POST("/bookings", b.Create)
	g.GET("/bookings/availability", b.Availability)
	g.GET("/bookings/mine", b.Mine)

	// The room listing is identical for every caller, so it is the one
	// read endpoint safe to cache.  Availability responses depend on the
	// viewer and must never be cached.
	if cache != nil {
		g.GET("/rooms", r.List, cache)
	} else {
		g.GET("/rooms", r.List)
	}
}

// RegisterHOD registers the approval endpoints.  All routes require a
// valid JWT and the HOD role.
func RegisterHOD(e *echo.Echo, h *handler.HODHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("HOD"),
	)
	g.GET("/bookings/pending", h.Pending)
	g.POST("/bookings/approve", h.Approve)
	g.POST("/bookings/reject", h.Reject)
}

// RegisterEvents registers the websocket event stream.  The handshake
// authenticates via the `token` query parameter inside the handler, so
// no JWT middleware is attached here.
func RegisterEvents(e *echo.Echo, h *handler.EventsHandler) {
	e.GET("/v1/events", h.Stream)
}
