package router

import (
	bookingHandler "hotel-booking-service/internal/module/booking/handler"
	loyaltyHandler "hotel-booking-service/internal/module/loyalty/handler"
	roomHandler "hotel-booking-service/internal/module/room/handler"
	"hotel-booking-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Room    *roomHandler.RoomHandler
	Booking *bookingHandler.BookingHandler
	Loyalty *loyaltyHandler.LoyaltyHandler
}

func Initialize(app *fiber.App, h Handlers, m *middleware.Middleware) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api", m.Tracing)

	// public routes
	v1 := Api.Group("/v1")
	v1.Get("/rooms/available", h.Room.FindAvailable)
	v1.Get("/rooms/:id/conflicts", h.Room.CheckConflict)
	v1.Post("/bookings", m.ResolveIdentity, h.Booking.CreatePublic)
	v1.Get("/customers/:id/points", h.Loyalty.PointsHistory)

	// operator routes
	private := Api.Group("/private")
	private.Post("/bookings", h.Booking.Create)
	private.Get("/bookings/deleted", h.Booking.DeletedBookings)
	private.Get("/bookings/:id", h.Booking.GetBooking)
	private.Put("/bookings/:id", h.Booking.Update)
	private.Delete("/bookings/:id", h.Booking.Delete)
	private.Patch("/bookings/:id/status", h.Booking.UpdateStatus)
	private.Get("/customers/:id/bookings", h.Booking.CustomerHistory)
	private.Post("/customers/:id/points/rebuild", h.Loyalty.RebuildBalance)

	return app

}
