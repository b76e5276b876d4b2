package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"mentormatch/internal/delivery/http/controllers"
	"mentormatch/internal/delivery/http/middleware"
	"mentormatch/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	availabilityController *controllers.AvailabilityController,
	bookingController *controllers.BookingController,
	authController *controllers.AuthController,
	verifier domain.TokenVerifier,
	logger *slog.Logger,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier, logger)

	// Availability
	mux.HandleFunc("GET /availability/mentors", availabilityController.GetMentors)
	mux.HandleFunc("GET /availability/mentor", availabilityController.GetUserAvailability)

	// Bookings
	mux.HandleFunc("POST /bookings", requireAuth(bookingController.Create))
	mux.HandleFunc("GET /bookings", requireAuth(bookingController.List))
	mux.HandleFunc("PATCH /bookings/{bookingID}", requireAuth(bookingController.Update))
	mux.HandleFunc("DELETE /bookings/{bookingID}", requireAuth(bookingController.Delete))

	// Auth
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
