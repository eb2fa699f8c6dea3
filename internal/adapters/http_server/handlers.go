package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"staybook/internal/app"
)

type Handlers struct {
	Users     *app.UserService
	Bookings  *app.BookingService
	Reviews   *app.ReviewService
	Hotels    *app.HotelQueryService
	JWTSecret string
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/verify-otp", h.verifyOtp)
		r.Post("/auth/resend-otp", h.resendOtp)
		r.Post("/auth/set-password", h.setPassword)
		r.Post("/auth/login", h.login)

		r.Get("/hotels", h.listHotels)
		r.Get("/hotels/{id}", h.getHotel)

		r.Get("/reviews/room/{roomId}", h.reviewsByRoom)
		r.Get("/reviews/user/{userId}", h.reviewsByUser)
		r.Get("/reviews/{reviewId}", h.getReview)

		r.Group(func(r chi.Router) {
			r.Use(Auth(h.JWTSecret))

			r.Get("/users/me", h.me)

			r.Post("/bookings", h.createBooking)
			r.Get("/bookings", h.userBookings)
			r.Get("/bookings/upcoming", h.upcomingBookings)
			r.Get("/bookings/past", h.pastBookings)
			r.Get("/bookings/{id}", h.getBooking)
			r.Put("/bookings/{id}/cancel", h.cancelBooking)
			r.Put("/bookings/{id}/confirm", h.confirmBooking)

			r.Post("/reviews", h.createReview)
			r.Put("/reviews/{reviewId}", h.updateReview)
		})
	})
}

// ---- small request helpers ----

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil && id > 0
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.UTC)
}

func caller(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := CallerID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
	}
	return id, ok
}
