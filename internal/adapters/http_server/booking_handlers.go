package httpserver

import (
	"net/http"

	"staybook/internal/app"
)

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	uid, ok := caller(w, r)
	if !ok {
		return
	}
	var body struct {
		RoomID   int64  `json:"room_id"`
		CheckIn  string `json:"check_in"`
		CheckOut string `json:"check_out"`
		Adults   int    `json:"adults_count"`
		Children int    `json:"children_count"`
		Infants  int    `json:"infants_count"`
	}
	if !decode(w, r, &body) {
		return
	}
	if body.RoomID <= 0 {
		writeError(w, http.StatusBadRequest, "room_id is required")
		return
	}
	checkIn, err := parseDate(body.CheckIn)
	if err != nil {
		writeError(w, http.StatusBadRequest, "check_in must be YYYY-MM-DD")
		return
	}
	checkOut, err := parseDate(body.CheckOut)
	if err != nil {
		writeError(w, http.StatusBadRequest, "check_out must be YYYY-MM-DD")
		return
	}

	out, err := h.Bookings.CreateBooking(r.Context(), uid, app.CreateBookingInput{
		RoomID:   body.RoomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Adults:   body.Adults,
		Children: body.Children,
		Infants:  body.Infants,
	})
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, out, "booking created")
}

func (h *Handlers) getBooking(w http.ResponseWriter, r *http.Request) {
	if _, ok := caller(w, r); !ok {
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "id must be a positive number")
		return
	}
	out, err := h.Bookings.BookingByID(r.Context(), id)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, out, "booking loaded")
}

func (h *Handlers) userBookings(w http.ResponseWriter, r *http.Request) {
	uid, ok := caller(w, r)
	if !ok {
		return
	}
	out, err := h.Bookings.UserBookings(r.Context(), uid)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, out, "bookings loaded")
}

func (h *Handlers) upcomingBookings(w http.ResponseWriter, r *http.Request) {
	uid, ok := caller(w, r)
	if !ok {
		return
	}
	out, err := h.Bookings.UpcomingBookings(r.Context(), uid)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, out, "upcoming bookings loaded")
}

func (h *Handlers) pastBookings(w http.ResponseWriter, r *http.Request) {
	uid, ok := caller(w, r)
	if !ok {
		return
	}
	out, err := h.Bookings.PastBookings(r.Context(), uid)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, out, "past bookings loaded")
}

func (h *Handlers) cancelBooking(w http.ResponseWriter, r *http.Request) {
	uid, ok := caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "id must be a positive number")
		return
	}
	out, err := h.Bookings.CancelBooking(r.Context(), uid, id)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, out, "booking cancelled")
}

func (h *Handlers) confirmBooking(w http.ResponseWriter, r *http.Request) {
	uid, ok := caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "id must be a positive number")
		return
	}
	out, err := h.Bookings.ConfirmBooking(r.Context(), uid, id)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, out, "booking confirmed")
}
