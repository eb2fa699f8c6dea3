package httpserver

import (
	"net/http"
	"strconv"

	"staybook/internal/domain"
)

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	q := domain.HotelsQuery{Limit: 50}
	if city := r.URL.Query().Get("city"); city != "" {
		q.City = &city
	}
	if ls := r.URL.Query().Get("limit"); ls != "" {
		l, err := strconv.Atoi(ls)
		if err != nil || l <= 0 || l > 200 {
			writeError(w, http.StatusBadRequest, "limit must be an integer between 1 and 200")
			return
		}
		q.Limit = l
	}
	out, err := h.Hotels.Hotels(r.Context(), q)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, out, "hotels loaded")
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "id must be a positive number")
		return
	}
	out, err := h.Hotels.HotelByID(r.Context(), id)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, out, "hotel loaded")
}
