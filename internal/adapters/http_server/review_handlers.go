package httpserver

import (
	"net/http"
	"strings"
)

func validRating(r int) bool { return r >= 1 && r <= 5 }

func (h *Handlers) createReview(w http.ResponseWriter, r *http.Request) {
	uid, ok := caller(w, r)
	if !ok {
		return
	}
	var body struct {
		RoomID  int64  `json:"room_id"`
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if !decode(w, r, &body) {
		return
	}
	if body.RoomID <= 0 {
		writeError(w, http.StatusBadRequest, "room_id is required")
		return
	}
	if !validRating(body.Rating) {
		writeError(w, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}
	out, err := h.Reviews.CreateReview(r.Context(), uid, body.RoomID, body.Rating, strings.TrimSpace(body.Comment))
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, out, "review created")
}

func (h *Handlers) updateReview(w http.ResponseWriter, r *http.Request) {
	uid, ok := caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r, "reviewId")
	if !ok {
		writeError(w, http.StatusBadRequest, "reviewId must be a positive number")
		return
	}
	var body struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if !decode(w, r, &body) {
		return
	}
	if !validRating(body.Rating) {
		writeError(w, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}
	out, err := h.Reviews.UpdateReview(r.Context(), uid, id, body.Rating, strings.TrimSpace(body.Comment))
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, out, "review updated")
}

func (h *Handlers) getReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "reviewId")
	if !ok {
		writeError(w, http.StatusBadRequest, "reviewId must be a positive number")
		return
	}
	out, err := h.Reviews.ReviewByID(r.Context(), id)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, out, "review loaded")
}

func (h *Handlers) reviewsByRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "roomId")
	if !ok {
		writeError(w, http.StatusBadRequest, "roomId must be a positive number")
		return
	}
	out, err := h.Reviews.ReviewsByRoom(r.Context(), id)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, out, "reviews loaded")
}

func (h *Handlers) reviewsByUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "userId")
	if !ok {
		writeError(w, http.StatusBadRequest, "userId must be a positive number")
		return
	}
	out, err := h.Reviews.ReviewsByUser(r.Context(), id)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, out, "reviews loaded")
}
