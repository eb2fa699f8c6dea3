package httpserver

import (
	"net/http"
	"strings"
)

func (h *Handlers) register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		FullName    string `json:"full_name"`
		Email       string `json:"email"`
		PhoneNumber string `json:"phone_number"`
	}
	if !decode(w, r, &body) {
		return
	}
	body.FullName = strings.TrimSpace(body.FullName)
	body.Email = strings.TrimSpace(strings.ToLower(body.Email))
	body.PhoneNumber = strings.TrimSpace(body.PhoneNumber)
	if body.FullName == "" || body.Email == "" || body.PhoneNumber == "" {
		writeError(w, http.StatusBadRequest, "full_name, email and phone_number are required")
		return
	}

	u, err := h.Users.Register(r.Context(), body.FullName, body.Email, body.PhoneNumber)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, u, "registration started, verification code sent")
}

func (h *Handlers) verifyOtp(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PhoneNumber string `json:"phone_number"`
		Code        string `json:"code"`
	}
	if !decode(w, r, &body) {
		return
	}
	if body.PhoneNumber == "" || body.Code == "" {
		writeError(w, http.StatusBadRequest, "phone_number and code are required")
		return
	}
	if err := h.Users.VerifyOtp(r.Context(), body.PhoneNumber, body.Code); err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, nil, "account verified")
}

func (h *Handlers) resendOtp(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PhoneNumber string `json:"phone_number"`
	}
	if !decode(w, r, &body) {
		return
	}
	if body.PhoneNumber == "" {
		writeError(w, http.StatusBadRequest, "phone_number is required")
		return
	}
	if err := h.Users.ResendOtp(r.Context(), body.PhoneNumber); err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, nil, "verification code resent")
}

func (h *Handlers) setPassword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PhoneNumber string `json:"phone_number"`
		Password    string `json:"password"`
	}
	if !decode(w, r, &body) {
		return
	}
	if body.PhoneNumber == "" || len(body.Password) < 8 {
		writeError(w, http.StatusBadRequest, "phone_number and a password of at least 8 characters are required")
		return
	}
	if err := h.Users.SetPassword(r.Context(), body.PhoneNumber, body.Password); err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, nil, "password set")
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decode(w, r, &body) {
		return
	}
	if body.Email == "" || body.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}
	out, err := h.Users.Login(r.Context(), strings.ToLower(body.Email), body.Password)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, out, "login successful")
}

func (h *Handlers) me(w http.ResponseWriter, r *http.Request) {
	uid, ok := caller(w, r)
	if !ok {
		return
	}
	u, err := h.Users.Profile(r.Context(), uid)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, u, "profile loaded")
}
