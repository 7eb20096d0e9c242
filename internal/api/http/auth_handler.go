package http

import (
	"net/http"

	"bizcelona-backend/internal/domain"
	"bizcelona-backend/internal/service"

	"github.com/gorilla/mux"
)

// AuthHandler serves signup and login.
type AuthHandler struct {
	auth service.AuthService
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User  *domain.Profile `json:"user"`
	Token string          `json:"token"`
}

func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !decodeBody(w, r, &req) {
		return
	}

	profile, token, err := h.auth.Signup(r.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	setSessionCookie(w, token)
	respondJSON(w, http.StatusCreated, authResponse{User: profile, Token: token})
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	profile, token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	setSessionCookie(w, token)
	respondJSON(w, http.StatusOK, authResponse{User: profile, Token: token})
}

func (h *AuthHandler) HandleSignout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	respondJSON(w, http.StatusOK, map[string]string{"message": "Signed out"})
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// RegisterAuthRoutes registers the public auth endpoints.
func RegisterAuthRoutes(router *mux.Router, auth service.AuthService) {
	handler := NewAuthHandler(auth)
	router.HandleFunc("/api/auth/signup", handler.HandleSignup).Methods("POST")
	router.HandleFunc("/api/auth/login", handler.HandleLogin).Methods("POST")
	router.HandleFunc("/api/auth/signout", handler.HandleSignout).Methods("POST")
}
