package http

import (
	"net/http"

	"bizcelona-backend/internal/domain"
	"bizcelona-backend/internal/service"

	"github.com/gorilla/mux"
)

// AdminHandler serves the review dashboard endpoints. All routes sit behind
// the admin guard.
type AdminHandler struct {
	reviews service.ReviewService
	guard   service.AccessGuard
}

func NewAdminHandler(reviews service.ReviewService, guard service.AccessGuard) *AdminHandler {
	return &AdminHandler{reviews: reviews, guard: guard}
}

type adminMeResponse struct {
	UserID string           `json:"user_id"`
	Role   domain.AdminRole `json:"role"`
}

// HandleMe returns the signed-in admin's identity and role so the dashboard
// can show it.
func (h *AdminHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	claims := sessionFromContext(r.Context())

	role, err := h.guard.AdminRole(r.Context(), claims.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, adminMeResponse{UserID: claims.UserID, Role: role})
}

type reviewRequest struct {
	Notes string `json:"notes"`
}

// HandleList returns applications newest first. The status query parameter
// is passed through as-is; an unknown value yields an empty list.
func (h *AdminHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	status := domain.ApplicationStatus(r.URL.Query().Get("status"))

	apps, err := h.reviews.ListApplications(r.Context(), status)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if apps == nil {
		apps = []domain.Application{}
	}
	respondJSON(w, http.StatusOK, apps)
}

func (h *AdminHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	app, err := h.reviews.GetApplication(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, app)
}

func (h *AdminHandler) HandleMarkUnderReview(w http.ResponseWriter, r *http.Request) {
	claims := sessionFromContext(r.Context())

	app, err := h.reviews.MarkUnderReview(r.Context(), claims.UserID, mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, app)
}

func (h *AdminHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	claims := sessionFromContext(r.Context())

	var req reviewRequest
	if !decodeOptionalBody(w, r, &req) {
		return
	}

	app, err := h.reviews.Approve(r.Context(), claims.UserID, mux.Vars(r)["id"], req.Notes)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, app)
}

func (h *AdminHandler) HandleReject(w http.ResponseWriter, r *http.Request) {
	claims := sessionFromContext(r.Context())

	var req reviewRequest
	if !decodeOptionalBody(w, r, &req) {
		return
	}

	app, err := h.reviews.Reject(r.Context(), claims.UserID, mux.Vars(r)["id"], req.Notes)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, app)
}

// HandleWelcomeMessage returns the plain-text welcome message for an
// approved application, ready to copy into WhatsApp.
func (h *AdminHandler) HandleWelcomeMessage(w http.ResponseWriter, r *http.Request) {
	message, err := h.reviews.WelcomeMessage(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": message})
}

type statsResponse struct {
	Stats  *domain.ApplicationStats `json:"stats"`
	Recent []domain.Application     `json:"recent"`
}

func (h *AdminHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, recent, err := h.reviews.Stats(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if recent == nil {
		recent = []domain.Application{}
	}
	respondJSON(w, http.StatusOK, statsResponse{Stats: stats, Recent: recent})
}

// RegisterAdminRoutes registers the review endpoints behind the admin guard.
func RegisterAdminRoutes(router *mux.Router, reviews service.ReviewService, guard service.AccessGuard, mw *Middleware) {
	handler := NewAdminHandler(reviews, guard)
	router.HandleFunc("/api/admin/me", mw.RequireAdmin(handler.HandleMe)).Methods("GET")
	router.HandleFunc("/api/admin/applications", mw.RequireAdmin(handler.HandleList)).Methods("GET")
	router.HandleFunc("/api/admin/applications/{id}", mw.RequireAdmin(handler.HandleGet)).Methods("GET")
	router.HandleFunc("/api/admin/applications/{id}/review", mw.RequireAdmin(handler.HandleMarkUnderReview)).Methods("POST")
	router.HandleFunc("/api/admin/applications/{id}/approve", mw.RequireAdmin(handler.HandleApprove)).Methods("POST")
	router.HandleFunc("/api/admin/applications/{id}/reject", mw.RequireAdmin(handler.HandleReject)).Methods("POST")
	router.HandleFunc("/api/admin/applications/{id}/welcome-message", mw.RequireAdmin(handler.HandleWelcomeMessage)).Methods("GET")
	router.HandleFunc("/api/admin/stats", mw.RequireAdmin(handler.HandleStats)).Methods("GET")
}
