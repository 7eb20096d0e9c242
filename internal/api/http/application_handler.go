package http

import (
	"net/http"

	"bizcelona-backend/internal/domain"
	"bizcelona-backend/internal/service"

	"github.com/gorilla/mux"
)

// ApplicationHandler serves the applicant-facing form endpoints.
type ApplicationHandler struct {
	applications service.ApplicationService
}

func NewApplicationHandler(applications service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

// HandleSubmit accepts the raw form payload, validates it, and creates the
// application for the signed-in user.
func (h *ApplicationHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	claims := sessionFromContext(r.Context())

	var form domain.ApplicationForm
	if !decodeBody(w, r, &form) {
		return
	}

	app, err := h.applications.Submit(r.Context(), claims.UserID, &form)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, app)
}

type statusResponse struct {
	Application *domain.Application `json:"application"`
	Panel       service.StatusPanel `json:"panel"`
	Member      *domain.Member      `json:"member,omitempty"`
}

// HandleStatus returns the signed-in user's application together with the
// dashboard panel copy for its status, or data null when none exists so the
// client can show the form. Approved applicants also get their member record.
func (h *ApplicationHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	claims := sessionFromContext(r.Context())

	app, err := h.applications.StatusForUser(r.Context(), claims.UserID)
	if err != nil {
		if isNotFound(err) {
			respondJSON(w, http.StatusOK, nil)
			return
		}
		respondServiceError(w, err)
		return
	}

	resp := statusResponse{
		Application: app,
		Panel:       service.StatusPanelFor(app.Status),
	}
	if app.Status == domain.ApplicationStatusApproved {
		member, err := h.applications.MembershipForUser(r.Context(), claims.UserID)
		if err != nil && !isNotFound(err) {
			respondServiceError(w, err)
			return
		}
		resp.Member = member
	}

	respondJSON(w, http.StatusOK, resp)
}

// HandlePrefill returns the profile fields used to pre-populate the form.
func (h *ApplicationHandler) HandlePrefill(w http.ResponseWriter, r *http.Request) {
	claims := sessionFromContext(r.Context())

	profile, err := h.applications.Prefill(r.Context(), claims.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"full_name": profile.FullName,
		"email":     profile.Email,
	})
}

// RegisterApplicationRoutes registers the applicant endpoints behind the
// session guard.
func RegisterApplicationRoutes(router *mux.Router, applications service.ApplicationService, mw *Middleware) {
	handler := NewApplicationHandler(applications)
	router.HandleFunc("/api/applications", mw.RequireUser(handler.HandleSubmit)).Methods("POST")
	router.HandleFunc("/api/applications/me", mw.RequireUser(handler.HandleStatus)).Methods("GET")
	router.HandleFunc("/api/applications/prefill", mw.RequireUser(handler.HandlePrefill)).Methods("GET")
}
