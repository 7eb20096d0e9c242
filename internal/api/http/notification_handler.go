package http

import (
	"net/http"

	"bizcelona-backend/internal/service"

	"github.com/gorilla/mux"
)

// NotificationHandler exposes the three email dispatch endpoints. Each call
// sends exactly one email and reports the provider delivery id.
type NotificationHandler struct {
	notifications service.NotificationService
}

func NewNotificationHandler(notifications service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

type newUserNotification struct {
	UserID string `json:"user_id"`
}

type applicationNotification struct {
	ApplicationID string `json:"application_id"`
}

type deliveryResponse struct {
	MessageID string `json:"message_id"`
}

func (h *NotificationHandler) HandleNewUser(w http.ResponseWriter, r *http.Request) {
	var req newUserNotification
	if !decodeBody(w, r, &req) {
		return
	}
	if req.UserID == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	id, err := h.notifications.NotifyNewUser(r.Context(), req.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, deliveryResponse{MessageID: id})
}

func (h *NotificationHandler) HandleNewApplication(w http.ResponseWriter, r *http.Request) {
	var req applicationNotification
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ApplicationID == "" {
		respondError(w, http.StatusBadRequest, "application_id is required")
		return
	}

	id, err := h.notifications.NotifyNewApplication(r.Context(), req.ApplicationID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, deliveryResponse{MessageID: id})
}

func (h *NotificationHandler) HandleApplicationApproved(w http.ResponseWriter, r *http.Request) {
	var req applicationNotification
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ApplicationID == "" {
		respondError(w, http.StatusBadRequest, "application_id is required")
		return
	}

	id, err := h.notifications.NotifyApplicationApproved(r.Context(), req.ApplicationID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, deliveryResponse{MessageID: id})
}

// RegisterNotificationRoutes registers the dispatch endpoints behind the
// session guard.
func RegisterNotificationRoutes(router *mux.Router, notifications service.NotificationService, mw *Middleware) {
	handler := NewNotificationHandler(notifications)
	router.HandleFunc("/api/notifications/new-user", mw.RequireUser(handler.HandleNewUser)).Methods("POST")
	router.HandleFunc("/api/notifications/new-application", mw.RequireUser(handler.HandleNewApplication)).Methods("POST")
	router.HandleFunc("/api/notifications/application-approved", mw.RequireUser(handler.HandleApplicationApproved)).Methods("POST")
}
