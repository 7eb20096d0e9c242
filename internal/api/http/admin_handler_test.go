package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bizcelona-backend/internal/domain"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAdminTestServer(t *testing.T, reviews *MockReviewService) (*mux.Router, *http.Cookie, *MockAccessGuard) {
	t.Helper()
	tokens := newTestTokens()
	guard := new(MockAccessGuard)
	guard.On("IsAdmin", mock.Anything, "admin-1").Return(true, nil)

	router := mux.NewRouter()
	RegisterAdminRoutes(router, reviews, guard, NewMiddleware(tokens, guard))
	return router, sessionCookie(t, tokens, "admin-1"), guard
}

func TestAdminHandler_Me(t *testing.T) {
	reviews := new(MockReviewService)
	router, cookie, guard := newAdminTestServer(t, reviews)

	guard.On("AdminRole", mock.Anything, "admin-1").Return(domain.AdminRoleSuperAdmin, nil).Once()

	req := httptest.NewRequest("GET", "/api/admin/me", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data struct {
			UserID string `json:"user_id"`
			Role   string `json:"role"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "admin-1", body.Data.UserID)
	assert.Equal(t, string(domain.AdminRoleSuperAdmin), body.Data.Role)
	guard.AssertExpectations(t)
}

func TestAdminHandler_List(t *testing.T) {
	reviews := new(MockReviewService)
	router, cookie, _ := newAdminTestServer(t, reviews)

	reviews.On("ListApplications", mock.Anything, domain.ApplicationStatusSubmitted).
		Return([]domain.Application{{ID: "app-1", Status: domain.ApplicationStatusSubmitted}}, nil).Once()

	req := httptest.NewRequest("GET", "/api/admin/applications?status=submitted", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Success bool                 `json:"success"`
		Data    []domain.Application `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Len(t, body.Data, 1)
	reviews.AssertExpectations(t)
}

func TestAdminHandler_Approve(t *testing.T) {
	reviews := new(MockReviewService)
	router, cookie, _ := newAdminTestServer(t, reviews)

	reviews.On("Approve", mock.Anything, "admin-1", "app-1", "solid application").
		Return(&domain.Application{ID: "app-1", Status: domain.ApplicationStatusApproved}, nil).Once()

	req := httptest.NewRequest("POST", "/api/admin/applications/app-1/approve",
		strings.NewReader(`{"notes":"solid application"}`))
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	reviews.AssertExpectations(t)
}

func TestAdminHandler_ApproveWithoutBody(t *testing.T) {
	reviews := new(MockReviewService)
	router, cookie, _ := newAdminTestServer(t, reviews)

	reviews.On("Approve", mock.Anything, "admin-1", "app-1", "").
		Return(&domain.Application{ID: "app-1", Status: domain.ApplicationStatusApproved}, nil).Once()

	req := httptest.NewRequest("POST", "/api/admin/applications/app-1/approve", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	reviews.AssertExpectations(t)
}

func TestAdminHandler_RejectWithoutNotes(t *testing.T) {
	reviews := new(MockReviewService)
	router, cookie, _ := newAdminTestServer(t, reviews)

	reviews.On("Reject", mock.Anything, "admin-1", "app-1", "").
		Return(nil, domain.ErrRejectReasonRequired).Once()

	req := httptest.NewRequest("POST", "/api/admin/applications/app-1/reject", strings.NewReader(`{}`))
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please provide a reason for rejection in the notes field")
	reviews.AssertExpectations(t)
}

func TestAdminHandler_WelcomeMessage(t *testing.T) {
	reviews := new(MockReviewService)
	router, cookie, _ := newAdminTestServer(t, reviews)

	reviews.On("WelcomeMessage", mock.Anything, "app-1").
		Return("Dear Maria Garcia,\n\nWelcome.", nil).Once()

	req := httptest.NewRequest("GET", "/api/admin/applications/app-1/welcome-message", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data map[string]string `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Data["message"], "Dear Maria Garcia,")
	reviews.AssertExpectations(t)
}

func TestAdminHandler_Stats(t *testing.T) {
	reviews := new(MockReviewService)
	router, cookie, _ := newAdminTestServer(t, reviews)

	reviews.On("Stats", mock.Anything).
		Return(&domain.ApplicationStats{Total: 3, Submitted: 1, Approved: 2},
			[]domain.Application{{ID: "app-1"}}, nil).Once()

	req := httptest.NewRequest("GET", "/api/admin/stats", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data struct {
			Stats  domain.ApplicationStats `json:"stats"`
			Recent []domain.Application    `json:"recent"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(3), body.Data.Stats.Total)
	assert.Len(t, body.Data.Recent, 1)
	reviews.AssertExpectations(t)
}
