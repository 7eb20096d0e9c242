package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bizcelona-backend/internal/domain"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAuthTestServer(auth *MockAuthService) *mux.Router {
	router := mux.NewRouter()
	RegisterAuthRoutes(router, auth)
	return router
}

func TestAuthHandler_Signup(t *testing.T) {
	auth := new(MockAuthService)
	router := newAuthTestServer(auth)

	auth.On("Signup", mock.Anything, "maria@example.com", "sup3rsecret", "Maria Garcia").
		Return(&domain.Profile{ID: "user-1", Email: "maria@example.com"}, "token-1", nil).Once()

	req := httptest.NewRequest("POST", "/api/auth/signup",
		strings.NewReader(`{"email":"maria@example.com","password":"sup3rsecret","full_name":"Maria Garcia"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	cookies := rec.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.Equal(t, "token-1", cookies[0].Value)
	auth.AssertExpectations(t)
}

func TestAuthHandler_SignupEmailTaken(t *testing.T) {
	auth := new(MockAuthService)
	router := newAuthTestServer(auth)

	auth.On("Signup", mock.Anything, "maria@example.com", "sup3rsecret", "Maria Garcia").
		Return(nil, "", domain.ErrEmailTaken).Once()

	req := httptest.NewRequest("POST", "/api/auth/signup",
		strings.NewReader(`{"email":"maria@example.com","password":"sup3rsecret","full_name":"Maria Garcia"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAuthHandler_LoginInvalidCredentials(t *testing.T) {
	auth := new(MockAuthService)
	router := newAuthTestServer(auth)

	auth.On("Login", mock.Anything, "maria@example.com", "wrong").
		Return(nil, "", domain.ErrInvalidCredentials).Once()

	req := httptest.NewRequest("POST", "/api/auth/login",
		strings.NewReader(`{"email":"maria@example.com","password":"wrong"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Signout(t *testing.T) {
	auth := new(MockAuthService)
	router := newAuthTestServer(auth)

	req := httptest.NewRequest("POST", "/api/auth/signout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
