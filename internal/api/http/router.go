package http

import (
	"net/http"
	"time"

	"bizcelona-backend/internal/logger"
	"bizcelona-backend/internal/repository"
	"bizcelona-backend/internal/security"
	"bizcelona-backend/internal/service"

	"github.com/gorilla/mux"
)

// Services bundles everything the router wires into handlers.
type Services struct {
	Auth          service.AuthService
	Applications  service.ApplicationService
	Reviews       service.ReviewService
	Notifications service.NotificationService
	Guard         service.AccessGuard
	Tokens        security.TokenManager
	Store         Pinger
	Profiles      repository.ProfileRepository
}

// NewRouter builds the full API surface.
func NewRouter(svcs Services) *mux.Router {
	router := mux.NewRouter()
	router.Use(requestLogging)

	mw := NewMiddleware(svcs.Tokens, svcs.Guard)

	RegisterStatusRoutes(router, svcs.Store, svcs.Profiles)
	RegisterAuthRoutes(router, svcs.Auth)
	RegisterApplicationRoutes(router, svcs.Applications, mw)
	RegisterAdminRoutes(router, svcs.Reviews, svcs.Guard, mw)
	RegisterNotificationRoutes(router, svcs.Notifications, mw)

	return router
}

func requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Info("Request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
