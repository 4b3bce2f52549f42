package http

import (
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"activitybooking/internal/delivery/http/controllers"
	"activitybooking/internal/delivery/http/middleware"
	"activitybooking/internal/domain"
)

// RouterDeps holds what the router needs to build the handler chain.
type RouterDeps struct {
	Logger                 *slog.Logger
	ActivityController     *controllers.ActivityController
	RegistrationController *controllers.RegistrationController
	// StaffVerifier guards staff routes; nil leaves them open.
	StaffVerifier  domain.TokenVerifier
	Metrics        http.Handler
	AllowedOrigins []string
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	staff := func(h http.HandlerFunc) http.HandlerFunc { return h }
	if deps.StaffVerifier != nil {
		staff = middleware.RequireStaff(deps.StaffVerifier, deps.Logger)
	}

	mux.HandleFunc("GET /health", controllers.Health)

	// API Routes
	mux.HandleFunc("GET /api/slots", deps.ActivityController.ListSlots)
	mux.HandleFunc("GET /api/activities", deps.ActivityController.ListActivities)
	mux.HandleFunc("POST /api/activities", staff(deps.ActivityController.CreateActivity))
	mux.HandleFunc("GET /api/activities/{activityID}", deps.ActivityController.GetActivity)
	mux.HandleFunc("POST /api/activities/{activityID}/register", deps.RegistrationController.Register)
	mux.HandleFunc("GET /api/visitors", staff(deps.ActivityController.ListVisitors))

	if deps.Metrics != nil {
		mux.Handle("GET /metrics", deps.Metrics)
	}

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var handler http.Handler = mux
	handler = middleware.CORS(deps.AllowedOrigins, handler)
	handler = middleware.LoggingMiddleware(deps.Logger, handler)
	handler = chimw.Recoverer(handler)
	handler = chimw.RealIP(handler)
	handler = chimw.RequestID(handler)
	return handler
}
