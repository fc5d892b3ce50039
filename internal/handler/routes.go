package handler

import (
	"net/http"

	"github.com/mkarlen/fitlog/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(
	mux *http.ServeMux,
	auth *service.AuthService,
	workouts *service.WorkoutService,
	charts *service.ChartService,
	cookieSecure bool,
) {
	authHandler := NewAuthHandler(auth, cookieSecure)
	workoutHandler := NewWorkoutHandler(workouts)
	chartHandler := NewChartHandler(charts)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /api/auth/register", authHandler.HandleRegister)
	mux.HandleFunc("POST /api/auth/login", authHandler.HandleLogin)
	mux.HandleFunc("POST /api/auth/logout", authHandler.HandleLogout)
	mux.Handle("GET /api/auth/me", RequireAuth(auth, http.HandlerFunc(authHandler.HandleMe)))

	mux.Handle("GET /api/workouts", RequireAuth(auth, http.HandlerFunc(workoutHandler.HandleList)))
	mux.Handle("POST /api/workouts", RequireAuth(auth, http.HandlerFunc(workoutHandler.HandleCreate)))
	mux.Handle("GET /api/workouts/chart", RequireAuth(auth, http.HandlerFunc(chartHandler.HandleSummary)))
}
