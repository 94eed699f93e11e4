package api

import (
	"github.com/gorilla/mux"
	"github.com/oceanhire/agency/internal/config"
	"github.com/oceanhire/agency/internal/db"
	"github.com/oceanhire/agency/internal/repository/sqlite"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, db *db.DB) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository
	repo := sqlite.New(db, nil)

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(repo, cfg.JWTSecret, cfg.TokenDuration)
	jobsHandler := NewJobsHandler(repo)
	inquiriesHandler := NewInquiriesHandler(repo)

	// Open endpoints: the public site lists jobs and submits inquiries
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/jobs", jobsHandler.List).Methods("GET")
	r.HandleFunc("/inquiries", inquiriesHandler.Create).Methods("POST")

	// Admin routes: token verified on every request
	admin := r.NewRoute().Subrouter()
	admin.Use(JWTAuthMiddlewareWithSecret(cfg.JWTSecret))

	admin.HandleFunc("/jobs", jobsHandler.Create).Methods("POST")
	admin.HandleFunc("/jobs", jobsHandler.Update).Methods("PUT")
	admin.HandleFunc("/jobs", jobsHandler.Delete).Methods("DELETE")
	admin.HandleFunc("/inquiries", inquiriesHandler.List).Methods("GET")
	admin.HandleFunc("/inquiries", inquiriesHandler.UpdateStatus).Methods("PUT")
	admin.HandleFunc("/inquiries", inquiriesHandler.Delete).Methods("DELETE")

	return r
}
