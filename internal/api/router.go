package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/vitapulse/health-tracker/docs"
	"github.com/vitapulse/health-tracker/internal/api/handler"
	"github.com/vitapulse/health-tracker/internal/api/middleware"
	"github.com/vitapulse/health-tracker/pkg/logger"
)

type Router struct {
	log               *logger.Logger
	userHandler       *handler.UserHandler
	metricHandler     *handler.MetricHandler
	dietLogHandler    *handler.DietLogHandler
	assistantHandler  *handler.AssistantHandler
	simulationHandler *handler.SimulationHandler
	communityHandler  *handler.CommunityHandler
	adminHandler      *handler.AdminHandler
}

func NewRouter(
	log *logger.Logger,
	userHandler *handler.UserHandler,
	metricHandler *handler.MetricHandler,
	dietLogHandler *handler.DietLogHandler,
	assistantHandler *handler.AssistantHandler,
	simulationHandler *handler.SimulationHandler,
	communityHandler *handler.CommunityHandler,
	adminHandler *handler.AdminHandler,
) *Router {
	return &Router{
		log:               log,
		userHandler:       userHandler,
		metricHandler:     metricHandler,
		dietLogHandler:    dietLogHandler,
		assistantHandler:  assistantHandler,
		simulationHandler: simulationHandler,
		communityHandler:  communityHandler,
		adminHandler:      adminHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery(rt.log))
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Users
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)
			r.Get("/{userId}", rt.userHandler.GetByID)

			// Metrics (nested under users)
			r.Route("/{userId}/metrics", func(r chi.Router) {
				r.Post("/", rt.metricHandler.Record)
				r.Get("/{metricType}/history", rt.metricHandler.History)
				r.Get("/{metricType}/latest", rt.metricHandler.Latest)
			})
			r.Delete("/{userId}/data", rt.metricHandler.Reset)

			// Diet logs (nested under users)
			r.Route("/{userId}/diet-logs", func(r chi.Router) {
				r.Post("/", rt.dietLogHandler.Create)
				r.Get("/", rt.dietLogHandler.List)
				r.Get("/summary", rt.dietLogHandler.Summary)
			})

			// Assistant
			r.Post("/{userId}/assistant", rt.assistantHandler.Chat)
			r.Post("/{userId}/assistant/feedback", rt.assistantHandler.Feedback)

			// Simulation start is user-scoped
			r.Post("/{userId}/simulation/start", rt.simulationHandler.Start)
		})

		// Wearable simulation (process-wide)
		r.Get("/simulation", rt.simulationHandler.Status)
		r.Post("/simulation/stop", rt.simulationHandler.Stop)

		// Community stream
		r.Route("/community/messages", func(r chi.Router) {
			r.Post("/", rt.communityHandler.Post)
			r.Get("/", rt.communityHandler.List)
		})

		// Admin
		r.Route("/colleges", func(r chi.Router) {
			r.Post("/", rt.adminHandler.CreateCollege)
			r.Get("/", rt.adminHandler.ListColleges)
			r.Get("/{collegeId}/students", rt.adminHandler.ListStudents)
		})
	})

	return r
}
