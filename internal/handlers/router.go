package handlers

import (
	"net/http"
	"time"

	"projectTracker/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type RouterConfig struct {
	// RateLimit - запросов в минуту с одного IP, 0 - без ограничения
	RateLimit      int
	AllowedOrigins []string
}

func NewRouter(h *Handler, cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.RateLimit(cfg.RateLimit, time.Minute))

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/health", h.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.HealthCheck)
		r.Post("/seed", h.Seed)
		r.Post("/sidebar/drop", h.DropProject) // POST /api/sidebar/drop

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", h.ListProjects)   // GET /api/projects?group=
			r.Post("/", h.CreateProject) // POST /api/projects

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetProject)
				r.Patch("/", h.UpdateProject)
				r.Delete("/", h.DeleteProject)

				r.Get("/progress", h.ProjectProgress)
				r.Get("/board", h.Board)
				r.Post("/board/drop", h.DropTask)
			})
		})

		r.Route("/groups", func(r chi.Router) {
			r.Get("/", h.ListGroups)
			r.Post("/", h.CreateGroup)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetGroup)
				r.Patch("/", h.UpdateGroup)
				r.Delete("/", h.DeleteGroup)
			})
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", h.ListTasks)   // GET /api/tasks?projectId=&status=
			r.Post("/", h.CreateTask) // POST /api/tasks

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetTask)
				r.Patch("/", h.UpdateTask)
				r.Delete("/", h.DeleteTask)
				r.Post("/move", h.MoveTask)

				r.Route("/checklist", func(r chi.Router) {
					r.Post("/", h.AddChecklistItem)
					r.Post("/steps", h.SubmitSteps)
					r.Post("/{itemId}/toggle", h.ToggleChecklistItem)
					r.Delete("/{itemId}", h.DeleteChecklistItem)
				})
			})
		})
	})

	return r
}
