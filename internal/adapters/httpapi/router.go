package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/shababna/engagement-api/internal/app/catalog"
	"github.com/shababna/engagement-api/internal/app/events"
	"github.com/shababna/engagement-api/internal/app/messages"
	"github.com/shababna/engagement-api/internal/app/profiles"
	"github.com/shababna/engagement-api/internal/app/volunteers"
	"github.com/shababna/engagement-api/internal/platform/auth/identityclient"
	"github.com/shababna/engagement-api/internal/platform/metrics"
	clockport "github.com/shababna/engagement-api/internal/ports/out/clock"
)

// Server is the HTTP adapter. It decodes requests, runs the guard chain,
// delegates to the application services, and shapes responses.
type Server struct {
	profiles   *profiles.Service
	messages   *messages.Service
	catalog    *catalog.Service
	events     *events.Service
	volunteers *volunteers.Service

	identity identityclient.Resolver
	clk      clockport.Clock
	logger   *zap.Logger
	devMode  bool
}

type ServerParams struct {
	Profiles   *profiles.Service
	Messages   *messages.Service
	Catalog    *catalog.Service
	Events     *events.Service
	Volunteers *volunteers.Service

	Identity identityclient.Resolver
	Clock    clockport.Clock
	Logger   *zap.Logger
	DevMode  bool
}

func NewServer(p ServerParams) *Server {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		profiles:   p.Profiles,
		messages:   p.Messages,
		catalog:    p.Catalog,
		events:     p.Events,
		volunteers: p.Volunteers,
		identity:   p.Identity,
		clk:        p.Clock,
		logger:     logger,
		devMode:    p.DevMode,
	}
}

// Routes builds the API router. mtr may be nil in tests.
func (s *Server) Routes(mtr *metrics.Metrics) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if mtr != nil {
		r.Use(mtr.Middleware)
		r.Method(http.MethodGet, "/metrics", mtr.Handler())
	}

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/profiles", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(s.requireAuth)
				r.Get("/me", s.handleGetMyProfile)
				r.Put("/me", s.handleUpdateMyProfile)
			})
			r.Group(func(r chi.Router) {
				r.Use(s.requireAuth, s.requireAdmin)
				r.Get("/", s.handleListProfiles)
				r.Get("/{id}", s.handleGetProfile)
				r.Put("/{id}", s.handleAdminUpdateProfile)
				r.Delete("/{id}", s.handleDeleteProfile)
			})
		})

		r.Route("/messages", func(r chi.Router) {
			r.With(s.optionalAuth).Post("/", s.handleCreateMessage)
			r.With(s.requireAuth).Get("/me", s.handleMyMessages)
			r.Group(func(r chi.Router) {
				r.Use(s.requireAuth, s.requireAdmin)
				r.Get("/", s.handleListMessages)
				r.Get("/{id}", s.handleGetMessage)
				r.Patch("/{id}/read", s.handleSetMessageRead)
				r.Delete("/{id}", s.handleDeleteMessage)
			})
		})

		r.Route("/programs", func(r chi.Router) {
			r.Get("/", s.handleListPrograms)
			r.Get("/{id}", s.handleGetProgram)
			r.Group(func(r chi.Router) {
				r.Use(s.requireAuth, s.requireAdmin)
				r.Post("/", s.handleCreateProgram)
				r.Put("/{id}", s.handleUpdateProgram)
				r.Delete("/{id}", s.handleDeleteProgram)
			})
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", s.handleListProjects)
			r.Get("/{id}", s.handleGetProject)
			r.Group(func(r chi.Router) {
				r.Use(s.requireAuth, s.requireAdmin)
				r.Post("/", s.handleCreateProject)
				r.Put("/{id}", s.handleUpdateProject)
				r.Delete("/{id}", s.handleDeleteProject)
			})
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", s.handleListEvents)
			r.Get("/{id}", s.handleGetEvent)
			r.Group(func(r chi.Router) {
				r.Use(s.requireAuth, s.requireAdmin)
				r.Post("/", s.handleCreateEvent)
				r.Put("/{id}", s.handleUpdateEvent)
				r.Delete("/{id}", s.handleDeleteEvent)
			})
		})

		r.Route("/event-registrations", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(s.requireAuth)
				r.Post("/", s.handleCreateRegistration)
				r.Get("/me", s.handleMyRegistrations)
			})
			r.Group(func(r chi.Router) {
				r.Use(s.requireAuth, s.requireAdmin)
				r.Get("/", s.handleListRegistrations)
				r.Delete("/{id}", s.handleDeleteRegistration)
			})
		})

		r.Route("/volunteers", func(r chi.Router) {
			r.With(s.optionalAuth).Post("/", s.handleApplyVolunteer)
			r.With(s.requireAuth).Get("/me", s.handleMyVolunteerApplications)
			r.Group(func(r chi.Router) {
				r.Use(s.requireAuth, s.requireAdmin)
				r.Get("/", s.handleListVolunteers)
				r.Get("/{id}", s.handleGetVolunteer)
				r.Patch("/{id}/status", s.handleSetVolunteerStatus)
				r.Delete("/{id}", s.handleDeleteVolunteer)
			})
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": s.clk.Now().Format(time.RFC3339),
	})
}
