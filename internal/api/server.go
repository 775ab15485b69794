package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/limerock/habitflow/internal/service"
)

type Server struct {
	mx              *chi.Mux
	userService     service.UserServiceI
	habitsService   service.HabitsServiceI
	progressService service.ProgressServiceI
	jwtService      JWTServiceI
}

type ServicesList struct {
	UserService     service.UserServiceI
	HabitsService   service.HabitsServiceI
	ProgressService service.ProgressServiceI
	JwtService      JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:              chi.NewMux(),
		userService:     servicesOptions.UserService,
		habitsService:   servicesOptions.HabitsService,
		progressService: servicesOptions.ProgressService,
		jwtService:      servicesOptions.JwtService,
	}
}

func (s *Server) Run(addr string) error {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, MetricsMiddleware)

	s.mx.Post("/auth/register", s.Register)
	s.mx.Post("/auth/login", s.Login)

	s.mx.Group(func(r chi.Router) {
		r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
		r.Post("/habits", s.CreateHabit)
		r.Get("/habits", s.GetHabits)
		r.Get("/habits/{id}", s.GetHabit)
		r.Put("/habits/{id}", s.UpdateHabit)
		r.Delete("/habits/{id}", s.DeleteHabit)
		r.Get("/habits/{id}/progress", s.GetMonthProgress)
		r.Post("/habits/{id}/mark", s.MarkDay)
		r.Post("/habits/{id}/unmark", s.UnmarkDay)
	})

	s.mx.Handle("/metrics", promhttp.Handler())

	return http.ListenAndServe(addr, s.mx)
}
