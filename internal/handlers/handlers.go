package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/serviceconnect/docs"
	"github.com/GlebRadaev/serviceconnect/internal/access"
	authhandlers "github.com/GlebRadaev/serviceconnect/internal/handlers/auth"
	cataloghandlers "github.com/GlebRadaev/serviceconnect/internal/handlers/catalog"
	ordershandlers "github.com/GlebRadaev/serviceconnect/internal/handlers/orders"
	profilehandlers "github.com/GlebRadaev/serviceconnect/internal/handlers/profile"
	"github.com/GlebRadaev/serviceconnect/internal/service"
	"github.com/GlebRadaev/serviceconnect/pkg/auth"
	"github.com/GlebRadaev/serviceconnect/pkg/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type CatalogHandler interface {
	Home(w http.ResponseWriter, r *http.Request)
	ListServices(w http.ResponseWriter, r *http.Request)
	Categories(w http.ResponseWriter, r *http.Request)
	GetService(w http.ResponseWriter, r *http.Request)
	Technicians(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	GetPending(w http.ResponseWriter, r *http.Request)
	CompleteOrder(w http.ResponseWriter, r *http.Request)
}

type ProfileHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
	Navigation(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	CatalogHandler CatalogHandler
	OrderHandler   OrderHandler
	ProfileHandler ProfileHandler

	tokens auth.JWTServiceInterface
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		CatalogHandler: cataloghandlers.New(s.CatalogService, s.Technicians),
		OrderHandler:   ordershandlers.New(s.OrderService),
		ProfileHandler: profilehandlers.New(s.ProfileService),
		tokens:         s.Tokens,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.Middleware,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/home", h.CatalogHandler.Home)

		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.Middleware(h.tokens))
				r.With(access.Require(access.ActionViewNavigation)).Get("/navigation", h.ProfileHandler.Navigation)
				r.Route("/profile", func(r chi.Router) {
					r.With(access.Require(access.ActionViewProfile)).Get("/", h.ProfileHandler.GetProfile)
					r.With(access.Require(access.ActionUpdateProfile)).Put("/password", h.ProfileHandler.ChangePassword)
				})
				r.Route("/orders", func(r chi.Router) {
					r.With(access.Require(access.ActionBookService)).Post("/", h.OrderHandler.CreateOrder)
					r.With(access.Require(access.ActionViewOwnOrders)).Get("/", h.OrderHandler.GetOrders)
				})
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.tokens))
			r.Route("/services", func(r chi.Router) {
				r.Use(access.Require(access.ActionViewCatalog))
				r.Get("/", h.CatalogHandler.ListServices)
				r.Get("/categories", h.CatalogHandler.Categories)
				r.Get("/{id}", h.CatalogHandler.GetService)
			})
			r.With(access.Require(access.ActionBookService)).Get("/technicians", h.CatalogHandler.Technicians)
			r.Route("/orders", func(r chi.Router) {
				r.With(access.Require(access.ActionViewPending)).Get("/pending", h.OrderHandler.GetPending)
				r.With(access.Require(access.ActionCompleteOrder)).Post("/{id}/complete", h.OrderHandler.CompleteOrder)
			})
		})
	})

	return r
}
