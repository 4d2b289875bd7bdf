// Package server exposes the Mediaverse operations as a JSON API. The
// browsing app and the admin console are separate front ends; both talk to
// this server, which fronts the record store.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/mediaverse/mediaverse/account"
	"github.com/mediaverse/mediaverse/admin"
	"github.com/mediaverse/mediaverse/catalog"
	"github.com/mediaverse/mediaverse/internal/config"
	"github.com/mediaverse/mediaverse/session"
	"github.com/mediaverse/mediaverse/token"
	"github.com/mediaverse/mediaverse/users"
)

// Repos holds the repositories the server reads directly for public routes.
type Repos struct {
	Users   users.Repo
	Media   catalog.MediaRepo
	Ratings catalog.RatingsRepo
}

type Server struct {
	env    string // Environment (e.g., "development", "production")
	mux    *http.ServeMux
	routes []string
	config config.Config
	repos  Repos

	tokens     *token.Manager
	userGuard  *session.Guard
	adminGuard *session.Guard
	accounts   *account.Service
	admins     *admin.Service
}

func New(cfg config.Config, repos Repos, tokens *token.Manager, userGuard, adminGuard *session.Guard, accounts *account.Service, admins *admin.Service) (*Server, error) {
	if repos.Users == nil || repos.Media == nil || repos.Ratings == nil {
		return nil, fmt.Errorf("[Server New] all repos are required")
	}
	if tokens == nil || userGuard == nil || adminGuard == nil {
		return nil, fmt.Errorf("[Server New] token manager and guards are required")
	}
	if accounts == nil || admins == nil {
		return nil, fmt.Errorf("[Server New] account and admin services are required")
	}

	s := &Server{
		mux:        http.NewServeMux(),
		config:     cfg,
		repos:      repos,
		tokens:     tokens,
		userGuard:  userGuard,
		adminGuard: adminGuard,
		accounts:   accounts,
		admins:     admins,
	}
	s.env = cfg.GetEnv()

	// Bootstrap: make sure a first administrator exists when requested
	if err := s.EnsureAdminAccount(context.Background()); err != nil {
		return nil, fmt.Errorf("[Server New] failed to seed administrator: %w", err)
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}
