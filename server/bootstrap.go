package server

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/mediaverse/mediaverse/internal/config"
	"github.com/mediaverse/mediaverse/users"
)

// EnsureAdminAccount seeds a first administrator when the users collection
// has none, so a fresh deployment can reach the admin console. Controlled by
// ADMIN_EMAIL and ADMIN_PASSWORD; a store outage here is fatal only if the
// seed was requested.
func (s *Server) EnsureAdminAccount(ctx context.Context) error {
	email := config.GetEnv("ADMIN_EMAIL", "")
	password := config.GetEnv("ADMIN_PASSWORD", "")
	if email == "" || password == "" {
		return nil
	}

	all, err := s.repos.Users.List(ctx)
	if err != nil {
		return errors.Wrap(err, "[Server.EnsureAdminAccount] list users")
	}
	for _, u := range all {
		if u.IsAdmin {
			return nil
		}
	}

	hash, err := users.HashPassword(password)
	if err != nil {
		return errors.Wrap(err, "[Server.EnsureAdminAccount] hash password")
	}

	created, err := s.repos.Users.Create(ctx, &users.User{
		Name:         "Administrator",
		Email:        strings.ToLower(email),
		PasswordHash: hash,
		IsAdmin:      true,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return errors.Wrap(err, "[Server.EnsureAdminAccount] create admin")
	}

	log.Info().Str("email", created.Email).Msg("seeded first administrator")
	return nil
}
