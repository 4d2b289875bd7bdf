package session

import (
	"time"

	"github.com/mediaverse/mediaverse/users"
)

// UserSummary is the subset of a user record the UI needs. It is copied out
// of the matched record on issue, never referenced.
type UserSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"user_name,omitempty"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Session bundles the signed bearer token with the user it was issued to.
// Once created it is the single source of truth for "is the caller
// authorized" - no component may infer authorization from cached UI state.
type Session struct {
	Token     string      `json:"token"`
	User      UserSummary `json:"user"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// SummaryOf copies the UI-facing fields out of a full user record.
func SummaryOf(u *users.User) UserSummary {
	return UserSummary{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
		IsAdmin:  u.IsAdmin,
	}
}

// Role is derived from the session; callers branch route trees on it.
type Role int

const (
	RoleAnonymous Role = iota
	RoleUser
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleAdmin:
		return "admin"
	default:
		return "anonymous"
	}
}

// Outcome is the result of a guard check before a protected view or write.
type Outcome int

const (
	// OutcomeContinue means the session is valid and the caller may proceed.
	OutcomeContinue Outcome = iota
	// OutcomeEvict means the session was invalid, persisted state has been
	// cleared and the caller must return to the authentication entry point.
	OutcomeEvict
)

func (o Outcome) String() string {
	if o == OutcomeEvict {
		return "evict"
	}
	return "continue"
}
