// Package gateway defines the remote data gateway the store writes through,
// plus its REST implementation. The gateway is the single source of truth
// for all durable collection data; the store admits a mutation to memory
// only after one of these calls confirms it.
package gateway

import (
	"context"
	"time"

	"github.com/festaperfeita/festa/internal/types"
)

// Session describes an authenticated gateway session. The access token is a
// JWT minted by the auth backend; identity fields are decoded from it.
type Session struct {
	UserID      string
	Email       string
	Name        string
	AccessToken string
	ExpiresAt   time.Time
}

// Expired reports whether the session's token lifetime has elapsed. A zero
// ExpiresAt means the token carried no expiry and never expires locally.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// AuthStateFn receives the new session on every auth state change, or nil
// when the session ended.
type AuthStateFn func(*Session)

// Auth groups the session operations. Exactly one OnAuthStateChange
// subscription is expected per process lifetime; it fires at least on
// sign-in and sign-out.
type Auth interface {
	Session(ctx context.Context) (*Session, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignUp(ctx context.Context, email, password, name string) (*Session, error)
	SignOut(ctx context.Context) error
	OnAuthStateChange(fn AuthStateFn) (unsubscribe func())
}

// Profiles reads and partially updates the per-user profile row.
type Profiles interface {
	Profile(ctx context.Context, userID string) (*types.UserProfile, error)
	UpdateProfile(ctx context.Context, userID string, p types.ProfilePatch) error
}

// Guests is the guest-list table CRUD. Inserts are user-scoped and return
// the gateway-assigned id and creation timestamp.
type Guests interface {
	InsertGuest(ctx context.Context, userID string, g types.NewGuest) (*types.Guest, error)
	UpdateGuest(ctx context.Context, id string, p types.GuestPatch) error
	DeleteGuest(ctx context.Context, id string) error
}

// ShoppingItems is the shopping-list table CRUD.
type ShoppingItems interface {
	InsertShoppingItem(ctx context.Context, userID string, it types.NewShoppingItem) (*types.ShoppingItem, error)
	UpdateShoppingItem(ctx context.Context, id string, p types.ShoppingItemPatch) error
	DeleteShoppingItem(ctx context.Context, id string) error
}

// Budgets is the budget table access. Rows are keyed by (user, category):
// the point query backs the upsert decision and updates address the same
// composite key.
type Budgets interface {
	BudgetCategory(ctx context.Context, userID, category string) (*types.BudgetCategory, error)
	InsertBudgetCategory(ctx context.Context, userID string, row types.BudgetCategory) error
	UpdateBudgetCategory(ctx context.Context, userID, category string, p types.BudgetPatch) error
}

// Templates appends generated content rows.
type Templates interface {
	InsertTemplate(ctx context.Context, userID string, t types.NewTemplate) (*types.Template, error)
}

// Leads appends quiz funnel submissions. Inserts may fail with
// types.ErrDuplicate when the lead email already exists.
type Leads interface {
	InsertQuizLead(ctx context.Context, lead types.QuizLead) error
}

// Gateway is the full remote surface the application core depends on.
type Gateway interface {
	Auth
	Profiles
	Guests
	ShoppingItems
	Budgets
	Templates
	Leads
}
