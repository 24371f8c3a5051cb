package festa

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/festaperfeita/festa/internal/gateway"
	"github.com/festaperfeita/festa/internal/types"
)

// SessionManager drives the store's authentication state: it restores the
// persisted snapshot at startup, resolves the remote session, and keeps the
// store in sync with auth state changes. Construct exactly one per process.
type SessionManager struct {
	store *Store
	log   zerolog.Logger
	unsub func()
}

// NewSessionManager wires a manager to the store and registers the process's
// auth-state subscription.
func NewSessionManager(store *Store) *SessionManager {
	m := &SessionManager{store: store, log: store.log}
	m.unsub = store.gw.OnAuthStateChange(func(sess *gateway.Session) {
		if sess == nil {
			store.SetUser(nil)
			store.SetAuthenticated(false)
			return
		}
		store.SetUser(m.resolveProfile(context.Background(), sess))
		store.SetAuthenticated(true)
	})
	return m
}

// Close releases the auth-state subscription.
func (m *SessionManager) Close() {
	if m.unsub != nil {
		m.unsub()
		m.unsub = nil
	}
}

// Hydrate restores state at startup. The persisted snapshot is applied first
// so a previously signed-in profile renders before the network answers; the
// remote session is then resolved with retries and wins over the snapshot.
func (m *SessionManager) Hydrate(ctx context.Context) error {
	if m.store.partition != nil {
		snap, err := m.store.partition.Load(ctx)
		if err != nil {
			m.log.Warn().Err(err).Msg("snapshot restore failed")
		} else if snap != nil {
			m.store.SetUser(snap.User)
			m.store.SetAuthenticated(snap.IsAuthenticated)
		}
	}

	var sess *gateway.Session
	op := func() error {
		var err error
		sess, err = m.store.gw.Session(ctx)
		return err
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 4), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		return err
	}

	if sess == nil {
		m.store.SetUser(nil)
		m.store.SetAuthenticated(false)
		return nil
	}
	m.store.SetUser(m.resolveProfile(ctx, sess))
	m.store.SetAuthenticated(true)
	return nil
}

// SignIn authenticates against the gateway. The registered auth-state
// subscription updates the store.
func (m *SessionManager) SignIn(ctx context.Context, email, password string) error {
	_, err := m.store.gw.SignIn(ctx, email, password)
	return err
}

// SignUp registers a new account. As with SignIn, the subscription updates
// the store once the gateway confirms.
func (m *SessionManager) SignUp(ctx context.Context, email, password, name string) error {
	if !types.ValidEmail(email) {
		return errors.New("invalid email")
	}
	_, err := m.store.gw.SignUp(ctx, email, password, name)
	return err
}

// SignOut ends the session and resets store state via Logout.
func (m *SessionManager) SignOut(ctx context.Context) {
	m.store.Logout(ctx)
}

// resolveProfile fetches the profile row for the session's user. When the
// row is missing or unreadable the profile is synthesized from the session
// identity, falling back to the email's local part for the name.
func (m *SessionManager) resolveProfile(ctx context.Context, sess *gateway.Session) *types.UserProfile {
	fetchCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	p, err := m.store.gw.Profile(fetchCtx, sess.UserID)
	if err != nil {
		if !errors.Is(err, types.ErrNotFound) {
			m.log.Warn().Err(err).Str("user_id", sess.UserID).Msg("profile fetch failed, using session identity")
		}
		p = &types.UserProfile{ID: sess.UserID, Email: sess.Email}
	}
	p.ID = sess.UserID
	if p.Email == "" {
		p.Email = sess.Email
	}
	if p.Name == "" {
		p.Name = sess.Name
	}
	if p.Name == "" {
		p.Name, _, _ = strings.Cut(sess.Email, "@")
	}
	return p
}
