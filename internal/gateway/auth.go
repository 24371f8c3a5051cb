package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// authResponse is the token grant payload returned by the auth endpoints.
type authResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	User        struct {
		ID           string `json:"id"`
		Email        string `json:"email"`
		UserMetadata struct {
			Name string `json:"name"`
		} `json:"user_metadata"`
	} `json:"user"`
}

// Session returns the cached session, or nil when anonymous or expired.
func (g *REST) Session(ctx context.Context) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.session == nil || g.session.Expired(g.now()) {
		return nil, nil
	}
	s := *g.session
	return &s, nil
}

// SignIn authenticates with email and password. On success the session is
// cached and auth-state subscribers fire.
func (g *REST) SignIn(ctx context.Context, email, password string) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req, err := g.newRequest(ctx, http.MethodPost, "/auth/v1/token",
		map[string][]string{"grant_type": {"password"}},
		map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError("sign in", resp.StatusCode)
	}

	var ar authResponse
	if err := json.NewDecoder(resp.Body).Decode(&ar); err != nil {
		return nil, err
	}
	sess := g.sessionFromAuth(ar)
	g.setSession(sess)
	return sess, nil
}

// SignUp registers a new account. The display name travels in the auth
// metadata; the backend creates the profile row implicitly.
func (g *REST) SignUp(ctx context.Context, email, password, name string) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body := map[string]any{
		"email":    email,
		"password": password,
		"data":     map[string]string{"name": name},
	}
	req, err := g.newRequest(ctx, http.MethodPost, "/auth/v1/signup", nil, body)
	if err != nil {
		return nil, err
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, statusError("sign up", resp.StatusCode)
	}

	var ar authResponse
	if err := json.NewDecoder(resp.Body).Decode(&ar); err != nil {
		return nil, err
	}
	sess := g.sessionFromAuth(ar)
	g.setSession(sess)
	return sess, nil
}

// SignOut terminates the remote session. The local session is cleared and
// subscribers fire regardless of the remote outcome, so a dead backend
// cannot pin a client in the authenticated state.
func (g *REST) SignOut(ctx context.Context) error {
	req, reqErr := g.newRequest(ctx, http.MethodPost, "/auth/v1/logout", nil, nil)

	g.setSession(nil)

	if reqErr != nil {
		return reqErr
	}
	resp, err := g.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return statusError("sign out", resp.StatusCode)
	}
	return nil
}

// OnAuthStateChange registers fn and returns its unsubscribe func. The
// callback fires synchronously on sign-in, sign-up and sign-out.
func (g *REST) OnAuthStateChange(fn AuthStateFn) func() {
	g.mu.Lock()
	id := g.nextSub
	g.nextSub++
	g.subs[id] = fn
	g.mu.Unlock()
	return func() {
		g.mu.Lock()
		delete(g.subs, id)
		g.mu.Unlock()
	}
}

// sessionFromAuth builds a Session from a token grant. Identity comes from
// the user payload with the JWT claims as fallback; the token is decoded
// without signature verification since the backend is the verifier.
func (g *REST) sessionFromAuth(ar authResponse) *Session {
	sess := &Session{
		UserID:      ar.User.ID,
		Email:       ar.User.Email,
		Name:        ar.User.UserMetadata.Name,
		AccessToken: ar.AccessToken,
	}
	if ar.ExpiresIn > 0 {
		sess.ExpiresAt = g.now().Add(time.Duration(ar.ExpiresIn) * time.Second)
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(ar.AccessToken, claims); err == nil {
		if sess.UserID == "" {
			if sub, err := claims.GetSubject(); err == nil {
				sess.UserID = sub
			}
		}
		if sess.Email == "" {
			if email, ok := claims["email"].(string); ok {
				sess.Email = email
			}
		}
		if sess.ExpiresAt.IsZero() {
			if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
				sess.ExpiresAt = exp.Time
			}
		}
	} else {
		g.log.Debug().Err(err).Msg("access token claims not decodable")
	}
	return sess
}

func (g *REST) setSession(sess *Session) {
	g.mu.Lock()
	g.session = sess
	fns := make([]AuthStateFn, 0, len(g.subs))
	for _, fn := range g.subs {
		fns = append(fns, fn)
	}
	g.mu.Unlock()
	for _, fn := range fns {
		fn(sess)
	}
}
