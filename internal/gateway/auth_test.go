package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func TestSignIn_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/v1/token" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.URL.Query().Get("grant_type") != "password" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.Header.Get("apikey") != "anon-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
            "access_token":"not-a-jwt",
            "expires_in":3600,
            "user":{"id":"u1","email":"maria@example.com","user_metadata":{"name":"Maria"}}
        }`))
	}))
	defer srv.Close()

	g := NewREST(srv.URL, "anon-key")
	sess, err := g.SignIn(context.Background(), "maria@example.com", "s3cret")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if sess.UserID != "u1" || sess.Email != "maria@example.com" || sess.Name != "Maria" {
		t.Fatalf("unexpected session %+v", sess)
	}
	if sess.ExpiresAt.IsZero() {
		t.Fatal("expected expiry from expires_in")
	}

	got, err := g.Session(context.Background())
	if err != nil || got == nil || got.UserID != "u1" {
		t.Fatalf("Session after sign-in: got=%+v err=%v", got, err)
	}
}

func TestSignIn_IdentityFromClaims(t *testing.T) {
	t.Parallel()
	tok := signedToken(t, jwt.MapClaims{
		"sub":   "u-claims",
		"email": "claims@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"access_token":"` + tok + `","user":{}}`))
	}))
	defer srv.Close()

	g := NewREST(srv.URL, "anon-key")
	sess, err := g.SignIn(context.Background(), "claims@example.com", "pw")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if sess.UserID != "u-claims" || sess.Email != "claims@example.com" {
		t.Fatalf("expected identity from JWT claims, got %+v", sess)
	}
	if sess.ExpiresAt.IsZero() {
		t.Fatal("expected expiry from exp claim")
	}
}

func TestSignIn_BadCredentials(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	g := NewREST(srv.URL, "anon-key")
	if _, err := g.SignIn(context.Background(), "x@y.co", "wrong"); err == nil {
		t.Fatal("expected error for rejected credentials")
	}
	if sess, _ := g.Session(context.Background()); sess != nil {
		t.Fatal("no session should be cached after failed sign-in")
	}
}

func TestSession_Expired(t *testing.T) {
	t.Parallel()
	now := time.Now()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"access_token":"t","expires_in":60,"user":{"id":"u1","email":"a@b.co"}}`))
	}))
	defer srv.Close()

	clock := &now
	g := NewREST(srv.URL, "anon-key", WithClock(func() time.Time { return *clock }))
	if _, err := g.SignIn(context.Background(), "a@b.co", "pw"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	later := now.Add(2 * time.Minute)
	clock = &later
	if sess, _ := g.Session(context.Background()); sess != nil {
		t.Fatalf("expected expired session to read as anonymous, got %+v", sess)
	}
}

func TestAuthStateChange_FiresOnSignInAndOut(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/v1/token":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"access_token":"t","user":{"id":"u1","email":"a@b.co"}}`))
		case "/auth/v1/logout":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	g := NewREST(srv.URL, "anon-key")
	var fired []*Session
	unsub := g.OnAuthStateChange(func(s *Session) { fired = append(fired, s) })

	if _, err := g.SignIn(context.Background(), "a@b.co", "pw"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if err := g.SignOut(context.Background()); err != nil {
		t.Fatalf("SignOut: %v", err)
	}

	if len(fired) != 2 {
		t.Fatalf("expected 2 firings, got %d", len(fired))
	}
	if fired[0] == nil || fired[0].UserID != "u1" {
		t.Fatalf("first firing should carry the session, got %+v", fired[0])
	}
	if fired[1] != nil {
		t.Fatalf("second firing should be nil, got %+v", fired[1])
	}

	unsub()
	if _, err := g.SignIn(context.Background(), "a@b.co", "pw"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if len(fired) != 2 {
		t.Fatal("unsubscribed callback must not fire")
	}
}

func TestSignOut_ClearsSessionEvenOnRemoteFailure(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/v1/token":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"access_token":"t","user":{"id":"u1","email":"a@b.co"}}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	g := NewREST(srv.URL, "anon-key")
	if _, err := g.SignIn(context.Background(), "a@b.co", "pw"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if err := g.SignOut(context.Background()); err == nil {
		t.Fatal("expected remote sign-out error")
	}
	if sess, _ := g.Session(context.Background()); sess != nil {
		t.Fatal("local session must be cleared regardless of remote outcome")
	}
}
