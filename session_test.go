package festa

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/festaperfeita/festa/internal/storage"
	"github.com/festaperfeita/festa/internal/types"
)

func testPartition(t *testing.T) *storage.SnapshotStore {
	t.Helper()
	p, err := storage.Open(filepath.Join(t.TempDir(), "festa.db"))
	if err != nil {
		t.Fatalf("open partition: %v", err)
	}
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func TestHydrate_AnonymousClearsState(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, newFakeGateway())
	m := NewSessionManager(s)
	defer m.Close()

	if err := m.Hydrate(context.Background()); err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	if s.User() != nil || s.IsAuthenticated() {
		t.Fatal("anonymous hydrate must leave the store signed out")
	}
}

func TestHydrate_ResolvesProfileForActiveSession(t *testing.T) {
	t.Parallel()
	gw := newFakeGateway().signedIn()
	gw.profile = &types.UserProfile{ID: "u1", Name: "Maria", Email: "maria@example.com", PartyType: types.PartyNatal}
	s := newTestStore(t, gw)
	m := NewSessionManager(s)
	defer m.Close()

	if err := m.Hydrate(context.Background()); err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	u := s.User()
	if u == nil || u.Name != "Maria" || u.PartyType != types.PartyNatal {
		t.Fatalf("unexpected profile %+v", u)
	}
	if !s.IsAuthenticated() {
		t.Fatal("expected authenticated state")
	}
}

func TestHydrate_MissingProfileFallsBackToSessionIdentity(t *testing.T) {
	t.Parallel()
	gw := newFakeGateway().signedIn()
	s := newTestStore(t, gw)
	m := NewSessionManager(s)
	defer m.Close()

	if err := m.Hydrate(context.Background()); err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	u := s.User()
	if u == nil || u.ID != "u1" || u.Email != "maria@example.com" {
		t.Fatalf("unexpected fallback profile %+v", u)
	}
	// No profile row and no metadata name: the email's local part serves.
	if u.Name != "maria" {
		t.Fatalf("expected name fallback to email local part, got %q", u.Name)
	}
}

func TestHydrate_RestoresSnapshotBeforeRemoteAnswers(t *testing.T) {
	t.Parallel()
	part := testPartition(t)
	ctx := context.Background()
	if err := part.Save(ctx, storage.Snapshot{
		IsAuthenticated: true,
		User:            &types.UserProfile{ID: "u1", Name: "Maria", Email: "maria@example.com"},
	}); err != nil {
		t.Fatalf("seed snapshot: %v", err)
	}

	gw := newFakeGateway() // remote says anonymous
	s := newTestStore(t, gw, WithPartition(part))

	var sawRestored bool
	s.Subscribe(func() {
		if u := s.User(); u != nil && u.Name == "Maria" {
			sawRestored = true
		}
	})

	m := NewSessionManager(s)
	defer m.Close()
	if err := m.Hydrate(ctx); err != nil {
		t.Fatalf("Hydrate: %v", err)
	}

	if !sawRestored {
		t.Fatal("snapshot must be applied before the remote session resolves")
	}
	// Remote wins: anonymous backend signs the restored snapshot out.
	if s.User() != nil || s.IsAuthenticated() {
		t.Fatal("remote anonymous session must override the snapshot")
	}
}

func TestSignIn_AuthStateUpdatesStore(t *testing.T) {
	t.Parallel()
	gw := newFakeGateway()
	s := newTestStore(t, gw)
	m := NewSessionManager(s)
	defer m.Close()

	if err := m.SignIn(context.Background(), "maria@example.com", "s3cret"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if !s.IsAuthenticated() {
		t.Fatal("sign-in must flip the store to authenticated")
	}
	if u := s.User(); u == nil || u.Email != "maria@example.com" {
		t.Fatalf("unexpected profile %+v", u)
	}
}

func TestSignIn_FailureLeavesStoreSignedOut(t *testing.T) {
	t.Parallel()
	gw := newFakeGateway()
	gw.signInErr = errors.New("bad credentials")
	s := newTestStore(t, gw)
	m := NewSessionManager(s)
	defer m.Close()

	if err := m.SignIn(context.Background(), "maria@example.com", "wrong"); err == nil {
		t.Fatal("expected sign-in error")
	}
	if s.IsAuthenticated() || s.User() != nil {
		t.Fatal("failed sign-in must not change store state")
	}
}

func TestSignUp_RejectsInvalidEmail(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, newFakeGateway())
	m := NewSessionManager(s)
	defer m.Close()

	if err := m.SignUp(context.Background(), "not-an-email", "s3cret", "Maria"); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestSignOut_PersistsSignedOutSnapshot(t *testing.T) {
	t.Parallel()
	part := testPartition(t)
	gw := newFakeGateway().signedIn()
	s := newTestStore(t, gw, WithPartition(part))
	m := NewSessionManager(s)
	defer m.Close()
	ctx := context.Background()

	s.SetUser(&types.UserProfile{ID: "u1", Name: "Maria"})
	s.SetAuthenticated(true)
	m.SignOut(ctx)

	snap, err := part.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap == nil || snap.IsAuthenticated || snap.User != nil {
		t.Fatalf("expected signed-out snapshot, got %+v", snap)
	}
}

func TestPartition_PersistsOnlyAuthAndUser(t *testing.T) {
	t.Parallel()
	part := testPartition(t)
	gw := newFakeGateway().signedIn()
	s := newTestStore(t, gw, WithPartition(part))
	ctx := context.Background()

	s.SetUser(&types.UserProfile{ID: "u1", Name: "Maria"})
	s.SetAuthenticated(true)
	s.AddGuest(ctx, types.NewGuest{Name: "Ana"})
	s.AddChatMessage(types.NewChatMessage{Role: types.RoleUser, Content: "oi"})

	snap, err := part.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap == nil || !snap.IsAuthenticated || snap.User == nil || snap.User.Name != "Maria" {
		t.Fatalf("unexpected snapshot %+v", snap)
	}

	// A fresh store over the same partition starts with the profile but no
	// collections; those always come from the gateway.
	s2 := newTestStore(t, newFakeGateway(), WithPartition(part))
	m2 := NewSessionManager(s2)
	defer m2.Close()
	if len(s2.Guests()) != 0 || len(s2.ChatMessages()) != 0 {
		t.Fatal("collections must never be restored from disk")
	}
}
