package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/festaperfeita/festa/internal/types"
)

func TestBudgetCategory_PointQuery(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/budget_categories" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		q := r.URL.Query()
		if q.Get("user_id") != "eq.u1" || q.Get("category") != "eq.Bebidas" {
			t.Errorf("unexpected filters %q", r.URL.RawQuery)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[{"id":"b1","user_id":"u1","category":"Bebidas","planned":300,"spent":120}]`))
	}))
	defer srv.Close()

	g := NewREST(srv.URL, "anon-key")
	row, err := g.BudgetCategory(context.Background(), "u1", "Bebidas")
	if err != nil {
		t.Fatalf("BudgetCategory: %v", err)
	}
	if row.Category != "Bebidas" || row.Planned != 300 || row.Spent != 120 {
		t.Fatalf("unexpected row %+v", row)
	}
}

func TestBudgetCategory_NotFound(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	g := NewREST(srv.URL, "anon-key")
	if _, err := g.BudgetCategory(context.Background(), "u1", "Comidas"); !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestInsertBudgetCategory_Payload(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var row map[string]any
		_ = json.Unmarshal(body, &row)
		if row["user_id"] != "u1" || row["category"] != "Comidas" || row["planned"] != 500.0 || row["spent"] != 0.0 {
			t.Errorf("unexpected payload: %s", body)
		}
		if r.Header.Get("Prefer") != "return=minimal" {
			t.Errorf("expected minimal return, got %q", r.Header.Get("Prefer"))
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	g := NewREST(srv.URL, "anon-key")
	err := g.InsertBudgetCategory(context.Background(), "u1", types.BudgetCategory{Category: "Comidas", Planned: 500})
	if err != nil {
		t.Fatalf("InsertBudgetCategory: %v", err)
	}
}

func TestUpdateBudgetCategory_CompositeKey(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		q := r.URL.Query()
		if q.Get("user_id") != "eq.u1" || q.Get("category") != "eq.Bebidas" {
			t.Errorf("update must address (user, category): %q", r.URL.RawQuery)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	g := NewREST(srv.URL, "anon-key")
	spent := 120.0
	if err := g.UpdateBudgetCategory(context.Background(), "u1", "Bebidas", types.BudgetPatch{Spent: &spent}); err != nil {
		t.Fatalf("UpdateBudgetCategory: %v", err)
	}
}

func TestInsertQuizLead_DuplicateMapsToSentinel(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	g := NewREST(srv.URL, "anon-key")
	err := g.InsertQuizLead(context.Background(), types.QuizLead{Name: "Ana", Email: "ana@example.com"})
	if !errors.Is(err, types.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}
