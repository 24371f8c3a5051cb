package festa

import (
	"context"
	"errors"
	"testing"

	"github.com/festaperfeita/festa/internal/types"
)

func TestSubmitQuizLead_RecordsAndHandsOff(t *testing.T) {
	t.Parallel()
	gw := newFakeGateway()
	s := newTestStore(t, gw)

	url, err := s.SubmitQuizLead(context.Background(), types.QuizLead{
		Name:        "Ana",
		Email:       "ana@example.com",
		PartyType:   "natal",
		BudgetRange: "500-1000",
	})
	if err != nil {
		t.Fatalf("SubmitQuizLead: %v", err)
	}
	if url != CheckoutURL {
		t.Fatalf("unexpected checkout url %q", url)
	}
	if len(gw.leads) != 1 || gw.leads[0].Email != "ana@example.com" {
		t.Fatalf("lead not recorded: %+v", gw.leads)
	}
}

func TestSubmitQuizLead_DuplicateCountsAsRecorded(t *testing.T) {
	t.Parallel()
	gw := newFakeGateway()
	gw.leadErr = types.ErrDuplicate
	s := newTestStore(t, gw)

	url, err := s.SubmitQuizLead(context.Background(), types.QuizLead{Name: "Ana", Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("duplicate lead must not fail the funnel: %v", err)
	}
	if url != CheckoutURL {
		t.Fatalf("unexpected checkout url %q", url)
	}
}

func TestSubmitQuizLead_GatewayFailureStillHandsOff(t *testing.T) {
	t.Parallel()
	gw := newFakeGateway()
	gw.leadErr = errors.New("backend down")
	s := newTestStore(t, gw)

	url, err := s.SubmitQuizLead(context.Background(), types.QuizLead{Name: "Ana", Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("funnel must absorb gateway failures: %v", err)
	}
	if url != CheckoutURL {
		t.Fatalf("unexpected checkout url %q", url)
	}
}

func TestSubmitQuizLead_InvalidSubmission(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, newFakeGateway())

	if _, err := s.SubmitQuizLead(context.Background(), types.QuizLead{Name: "Ana", Email: "nope"}); err == nil {
		t.Fatal("expected validation error")
	}
}
