package festa

import (
	"context"
	"errors"

	"github.com/festaperfeita/festa/internal/types"
)

// CheckoutURL is the hosted checkout the quiz funnel hands off to.
const CheckoutURL = "https://pay.kiwify.com.br/Cn4U3SU"

// SubmitQuizLead records a quiz funnel submission and returns the checkout
// URL. The funnel never blocks the handoff: a lead that already exists
// counts as recorded, and any other gateway failure is logged and absorbed.
// Only an invalid submission returns an error.
func (s *Store) SubmitQuizLead(ctx context.Context, lead types.QuizLead) (string, error) {
	observe("quiz_lead", "submit")
	if err := lead.Validate(); err != nil {
		return "", err
	}
	if err := s.gw.InsertQuizLead(ctx, lead); err != nil && !errors.Is(err, types.ErrDuplicate) {
		s.drop("quiz_lead", "submit", err)
	}
	return CheckoutURL, nil
}
