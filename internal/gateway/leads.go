package gateway

import (
	"context"

	"github.com/festaperfeita/festa/internal/types"
)

// InsertQuizLead appends a quiz funnel submission. A uniqueness violation on
// the lead email surfaces as types.ErrDuplicate; callers decide whether a
// returning lead is an error.
func (g *REST) InsertQuizLead(ctx context.Context, lead types.QuizLead) error {
	return g.insertRows(ctx, "quiz_leads", lead, nil)
}
