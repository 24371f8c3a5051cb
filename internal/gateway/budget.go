package gateway

import (
	"context"
	"fmt"

	"github.com/festaperfeita/festa/internal/types"
)

// budgetRow mirrors the budget_categories table. Unlike the other
// collections the row is addressed by (user_id, category), not by its
// surrogate id.
type budgetRow struct {
	ID       string  `json:"id,omitempty"`
	UserID   string  `json:"user_id,omitempty"`
	Category string  `json:"category"`
	Planned  float64 `json:"planned"`
	Spent    float64 `json:"spent"`
}

// BudgetCategory is the point query backing the upsert decision. Returns
// types.ErrNotFound when no row exists for (userID, category).
func (g *REST) BudgetCategory(ctx context.Context, userID, category string) (*types.BudgetCategory, error) {
	var rows []budgetRow
	if err := g.selectRows(ctx, "budget_categories", eq("user_id", userID, "category", category), &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("budget category %q: %w", category, types.ErrNotFound)
	}
	return &types.BudgetCategory{
		Category: rows[0].Category,
		Planned:  rows[0].Planned,
		Spent:    rows[0].Spent,
	}, nil
}

// InsertBudgetCategory creates the (userID, category) row.
func (g *REST) InsertBudgetCategory(ctx context.Context, userID string, row types.BudgetCategory) error {
	payload := budgetRow{
		UserID:   userID,
		Category: row.Category,
		Planned:  row.Planned,
		Spent:    row.Spent,
	}
	return g.insertRows(ctx, "budget_categories", payload, nil)
}

// UpdateBudgetCategory applies the set fields of p to the (userID, category)
// row.
func (g *REST) UpdateBudgetCategory(ctx context.Context, userID, category string, p types.BudgetPatch) error {
	body := map[string]any{}
	if p.Planned != nil {
		body["planned"] = *p.Planned
	}
	if p.Spent != nil {
		body["spent"] = *p.Spent
	}
	if len(body) == 0 {
		return nil
	}
	return g.updateRows(ctx, "budget_categories", eq("user_id", userID, "category", category), body)
}
