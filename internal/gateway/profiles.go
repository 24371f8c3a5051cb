package gateway

import (
	"context"
	"fmt"

	"github.com/festaperfeita/festa/internal/types"
)

// profileRow mirrors the profiles table. Email is not a profile column; the
// session carries it.
type profileRow struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	PartyType          string  `json:"party_type,omitempty"`
	PartyDate          string  `json:"party_date,omitempty"`
	ExpectedGuests     int     `json:"expected_guests,omitempty"`
	TotalBudget        float64 `json:"total_budget,omitempty"`
	OnboardingComplete bool    `json:"onboarding_complete"`
}

func (r profileRow) toProfile() *types.UserProfile {
	return &types.UserProfile{
		ID:                 r.ID,
		Name:               r.Name,
		PartyType:          types.PartyType(r.PartyType),
		PartyDate:          r.PartyDate,
		ExpectedGuests:     r.ExpectedGuests,
		TotalBudget:        r.TotalBudget,
		OnboardingComplete: r.OnboardingComplete,
	}
}

// Profile returns the profile row for userID, or types.ErrNotFound when the
// row does not exist yet.
func (g *REST) Profile(ctx context.Context, userID string) (*types.UserProfile, error) {
	var rows []profileRow
	if err := g.selectRows(ctx, "profiles", eq("id", userID), &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("profile %s: %w", userID, types.ErrNotFound)
	}
	return rows[0].toProfile(), nil
}

// UpdateProfile applies the set fields of p to the profile row of userID.
func (g *REST) UpdateProfile(ctx context.Context, userID string, p types.ProfilePatch) error {
	body := map[string]any{}
	if p.Name != nil {
		body["name"] = *p.Name
	}
	if p.PartyType != nil {
		body["party_type"] = string(*p.PartyType)
	}
	if p.PartyDate != nil {
		body["party_date"] = *p.PartyDate
	}
	if p.ExpectedGuests != nil {
		body["expected_guests"] = *p.ExpectedGuests
	}
	if p.TotalBudget != nil {
		body["total_budget"] = *p.TotalBudget
	}
	if p.OnboardingComplete != nil {
		body["onboarding_complete"] = *p.OnboardingComplete
	}
	if len(body) == 0 {
		return nil
	}
	return g.updateRows(ctx, "profiles", eq("id", userID), body)
}
