package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/festaperfeita/festa/internal/types"
)

// guestRow mirrors the guests table.
type guestRow struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"user_id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Confirmed bool      `json:"confirmed"`
	PlusOne   bool      `json:"plus_one"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

func (r guestRow) toGuest() types.Guest {
	return types.Guest{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Confirmed: r.Confirmed,
		PlusOne:   r.PlusOne,
		CreatedAt: r.CreatedAt,
	}
}

// InsertGuest inserts a guest scoped to userID and returns the row the
// gateway created, including its assigned id and creation timestamp.
func (g *REST) InsertGuest(ctx context.Context, userID string, ng types.NewGuest) (*types.Guest, error) {
	payload := guestRow{
		UserID:    userID,
		Name:      ng.Name,
		Email:     ng.Email,
		Phone:     ng.Phone,
		Confirmed: ng.Confirmed,
		PlusOne:   ng.PlusOne,
	}
	var rows []guestRow
	if err := g.insertRows(ctx, "guests", payload, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("insert guests: empty representation")
	}
	guest := rows[0].toGuest()
	return &guest, nil
}

// UpdateGuest applies the set fields of p to the guest with the given id.
func (g *REST) UpdateGuest(ctx context.Context, id string, p types.GuestPatch) error {
	body := map[string]any{}
	if p.Name != nil {
		body["name"] = *p.Name
	}
	if p.Email != nil {
		body["email"] = *p.Email
	}
	if p.Phone != nil {
		body["phone"] = *p.Phone
	}
	if p.Confirmed != nil {
		body["confirmed"] = *p.Confirmed
	}
	if p.PlusOne != nil {
		body["plus_one"] = *p.PlusOne
	}
	if len(body) == 0 {
		return nil
	}
	return g.updateRows(ctx, "guests", eq("id", id), body)
}

// DeleteGuest removes the guest with the given id.
func (g *REST) DeleteGuest(ctx context.Context, id string) error {
	return g.deleteRows(ctx, "guests", eq("id", id))
}
