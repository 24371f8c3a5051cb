package gateway

import (
	"context"
	"fmt"

	"github.com/festaperfeita/festa/internal/types"
)

// shoppingRow mirrors the shopping_items table.
type shoppingRow struct {
	ID             string   `json:"id,omitempty"`
	UserID         string   `json:"user_id,omitempty"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Quantity       int      `json:"quantity"`
	Unit           string   `json:"unit"`
	EstimatedPrice float64  `json:"estimated_price"`
	Purchased      bool     `json:"purchased"`
	ActualPrice    *float64 `json:"actual_price,omitempty"`
}

func (r shoppingRow) toItem() types.ShoppingItem {
	return types.ShoppingItem{
		ID:             r.ID,
		Name:           r.Name,
		Category:       types.ShoppingCategory(r.Category),
		Quantity:       r.Quantity,
		Unit:           r.Unit,
		EstimatedPrice: r.EstimatedPrice,
		Purchased:      r.Purchased,
		ActualPrice:    r.ActualPrice,
	}
}

// InsertShoppingItem inserts an item scoped to userID and returns the row
// the gateway created.
func (g *REST) InsertShoppingItem(ctx context.Context, userID string, ni types.NewShoppingItem) (*types.ShoppingItem, error) {
	payload := shoppingRow{
		UserID:         userID,
		Name:           ni.Name,
		Category:       string(ni.Category),
		Quantity:       ni.Quantity,
		Unit:           ni.Unit,
		EstimatedPrice: ni.EstimatedPrice,
		Purchased:      ni.Purchased,
		ActualPrice:    ni.ActualPrice,
	}
	var rows []shoppingRow
	if err := g.insertRows(ctx, "shopping_items", payload, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("insert shopping_items: empty representation")
	}
	item := rows[0].toItem()
	return &item, nil
}

// UpdateShoppingItem applies the set fields of p to the item with the given id.
func (g *REST) UpdateShoppingItem(ctx context.Context, id string, p types.ShoppingItemPatch) error {
	body := map[string]any{}
	if p.Name != nil {
		body["name"] = *p.Name
	}
	if p.Category != nil {
		body["category"] = string(*p.Category)
	}
	if p.Quantity != nil {
		body["quantity"] = *p.Quantity
	}
	if p.Unit != nil {
		body["unit"] = *p.Unit
	}
	if p.EstimatedPrice != nil {
		body["estimated_price"] = *p.EstimatedPrice
	}
	if p.Purchased != nil {
		body["purchased"] = *p.Purchased
	}
	if p.ActualPrice != nil {
		body["actual_price"] = *p.ActualPrice
	}
	if len(body) == 0 {
		return nil
	}
	return g.updateRows(ctx, "shopping_items", eq("id", id), body)
}

// DeleteShoppingItem removes the item with the given id.
func (g *REST) DeleteShoppingItem(ctx context.Context, id string) error {
	return g.deleteRows(ctx, "shopping_items", eq("id", id))
}
