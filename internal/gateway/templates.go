package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/festaperfeita/festa/internal/types"
)

// templateRow mirrors the templates table.
type templateRow struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"user_id,omitempty"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// InsertTemplate appends a template scoped to userID and returns the row
// the gateway created.
func (g *REST) InsertTemplate(ctx context.Context, userID string, nt types.NewTemplate) (*types.Template, error) {
	payload := templateRow{
		UserID:  userID,
		Type:    string(nt.Type),
		Content: nt.Content,
	}
	var rows []templateRow
	if err := g.insertRows(ctx, "templates", payload, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("insert templates: empty representation")
	}
	return &types.Template{
		ID:        rows[0].ID,
		Type:      types.TemplateType(rows[0].Type),
		Content:   rows[0].Content,
		CreatedAt: rows[0].CreatedAt,
	}, nil
}
