package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// PartyType enumerates the event themes a user can plan for.
type PartyType string

const (
	PartyNatal       PartyType = "natal"
	PartyReveillon   PartyType = "reveillon"
	PartyAniversario PartyType = "aniversario"
	PartyCasamento   PartyType = "casamento"
	PartyFormatura   PartyType = "formatura"
	PartyChaBebe     PartyType = "cha_bebe"
	PartyChaPanela   PartyType = "cha_panela"
	PartyOutro       PartyType = "outro"
)

// ShoppingCategory enumerates the shopping-list sections.
type ShoppingCategory string

const (
	ShoppingBebidas      ShoppingCategory = "bebidas"
	ShoppingComidas      ShoppingCategory = "comidas"
	ShoppingDoces        ShoppingCategory = "doces"
	ShoppingDescartaveis ShoppingCategory = "descartaveis"
	ShoppingDecoracao    ShoppingCategory = "decoracao"
)

// TemplateType enumerates the generated-content kinds.
type TemplateType string

const (
	TemplateCardapio  TemplateType = "cardapio"
	TemplateDecoracao TemplateType = "decoracao"
	TemplatePlaylist  TemplateType = "playlist"
	TemplateChecklist TemplateType = "checklist"
)

// MessageRole identifies the author of a chat message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// UserProfile is the per-session profile row. Exactly one exists per
// authenticated user; it is created implicitly at registration.
type UserProfile struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	PartyType          PartyType `json:"party_type,omitempty"`
	PartyDate          string    `json:"party_date,omitempty"`
	ExpectedGuests     int       `json:"expected_guests,omitempty"`
	TotalBudget        float64   `json:"total_budget,omitempty"`
	OnboardingComplete bool      `json:"onboarding_complete"`
}

// Guest represents one invitee on the guest list.
type Guest struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Confirmed bool      `json:"confirmed"`
	PlusOne   bool      `json:"plus_one"`
	CreatedAt time.Time `json:"created_at"`
}

// ShoppingItem represents one row of the shopping list. ActualPrice is set
// once the item has been purchased.
type ShoppingItem struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Category       ShoppingCategory `json:"category"`
	Quantity       int              `json:"quantity"`
	Unit           string           `json:"unit"`
	EstimatedPrice float64          `json:"estimated_price"`
	Purchased      bool             `json:"purchased"`
	ActualPrice    *float64         `json:"actual_price,omitempty"`
}

// BudgetCategory tracks planned versus spent money for one fixed category.
// The category name is the natural key; there is at most one row per
// (user, category).
type BudgetCategory struct {
	Category string  `json:"category"`
	Planned  float64 `json:"planned"`
	Spent    float64 `json:"spent"`
}

// Template is a generated content blob. Append-only; several templates of
// the same type may coexist.
type Template struct {
	ID        string       `json:"id"`
	Type      TemplateType `json:"type"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"created_at"`
}

// ChatMessage is one line of the assistant transcript. Purely local: ids and
// timestamps are assigned client-side and nothing is persisted remotely.
type ChatMessage struct {
	ID        string      `json:"id"`
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
}

// BudgetCategoryNames lists the fixed category set, in display order.
func BudgetCategoryNames() []string {
	return []string{"Bebidas", "Comidas", "Doces", "Descartáveis", "Decoração"}
}

// DefaultBudgetCategories returns the initial budget rows, all zeroed.
func DefaultBudgetCategories() []BudgetCategory {
	names := BudgetCategoryNames()
	out := make([]BudgetCategory, 0, len(names))
	for _, n := range names {
		out = append(out, BudgetCategory{Category: n})
	}
	return out
}
