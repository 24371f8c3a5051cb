package types

// ------------------------------
// Request Types
// ------------------------------

// NewGuest holds the caller-supplied fields of a guest. The id and creation
// timestamp are assigned by the gateway on insert.
type NewGuest struct {
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Confirmed bool   `json:"confirmed"`
	PlusOne   bool   `json:"plus_one"`
}

// NewShoppingItem holds the caller-supplied fields of a shopping item.
type NewShoppingItem struct {
	Name           string           `json:"name"`
	Category       ShoppingCategory `json:"category"`
	Quantity       int              `json:"quantity"`
	Unit           string           `json:"unit"`
	EstimatedPrice float64          `json:"estimated_price"`
	Purchased      bool             `json:"purchased"`
	ActualPrice    *float64         `json:"actual_price,omitempty"`
}

// NewTemplate holds the caller-supplied fields of a template.
type NewTemplate struct {
	Type    TemplateType `json:"type"`
	Content string       `json:"content"`
}

// NewChatMessage holds the caller-supplied fields of a chat message. The id
// and timestamp are generated locally.
type NewChatMessage struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

// QuizLead captures one quiz funnel submission. Answer fields mirror the
// quiz steps and may be empty when a step was skipped.
type QuizLead struct {
	Email           string `json:"email"`
	Name            string `json:"name"`
	PartyType       string `json:"party_type,omitempty"`
	PartyDate       string `json:"party_date,omitempty"`
	ExpectedGuests  string `json:"expected_guests,omitempty"`
	BudgetRange     string `json:"budget_range,omitempty"`
	MainChallenge   string `json:"main_challenge,omitempty"`
	FearBudgetItems string `json:"fear_budget_items,omitempty"`
	DesireRoadmap   string `json:"desire_roadmap,omitempty"`
	CommitmentLevel string `json:"commitment_level,omitempty"`
}
