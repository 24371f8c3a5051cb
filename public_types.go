package festa

import "github.com/festaperfeita/festa/internal/types"

// Aliases so callers work entirely against this package.
type (
	PartyType        = types.PartyType
	ShoppingCategory = types.ShoppingCategory
	TemplateType     = types.TemplateType
	MessageRole      = types.MessageRole

	UserProfile    = types.UserProfile
	Guest          = types.Guest
	ShoppingItem   = types.ShoppingItem
	BudgetCategory = types.BudgetCategory
	Template       = types.Template
	ChatMessage    = types.ChatMessage

	NewGuest        = types.NewGuest
	NewShoppingItem = types.NewShoppingItem
	NewTemplate     = types.NewTemplate
	NewChatMessage  = types.NewChatMessage
	QuizLead        = types.QuizLead

	ProfilePatch      = types.ProfilePatch
	GuestPatch        = types.GuestPatch
	ShoppingItemPatch = types.ShoppingItemPatch
	BudgetPatch       = types.BudgetPatch
)

const (
	PartyNatal       = types.PartyNatal
	PartyReveillon   = types.PartyReveillon
	PartyAniversario = types.PartyAniversario
	PartyCasamento   = types.PartyCasamento
	PartyFormatura   = types.PartyFormatura
	PartyChaBebe     = types.PartyChaBebe
	PartyChaPanela   = types.PartyChaPanela
	PartyOutro       = types.PartyOutro

	ShoppingBebidas      = types.ShoppingBebidas
	ShoppingComidas      = types.ShoppingComidas
	ShoppingDoces        = types.ShoppingDoces
	ShoppingDescartaveis = types.ShoppingDescartaveis
	ShoppingDecoracao    = types.ShoppingDecoracao

	TemplateCardapio  = types.TemplateCardapio
	TemplateDecoracao = types.TemplateDecoracao
	TemplatePlaylist  = types.TemplatePlaylist
	TemplateChecklist = types.TemplateChecklist

	RoleUser      = types.RoleUser
	RoleAssistant = types.RoleAssistant
)

// BudgetCategoryNames lists the fixed budget category set, in display order.
func BudgetCategoryNames() []string { return types.BudgetCategoryNames() }

// DefaultBudgetCategories returns the initial budget rows, all zeroed.
func DefaultBudgetCategories() []BudgetCategory { return types.DefaultBudgetCategories() }
