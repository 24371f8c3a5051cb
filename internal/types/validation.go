package types

import (
	"errors"
	"fmt"
	"regexp"
)

// ------------------------------
// Shared Errors
// ------------------------------

// ErrNotFound is returned when a point query matches no row.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert violates a uniqueness constraint.
var ErrDuplicate = errors.New("duplicate record")

// ErrNoSession is returned by auth-dependent operations when no session is
// active.
var ErrNoSession = errors.New("no active session")

// ------------------------------
// Validation
// ------------------------------

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like an email address. Matches the
// loose client-side check; the gateway is the authority.
func ValidEmail(s string) bool { return emailRe.MatchString(s) }

// ValidPartyType reports whether t is a known party type.
func ValidPartyType(t PartyType) bool {
	switch t {
	case PartyNatal, PartyReveillon, PartyAniversario, PartyCasamento,
		PartyFormatura, PartyChaBebe, PartyChaPanela, PartyOutro:
		return true
	}
	return false
}

// ValidShoppingCategory reports whether c is a known shopping category.
func ValidShoppingCategory(c ShoppingCategory) bool {
	switch c {
	case ShoppingBebidas, ShoppingComidas, ShoppingDoces,
		ShoppingDescartaveis, ShoppingDecoracao:
		return true
	}
	return false
}

// ValidTemplateType reports whether t is a known template type.
func ValidTemplateType(t TemplateType) bool {
	switch t {
	case TemplateCardapio, TemplateDecoracao, TemplatePlaylist, TemplateChecklist:
		return true
	}
	return false
}

// Validate checks the required fields of a new guest.
func (g NewGuest) Validate() error {
	if g.Name == "" {
		return fmt.Errorf("guest name is required")
	}
	return nil
}

// Validate checks the required fields of a new shopping item.
func (it NewShoppingItem) Validate() error {
	if it.Name == "" {
		return fmt.Errorf("item name is required")
	}
	if !ValidShoppingCategory(it.Category) {
		return fmt.Errorf("unknown shopping category %q", it.Category)
	}
	if it.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	return nil
}

// Validate checks the required fields of a new template.
func (t NewTemplate) Validate() error {
	if !ValidTemplateType(t.Type) {
		return fmt.Errorf("unknown template type %q", t.Type)
	}
	if t.Content == "" {
		return fmt.Errorf("template content is required")
	}
	return nil
}

// Validate checks the required fields of a quiz lead.
func (l QuizLead) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("lead name is required")
	}
	if !ValidEmail(l.Email) {
		return fmt.Errorf("invalid lead email %q", l.Email)
	}
	return nil
}
