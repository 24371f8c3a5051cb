package types

// ------------------------------
// Patch Types
// ------------------------------
//
// Patches carry partial updates. A nil field means "leave unchanged"; the
// compiler rather than a dynamic merge decides which fields each operation
// may touch.

// ProfilePatch is a partial update of a UserProfile.
type ProfilePatch struct {
	Name               *string
	PartyType          *PartyType
	PartyDate          *string
	ExpectedGuests     *int
	TotalBudget        *float64
	OnboardingComplete *bool
}

// IsZero reports whether no field is set.
func (p ProfilePatch) IsZero() bool {
	return p.Name == nil && p.PartyType == nil && p.PartyDate == nil &&
		p.ExpectedGuests == nil && p.TotalBudget == nil && p.OnboardingComplete == nil
}

// ApplyTo merges the set fields into u.
func (p ProfilePatch) ApplyTo(u *UserProfile) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.PartyType != nil {
		u.PartyType = *p.PartyType
	}
	if p.PartyDate != nil {
		u.PartyDate = *p.PartyDate
	}
	if p.ExpectedGuests != nil {
		u.ExpectedGuests = *p.ExpectedGuests
	}
	if p.TotalBudget != nil {
		u.TotalBudget = *p.TotalBudget
	}
	if p.OnboardingComplete != nil {
		u.OnboardingComplete = *p.OnboardingComplete
	}
}

// GuestPatch is a partial update of a Guest.
type GuestPatch struct {
	Name      *string
	Email     *string
	Phone     *string
	Confirmed *bool
	PlusOne   *bool
}

// ApplyTo merges the set fields into g.
func (p GuestPatch) ApplyTo(g *Guest) {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.Email != nil {
		g.Email = *p.Email
	}
	if p.Phone != nil {
		g.Phone = *p.Phone
	}
	if p.Confirmed != nil {
		g.Confirmed = *p.Confirmed
	}
	if p.PlusOne != nil {
		g.PlusOne = *p.PlusOne
	}
}

// ShoppingItemPatch is a partial update of a ShoppingItem.
type ShoppingItemPatch struct {
	Name           *string
	Category       *ShoppingCategory
	Quantity       *int
	Unit           *string
	EstimatedPrice *float64
	Purchased      *bool
	ActualPrice    *float64
}

// ApplyTo merges the set fields into it.
func (p ShoppingItemPatch) ApplyTo(it *ShoppingItem) {
	if p.Name != nil {
		it.Name = *p.Name
	}
	if p.Category != nil {
		it.Category = *p.Category
	}
	if p.Quantity != nil {
		it.Quantity = *p.Quantity
	}
	if p.Unit != nil {
		it.Unit = *p.Unit
	}
	if p.EstimatedPrice != nil {
		it.EstimatedPrice = *p.EstimatedPrice
	}
	if p.Purchased != nil {
		it.Purchased = *p.Purchased
	}
	if p.ActualPrice != nil {
		it.ActualPrice = p.ActualPrice
	}
}

// BudgetPatch is a partial update of a BudgetCategory. Unset numeric fields
// default to zero on the insert branch of the upsert.
type BudgetPatch struct {
	Planned *float64
	Spent   *float64
}

// ApplyTo merges the set fields into c.
func (p BudgetPatch) ApplyTo(c *BudgetCategory) {
	if p.Planned != nil {
		c.Planned = *p.Planned
	}
	if p.Spent != nil {
		c.Spent = *p.Spent
	}
}

// PlannedOrZero returns the planned amount, defaulting to 0 when unset.
func (p BudgetPatch) PlannedOrZero() float64 {
	if p.Planned != nil {
		return *p.Planned
	}
	return 0
}

// SpentOrZero returns the spent amount, defaulting to 0 when unset.
func (p BudgetPatch) SpentOrZero() float64 {
	if p.Spent != nil {
		return *p.Spent
	}
	return 0
}
