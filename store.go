package festa

import (
	"context"
	"errors"

	"github.com/festaperfeita/festa/internal/storage"
	"github.com/festaperfeita/festa/internal/types"
)

// ------------------------------
// Session state
// ------------------------------

// SetUser replaces the cached profile. Local only; persisted to the
// snapshot partition.
func (s *Store) SetUser(u *types.UserProfile) {
	s.mu.Lock()
	if u == nil {
		s.user = nil
	} else {
		cp := *u
		s.user = &cp
	}
	s.mu.Unlock()
	s.changed(context.Background())
}

// SetAuthenticated flips the authentication flag. Local only; persisted to
// the snapshot partition.
func (s *Store) SetAuthenticated(ok bool) {
	s.mu.Lock()
	s.isAuthenticated = ok
	s.mu.Unlock()
	s.changed(context.Background())
}

// UpdateUserProfile writes the patch to the profile row and merges it into
// the cached profile once the gateway confirms. Without an active session
// the call is a silent no-op.
func (s *Store) UpdateUserProfile(ctx context.Context, p types.ProfilePatch) {
	observe("profile", "update")
	if p.IsZero() {
		return
	}
	uid, ok := s.sessionUser(ctx, "profile", "update")
	if !ok {
		return
	}
	if err := s.gw.UpdateProfile(ctx, uid, p); err != nil {
		s.drop("profile", "update", err)
		return
	}
	s.mu.Lock()
	if s.user != nil {
		p.ApplyTo(s.user)
	}
	s.mu.Unlock()
	s.changed(ctx)
}

// ------------------------------
// Guests
// ------------------------------

// AddGuest inserts the guest through the gateway and appends the confirmed
// row, carrying the gateway-assigned id and creation timestamp.
func (s *Store) AddGuest(ctx context.Context, g types.NewGuest) {
	observe("guest", "add")
	if err := g.Validate(); err != nil {
		s.drop("guest", "add", err)
		return
	}
	uid, ok := s.sessionUser(ctx, "guest", "add")
	if !ok {
		return
	}
	row, err := s.gw.InsertGuest(ctx, uid, g)
	if err != nil {
		s.drop("guest", "add", err)
		return
	}
	s.mu.Lock()
	s.guests = append(s.guests, *row)
	s.mu.Unlock()
	s.changed(ctx)
}

// UpdateGuest patches the guest row remotely, then merges the same patch
// into the matching in-memory guest. Unknown ids confirm remotely against
// nothing and change no local state.
func (s *Store) UpdateGuest(ctx context.Context, id string, p types.GuestPatch) {
	observe("guest", "update")
	if err := s.gw.UpdateGuest(ctx, id, p); err != nil {
		s.drop("guest", "update", err)
		return
	}
	s.mu.Lock()
	for i := range s.guests {
		if s.guests[i].ID == id {
			p.ApplyTo(&s.guests[i])
		}
	}
	s.mu.Unlock()
	s.changed(ctx)
}

// RemoveGuest deletes the guest row remotely, then drops it from memory.
func (s *Store) RemoveGuest(ctx context.Context, id string) {
	observe("guest", "remove")
	if err := s.gw.DeleteGuest(ctx, id); err != nil {
		s.drop("guest", "remove", err)
		return
	}
	s.mu.Lock()
	s.guests = deleteByID(s.guests, id, func(g types.Guest) string { return g.ID })
	s.mu.Unlock()
	s.changed(ctx)
}

// ------------------------------
// Shopping list
// ------------------------------

// AddShoppingItem inserts the item through the gateway and appends the
// confirmed row.
func (s *Store) AddShoppingItem(ctx context.Context, it types.NewShoppingItem) {
	observe("shopping_item", "add")
	if err := it.Validate(); err != nil {
		s.drop("shopping_item", "add", err)
		return
	}
	uid, ok := s.sessionUser(ctx, "shopping_item", "add")
	if !ok {
		return
	}
	row, err := s.gw.InsertShoppingItem(ctx, uid, it)
	if err != nil {
		s.drop("shopping_item", "add", err)
		return
	}
	s.mu.Lock()
	s.shoppingItems = append(s.shoppingItems, *row)
	s.mu.Unlock()
	s.changed(ctx)
}

// UpdateShoppingItem patches the item row remotely, then merges the patch
// into the matching in-memory item.
func (s *Store) UpdateShoppingItem(ctx context.Context, id string, p types.ShoppingItemPatch) {
	observe("shopping_item", "update")
	if err := s.gw.UpdateShoppingItem(ctx, id, p); err != nil {
		s.drop("shopping_item", "update", err)
		return
	}
	s.mu.Lock()
	for i := range s.shoppingItems {
		if s.shoppingItems[i].ID == id {
			p.ApplyTo(&s.shoppingItems[i])
		}
	}
	s.mu.Unlock()
	s.changed(ctx)
}

// RemoveShoppingItem deletes the item row remotely, then drops it from
// memory.
func (s *Store) RemoveShoppingItem(ctx context.Context, id string) {
	observe("shopping_item", "remove")
	if err := s.gw.DeleteShoppingItem(ctx, id); err != nil {
		s.drop("shopping_item", "remove", err)
		return
	}
	s.mu.Lock()
	s.shoppingItems = deleteByID(s.shoppingItems, id, func(it types.ShoppingItem) string { return it.ID })
	s.mu.Unlock()
	s.changed(ctx)
}

// ------------------------------
// Budget
// ------------------------------

// SetBudgetCategories replaces the budget rows wholesale. Local only: used
// to seed the table from a remote read, not to write one.
func (s *Store) SetBudgetCategories(cats []types.BudgetCategory) {
	cp := make([]types.BudgetCategory, len(cats))
	copy(cp, cats)
	s.mu.Lock()
	s.budgetCategories = cp
	s.mu.Unlock()
	s.changed(context.Background())
}

// UpdateBudgetCategory upserts the (user, category) row: a point query
// decides between insert (unset amounts default to zero) and update. The
// in-memory row is merged regardless of the write outcome, so a rejected
// write can leave memory ahead of the gateway until the next reload. The
// query and write are not atomic; concurrent upserts of the same category
// can both take the insert branch.
func (s *Store) UpdateBudgetCategory(ctx context.Context, category string, p types.BudgetPatch) {
	observe("budget_category", "update")
	uid, ok := s.sessionUser(ctx, "budget_category", "update")
	if !ok {
		return
	}

	_, err := s.gw.BudgetCategory(ctx, uid, category)
	switch {
	case err == nil:
		if uerr := s.gw.UpdateBudgetCategory(ctx, uid, category, p); uerr != nil {
			s.drop("budget_category", "update", uerr)
		}
	default:
		if !errors.Is(err, types.ErrNotFound) {
			s.drop("budget_category", "update", err)
		}
		row := types.BudgetCategory{
			Category: category,
			Planned:  p.PlannedOrZero(),
			Spent:    p.SpentOrZero(),
		}
		if ierr := s.gw.InsertBudgetCategory(ctx, uid, row); ierr != nil {
			s.drop("budget_category", "update", ierr)
		}
	}

	s.mu.Lock()
	for i := range s.budgetCategories {
		if s.budgetCategories[i].Category == category {
			p.ApplyTo(&s.budgetCategories[i])
		}
	}
	s.mu.Unlock()
	s.changed(ctx)
}

// ------------------------------
// Templates
// ------------------------------

// AddTemplate inserts the generated content through the gateway and appends
// the confirmed row.
func (s *Store) AddTemplate(ctx context.Context, nt types.NewTemplate) {
	observe("template", "add")
	if err := nt.Validate(); err != nil {
		s.drop("template", "add", err)
		return
	}
	uid, ok := s.sessionUser(ctx, "template", "add")
	if !ok {
		return
	}
	row, err := s.gw.InsertTemplate(ctx, uid, nt)
	if err != nil {
		s.drop("template", "add", err)
		return
	}
	s.mu.Lock()
	s.templates = append(s.templates, *row)
	s.mu.Unlock()
	s.changed(ctx)
}

// ------------------------------
// Chat
// ------------------------------

// AddChatMessage appends a transcript line. Purely local: the id and
// timestamp are generated in-process and nothing is written remotely.
func (s *Store) AddChatMessage(m types.NewChatMessage) {
	observe("chat_message", "add")
	msg := types.ChatMessage{
		ID:        s.newID(),
		Role:      m.Role,
		Content:   m.Content,
		Timestamp: s.now(),
	}
	s.mu.Lock()
	s.chatMessages = append(s.chatMessages, msg)
	s.mu.Unlock()
	s.changed(context.Background())
}

// ClearChat empties the transcript.
func (s *Store) ClearChat() {
	s.mu.Lock()
	s.chatMessages = nil
	s.mu.Unlock()
	s.changed(context.Background())
}

// SetShowPremiumPopup toggles the upsell popup flag.
func (s *Store) SetShowPremiumPopup(show bool) {
	s.mu.Lock()
	s.showPremiumPopup = show
	s.mu.Unlock()
	s.changed(context.Background())
}

// ------------------------------
// Logout
// ------------------------------

// Logout ends the remote session and resets local state. The reset happens
// even when the remote sign-out fails, so the process never stays signed in
// locally. Budget rows and the popup flag survive the reset; the former are
// only replaced by the next SetBudgetCategories.
func (s *Store) Logout(ctx context.Context) {
	observe("session", "logout")
	if err := s.gw.SignOut(ctx); err != nil {
		s.drop("session", "logout", err)
	}
	s.mu.Lock()
	s.user = nil
	s.isAuthenticated = false
	s.guests = nil
	s.shoppingItems = nil
	s.templates = nil
	s.chatMessages = nil
	s.mu.Unlock()
	s.changed(ctx)
}

// ------------------------------
// Accessors
// ------------------------------

// User returns a copy of the cached profile, or nil when signed out.
func (s *Store) User() *types.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	cp := *s.user
	return &cp
}

// IsAuthenticated reports the authentication flag.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAuthenticated
}

// Guests returns a copy of the guest list in insertion order.
func (s *Store) Guests() []types.Guest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Guest, len(s.guests))
	copy(out, s.guests)
	return out
}

// ShoppingItems returns a copy of the shopping list in insertion order.
func (s *Store) ShoppingItems() []types.ShoppingItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.ShoppingItem, len(s.shoppingItems))
	copy(out, s.shoppingItems)
	return out
}

// BudgetCategories returns a copy of the budget rows.
func (s *Store) BudgetCategories() []types.BudgetCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.BudgetCategory, len(s.budgetCategories))
	copy(out, s.budgetCategories)
	return out
}

// Templates returns a copy of the generated templates in insertion order.
func (s *Store) Templates() []types.Template {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Template, len(s.templates))
	copy(out, s.templates)
	return out
}

// ChatMessages returns a copy of the transcript in order.
func (s *Store) ChatMessages() []types.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.ChatMessage, len(s.chatMessages))
	copy(out, s.chatMessages)
	return out
}

// ShowPremiumPopup reports the upsell popup flag.
func (s *Store) ShowPremiumPopup() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.showPremiumPopup
}

// Subscribe registers fn to run after every state change and returns its
// unsubscribe function. Callbacks run synchronously on the mutating
// goroutine and must not call back into the store.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()
	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// ------------------------------
// Internals
// ------------------------------

// sessionUser resolves the active session's user id. A missing session
// absorbs the command.
func (s *Store) sessionUser(ctx context.Context, entity, op string) (string, bool) {
	sess, err := s.gw.Session(ctx)
	if err != nil {
		s.drop(entity, op, err)
		return "", false
	}
	if sess == nil {
		s.drop(entity, op, types.ErrNoSession)
		return "", false
	}
	return sess.UserID, true
}

// drop absorbs a rejected write: logged and counted, never surfaced.
func (s *Store) drop(entity, op string, err error) {
	s.log.Warn().Err(err).Str("entity", entity).Str("op", op).Msg("write rejected, state unchanged")
	absorbedTotal.WithLabelValues(entity, op).Inc()
}

// changed persists the snapshot partition and notifies subscribers. Runs
// after the state mutation, outside the state lock.
func (s *Store) changed(ctx context.Context) {
	if s.partition != nil {
		s.mu.RLock()
		var u *types.UserProfile
		if s.user != nil {
			cp := *s.user
			u = &cp
		}
		snap := storage.Snapshot{IsAuthenticated: s.isAuthenticated, User: u}
		s.mu.RUnlock()
		if err := s.partition.Save(ctx, snap); err != nil {
			s.log.Warn().Err(err).Msg("snapshot save failed")
		}
	}

	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func deleteByID[T any](rows []T, id string, key func(T) string) []T {
	out := rows[:0]
	for _, r := range rows {
		if key(r) != id {
			out = append(out, r)
		}
	}
	return out
}
