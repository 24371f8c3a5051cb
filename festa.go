// Package festa is the client-side application core of Festa Perfeita: an
// in-memory entity store whose collection mutations are written through a
// remote gateway first and admitted to local state only after the gateway
// confirms them. Rejected writes leave state untouched; callers observe the
// outcome through state, not through returned errors.
package festa

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/festaperfeita/festa/internal/gateway"
	"github.com/festaperfeita/festa/internal/storage"
	"github.com/festaperfeita/festa/internal/types"
)

// Store holds the full application state for one user session. All methods
// are safe for concurrent use.
type Store struct {
	gw        gateway.Gateway
	partition *storage.SnapshotStore
	log       zerolog.Logger
	now       func() time.Time
	newID     func() string

	mu               sync.RWMutex
	user             *types.UserProfile
	isAuthenticated  bool
	guests           []types.Guest
	shoppingItems    []types.ShoppingItem
	budgetCategories []types.BudgetCategory
	templates        []types.Template
	chatMessages     []types.ChatMessage
	showPremiumPopup bool

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

// New constructs a Store backed by the given gateway. The budget starts with
// the fixed category set, all zeroed.
func New(gw gateway.Gateway, opts ...Option) (*Store, error) {
	if gw == nil {
		panic("gateway cannot be nil")
	}

	s := &Store{
		gw:               gw,
		log:              zerolog.Nop(),
		now:              time.Now,
		newID:            randomID,
		budgetCategories: types.DefaultBudgetCategories(),
		subs:             map[int]func(){},
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// randomID returns a 13-character base-36 string. Used only for chat
// messages, which never leave the process; collection ids come from the
// gateway.
func randomID() string {
	var b [13]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	for i := range b {
		b[i] = idAlphabet[int(b[i])%len(idAlphabet)]
	}
	return string(b[:])
}
