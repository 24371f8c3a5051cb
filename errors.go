package festa

import "github.com/festaperfeita/festa/internal/types"

// Sentinel errors surfaced by the session and funnel paths. Store commands
// never return these; they absorb failures internally.
var (
	ErrNotFound  = types.ErrNotFound
	ErrDuplicate = types.ErrDuplicate
	ErrNoSession = types.ErrNoSession
)
