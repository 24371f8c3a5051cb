package gateway

import (
	"fmt"
	"net/http"

	"github.com/festaperfeita/festa/internal/types"
)

// statusError maps non-success HTTP statuses to the shared sentinel errors
// where a sentinel exists, and to a plain status error otherwise. 406 covers
// point queries issued with a single-object Accept header.
func statusError(op string, code int) error {
	switch code {
	case http.StatusNotFound, http.StatusNotAcceptable:
		return fmt.Errorf("%s: %w", op, types.ErrNotFound)
	case http.StatusConflict:
		return fmt.Errorf("%s: %w", op, types.ErrDuplicate)
	}
	return fmt.Errorf("%s: status %d", op, code)
}
