package festa

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/festaperfeita/festa/internal/storage"
)

// Option configures a Store during construction in New.
type Option func(*Store) error

// WithLogger replaces the store logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) error {
		s.log = l
		return nil
	}
}

// WithPartition attaches the snapshot partition the store persists the
// authentication flag and cached profile to.
func WithPartition(p *storage.SnapshotStore) Option {
	return func(s *Store) error {
		if p == nil {
			return fmt.Errorf("partition cannot be nil")
		}
		s.partition = p
		return nil
	}
}

// WithClock overrides the time source used for chat message timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) error {
		if now == nil {
			return fmt.Errorf("clock cannot be nil")
		}
		s.now = now
		return nil
	}
}

// WithIDSource overrides the local id generator used for chat messages.
func WithIDSource(newID func() string) Option {
	return func(s *Store) error {
		if newID == nil {
			return fmt.Errorf("id source cannot be nil")
		}
		s.newID = newID
		return nil
	}
}
