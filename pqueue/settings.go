package pqueue

import (
	"math"

	"github.com/cockroachdb/errors"
)

// maxID is the largest insertion id the queue can assign. Ids are assigned
// in insertion order and used to break priority ties.
const maxID = math.MaxUint64

// ErrInvalidConfiguration is the cause of every settings verification
// failure.
var ErrInvalidConfiguration = errors.New("invalid queue configuration")

type Settings struct {
	// InitialCapacity is the number of slots allocated up front. The queue
	// never shrinks below it.
	InitialCapacity int
	// GrowthStep is the number of slots added when the backing arrays are
	// full, and removed again when usage falls far enough below capacity.
	GrowthStep int
}

func (s Settings) Verify() error {
	if s.InitialCapacity < 0 {
		return errors.Wrapf(ErrInvalidConfiguration,
			"initial capacity must be >= 0, got %d", s.InitialCapacity)
	}
	if s.GrowthStep <= 0 {
		return errors.Wrapf(ErrInvalidConfiguration,
			"growth step must be > 0, got %d", s.GrowthStep)
	}
	// The very first growth must not overflow the id space.
	if uint64(s.GrowthStep) > maxID-uint64(s.InitialCapacity) {
		return errors.Wrapf(ErrInvalidConfiguration,
			"growth step %d exceeds the id headroom above initial capacity %d",
			s.GrowthStep, s.InitialCapacity)
	}
	return nil
}

func DefaultSettings() Settings {
	return Settings{
		InitialCapacity: 30,
		GrowthStep:      10,
	}
}
