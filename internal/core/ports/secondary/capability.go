package secondary

import (
	"context"

	"github.com/google/uuid"
)

// CapabilityPort answers opaque capability lookups. The authorization
// source behind it (ACL table, role store) is swappable.
type CapabilityPort interface {
	// MayNitpick reports whether the user holds reviewer capability for the exercise
	MayNitpick(ctx context.Context, userID uuid.UUID, exercise string) (bool, error)

	// Unlocks reports whether the user holds approver capability for the exercise
	Unlocks(ctx context.Context, userID uuid.UUID, exercise string) (bool, error)

	// Locksmith reports whether the user may list submissions across owners
	Locksmith(ctx context.Context, userID uuid.UUID) (bool, error)
}
