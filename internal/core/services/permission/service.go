package permission

import (
	"context"

	"gitlab.com/exreview.net/internal/domain"
)

// IPermissionService answers "may this user act on this target" questions.
// Owns and IsGuest are pure; the capability predicates consult an external
// capability source.
type IPermissionService interface {
	// IsGuest reports whether the user is the unauthenticated sentinel
	IsGuest(user *domain.Users) bool

	// Owns reports whether the user is the submission's owning user
	Owns(user *domain.Users, submission *domain.Submission) bool

	// MayNitpick reports whether the user holds reviewer capability for the exercise
	MayNitpick(ctx context.Context, user *domain.Users, exercise string) (bool, error)

	// Unlocks reports whether the user holds approver capability for the exercise
	Unlocks(ctx context.Context, user *domain.Users, exercise string) (bool, error)

	// Locksmith reports whether the user may list submissions across owners
	Locksmith(ctx context.Context, user *domain.Users) (bool, error)
}
