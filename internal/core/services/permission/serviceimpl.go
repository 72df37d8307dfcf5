package permission

import (
	"context"
	"fmt"

	"gitlab.com/exreview.net/internal/core/ports/primary"
	"gitlab.com/exreview.net/internal/core/ports/secondary"
	"gitlab.com/exreview.net/internal/domain"
)

var _ IPermissionService = &PermissionService{}

// PermissionService implements the PermissionService interface
type PermissionService struct {
	capabilityPort secondary.CapabilityPort
	logger         primary.Logger
}

// NewPermissionService creates a new permission service
func NewPermissionService(capabilityPort secondary.CapabilityPort, logger primary.Logger) *PermissionService {
	return &PermissionService{
		capabilityPort: capabilityPort,
		logger:         logger,
	}
}

// IsGuest reports whether the user is the unauthenticated sentinel
func (s *PermissionService) IsGuest(user *domain.Users) bool {
	return user.Guest()
}

// Owns reports whether the user is the submission's owning user
func (s *PermissionService) Owns(user *domain.Users, submission *domain.Submission) bool {
	if user.Guest() || submission == nil {
		return false
	}
	return user.ID == submission.UserID
}

// MayNitpick reports whether the user holds reviewer capability for the exercise
func (s *PermissionService) MayNitpick(ctx context.Context, user *domain.Users, exercise string) (bool, error) {
	// guests hold no capabilities, skip the lookup
	if user.Guest() {
		return false, nil
	}

	ok, err := s.capabilityPort.MayNitpick(ctx, user.ID, exercise)
	if err != nil {
		return false, fmt.Errorf("failed to check nitpick capability: %w", err)
	}
	return ok, nil
}

// Unlocks reports whether the user holds approver capability for the exercise
func (s *PermissionService) Unlocks(ctx context.Context, user *domain.Users, exercise string) (bool, error) {
	if user.Guest() {
		return false, nil
	}

	ok, err := s.capabilityPort.Unlocks(ctx, user.ID, exercise)
	if err != nil {
		return false, fmt.Errorf("failed to check unlock capability: %w", err)
	}
	return ok, nil
}

// Locksmith reports whether the user may list submissions across owners
func (s *PermissionService) Locksmith(ctx context.Context, user *domain.Users) (bool, error) {
	if user.Guest() {
		return false, nil
	}

	ok, err := s.capabilityPort.Locksmith(ctx, user.ID)
	if err != nil {
		return false, fmt.Errorf("failed to check locksmith capability: %w", err)
	}
	return ok, nil
}
