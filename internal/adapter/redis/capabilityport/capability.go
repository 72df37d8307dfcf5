package capabilityport

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"gitlab.com/exreview.net/internal/core/ports/primary"
	"gitlab.com/exreview.net/internal/core/ports/secondary"
)

const (
	nitpickKeyPrefix = "acl:nitpick:"
	unlockKeyPrefix  = "acl:unlock:"
	locksmithKey     = "acl:locksmith"
)

var _ secondary.CapabilityPort = &CapabilityRepository{}

// CapabilityRepository implements the CapabilityPort interface with Redis.
// Capabilities are plain sets of user IDs, keyed per exercise for the
// reviewer and approver capabilities and globally for locksmith.
type CapabilityRepository struct {
	redisClient *redis.Client
	logger      primary.Logger
}

// NewCapabilityRepository creates a new Redis capability repository
func NewCapabilityRepository(redisClient *redis.Client, logger primary.Logger) *CapabilityRepository {
	return &CapabilityRepository{
		redisClient: redisClient,
		logger:      logger,
	}
}

// MayNitpick reports whether the user holds reviewer capability for the exercise
func (r *CapabilityRepository) MayNitpick(ctx context.Context, userID uuid.UUID, exercise string) (bool, error) {
	return r.isMember(ctx, fmt.Sprintf("%s%s", nitpickKeyPrefix, exercise), userID)
}

// Unlocks reports whether the user holds approver capability for the exercise
func (r *CapabilityRepository) Unlocks(ctx context.Context, userID uuid.UUID, exercise string) (bool, error) {
	return r.isMember(ctx, fmt.Sprintf("%s%s", unlockKeyPrefix, exercise), userID)
}

// Locksmith reports whether the user may list submissions across owners
func (r *CapabilityRepository) Locksmith(ctx context.Context, userID uuid.UUID) (bool, error) {
	return r.isMember(ctx, locksmithKey, userID)
}

func (r *CapabilityRepository) isMember(ctx context.Context, key string, userID uuid.UUID) (bool, error) {
	ok, err := r.redisClient.SIsMember(ctx, key, userID.String()).Result()
	if err != nil {
		r.logger.Error("Failed to check capability", "key", key, "userId", userID, "error", err)
		return false, fmt.Errorf("failed to check capability: %w", err)
	}
	return ok, nil
}
