package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/exreview.net/internal/domain"
)

type SubmissionPort interface {
	// GetSubmission retrieves a submission by ID, nil when absent
	GetSubmission(ctx context.Context, submissionID uuid.UUID) (*domain.Submission, error)

	// AdvanceState moves a submission's review state forward. Targets at or
	// behind the current state leave the row untouched.
	AdvanceState(ctx context.Context, submissionID uuid.UUID, to domain.ReviewState) error

	// SetWantsOpinions flips the owner's request-for-opinions flag
	SetWantsOpinions(ctx context.Context, submissionID uuid.UUID, wants bool) error

	// ListByAssignment retrieves submissions for a (language, slug) pair
	// filtered to the given states, newest first, with owner names attached
	ListByAssignment(ctx context.Context, language, slug string, states []domain.ReviewState) ([]*domain.Submission, error)
}
