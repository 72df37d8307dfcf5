package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/exreview.net/internal/domain"
)

type ReviewPort interface {
	// SaveNitpick saves a nitpick
	SaveNitpick(ctx context.Context, nitpick *domain.Nitpick) error

	// GetNitpick retrieves a nitpick by ID, nil when absent
	GetNitpick(ctx context.Context, nitID uuid.UUID) (*domain.Nitpick, error)

	// GetNitpicksBySubmission retrieves a submission's nitpicks oldest first
	GetNitpicksBySubmission(ctx context.Context, submissionID uuid.UUID) ([]*domain.Nitpick, error)

	// UpdateNitpickComment replaces a nitpick's comment text
	UpdateNitpickComment(ctx context.Context, nitID uuid.UUID, comment string) error

	// SaveApproval saves an approval
	SaveApproval(ctx context.Context, approval *domain.Approval) error

	// SaveArgument saves an argument
	SaveArgument(ctx context.Context, argument *domain.Argument) error

	// GetArgument retrieves an argument by ID, nil when absent
	GetArgument(ctx context.Context, argumentID uuid.UUID) (*domain.Argument, error)

	// GetArgumentsByNit retrieves a nitpick's argument thread oldest first
	GetArgumentsByNit(ctx context.Context, nitID uuid.UUID) ([]*domain.Argument, error)

	// UpdateArgumentBody replaces an argument's body
	UpdateArgumentBody(ctx context.Context, argumentID uuid.UUID, body string) error
}
