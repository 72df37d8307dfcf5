package secondary

import (
	"context"

	"gitlab.com/exreview.net/internal/domain"
)

// NotificationPort fans review events out to the notification channel.
type NotificationPort interface {
	// Everyone notifies everyone on the submission's thread
	Everyone(ctx context.Context, event *domain.ReviewEvent) error

	// Source notifies the submission's instigator chain
	Source(ctx context.Context, event *domain.ReviewEvent) error
}

// MailPort ships direct transactional emails. Implementations deliver
// best-effort, at most once; callers decide what to do with failures.
type MailPort interface {
	ShipNitpickMessage(ctx context.Context, msg *domain.MailMessage) error
	ShipApprovalMessage(ctx context.Context, msg *domain.MailMessage) error
}
