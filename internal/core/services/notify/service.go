package notify

import (
	"context"

	"gitlab.com/exreview.net/internal/domain"
)

// IReviewNotifier translates committed workflow mutations into notification
// attempts. Every method is fire-and-forget: failures of the notification
// channel are logged and swallowed, never surfaced to the workflow caller.
// Callers must invoke it only after the triggering mutation is durable.
type IReviewNotifier interface {
	// NitpickRecorded fans out a nitpick event and mails the submission
	// owner unless the nitpicker is the owner
	NitpickRecorded(ctx context.Context, submission *domain.Submission, actor *domain.Users)

	// CommentPosted fans out an argument comment event; no direct mail
	CommentPosted(ctx context.Context, submission *domain.Submission, actor *domain.Users)

	// ApprovalRecorded notifies the instigator chain and mails the owner
	// unless the approver is the owner
	ApprovalRecorded(ctx context.Context, submission *domain.Submission, actor *domain.Users)
}
