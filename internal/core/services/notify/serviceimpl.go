package notify

import (
	"context"
	"time"

	"gitlab.com/exreview.net/internal/core/ports/primary"
	"gitlab.com/exreview.net/internal/core/ports/secondary"
	"gitlab.com/exreview.net/internal/domain"
)

var _ IReviewNotifier = &ReviewNotifier{}

// ReviewNotifier implements the ReviewNotifier interface
type ReviewNotifier struct {
	notificationPort secondary.NotificationPort
	mailPort         secondary.MailPort
	siteRoot         string
	logger           primary.Logger
}

// NewReviewNotifier creates a new review notifier
func NewReviewNotifier(
	notificationPort secondary.NotificationPort,
	mailPort secondary.MailPort,
	siteRoot string,
	logger primary.Logger,
) *ReviewNotifier {
	return &ReviewNotifier{
		notificationPort: notificationPort,
		mailPort:         mailPort,
		siteRoot:         siteRoot,
		logger:           logger,
	}
}

// NitpickRecorded fans out a nitpick event and mails the submission owner
func (s *ReviewNotifier) NitpickRecorded(ctx context.Context, submission *domain.Submission, actor *domain.Users) {
	event := s.newEvent(submission, actor, domain.NotificationNitpick)
	if err := s.notificationPort.Everyone(ctx, event); err != nil {
		s.logger.Error("Failed to notify everyone of nitpick", "submissionId", submission.ID, "error", err)
	}

	// no self-notification mail when the owner nitpicks their own work
	if actor.ID == submission.UserID {
		return
	}

	msg := s.newMailMessage(submission, actor, domain.NotificationNitpick)
	if err := s.mailPort.ShipNitpickMessage(ctx, msg); err != nil {
		s.logger.Error("Failed to send email", "submissionId", submission.ID, "error", err)
	}
}

// CommentPosted fans out an argument comment event
func (s *ReviewNotifier) CommentPosted(ctx context.Context, submission *domain.Submission, actor *domain.Users) {
	event := s.newEvent(submission, actor, domain.NotificationComment)
	if err := s.notificationPort.Everyone(ctx, event); err != nil {
		s.logger.Error("Failed to notify everyone of comment", "submissionId", submission.ID, "error", err)
	}
}

// ApprovalRecorded notifies the instigator chain and mails the owner
func (s *ReviewNotifier) ApprovalRecorded(ctx context.Context, submission *domain.Submission, actor *domain.Users) {
	event := s.newEvent(submission, actor, domain.NotificationApproval)
	if err := s.notificationPort.Source(ctx, event); err != nil {
		s.logger.Error("Failed to notify source of approval", "submissionId", submission.ID, "error", err)
	}

	if actor.ID == submission.UserID {
		return
	}

	msg := s.newMailMessage(submission, actor, domain.NotificationApproval)
	if err := s.mailPort.ShipApprovalMessage(ctx, msg); err != nil {
		s.logger.Error("Failed to send email", "submissionId", submission.ID, "error", err)
	}
}

func (s *ReviewNotifier) newEvent(submission *domain.Submission, actor *domain.Users, kind domain.NotificationKind) *domain.ReviewEvent {
	return &domain.ReviewEvent{
		SubmissionID: submission.ID,
		Exercise:     submission.Exercise(),
		ActorID:      actor.ID,
		ActorName:    actor.UserName,
		Kind:         kind,
		OccurredAt:   time.Now(),
	}
}

func (s *ReviewNotifier) newMailMessage(submission *domain.Submission, actor *domain.Users, kind domain.NotificationKind) *domain.MailMessage {
	return &domain.MailMessage{
		Kind:         kind,
		InstigatorID: actor.ID,
		Instigator:   actor.UserName,
		RecipientID:  submission.UserID,
		SubmissionID: submission.ID,
		SiteRoot:     s.siteRoot,
	}
}
