package review

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gitlab.com/exreview.net/internal/core/ports/primary"
	"gitlab.com/exreview.net/internal/core/ports/secondary"
	"gitlab.com/exreview.net/internal/core/services/notify"
	"gitlab.com/exreview.net/internal/core/services/permission"
	"gitlab.com/exreview.net/internal/domain"
	"gitlab.com/exreview.net/internal/static/errs"
)

var _ IReviewService = (*ReviewService)(nil)

const (
	msgNominated        = "This submission has been nominated for approval"
	msgOpinionsEnabled  = "Your request for more opinions has been made! You can disable this below when all is clear."
	msgOpinionsDisabled = "Your request for more opinions has been disabled!"
)

// ReviewService implements the ReviewService interface
type ReviewService struct {
	submissionRepo secondary.SubmissionPort
	reviewRepo     secondary.ReviewPort
	permissions    permission.IPermissionService
	notifier       notify.IReviewNotifier
	logger         primary.Logger
}

// NewReviewService creates a new review service
func NewReviewService(
	submissionRepo secondary.SubmissionPort,
	reviewRepo secondary.ReviewPort,
	permissions permission.IPermissionService,
	notifier notify.IReviewNotifier,
	logger primary.Logger,
) *ReviewService {
	return &ReviewService{
		submissionRepo: submissionRepo,
		reviewRepo:     reviewRepo,
		permissions:    permissions,
		notifier:       notifier,
		logger:         logger,
	}
}

// View loads the review page content for a submission
func (s *ReviewService) View(ctx context.Context, actor *domain.Users, submissionID uuid.UUID) (*ReviewThread, error) {
	if s.permissions.IsGuest(actor) {
		return nil, errs.ErrGuestLogin
	}

	submission, err := s.getSubmission(ctx, submissionID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.ownsOrMayNitpick(ctx, actor, submission)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, errs.ErrNitpickForbidden
	}

	nitpicks, err := s.reviewRepo.GetNitpicksBySubmission(ctx, submissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load nitpicks: %w", err)
	}

	nits := make([]*NitThread, 0, len(nitpicks))
	for _, nitpick := range nitpicks {
		arguments, err := s.reviewRepo.GetArgumentsByNit(ctx, nitpick.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load arguments: %w", err)
		}
		nits = append(nits, &NitThread{
			Nitpick:   nitpick,
			Arguments: arguments,
		})
	}

	return &ReviewThread{
		Submission: submission,
		Nits:       nits,
	}, nil
}

// Nitpick records a reviewer comment and advances the submission's state.
// The notification dispatch runs only after the nitpick row is durable.
func (s *ReviewService) Nitpick(ctx context.Context, actor *domain.Users, submissionID uuid.UUID, comment string, approvable bool) (*Outcome, error) {
	if s.permissions.IsGuest(actor) {
		return nil, errs.ErrGuestNitpick
	}

	submission, err := s.getSubmission(ctx, submissionID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.ownsOrMayNitpick(ctx, actor, submission)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, errs.ErrNitpickForbidden
	}

	nitpick := domain.NewNitpick(submissionID, actor, comment, approvable)
	if err := s.reviewRepo.SaveNitpick(ctx, nitpick); err != nil {
		s.logger.Error("Failed to save nitpick", "submissionId", submissionID, "error", err)
		return nil, fmt.Errorf("failed to save nitpick: %w", err)
	}

	target := domain.StateNitpicked
	if approvable {
		target = domain.StateApprovable
	}
	if err := s.submissionRepo.AdvanceState(ctx, submissionID, target); err != nil {
		return nil, fmt.Errorf("failed to advance submission state: %w", err)
	}

	s.notifier.NitpickRecorded(ctx, submission, actor)

	outcome := &Outcome{}
	if approvable {
		outcome.Message = msgNominated
	}
	return outcome, nil
}

// Approve records a privileged sign-off and moves the submission to approved
func (s *ReviewService) Approve(ctx context.Context, actor *domain.Users, submissionID uuid.UUID, comment string) (*Outcome, error) {
	if s.permissions.IsGuest(actor) {
		return nil, errs.ErrGuestApprove
	}

	submission, err := s.getSubmission(ctx, submissionID)
	if err != nil {
		return nil, err
	}

	// ownership never grants approval; only the unlock capability does
	unlocks, err := s.permissions.Unlocks(ctx, actor, submission.Exercise())
	if err != nil {
		return nil, err
	}
	if !unlocks {
		return nil, errs.ErrApproveForbidden
	}

	approval := domain.NewApproval(submissionID, actor, comment)
	if err := s.reviewRepo.SaveApproval(ctx, approval); err != nil {
		s.logger.Error("Failed to save approval", "submissionId", submissionID, "error", err)
		return nil, fmt.Errorf("failed to save approval: %w", err)
	}

	if err := s.submissionRepo.AdvanceState(ctx, submissionID, domain.StateApproved); err != nil {
		return nil, fmt.Errorf("failed to advance submission state: %w", err)
	}

	s.notifier.ApprovalRecorded(ctx, submission, actor)

	return &Outcome{}, nil
}

// Respond dispatches to Approve or Nitpick depending on the approve flag
func (s *ReviewService) Respond(ctx context.Context, actor *domain.Users, submissionID uuid.UUID, comment string, approve, approvable bool) (*Outcome, error) {
	if approve {
		return s.Approve(ctx, actor, submissionID, comment)
	}
	return s.Nitpick(ctx, actor, submissionID, comment, approvable)
}

// ToggleOpinions flips the owner's request-for-opinions flag. Ownership is
// the only requirement; the flag is togglable in any review state.
func (s *ReviewService) ToggleOpinions(ctx context.Context, actor *domain.Users, submissionID uuid.UUID, toggle OpinionToggle) (*Outcome, error) {
	if s.permissions.IsGuest(actor) {
		return nil, errs.ErrGuestLogin
	}

	submission, err := s.getSubmission(ctx, submissionID)
	if err != nil {
		return nil, err
	}

	if !s.permissions.Owns(actor, submission) {
		return nil, errs.ErrNotOwner
	}

	wants := toggle == OpinionsEnable
	if err := s.submissionRepo.SetWantsOpinions(ctx, submissionID, wants); err != nil {
		return nil, fmt.Errorf("failed to toggle opinions: %w", err)
	}

	if wants {
		return &Outcome{Message: msgOpinionsEnabled}, nil
	}
	return &Outcome{Message: msgOpinionsDisabled}, nil
}

// Argue posts a threaded reply to a nitpick. An empty comment aborts
// silently: the submission is still looked up so the caller can redirect,
// but nothing is written and nobody is notified.
func (s *ReviewService) Argue(ctx context.Context, actor *domain.Users, submissionID, nitID uuid.UUID, comment string) (*Outcome, error) {
	if s.permissions.IsGuest(actor) {
		return nil, errs.ErrGuestArgue
	}

	submission, err := s.getSubmission(ctx, submissionID)
	if err != nil {
		return nil, err
	}

	if comment == "" {
		return &Outcome{}, nil
	}

	nitpick, err := s.getNitpick(ctx, submission, nitID)
	if err != nil {
		return nil, err
	}

	argument := domain.NewArgument(submissionID, nitpick.ID, actor, comment)
	if err := s.reviewRepo.SaveArgument(ctx, argument); err != nil {
		s.logger.Error("Failed to save argument", "submissionId", submissionID, "nitId", nitID, "error", err)
		return nil, fmt.Errorf("failed to save argument: %w", err)
	}

	s.notifier.CommentPosted(ctx, submission, actor)

	return &Outcome{}, nil
}

// NitForEdit loads a nitpick for its author's edit view
func (s *ReviewService) NitForEdit(ctx context.Context, actor *domain.Users, submissionID, nitID uuid.UUID) (*domain.Nitpick, error) {
	submission, err := s.getSubmission(ctx, submissionID)
	if err != nil {
		return nil, err
	}

	nitpick, err := s.getNitpick(ctx, submission, nitID)
	if err != nil {
		return nil, err
	}

	if actor.Guest() || nitpick.NitpickerID != actor.ID {
		return nil, errs.ErrNotNitpickAuthor
	}

	return nitpick, nil
}

// EditNit replaces a nitpick's comment text; only its author may do so
func (s *ReviewService) EditNit(ctx context.Context, actor *domain.Users, submissionID, nitID uuid.UUID, comment string) (*Outcome, error) {
	nitpick, err := s.NitForEdit(ctx, actor, submissionID, nitID)
	if err != nil {
		return nil, err
	}

	if comment == nitpick.Comment {
		return &Outcome{}, nil
	}

	if err := s.reviewRepo.UpdateNitpickComment(ctx, nitID, comment); err != nil {
		return nil, fmt.Errorf("failed to edit nitpick: %w", err)
	}

	return &Outcome{}, nil
}

// CommentForEdit loads an argument comment for its author's edit view
func (s *ReviewService) CommentForEdit(ctx context.Context, actor *domain.Users, submissionID, nitID, commentID uuid.UUID) (*domain.Argument, error) {
	submission, err := s.getSubmission(ctx, submissionID)
	if err != nil {
		return nil, err
	}

	argument, err := s.reviewRepo.GetArgument(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get argument: %w", err)
	}
	if argument == nil || argument.SubmissionID != submission.ID || argument.NitID != nitID {
		return nil, errs.ErrArgumentNotFound
	}

	if actor.Guest() || argument.UserID != actor.ID {
		return nil, errs.ErrNotCommentAuthor
	}

	return argument, nil
}

// EditComment replaces an argument's body; only its author may do so. A
// body that trims to empty is dropped without error or mutation.
func (s *ReviewService) EditComment(ctx context.Context, actor *domain.Users, submissionID, nitID, commentID uuid.UUID, body string) (*Outcome, error) {
	argument, err := s.CommentForEdit(ctx, actor, submissionID, nitID, commentID)
	if err != nil {
		return nil, err
	}

	edited := strings.TrimSpace(body)
	if edited == "" || edited == argument.Body {
		return &Outcome{}, nil
	}

	if err := s.reviewRepo.UpdateArgumentBody(ctx, commentID, edited); err != nil {
		return nil, fmt.Errorf("failed to edit comment: %w", err)
	}

	return &Outcome{}, nil
}

// ListForAssignment lists submissions for a (language, slug) pair, newest
// first. Defaults to the pending and approved states when none are given.
func (s *ReviewService) ListForAssignment(ctx context.Context, actor *domain.Users, language, slug string, states []domain.ReviewState) ([]*domain.Submission, error) {
	if s.permissions.IsGuest(actor) {
		return nil, errs.ErrGuestLogin
	}

	locksmith, err := s.permissions.Locksmith(ctx, actor)
	if err != nil {
		return nil, err
	}
	if !locksmith {
		return nil, errs.ErrLocksmithForbidden
	}

	if len(states) == 0 {
		states = []domain.ReviewState{domain.StatePending, domain.StateApproved}
	}

	submissions, err := s.submissionRepo.ListByAssignment(ctx, language, slug, states)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	return submissions, nil
}

func (s *ReviewService) getSubmission(ctx context.Context, submissionID uuid.UUID) (*domain.Submission, error) {
	submission, err := s.submissionRepo.GetSubmission(ctx, submissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	if submission == nil {
		return nil, errs.ErrSubmissionNotFound
	}
	return submission, nil
}

func (s *ReviewService) getNitpick(ctx context.Context, submission *domain.Submission, nitID uuid.UUID) (*domain.Nitpick, error) {
	nitpick, err := s.reviewRepo.GetNitpick(ctx, nitID)
	if err != nil {
		return nil, fmt.Errorf("failed to get nitpick: %w", err)
	}
	if nitpick == nil || nitpick.SubmissionID != submission.ID {
		return nil, errs.ErrNitpickNotFound
	}
	return nitpick, nil
}

func (s *ReviewService) ownsOrMayNitpick(ctx context.Context, actor *domain.Users, submission *domain.Submission) (bool, error) {
	if s.permissions.Owns(actor, submission) {
		return true, nil
	}
	return s.permissions.MayNitpick(ctx, actor, submission.Exercise())
}
