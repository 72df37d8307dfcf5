package review

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/exreview.net/internal/domain"
)

// OpinionToggle selects which way the owner flips the wants-opinions flag
type OpinionToggle string

const (
	OpinionsEnable  OpinionToggle = "enable"
	OpinionsDisable OpinionToggle = "disable"
)

// Outcome is what a successful workflow operation tells the caller. The
// surrounding interface layer surfaces Message to the user when present.
type Outcome struct {
	Message string `json:"message,omitempty"`
}

// NitThread is a nitpick together with its argument replies
type NitThread struct {
	Nitpick   *domain.Nitpick    `json:"nitpick"`
	Arguments []*domain.Argument `json:"arguments"`
}

// ReviewThread is the full review page content for one submission
type ReviewThread struct {
	Submission *domain.Submission `json:"submission"`
	Nits       []*NitThread       `json:"nits"`
}

// IReviewService is the review workflow engine: it owns submission review
// state transitions, the nitpick/argument thread, and triggers notification
// dispatch after each committed mutation.
type IReviewService interface {
	// View loads the review page content; owner or reviewer-capable only
	View(ctx context.Context, actor *domain.Users, submissionID uuid.UUID) (*ReviewThread, error)

	// Nitpick records a reviewer comment and advances the submission's state
	Nitpick(ctx context.Context, actor *domain.Users, submissionID uuid.UUID, comment string, approvable bool) (*Outcome, error)

	// Approve records a privileged sign-off and moves the submission to approved
	Approve(ctx context.Context, actor *domain.Users, submissionID uuid.UUID, comment string) (*Outcome, error)

	// Respond dispatches to Approve or Nitpick depending on the approve flag
	Respond(ctx context.Context, actor *domain.Users, submissionID uuid.UUID, comment string, approve, approvable bool) (*Outcome, error)

	// ToggleOpinions flips the owner's request-for-opinions flag
	ToggleOpinions(ctx context.Context, actor *domain.Users, submissionID uuid.UUID, toggle OpinionToggle) (*Outcome, error)

	// Argue posts a threaded reply to a nitpick; an empty comment is a no-op
	Argue(ctx context.Context, actor *domain.Users, submissionID, nitID uuid.UUID, comment string) (*Outcome, error)

	// NitForEdit loads a nitpick for its author's edit view
	NitForEdit(ctx context.Context, actor *domain.Users, submissionID, nitID uuid.UUID) (*domain.Nitpick, error)

	// EditNit replaces a nitpick's comment; author only
	EditNit(ctx context.Context, actor *domain.Users, submissionID, nitID uuid.UUID, comment string) (*Outcome, error)

	// CommentForEdit loads an argument comment for its author's edit view
	CommentForEdit(ctx context.Context, actor *domain.Users, submissionID, nitID, commentID uuid.UUID) (*domain.Argument, error)

	// EditComment replaces an argument's body; author only, blank bodies dropped
	EditComment(ctx context.Context, actor *domain.Users, submissionID, nitID, commentID uuid.UUID, body string) (*Outcome, error)

	// ListForAssignment lists submissions for a (language, slug) pair;
	// locksmith-capable only
	ListForAssignment(ctx context.Context, actor *domain.Users, language, slug string, states []domain.ReviewState) ([]*domain.Submission, error)
}
