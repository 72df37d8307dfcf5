package errs

import "errors"

// Guest rejections. Each mutating operation carries its own user-facing
// message, so the surrounding interface layer can surface them verbatim.
var (
	ErrGuestNitpick = errors.New("You're not logged in right now. Go back, copy the text, log in, and try again. Sorry about that.")
	ErrGuestApprove = errors.New("You're not logged in right now, so I can't let you do that. Sorry.")
	ErrGuestArgue   = errors.New("We may have just redeployed, which logged you out. Sorry about that! Hit the back button and save the comment you just wrote, and try again after logging in.")
	ErrGuestLogin   = errors.New("Please log in first.")
)

// Capability rejections
var (
	ErrNitpickForbidden   = errors.New("You do not have permission to nitpick that exercise.")
	ErrApproveForbidden   = errors.New("You do not have permission to approve that exercise.")
	ErrNotOwner           = errors.New("You do not have permission to do that.")
	ErrLocksmithForbidden = errors.New("Sorry, need to know only.")
)

// Authorship rejections on the edit sub-flow. These redirect back to the
// submission rather than erroring outright.
var (
	ErrNotNitpickAuthor = errors.New("only the nitpick's author may edit it")
	ErrNotCommentAuthor = errors.New("only the comment's author may edit it")
)

var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrNitpickNotFound    = errors.New("nitpick not found")
	ErrArgumentNotFound   = errors.New("argument not found")
)
