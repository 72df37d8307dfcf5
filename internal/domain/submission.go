package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ReviewState represents where a submission sits in the review workflow
type ReviewState string

const (
	StatePending    ReviewState = "pending"
	StateNitpicked  ReviewState = "nitpicked"
	StateApprovable ReviewState = "approvable"
	StateApproved   ReviewState = "approved"
)

// rank orders states along the workflow. States only ever advance.
func (s ReviewState) rank() int {
	switch s {
	case StatePending:
		return 0
	case StateNitpicked:
		return 1
	case StateApprovable:
		return 2
	case StateApproved:
		return 3
	default:
		return -1
	}
}

func (s ReviewState) IsValid() bool {
	return s.rank() >= 0
}

// Before reports whether s comes strictly earlier in the workflow than other.
func (s ReviewState) Before(other ReviewState) bool {
	return s.rank() < other.rank()
}

// StatesBefore lists every state ranked strictly earlier than the given
// one, in workflow order. Used to make state updates forward-only.
func StatesBefore(to ReviewState) []ReviewState {
	all := []ReviewState{StatePending, StateNitpicked, StateApprovable, StateApproved}
	before := make([]ReviewState, 0, len(all))
	for _, s := range all {
		if s.Before(to) {
			before = append(before, s)
		}
	}
	return before
}

// Submission is a learner's solution under review. Submissions are created
// by the submit flow elsewhere; this service only looks them up and mutates
// their review state.
type Submission struct {
	ID            uuid.UUID   `db:"id"`
	UserID        uuid.UUID   `db:"user_id"`
	UserName      string      `db:"user_name"`
	Language      string      `db:"language"`
	Slug          string      `db:"slug"`
	State         ReviewState `db:"state"`
	WantsOpinions bool        `db:"wants_opinions"`
	CreatedAt     time.Time   `db:"created_at"`
	UpdatedAt     time.Time   `db:"updated_at"`
}

// Exercise is the capability key for permission lookups.
func (s *Submission) Exercise() string {
	return fmt.Sprintf("%s/%s", s.Language, s.Slug)
}

// Advance moves the submission forward to the given state. It reports
// whether anything changed; a target at or behind the current state is a
// no-op, never a regression.
func (s *Submission) Advance(to ReviewState) bool {
	if !s.State.Before(to) {
		return false
	}
	s.State = to
	return true
}

type SubmissionTable struct {
	ID            string
	UserID        string
	Language      string
	Slug          string
	State         string
	WantsOpinions string
	CreatedAt     string
	UpdatedAt     string
}

func GetSubmissionTable() SubmissionTable {
	return SubmissionTable{
		ID:            "id",
		UserID:        "user_id",
		Language:      "language",
		Slug:          "slug",
		State:         "state",
		WantsOpinions: "wants_opinions",
		CreatedAt:     "created_at",
		UpdatedAt:     "updated_at",
	}
}

func (SubmissionTable) TableName() string {
	return "submissions"
}
