package domain

import (
	"time"

	"github.com/google/uuid"
)

// Approval is the privileged sign-off that finalizes a submission's review.
type Approval struct {
	ID           uuid.UUID `db:"id"`
	SubmissionID uuid.UUID `db:"submission_id"`
	ApproverID   uuid.UUID `db:"approver_id"`
	Comment      *string   `db:"comment"`
	CreatedAt    time.Time `db:"created_at"`
}

// NewApproval creates a new approval
func NewApproval(submissionID uuid.UUID, approver *Users, comment string) *Approval {
	a := &Approval{
		ID:           uuid.New(),
		SubmissionID: submissionID,
		ApproverID:   approver.ID,
		CreatedAt:    time.Now(),
	}
	if comment != "" {
		a.Comment = &comment
	}
	return a
}

type ApprovalTable struct {
	ID           string
	SubmissionID string
	ApproverID   string
	Comment      string
	CreatedAt    string
}

func GetApprovalTable() ApprovalTable {
	return ApprovalTable{
		ID:           "id",
		SubmissionID: "submission_id",
		ApproverID:   "approver_id",
		Comment:      "comment",
		CreatedAt:    "created_at",
	}
}

func (ApprovalTable) TableName() string {
	return "approvals"
}
