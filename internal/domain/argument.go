package domain

import (
	"time"

	"github.com/google/uuid"
)

// Argument is a threaded reply to a specific nitpick. Each argument is
// addressable on its own so its author can edit the body later.
type Argument struct {
	ID           uuid.UUID `db:"id"`
	SubmissionID uuid.UUID `db:"submission_id"`
	NitID        uuid.UUID `db:"nit_id"`
	UserID       uuid.UUID `db:"user_id"`
	Body         string    `db:"body"`
	CreatedAt    time.Time `db:"created_at"`
}

// NewArgument creates a new argument
func NewArgument(submissionID, nitID uuid.UUID, user *Users, body string) *Argument {
	return &Argument{
		ID:           uuid.New(),
		SubmissionID: submissionID,
		NitID:        nitID,
		UserID:       user.ID,
		Body:         body,
		CreatedAt:    time.Now(),
	}
}

type ArgumentTable struct {
	ID           string
	SubmissionID string
	NitID        string
	UserID       string
	Body         string
	CreatedAt    string
}

func GetArgumentTable() ArgumentTable {
	return ArgumentTable{
		ID:           "id",
		SubmissionID: "submission_id",
		NitID:        "nit_id",
		UserID:       "user_id",
		Body:         "body",
		CreatedAt:    "created_at",
	}
}

func (ArgumentTable) TableName() string {
	return "arguments"
}
