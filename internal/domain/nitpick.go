package domain

import (
	"time"

	"github.com/google/uuid"
)

// Nitpick is a reviewer's comment on a submission. Approvable marks the
// nitpicker's opinion that the submission is ready for a privileged
// approval pass.
type Nitpick struct {
	ID           uuid.UUID `db:"id"`
	SubmissionID uuid.UUID `db:"submission_id"`
	NitpickerID  uuid.UUID `db:"nitpicker_id"`
	Comment      string    `db:"comment"`
	Approvable   bool      `db:"approvable"`
	CreatedAt    time.Time `db:"created_at"`
}

// NewNitpick creates a new nitpick
func NewNitpick(submissionID uuid.UUID, nitpicker *Users, comment string, approvable bool) *Nitpick {
	return &Nitpick{
		ID:           uuid.New(),
		SubmissionID: submissionID,
		NitpickerID:  nitpicker.ID,
		Comment:      comment,
		Approvable:   approvable,
		CreatedAt:    time.Now(),
	}
}

type NitpickTable struct {
	ID           string
	SubmissionID string
	NitpickerID  string
	Comment      string
	Approvable   string
	CreatedAt    string
}

func GetNitpickTable() NitpickTable {
	return NitpickTable{
		ID:           "id",
		SubmissionID: "submission_id",
		NitpickerID:  "nitpicker_id",
		Comment:      "comment",
		Approvable:   "approvable",
		CreatedAt:    "created_at",
	}
}

func (NitpickTable) TableName() string {
	return "nitpicks"
}
