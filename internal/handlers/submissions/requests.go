package submissions

// NitpickRequest represents a request to nitpick a submission
type NitpickRequest struct {
	Comment    string `json:"comment"`
	Approvable bool   `json:"approvable"`
}

// ApproveRequest represents a request to approve a submission
type ApproveRequest struct {
	Comment string `json:"comment"`
}

// RespondRequest carries the combined nitpick-or-approve form; the Approve
// flag picks the branch.
type RespondRequest struct {
	Comment    string `json:"comment"`
	Approve    bool   `json:"approve"`
	Approvable bool   `json:"approvable"`
}

// ArgueRequest represents a reply to a nitpick
type ArgueRequest struct {
	Comment string `json:"comment"`
}

// EditNitRequest represents an edit to a nitpick's comment
type EditNitRequest struct {
	Comment string `json:"comment"`
}

// EditCommentRequest represents an edit to an argument's body
type EditCommentRequest struct {
	Body string `json:"body"`
}
