package submissions

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/exreview.net/internal/core/ports/primary"
	"gitlab.com/exreview.net/internal/core/services/review"
	"gitlab.com/exreview.net/internal/domain"
	"gitlab.com/exreview.net/internal/global/ctxdata"
	"gitlab.com/exreview.net/internal/handlers/response"
	"gitlab.com/exreview.net/internal/static/errs"
)

// SubmissionHandler handles review workflow API requests
type SubmissionHandler struct {
	reviewService review.IReviewService
	logger        primary.Logger
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(reviewService review.IReviewService, logger primary.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		reviewService: reviewService,
		logger:        logger,
	}
}

// RegisterRoutes registers the API routes for SubmissionHandler
func (h *SubmissionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/submissions/{id}", h.View).Methods("GET")
	router.HandleFunc("/api/submissions/{id}/nitpick", h.Nitpick).Methods("POST")
	router.HandleFunc("/api/submissions/{id}/approve", h.Approve).Methods("POST")
	router.HandleFunc("/api/submissions/{id}/respond", h.Respond).Methods("POST")
	router.HandleFunc("/api/submissions/{id}/opinions/enable", h.EnableOpinions).Methods("POST")
	router.HandleFunc("/api/submissions/{id}/opinions/disable", h.DisableOpinions).Methods("POST")
	router.HandleFunc("/api/submissions/{id}/nits/{nitId}/argue", h.Argue).Methods("POST")
	router.HandleFunc("/api/submissions/{id}/nits/{nitId}/edit", h.NitForEdit).Methods("GET")
	router.HandleFunc("/api/submissions/{id}/nits/{nitId}/edit", h.EditNit).Methods("POST")
	router.HandleFunc("/api/submissions/{id}/nits/{nitId}/comments/{commentId}/edit", h.CommentForEdit).Methods("GET")
	router.HandleFunc("/api/submissions/{id}/nits/{nitId}/comments/{commentId}/edit", h.EditComment).Methods("POST")
	router.HandleFunc("/api/submissions/{language}/{assignment}", h.ListForAssignment).Methods("GET")
}

// View handles review page requests
func (h *SubmissionHandler) View(w http.ResponseWriter, r *http.Request) {
	submissionID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	actor := ctxdata.GetUser(r.Context())
	thread, err := h.reviewService.View(r.Context(), actor, submissionID)
	if err != nil {
		h.writeServiceError(w, r, submissionID, err)
		return
	}

	response.WriteSuccess(w, thread)
}

// Nitpick handles nitpick submission requests
func (h *SubmissionHandler) Nitpick(w http.ResponseWriter, r *http.Request) {
	submissionID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var req NitpickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	actor := ctxdata.GetUser(r.Context())
	outcome, err := h.reviewService.Nitpick(r.Context(), actor, submissionID, req.Comment, req.Approvable)
	if err != nil {
		h.writeServiceError(w, r, submissionID, err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, outcome)
}

// Approve handles approval submission requests
func (h *SubmissionHandler) Approve(w http.ResponseWriter, r *http.Request) {
	submissionID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var req ApproveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	actor := ctxdata.GetUser(r.Context())
	outcome, err := h.reviewService.Approve(r.Context(), actor, submissionID, req.Comment)
	if err != nil {
		h.writeServiceError(w, r, submissionID, err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, outcome)
}

// Respond handles the combined nitpick-or-approve requests
func (h *SubmissionHandler) Respond(w http.ResponseWriter, r *http.Request) {
	submissionID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var req RespondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	actor := ctxdata.GetUser(r.Context())
	outcome, err := h.reviewService.Respond(r.Context(), actor, submissionID, req.Comment, req.Approve, req.Approvable)
	if err != nil {
		h.writeServiceError(w, r, submissionID, err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, outcome)
}

// EnableOpinions handles requests to ask for more opinions
func (h *SubmissionHandler) EnableOpinions(w http.ResponseWriter, r *http.Request) {
	h.toggleOpinions(w, r, review.OpinionsEnable)
}

// DisableOpinions handles requests to withdraw the ask for opinions
func (h *SubmissionHandler) DisableOpinions(w http.ResponseWriter, r *http.Request) {
	h.toggleOpinions(w, r, review.OpinionsDisable)
}

func (h *SubmissionHandler) toggleOpinions(w http.ResponseWriter, r *http.Request, toggle review.OpinionToggle) {
	submissionID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	actor := ctxdata.GetUser(r.Context())
	outcome, err := h.reviewService.ToggleOpinions(r.Context(), actor, submissionID, toggle)
	if err != nil {
		h.writeServiceError(w, r, submissionID, err)
		return
	}

	response.WriteSuccess(w, outcome)
}

// Argue handles threaded reply requests
func (h *SubmissionHandler) Argue(w http.ResponseWriter, r *http.Request) {
	submissionID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	nitID, ok := h.pathID(w, r, "nitId")
	if !ok {
		return
	}

	var req ArgueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	actor := ctxdata.GetUser(r.Context())
	outcome, err := h.reviewService.Argue(r.Context(), actor, submissionID, nitID, req.Comment)
	if err != nil {
		h.writeServiceError(w, r, submissionID, err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, outcome)
}

// NitForEdit handles the nitpick edit view
func (h *SubmissionHandler) NitForEdit(w http.ResponseWriter, r *http.Request) {
	submissionID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	nitID, ok := h.pathID(w, r, "nitId")
	if !ok {
		return
	}

	actor := ctxdata.GetUser(r.Context())
	nitpick, err := h.reviewService.NitForEdit(r.Context(), actor, submissionID, nitID)
	if err != nil {
		h.writeServiceError(w, r, submissionID, err)
		return
	}

	response.WriteSuccess(w, nitpick)
}

// EditNit handles nitpick edit submissions
func (h *SubmissionHandler) EditNit(w http.ResponseWriter, r *http.Request) {
	submissionID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	nitID, ok := h.pathID(w, r, "nitId")
	if !ok {
		return
	}

	var req EditNitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	actor := ctxdata.GetUser(r.Context())
	outcome, err := h.reviewService.EditNit(r.Context(), actor, submissionID, nitID, req.Comment)
	if err != nil {
		h.writeServiceError(w, r, submissionID, err)
		return
	}

	response.WriteSuccess(w, outcome)
}

// CommentForEdit handles the argument comment edit view
func (h *SubmissionHandler) CommentForEdit(w http.ResponseWriter, r *http.Request) {
	submissionID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	nitID, ok := h.pathID(w, r, "nitId")
	if !ok {
		return
	}
	commentID, ok := h.pathID(w, r, "commentId")
	if !ok {
		return
	}

	actor := ctxdata.GetUser(r.Context())
	argument, err := h.reviewService.CommentForEdit(r.Context(), actor, submissionID, nitID, commentID)
	if err != nil {
		h.writeServiceError(w, r, submissionID, err)
		return
	}

	response.WriteSuccess(w, argument)
}

// EditComment handles argument comment edit submissions
func (h *SubmissionHandler) EditComment(w http.ResponseWriter, r *http.Request) {
	submissionID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	nitID, ok := h.pathID(w, r, "nitId")
	if !ok {
		return
	}
	commentID, ok := h.pathID(w, r, "commentId")
	if !ok {
		return
	}

	var req EditCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	actor := ctxdata.GetUser(r.Context())
	outcome, err := h.reviewService.EditComment(r.Context(), actor, submissionID, nitID, commentID, req.Body)
	if err != nil {
		h.writeServiceError(w, r, submissionID, err)
		return
	}

	response.WriteSuccess(w, outcome)
}

// ListForAssignment handles the locksmith listing requests
func (h *SubmissionHandler) ListForAssignment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	language := vars["language"]
	assignment := vars["assignment"]

	var states []domain.ReviewState
	for _, raw := range r.URL.Query()["state"] {
		state := domain.ReviewState(raw)
		if !state.IsValid() {
			http.Error(w, "Invalid state filter", http.StatusBadRequest)
			return
		}
		states = append(states, state)
	}

	actor := ctxdata.GetUser(r.Context())
	submissions, err := h.reviewService.ListForAssignment(r.Context(), actor, language, assignment, states)
	if err != nil {
		h.writeServiceError(w, r, uuid.Nil, err)
		return
	}

	response.WriteSuccess(w, map[string][]*domain.Submission{"submissions": submissions})
}

func (h *SubmissionHandler) pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	raw := mux.Vars(r)[name]
	id, err := uuid.Parse(raw)
	if err != nil {
		h.logger.Error("Invalid path id", "param", name, "value", raw)
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

// writeServiceError maps workflow errors onto the HTTP surface: guest
// rejections are 401, capability rejections 403, missing records 404, and
// authorship failures on the edit sub-flow redirect back to the submission.
func (h *SubmissionHandler) writeServiceError(w http.ResponseWriter, r *http.Request, submissionID uuid.UUID, err error) {
	switch {
	case errors.Is(err, errs.ErrGuestNitpick),
		errors.Is(err, errs.ErrGuestApprove),
		errors.Is(err, errs.ErrGuestArgue),
		errors.Is(err, errs.ErrGuestLogin):
		response.WriteError(w, response.ErrorMessage{Message: err.Error(), StatusCode: http.StatusUnauthorized})
	case errors.Is(err, errs.ErrNitpickForbidden),
		errors.Is(err, errs.ErrApproveForbidden),
		errors.Is(err, errs.ErrNotOwner),
		errors.Is(err, errs.ErrLocksmithForbidden):
		response.WriteError(w, response.ErrorMessage{Message: err.Error(), StatusCode: http.StatusForbidden})
	case errors.Is(err, errs.ErrSubmissionNotFound),
		errors.Is(err, errs.ErrNitpickNotFound),
		errors.Is(err, errs.ErrArgumentNotFound):
		response.WriteError(w, response.ErrorMessage{Message: err.Error(), StatusCode: http.StatusNotFound})
	case errors.Is(err, errs.ErrNotNitpickAuthor),
		errors.Is(err, errs.ErrNotCommentAuthor):
		response.Redirect(w, r, fmt.Sprintf("/api/submissions/%s", submissionID))
	default:
		h.logger.Error("Review operation failed", "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Internal error", StatusCode: http.StatusInternalServerError})
	}
}
