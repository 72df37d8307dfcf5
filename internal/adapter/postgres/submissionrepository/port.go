// package postgres contains PostgreSQL implementations of repositories
package submissionrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jmoiron/sqlx"

	"gitlab.com/exreview.net/internal/core/ports/primary"
	"gitlab.com/exreview.net/internal/core/ports/secondary"
	"gitlab.com/exreview.net/internal/domain"
)

var _ secondary.SubmissionPort = &SubmissionRepository{}

// SubmissionRepository implements the SubmissionPort interface with PostgreSQL
type SubmissionRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewSubmissionRepository creates a new PostgreSQL submission repository
func NewSubmissionRepository(db *sqlx.DB, logger primary.Logger) *SubmissionRepository {
	return &SubmissionRepository{
		db:     db,
		logger: logger,
	}
}

// GetSubmission retrieves a submission from PostgreSQL by ID
func (r *SubmissionRepository) GetSubmission(ctx context.Context, submissionID uuid.UUID) (*domain.Submission, error) {
	query := `
		SELECT s.id, s.user_id, u.user_name, s.language, s.slug, s.state,
			   s.wants_opinions, s.created_at, s.updated_at
		FROM submissions s
		INNER JOIN users u ON u.id = s.user_id
		WHERE s.id = $1
	`

	var submission domain.Submission
	err := r.db.GetContext(ctx, &submission, query, submissionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get submission", "error", err)
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	return &submission, nil
}

// AdvanceState moves a submission's review state forward. The WHERE clause
// restricts the update to rows still behind the target, so a stale or
// out-of-order event can never regress the state.
func (r *SubmissionRepository) AdvanceState(ctx context.Context, submissionID uuid.UUID, to domain.ReviewState) error {
	before := domain.StatesBefore(to)
	if len(before) == 0 {
		return nil
	}

	query := `
		UPDATE submissions
		SET state = ?, updated_at = ?
		WHERE id = ? AND state IN (?)
	`
	query, args, err := sqlx.In(query, to, time.Now(), submissionID, before)
	if err != nil {
		return fmt.Errorf("failed to build advance query: %w", err)
	}
	query = r.db.Rebind(query)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Error("Failed to advance submission state", "submissionId", submissionID, "error", err)
		return fmt.Errorf("failed to advance submission state: %w", err)
	}

	// zero rows affected means the submission is already at or past the
	// target, which is not an error
	return nil
}

// SetWantsOpinions flips the owner's request-for-opinions flag
func (r *SubmissionRepository) SetWantsOpinions(ctx context.Context, submissionID uuid.UUID, wants bool) error {
	query := `
		UPDATE submissions
		SET wants_opinions = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, wants, time.Now(), submissionID)
	if err != nil {
		r.logger.Error("Failed to set wants_opinions", "submissionId", submissionID, "error", err)
		return fmt.Errorf("failed to set wants_opinions: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Error checking rows affected", "error", err)
		return fmt.Errorf("error checking rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("submission not found: %s", submissionID)
	}

	return nil
}

// ListByAssignment retrieves submissions for a (language, slug) pair
// filtered by state, newest first, with the owning user's name attached
func (r *SubmissionRepository) ListByAssignment(ctx context.Context, language, slug string, states []domain.ReviewState) ([]*domain.Submission, error) {
	query := `
		SELECT s.id, s.user_id, u.user_name, s.language, s.slug, s.state,
			   s.wants_opinions, s.created_at, s.updated_at
		FROM submissions s
		INNER JOIN users u ON u.id = s.user_id
		WHERE s.language = ? AND s.slug = ? AND s.state IN (?)
		ORDER BY s.created_at DESC
	`
	query, args, err := sqlx.In(query, language, slug, states)
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}
	query = r.db.Rebind(query)

	submissions := make([]*domain.Submission, 0)
	if err := r.db.SelectContext(ctx, &submissions, query, args...); err != nil {
		r.logger.Error("Failed to list submissions", "language", language, "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	return submissions, nil
}
