package reviewrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jmoiron/sqlx"

	"gitlab.com/exreview.net/internal/core/ports/primary"
	"gitlab.com/exreview.net/internal/core/ports/secondary"
	"gitlab.com/exreview.net/internal/domain"
	querybuilder "gitlab.com/exreview.net/internal/utils"
)

var _ secondary.ReviewPort = &ReviewRepository{}

// ReviewRepository implements the ReviewPort interface with PostgreSQL.
// It owns the nitpick, approval and argument tables.
type ReviewRepository struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

// NewReviewRepository creates a new PostgreSQL review repository
func NewReviewRepository(db *sqlx.DB, logger primary.Logger, schema string) *ReviewRepository {
	return &ReviewRepository{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

// SaveNitpick saves a nitpick to PostgreSQL
func (r *ReviewRepository) SaveNitpick(ctx context.Context, nitpick *domain.Nitpick) error {
	nitTbl := domain.GetNitpickTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Insert(
			nitTbl.ID, nitTbl.SubmissionID, nitTbl.NitpickerID,
			nitTbl.Comment, nitTbl.Approvable, nitTbl.CreatedAt,
		).
		Into(nitTbl.TableName()).
		Values(
			nitpick.ID, nitpick.SubmissionID, nitpick.NitpickerID,
			nitpick.Comment, nitpick.Approvable, nitpick.CreatedAt,
		).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Error("Failed to save nitpick", "error", err)
		return fmt.Errorf("failed to save nitpick: %w", err)
	}

	return nil
}

// GetNitpick retrieves a nitpick from PostgreSQL by ID
func (r *ReviewRepository) GetNitpick(ctx context.Context, nitID uuid.UUID) (*domain.Nitpick, error) {
	query := `
		SELECT id, submission_id, nitpicker_id, comment, approvable, created_at
		FROM nitpicks
		WHERE id = $1
	`

	var nitpick domain.Nitpick
	err := r.db.GetContext(ctx, &nitpick, query, nitID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get nitpick", "error", err)
		return nil, fmt.Errorf("failed to get nitpick: %w", err)
	}

	return &nitpick, nil
}

// GetNitpicksBySubmission retrieves a submission's nitpicks oldest first
func (r *ReviewRepository) GetNitpicksBySubmission(ctx context.Context, submissionID uuid.UUID) ([]*domain.Nitpick, error) {
	query := `
		SELECT id, submission_id, nitpicker_id, comment, approvable, created_at
		FROM nitpicks
		WHERE submission_id = $1
		ORDER BY created_at ASC
	`

	nitpicks := make([]*domain.Nitpick, 0)
	if err := r.db.SelectContext(ctx, &nitpicks, query, submissionID); err != nil {
		r.logger.Error("Failed to get nitpicks", "submissionId", submissionID, "error", err)
		return nil, fmt.Errorf("failed to get nitpicks: %w", err)
	}

	return nitpicks, nil
}

// UpdateNitpickComment replaces a nitpick's comment text
func (r *ReviewRepository) UpdateNitpickComment(ctx context.Context, nitID uuid.UUID, comment string) error {
	nitTbl := domain.GetNitpickTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Update(nitTbl.TableName(), querybuilder.UpdateData{
			nitTbl.Comment: comment,
		}).
		Where(fmt.Sprintf("%s = ?", nitTbl.ID), nitID).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to update nitpick comment", "nitId", nitID, "error", err)
		return fmt.Errorf("failed to update nitpick comment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("nitpick not found: %s", nitID)
	}

	return nil
}

// SaveApproval saves an approval to PostgreSQL
func (r *ReviewRepository) SaveApproval(ctx context.Context, approval *domain.Approval) error {
	approvalTbl := domain.GetApprovalTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Insert(
			approvalTbl.ID, approvalTbl.SubmissionID, approvalTbl.ApproverID,
			approvalTbl.Comment, approvalTbl.CreatedAt,
		).
		Into(approvalTbl.TableName()).
		Values(
			approval.ID, approval.SubmissionID, approval.ApproverID,
			approval.Comment, approval.CreatedAt,
		).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Error("Failed to save approval", "error", err)
		return fmt.Errorf("failed to save approval: %w", err)
	}

	return nil
}

// SaveArgument saves an argument to PostgreSQL
func (r *ReviewRepository) SaveArgument(ctx context.Context, argument *domain.Argument) error {
	argTbl := domain.GetArgumentTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Insert(
			argTbl.ID, argTbl.SubmissionID, argTbl.NitID,
			argTbl.UserID, argTbl.Body, argTbl.CreatedAt,
		).
		Into(argTbl.TableName()).
		Values(
			argument.ID, argument.SubmissionID, argument.NitID,
			argument.UserID, argument.Body, argument.CreatedAt,
		).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Error("Failed to save argument", "error", err)
		return fmt.Errorf("failed to save argument: %w", err)
	}

	return nil
}

// GetArgument retrieves an argument from PostgreSQL by ID
func (r *ReviewRepository) GetArgument(ctx context.Context, argumentID uuid.UUID) (*domain.Argument, error) {
	query := `
		SELECT id, submission_id, nit_id, user_id, body, created_at
		FROM arguments
		WHERE id = $1
	`

	var argument domain.Argument
	err := r.db.GetContext(ctx, &argument, query, argumentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get argument", "error", err)
		return nil, fmt.Errorf("failed to get argument: %w", err)
	}

	return &argument, nil
}

// GetArgumentsByNit retrieves a nitpick's argument thread oldest first
func (r *ReviewRepository) GetArgumentsByNit(ctx context.Context, nitID uuid.UUID) ([]*domain.Argument, error) {
	query := `
		SELECT id, submission_id, nit_id, user_id, body, created_at
		FROM arguments
		WHERE nit_id = $1
		ORDER BY created_at ASC
	`

	arguments := make([]*domain.Argument, 0)
	if err := r.db.SelectContext(ctx, &arguments, query, nitID); err != nil {
		r.logger.Error("Failed to get arguments", "nitId", nitID, "error", err)
		return nil, fmt.Errorf("failed to get arguments: %w", err)
	}

	return arguments, nil
}

// UpdateArgumentBody replaces an argument's body
func (r *ReviewRepository) UpdateArgumentBody(ctx context.Context, argumentID uuid.UUID, body string) error {
	argTbl := domain.GetArgumentTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Update(argTbl.TableName(), querybuilder.UpdateData{
			argTbl.Body: body,
		}).
		Where(fmt.Sprintf("%s = ?", argTbl.ID), argumentID).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to update argument body", "argumentId", argumentID, "error", err)
		return fmt.Errorf("failed to update argument body: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("argument not found: %s", argumentID)
	}

	return nil
}
