package review_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gitlab.com/exreview.net/internal/domain"
)

type testLogger struct{}

func (testLogger) Info(msg string, args ...interface{})  {}
func (testLogger) Error(msg string, args ...interface{}) {}
func (testLogger) Debug(msg string, args ...interface{}) {}
func (testLogger) Warn(msg string, args ...interface{})  {}

type MockSubmissionPort struct {
	mock.Mock
}

func (m *MockSubmissionPort) GetSubmission(ctx context.Context, submissionID uuid.UUID) (*domain.Submission, error) {
	args := m.Called(ctx, submissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Submission), args.Error(1)
}

func (m *MockSubmissionPort) AdvanceState(ctx context.Context, submissionID uuid.UUID, to domain.ReviewState) error {
	args := m.Called(ctx, submissionID, to)
	return args.Error(0)
}

func (m *MockSubmissionPort) SetWantsOpinions(ctx context.Context, submissionID uuid.UUID, wants bool) error {
	args := m.Called(ctx, submissionID, wants)
	return args.Error(0)
}

func (m *MockSubmissionPort) ListByAssignment(ctx context.Context, language, slug string, states []domain.ReviewState) ([]*domain.Submission, error) {
	args := m.Called(ctx, language, slug, states)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Submission), args.Error(1)
}

type MockReviewPort struct {
	mock.Mock
}

func (m *MockReviewPort) SaveNitpick(ctx context.Context, nitpick *domain.Nitpick) error {
	args := m.Called(ctx, nitpick)
	return args.Error(0)
}

func (m *MockReviewPort) GetNitpick(ctx context.Context, nitID uuid.UUID) (*domain.Nitpick, error) {
	args := m.Called(ctx, nitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Nitpick), args.Error(1)
}

func (m *MockReviewPort) GetNitpicksBySubmission(ctx context.Context, submissionID uuid.UUID) ([]*domain.Nitpick, error) {
	args := m.Called(ctx, submissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Nitpick), args.Error(1)
}

func (m *MockReviewPort) UpdateNitpickComment(ctx context.Context, nitID uuid.UUID, comment string) error {
	args := m.Called(ctx, nitID, comment)
	return args.Error(0)
}

func (m *MockReviewPort) SaveApproval(ctx context.Context, approval *domain.Approval) error {
	args := m.Called(ctx, approval)
	return args.Error(0)
}

func (m *MockReviewPort) SaveArgument(ctx context.Context, argument *domain.Argument) error {
	args := m.Called(ctx, argument)
	return args.Error(0)
}

func (m *MockReviewPort) GetArgument(ctx context.Context, argumentID uuid.UUID) (*domain.Argument, error) {
	args := m.Called(ctx, argumentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Argument), args.Error(1)
}

func (m *MockReviewPort) GetArgumentsByNit(ctx context.Context, nitID uuid.UUID) ([]*domain.Argument, error) {
	args := m.Called(ctx, nitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Argument), args.Error(1)
}

func (m *MockReviewPort) UpdateArgumentBody(ctx context.Context, argumentID uuid.UUID, body string) error {
	args := m.Called(ctx, argumentID, body)
	return args.Error(0)
}

type MockCapabilityPort struct {
	mock.Mock
}

func (m *MockCapabilityPort) MayNitpick(ctx context.Context, userID uuid.UUID, exercise string) (bool, error) {
	args := m.Called(ctx, userID, exercise)
	return args.Bool(0), args.Error(1)
}

func (m *MockCapabilityPort) Unlocks(ctx context.Context, userID uuid.UUID, exercise string) (bool, error) {
	args := m.Called(ctx, userID, exercise)
	return args.Bool(0), args.Error(1)
}

func (m *MockCapabilityPort) Locksmith(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

// MockNotifier records dispatches so tests can assert on what fired after
// a mutation, without touching a real channel.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NitpickRecorded(ctx context.Context, submission *domain.Submission, actor *domain.Users) {
	m.Called(ctx, submission, actor)
}

func (m *MockNotifier) CommentPosted(ctx context.Context, submission *domain.Submission, actor *domain.Users) {
	m.Called(ctx, submission, actor)
}

func (m *MockNotifier) ApprovalRecorded(ctx context.Context, submission *domain.Submission, actor *domain.Users) {
	m.Called(ctx, submission, actor)
}
