package submissions_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gitlab.com/exreview.net/internal/core/services/review"
	"gitlab.com/exreview.net/internal/domain"
	"gitlab.com/exreview.net/internal/global/ctxdata"
	"gitlab.com/exreview.net/internal/handlers/submissions"
	"gitlab.com/exreview.net/internal/static/errs"
)

type testLogger struct{}

func (testLogger) Info(msg string, args ...interface{})  {}
func (testLogger) Error(msg string, args ...interface{}) {}
func (testLogger) Debug(msg string, args ...interface{}) {}
func (testLogger) Warn(msg string, args ...interface{})  {}

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) View(ctx context.Context, actor *domain.Users, submissionID uuid.UUID) (*review.ReviewThread, error) {
	args := m.Called(ctx, actor, submissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.ReviewThread), args.Error(1)
}

func (m *MockReviewService) Nitpick(ctx context.Context, actor *domain.Users, submissionID uuid.UUID, comment string, approvable bool) (*review.Outcome, error) {
	args := m.Called(ctx, actor, submissionID, comment, approvable)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Outcome), args.Error(1)
}

func (m *MockReviewService) Approve(ctx context.Context, actor *domain.Users, submissionID uuid.UUID, comment string) (*review.Outcome, error) {
	args := m.Called(ctx, actor, submissionID, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Outcome), args.Error(1)
}

func (m *MockReviewService) Respond(ctx context.Context, actor *domain.Users, submissionID uuid.UUID, comment string, approve, approvable bool) (*review.Outcome, error) {
	args := m.Called(ctx, actor, submissionID, comment, approve, approvable)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Outcome), args.Error(1)
}

func (m *MockReviewService) ToggleOpinions(ctx context.Context, actor *domain.Users, submissionID uuid.UUID, toggle review.OpinionToggle) (*review.Outcome, error) {
	args := m.Called(ctx, actor, submissionID, toggle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Outcome), args.Error(1)
}

func (m *MockReviewService) Argue(ctx context.Context, actor *domain.Users, submissionID, nitID uuid.UUID, comment string) (*review.Outcome, error) {
	args := m.Called(ctx, actor, submissionID, nitID, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Outcome), args.Error(1)
}

func (m *MockReviewService) NitForEdit(ctx context.Context, actor *domain.Users, submissionID, nitID uuid.UUID) (*domain.Nitpick, error) {
	args := m.Called(ctx, actor, submissionID, nitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Nitpick), args.Error(1)
}

func (m *MockReviewService) EditNit(ctx context.Context, actor *domain.Users, submissionID, nitID uuid.UUID, comment string) (*review.Outcome, error) {
	args := m.Called(ctx, actor, submissionID, nitID, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Outcome), args.Error(1)
}

func (m *MockReviewService) CommentForEdit(ctx context.Context, actor *domain.Users, submissionID, nitID, commentID uuid.UUID) (*domain.Argument, error) {
	args := m.Called(ctx, actor, submissionID, nitID, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Argument), args.Error(1)
}

func (m *MockReviewService) EditComment(ctx context.Context, actor *domain.Users, submissionID, nitID, commentID uuid.UUID, body string) (*review.Outcome, error) {
	args := m.Called(ctx, actor, submissionID, nitID, commentID, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Outcome), args.Error(1)
}

func (m *MockReviewService) ListForAssignment(ctx context.Context, actor *domain.Users, language, slug string, states []domain.ReviewState) ([]*domain.Submission, error) {
	args := m.Called(ctx, actor, language, slug, states)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Submission), args.Error(1)
}

func newRouter(service *MockReviewService, actor *domain.Users) *mux.Router {
	router := mux.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(ctxdata.WithUser(r.Context(), actor)))
		})
	})
	submissions.NewSubmissionHandler(service, testLogger{}).RegisterRoutes(router)
	return router
}

func doJSON(router *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestNitpickEndpoint(t *testing.T) {
	actor := &domain.Users{ID: uuid.New(), UserName: "fred"}
	submissionID := uuid.New()
	path := fmt.Sprintf("/api/submissions/%s/nitpick", submissionID)

	t.Run("created with outcome message", func(t *testing.T) {
		service := new(MockReviewService)
		service.On("Nitpick", mock.Anything, actor, submissionID, "looks good", true).
			Return(&review.Outcome{Message: "This submission has been nominated for approval"}, nil)

		rec := doJSON(newRouter(service, actor), "POST", path, `{"comment":"looks good","approvable":true}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var outcome review.Outcome
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &outcome))
		assert.Equal(t, "This submission has been nominated for approval", outcome.Message)
	})

	t.Run("guest gets 401 with the workflow message", func(t *testing.T) {
		service := new(MockReviewService)
		guest := domain.GuestUser()
		service.On("Nitpick", mock.Anything, guest, submissionID, "hi", false).
			Return(nil, errs.ErrGuestNitpick)

		rec := doJSON(newRouter(service, guest), "POST", path, `{"comment":"hi"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "You're not logged in right now")
	})

	t.Run("forbidden gets 403", func(t *testing.T) {
		service := new(MockReviewService)
		service.On("Nitpick", mock.Anything, actor, submissionID, "hi", false).
			Return(nil, errs.ErrNitpickForbidden)

		rec := doJSON(newRouter(service, actor), "POST", path, `{"comment":"hi"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unknown submission gets 404", func(t *testing.T) {
		service := new(MockReviewService)
		service.On("Nitpick", mock.Anything, actor, submissionID, "hi", false).
			Return(nil, errs.ErrSubmissionNotFound)

		rec := doJSON(newRouter(service, actor), "POST", path, `{"comment":"hi"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id gets 400 without touching the service", func(t *testing.T) {
		service := new(MockReviewService)

		rec := doJSON(newRouter(service, actor), "POST", "/api/submissions/not-a-uuid/nitpick", `{"comment":"hi"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		service.AssertNotCalled(t, "Nitpick", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("bad json gets 400", func(t *testing.T) {
		service := new(MockReviewService)

		rec := doJSON(newRouter(service, actor), "POST", path, `{"comment":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestEditEndpointsRedirectOnAuthorship(t *testing.T) {
	actor := &domain.Users{ID: uuid.New(), UserName: "alice"}
	submissionID := uuid.New()
	nitID := uuid.New()

	t.Run("edit nit by non-author redirects to the submission", func(t *testing.T) {
		service := new(MockReviewService)
		service.On("EditNit", mock.Anything, actor, submissionID, nitID, "reworded").
			Return(nil, errs.ErrNotNitpickAuthor)

		path := fmt.Sprintf("/api/submissions/%s/nits/%s/edit", submissionID, nitID)
		rec := doJSON(newRouter(service, actor), "POST", path, `{"comment":"reworded"}`)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, fmt.Sprintf("/api/submissions/%s", submissionID), rec.Header().Get("Location"))
	})

	t.Run("edit comment by non-author redirects to the submission", func(t *testing.T) {
		service := new(MockReviewService)
		commentID := uuid.New()
		service.On("EditComment", mock.Anything, actor, submissionID, nitID, commentID, "reworded").
			Return(nil, errs.ErrNotCommentAuthor)

		path := fmt.Sprintf("/api/submissions/%s/nits/%s/comments/%s/edit", submissionID, nitID, commentID)
		rec := doJSON(newRouter(service, actor), "POST", path, `{"body":"reworded"}`)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, fmt.Sprintf("/api/submissions/%s", submissionID), rec.Header().Get("Location"))
	})
}

func TestOpinionEndpoints(t *testing.T) {
	actor := &domain.Users{ID: uuid.New(), UserName: "alice"}
	submissionID := uuid.New()

	t.Run("enable", func(t *testing.T) {
		service := new(MockReviewService)
		service.On("ToggleOpinions", mock.Anything, actor, submissionID, review.OpinionsEnable).
			Return(&review.Outcome{Message: "Your request for more opinions has been made! You can disable this below when all is clear."}, nil)

		path := fmt.Sprintf("/api/submissions/%s/opinions/enable", submissionID)
		rec := doJSON(newRouter(service, actor), "POST", path, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "request for more opinions has been made")
	})

	t.Run("disable by non-owner gets 403", func(t *testing.T) {
		service := new(MockReviewService)
		service.On("ToggleOpinions", mock.Anything, actor, submissionID, review.OpinionsDisable).
			Return(nil, errs.ErrNotOwner)

		path := fmt.Sprintf("/api/submissions/%s/opinions/disable", submissionID)
		rec := doJSON(newRouter(service, actor), "POST", path, "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestListEndpoint(t *testing.T) {
	actor := &domain.Users{ID: uuid.New(), UserName: "katrina"}

	t.Run("passes validated state filters through", func(t *testing.T) {
		service := new(MockReviewService)
		service.On("ListForAssignment", mock.Anything, actor, "ruby", "bob",
			[]domain.ReviewState{domain.StateApprovable, domain.StateApproved}).
			Return([]*domain.Submission{}, nil)

		rec := doJSON(newRouter(service, actor), "GET", "/api/submissions/ruby/bob?state=approvable&state=approved", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		service.AssertExpectations(t)
	})

	t.Run("rejects unknown state filters", func(t *testing.T) {
		service := new(MockReviewService)

		rec := doJSON(newRouter(service, actor), "GET", "/api/submissions/ruby/bob?state=rejected", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		service.AssertNotCalled(t, "ListForAssignment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("non-locksmith gets 403", func(t *testing.T) {
		service := new(MockReviewService)
		service.On("ListForAssignment", mock.Anything, actor, "ruby", "bob", []domain.ReviewState(nil)).
			Return(nil, errs.ErrLocksmithForbidden)

		rec := doJSON(newRouter(service, actor), "GET", "/api/submissions/ruby/bob", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "Sorry, need to know only.")
	})
}

func TestViewEndpoint(t *testing.T) {
	actor := &domain.Users{ID: uuid.New(), UserName: "alice"}
	submissionID := uuid.New()

	t.Run("returns the review thread", func(t *testing.T) {
		service := new(MockReviewService)
		thread := &review.ReviewThread{
			Submission: &domain.Submission{ID: submissionID, UserID: actor.ID, Language: "ruby", Slug: "bob"},
			Nits:       []*review.NitThread{},
		}
		service.On("View", mock.Anything, actor, submissionID).Return(thread, nil)

		rec := doJSON(newRouter(service, actor), "GET", fmt.Sprintf("/api/submissions/%s", submissionID), "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), submissionID.String())
	})

	t.Run("internal failures are masked as 500", func(t *testing.T) {
		service := new(MockReviewService)
		service.On("View", mock.Anything, actor, submissionID).
			Return(nil, fmt.Errorf("failed to load nitpicks: connection reset"))

		rec := doJSON(newRouter(service, actor), "GET", fmt.Sprintf("/api/submissions/%s", submissionID), "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "Internal error")
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})
}
