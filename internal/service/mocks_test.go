package service

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"recipehub/internal/model"
	"recipehub/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Save(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByLoginID(ctx context.Context, loginID string) (*model.User, error) {
	args := m.Called(ctx, loginID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockRecipeRepository is a mock implementation of RecipeRepository.
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) Create(ctx context.Context, recipe *model.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) Save(ctx context.Context, recipe *model.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) FindByID(ctx context.Context, id uint) (*model.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) List(ctx context.Context, page repository.PageRequest) ([]model.Recipe, int64, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Recipe), args.Get(1).(int64), args.Error(2)
}

func (m *MockRecipeRepository) ListByCreatedAtBetween(ctx context.Context, start, end time.Time, page repository.PageRequest) ([]model.Recipe, int64, error) {
	args := m.Called(ctx, start, end, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Recipe), args.Get(1).(int64), args.Error(2)
}

func (m *MockRecipeRepository) AdjustLikes(ctx context.Context, id uint, delta int64) (int64, error) {
	args := m.Called(ctx, id, delta)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecipeRepository) DeleteWithComments(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCommentRepository is a mock implementation of CommentRepository.
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Save(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uint) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) FindByRecipeID(ctx context.Context, recipeID uint) ([]model.Comment, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepository) AdjustLikes(ctx context.Context, id uint, delta int64) (int64, error) {
	args := m.Called(ctx, id, delta)
	return args.Get(0).(int64), args.Error(1)
}

// MockActivityLogRepository is a mock implementation of ActivityLogRepository.
type MockActivityLogRepository struct {
	mock.Mock
}

func (m *MockActivityLogRepository) CreateBatch(ctx context.Context, logs []model.ActivityLog) error {
	args := m.Called(ctx, logs)
	return args.Error(0)
}

func (m *MockActivityLogRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) {
	m.Called(ctx, tokenID, ttl)
}

func (m *MockTokenStore) IsAccessTokenBlacklisted(ctx context.Context, tokenID string) bool {
	args := m.Called(ctx, tokenID)
	return args.Bool(0)
}

// MockPasswordHasher is a mock implementation of PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(raw string) (string, error) {
	args := m.Called(raw)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Matches(raw, hash string) bool {
	args := m.Called(raw, hash)
	return args.Bool(0)
}

type recordedActivity struct {
	UserID     uint
	Action     model.ActivityAction
	TargetType string
	TargetID   uint
}

// fakeRecorder keeps recorded activity in memory.
type fakeRecorder struct {
	mu      sync.Mutex
	entries []recordedActivity
}

func (r *fakeRecorder) Record(userID uint, action model.ActivityAction, targetType string, targetID uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, recordedActivity{userID, action, targetType, targetID})
}

func (r *fakeRecorder) actions() []model.ActivityAction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.ActivityAction, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Action)
	}
	return out
}

func testUser(id uint, loginID string) *model.User {
	u := model.NewUser(loginID, "hashed", "sihyun", loginID+"@example.com", "Hi")
	u.ID = id
	return u
}
