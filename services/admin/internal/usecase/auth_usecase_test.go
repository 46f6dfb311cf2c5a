package usecase

import (
	"testing"

	"storysprout/pkg/jwt"
	"storysprout/pkg/logger"
	"storysprout/services/admin/internal/entity"
	"storysprout/services/admin/internal/repo/persistent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockAdminUserRepository struct {
	mock.Mock
}

func (m *MockAdminUserRepository) Create(user *entity.AdminUser) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockAdminUserRepository) GetByID(id string) (*entity.AdminUser, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AdminUser), args.Error(1)
}

func (m *MockAdminUserRepository) GetByUsername(username string) (*entity.AdminUser, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AdminUser), args.Error(1)
}

func (m *MockAdminUserRepository) UpdatePassword(userID, passwordHash string) error {
	args := m.Called(userID, passwordHash)
	return args.Error(0)
}

func (m *MockAdminUserRepository) ListRecoveryAnswers(userID string) ([]*entity.RecoveryAnswer, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.RecoveryAnswer), args.Error(1)
}

func (m *MockAdminUserRepository) ListPasswordHistory(userID string) ([]*entity.PasswordHistoryEntry, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.PasswordHistoryEntry), args.Error(1)
}

func (m *MockAdminUserRepository) AddPasswordHistory(userID, passwordHash string) error {
	args := m.Called(userID, passwordHash)
	return args.Error(0)
}

func (m *MockAdminUserRepository) TrimPasswordHistory(userID string, keep int) error {
	args := m.Called(userID, keep)
	return args.Error(0)
}

var _ persistent.AdminUserRepository = (*MockAdminUserRepository)(nil)

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func newAuthTestUseCase(repo *MockAdminUserRepository) AuthUseCase {
	return NewAuthUseCase(repo, jwt.NewService("test-secret"), logger.New())
}

func TestLogin_Success(t *testing.T) {
	repo := new(MockAdminUserRepository)
	repo.On("GetByUsername", "admin").Return(&entity.AdminUser{
		ID:           "user-1",
		Username:     "admin",
		PasswordHash: hashFor(t, "correct horse"),
		Role:         entity.RoleAdmin,
		IsActive:     true,
	}, nil)

	uc := newAuthTestUseCase(repo)
	result, err := uc.Login("admin", "correct horse")

	assert.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "user-1", result.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(MockAdminUserRepository)
	repo.On("GetByUsername", "admin").Return(&entity.AdminUser{
		ID:           "user-1",
		Username:     "admin",
		PasswordHash: hashFor(t, "correct horse"),
		IsActive:     true,
	}, nil)

	uc := newAuthTestUseCase(repo)
	result, err := uc.Login("admin", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, result)
}

func TestLogin_UnknownUser(t *testing.T) {
	repo := new(MockAdminUserRepository)
	repo.On("GetByUsername", "ghost").Return(nil, gorm.ErrRecordNotFound)

	uc := newAuthTestUseCase(repo)
	result, err := uc.Login("ghost", "whatever")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, result)
}

func TestLogin_DisabledAccount(t *testing.T) {
	repo := new(MockAdminUserRepository)
	repo.On("GetByUsername", "admin").Return(&entity.AdminUser{
		ID:           "user-1",
		Username:     "admin",
		PasswordHash: hashFor(t, "correct horse"),
		IsActive:     false,
	}, nil)

	uc := newAuthTestUseCase(repo)
	_, err := uc.Login("admin", "correct horse")

	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestChangePassword_Success(t *testing.T) {
	oldHash := hashFor(t, "old password")
	repo := new(MockAdminUserRepository)
	repo.On("GetByID", "user-1").Return(&entity.AdminUser{
		ID:           "user-1",
		PasswordHash: oldHash,
		IsActive:     true,
	}, nil)
	repo.On("ListPasswordHistory", "user-1").Return([]*entity.PasswordHistoryEntry{}, nil)
	repo.On("UpdatePassword", "user-1", mock.AnythingOfType("string")).Return(nil)
	repo.On("AddPasswordHistory", "user-1", oldHash).Return(nil)
	repo.On("TrimPasswordHistory", "user-1", passwordHistoryLimit).Return(nil)

	uc := newAuthTestUseCase(repo)
	err := uc.ChangePassword("user-1", "old password", "brand new password")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	repo := new(MockAdminUserRepository)
	repo.On("GetByID", "user-1").Return(&entity.AdminUser{
		ID:           "user-1",
		PasswordHash: hashFor(t, "old password"),
	}, nil)

	uc := newAuthTestUseCase(repo)
	err := uc.ChangePassword("user-1", "not it", "brand new password")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	repo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything)
}

func TestChangePassword_TooShort(t *testing.T) {
	repo := new(MockAdminUserRepository)
	repo.On("GetByID", "user-1").Return(&entity.AdminUser{
		ID:           "user-1",
		PasswordHash: hashFor(t, "old password"),
	}, nil)

	uc := newAuthTestUseCase(repo)
	err := uc.ChangePassword("user-1", "old password", "short")

	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestChangePassword_RejectsCurrentPasswordReuse(t *testing.T) {
	repo := new(MockAdminUserRepository)
	repo.On("GetByID", "user-1").Return(&entity.AdminUser{
		ID:           "user-1",
		PasswordHash: hashFor(t, "same password"),
	}, nil)

	uc := newAuthTestUseCase(repo)
	err := uc.ChangePassword("user-1", "same password", "same password")

	assert.ErrorIs(t, err, ErrPasswordReused)
}

func TestChangePassword_RejectsHistoricalReuse(t *testing.T) {
	repo := new(MockAdminUserRepository)
	repo.On("GetByID", "user-1").Return(&entity.AdminUser{
		ID:           "user-1",
		PasswordHash: hashFor(t, "current password"),
	}, nil)
	repo.On("ListPasswordHistory", "user-1").Return([]*entity.PasswordHistoryEntry{
		{ID: "h1", UserID: "user-1", PasswordHash: hashFor(t, "an older password")},
	}, nil)

	uc := newAuthTestUseCase(repo)
	err := uc.ChangePassword("user-1", "current password", "an older password")

	assert.ErrorIs(t, err, ErrPasswordReused)
	repo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything)
}

func TestResetPassword_Success(t *testing.T) {
	oldHash := hashFor(t, "forgotten")
	repo := new(MockAdminUserRepository)
	repo.On("GetByUsername", "admin").Return(&entity.AdminUser{
		ID:           "user-1",
		Username:     "admin",
		PasswordHash: oldHash,
		IsActive:     true,
	}, nil)
	repo.On("ListRecoveryAnswers", "user-1").Return([]*entity.RecoveryAnswer{
		{Question: "q1", AnswerHash: hashFor(t, "rex"), Position: 1},
		{Question: "q2", AnswerHash: hashFor(t, "springfield"), Position: 2},
		{Question: "q3", AnswerHash: hashFor(t, "sprout"), Position: 3},
	}, nil)
	repo.On("ListPasswordHistory", "user-1").Return([]*entity.PasswordHistoryEntry{}, nil)
	repo.On("UpdatePassword", "user-1", mock.AnythingOfType("string")).Return(nil)
	repo.On("AddPasswordHistory", "user-1", oldHash).Return(nil)
	repo.On("TrimPasswordHistory", "user-1", passwordHistoryLimit).Return(nil)

	uc := newAuthTestUseCase(repo)
	err := uc.ResetPassword("admin", []string{"rex", "springfield", "sprout"}, "a fresh password")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestResetPassword_OneWrongAnswerFails(t *testing.T) {
	repo := new(MockAdminUserRepository)
	repo.On("GetByUsername", "admin").Return(&entity.AdminUser{
		ID:           "user-1",
		Username:     "admin",
		PasswordHash: hashFor(t, "forgotten"),
	}, nil)
	repo.On("ListRecoveryAnswers", "user-1").Return([]*entity.RecoveryAnswer{
		{Question: "q1", AnswerHash: hashFor(t, "rex"), Position: 1},
		{Question: "q2", AnswerHash: hashFor(t, "springfield"), Position: 2},
		{Question: "q3", AnswerHash: hashFor(t, "sprout"), Position: 3},
	}, nil)

	uc := newAuthTestUseCase(repo)
	err := uc.ResetPassword("admin", []string{"rex", "wrong", "sprout"}, "a fresh password")

	assert.ErrorIs(t, err, ErrRecoveryAnswersWrong)
	repo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything)
}

func TestResetPassword_AnswerCountMustMatch(t *testing.T) {
	repo := new(MockAdminUserRepository)
	repo.On("GetByUsername", "admin").Return(&entity.AdminUser{
		ID:           "user-1",
		Username:     "admin",
		PasswordHash: hashFor(t, "forgotten"),
	}, nil)
	repo.On("ListRecoveryAnswers", "user-1").Return([]*entity.RecoveryAnswer{
		{Question: "q1", AnswerHash: hashFor(t, "rex"), Position: 1},
		{Question: "q2", AnswerHash: hashFor(t, "springfield"), Position: 2},
		{Question: "q3", AnswerHash: hashFor(t, "sprout"), Position: 3},
	}, nil)

	uc := newAuthTestUseCase(repo)
	err := uc.ResetPassword("admin", []string{"rex"}, "a fresh password")

	assert.ErrorIs(t, err, ErrRecoveryAnswersWrong)
}

func TestResetPassword_UnknownUserLooksLikeWrongAnswers(t *testing.T) {
	repo := new(MockAdminUserRepository)
	repo.On("GetByUsername", "ghost").Return(nil, gorm.ErrRecordNotFound)

	uc := newAuthTestUseCase(repo)
	err := uc.ResetPassword("ghost", []string{"a", "b", "c"}, "a fresh password")

	assert.ErrorIs(t, err, ErrRecoveryAnswersWrong)
}

func TestRecoveryQuestions_InOrder(t *testing.T) {
	repo := new(MockAdminUserRepository)
	repo.On("GetByUsername", "admin").Return(&entity.AdminUser{ID: "user-1", Username: "admin"}, nil)
	repo.On("ListRecoveryAnswers", "user-1").Return([]*entity.RecoveryAnswer{
		{Question: "first", Position: 1},
		{Question: "second", Position: 2},
	}, nil)

	uc := newAuthTestUseCase(repo)
	questions, err := uc.RecoveryQuestions("admin")

	assert.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, questions)
}
