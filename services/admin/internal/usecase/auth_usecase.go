package usecase

import (
	"errors"
	"fmt"

	"storysprout/pkg/jwt"
	"storysprout/pkg/logger"
	"storysprout/services/admin/internal/entity"
	"storysprout/services/admin/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	// passwordHistoryLimit caps how many previous hashes are kept and
	// checked against on rotation.
	passwordHistoryLimit = 5
	minPasswordLength    = 8
)

var (
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrAccountDisabled      = errors.New("account is disabled")
	ErrPasswordTooShort     = errors.New("password must be at least 8 characters")
	ErrPasswordReused       = errors.New("password was used recently, choose a different one")
	ErrRecoveryAnswersWrong = errors.New("recovery answers do not match")
)

type LoginResult struct {
	Token string            `json:"token"`
	User  *entity.AdminUser `json:"user"`
}

type AuthUseCase interface {
	Login(username, password string) (*LoginResult, error)
	ChangePassword(userID, currentPassword, newPassword string) error
	ResetPassword(username string, answers []string, newPassword string) error
	RecoveryQuestions(username string) ([]string, error)
}

type authUseCase struct {
	userRepo   persistent.AdminUserRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthUseCase(userRepo persistent.AdminUserRepository, jwtService *jwt.Service, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login verifies credentials server-side and issues a signed token. The
// handler never sees or stores the password beyond this call.
func (uc *authUseCase) Login(username, password string) (*LoginResult, error) {
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResult{Token: token, User: user}, nil
}

func (uc *authUseCase) ChangePassword(userID, currentPassword, newPassword string) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	return uc.rotatePassword(user, newPassword)
}

// ResetPassword rotates the password when all recovery answers match. All
// stored answers must be answered, in position order, and every one must
// verify before anything changes.
func (uc *authUseCase) ResetPassword(username string, answers []string, newPassword string) error {
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecoveryAnswersWrong
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	stored, err := uc.userRepo.ListRecoveryAnswers(user.ID)
	if err != nil {
		return fmt.Errorf("failed to load recovery answers: %w", err)
	}

	if len(stored) == 0 || len(answers) != len(stored) {
		return ErrRecoveryAnswersWrong
	}

	for i, answer := range stored {
		if err := bcrypt.CompareHashAndPassword([]byte(answer.AnswerHash), []byte(answers[i])); err != nil {
			return ErrRecoveryAnswersWrong
		}
	}

	return uc.rotatePassword(user, newPassword)
}

func (uc *authUseCase) RecoveryQuestions(username string) ([]string, error) {
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	stored, err := uc.userRepo.ListRecoveryAnswers(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recovery answers: %w", err)
	}

	questions := make([]string, len(stored))
	for i, answer := range stored {
		questions[i] = answer.Question
	}
	return questions, nil
}

// rotatePassword enforces length and reuse rules, stores the new hash and
// pushes the old one into the capped history.
func (uc *authUseCase) rotatePassword(user *entity.AdminUser, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(newPassword)); err == nil {
		return ErrPasswordReused
	}

	history, err := uc.userRepo.ListPasswordHistory(user.ID)
	if err != nil {
		return fmt.Errorf("failed to load password history: %w", err)
	}
	for _, entry := range history {
		if err := bcrypt.CompareHashAndPassword([]byte(entry.PasswordHash), []byte(newPassword)); err == nil {
			return ErrPasswordReused
		}
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := uc.userRepo.UpdatePassword(user.ID, string(newHash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := uc.userRepo.AddPasswordHistory(user.ID, user.PasswordHash); err != nil {
		uc.logger.Warn("Failed to record password history for %s: %v", user.ID, err)
	}
	if err := uc.userRepo.TrimPasswordHistory(user.ID, passwordHistoryLimit); err != nil {
		uc.logger.Warn("Failed to trim password history for %s: %v", user.ID, err)
	}

	user.PasswordHash = string(newHash)
	return nil
}
