package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storysprout/pkg/logger"
	"storysprout/services/admin/internal/entity"
	"storysprout/services/admin/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Login(username, password string) (*usecase.LoginResult, error) {
	args := m.Called(username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.LoginResult), args.Error(1)
}

func (m *MockAuthUseCase) ChangePassword(userID, currentPassword, newPassword string) error {
	args := m.Called(userID, currentPassword, newPassword)
	return args.Error(0)
}

func (m *MockAuthUseCase) ResetPassword(username string, answers []string, newPassword string) error {
	args := m.Called(username, answers, newPassword)
	return args.Error(0)
}

func (m *MockAuthUseCase) RecoveryQuestions(username string) ([]string, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

func setupAuthRouter(uc usecase.AuthUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(uc, logger.New())

	router := gin.New()
	router.POST("/auth/login", handler.Login)
	router.GET("/auth/recovery-questions", handler.RecoveryQuestions)
	router.POST("/auth/reset-password", handler.ResetPassword)
	router.POST("/auth/change-password", func(c *gin.Context) {
		c.Set("user_id", "admin-1")
		handler.ChangePassword(c)
	})
	return router
}

func TestLogin_Success(t *testing.T) {
	uc := new(MockAuthUseCase)
	uc.On("Login", "admin", "correct horse").Return(&usecase.LoginResult{
		Token: "signed.jwt.token",
		User:  &entity.AdminUser{ID: "admin-1", Username: "admin"},
	}, nil)

	router := setupAuthRouter(uc)

	body, _ := json.Marshal(map[string]string{"username": "admin", "password": "correct horse"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp usecase.LoginResult
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp.Token)
	assert.Equal(t, "admin", resp.User.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc := new(MockAuthUseCase)
	uc.On("Login", "admin", "nope").Return(nil, usecase.ErrInvalidCredentials)

	router := setupAuthRouter(uc)

	body, _ := json.Marshal(map[string]string{"username": "admin", "password": "nope"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_MissingFields(t *testing.T) {
	uc := new(MockAuthUseCase)

	router := setupAuthRouter(uc)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader([]byte(`{"username":"admin"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	uc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestChangePassword_UsesAuthenticatedUser(t *testing.T) {
	uc := new(MockAuthUseCase)
	uc.On("ChangePassword", "admin-1", "old password", "new password").Return(nil)

	router := setupAuthRouter(uc)

	body, _ := json.Marshal(map[string]string{
		"current_password": "old password",
		"new_password":     "new password",
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/change-password", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	uc.AssertExpectations(t)
}

func TestChangePassword_ReusedPassword(t *testing.T) {
	uc := new(MockAuthUseCase)
	uc.On("ChangePassword", "admin-1", "old password", "recycled").Return(usecase.ErrPasswordReused)

	router := setupAuthRouter(uc)

	body, _ := json.Marshal(map[string]string{
		"current_password": "old password",
		"new_password":     "recycled",
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/change-password", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecoveryQuestions_UnknownUser(t *testing.T) {
	uc := new(MockAuthUseCase)
	uc.On("RecoveryQuestions", "ghost").Return(nil, usecase.ErrInvalidCredentials)

	router := setupAuthRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/auth/recovery-questions?username=ghost", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResetPassword_WrongAnswers(t *testing.T) {
	uc := new(MockAuthUseCase)
	uc.On("ResetPassword", "admin", []string{"wrong"}, "fresh password").Return(usecase.ErrRecoveryAnswersWrong)

	router := setupAuthRouter(uc)

	body, _ := json.Marshal(map[string]interface{}{
		"username":     "admin",
		"answers":      []string{"wrong"},
		"new_password": "fresh password",
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/reset-password", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
