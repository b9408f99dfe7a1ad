package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/skyfare/internal/domain"
	"github.com/Domenick1991/skyfare/internal/service/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAuthHandler_signup(t *testing.T) {
	mockService := &MockAuthUseCase{}
	handler := NewAuthHandler(mockService, 3600)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	input := auth.SignupInput{Name: "Alice", Email: "alice@example.com", Password: "hunter22"}
	body, _ := json.Marshal(input)
	c.Request = httptest.NewRequest("POST", "/auth/signup", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	user := &domain.User{ID: 7, Name: "Alice", Email: "alice@example.com", Role: domain.UserRoleNormal}
	mockService.On("Signup", c.Request.Context(), input).Return(user, "signed-token", nil)

	handler.signup(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response authResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), response.ID)

	cookies := w.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, tokenCookie, cookies[0].Name)
	assert.Equal(t, "signed-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	mockService.AssertExpectations(t)
}

func TestAuthHandler_signup_EmailTaken(t *testing.T) {
	mockService := &MockAuthUseCase{}
	handler := NewAuthHandler(mockService, 3600)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	input := auth.SignupInput{Name: "Alice", Email: "alice@example.com", Password: "hunter22"}
	body, _ := json.Marshal(input)
	c.Request = httptest.NewRequest("POST", "/auth/signup", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Signup", c.Request.Context(), input).Return(nil, "", domain.ErrEmailTaken)

	handler.signup(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestAuthHandler_signin(t *testing.T) {
	mockService := &MockAuthUseCase{}
	handler := NewAuthHandler(mockService, 3600)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	input := auth.SigninInput{Email: "alice@example.com", Password: "hunter22"}
	body, _ := json.Marshal(input)
	c.Request = httptest.NewRequest("POST", "/auth/signin", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	user := &domain.User{ID: 7, Name: "Alice", Email: "alice@example.com", Role: domain.UserRoleNormal}
	mockService.On("Signin", c.Request.Context(), input).Return(user, "signed-token", nil)

	handler.signin(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, w.Result().Cookies(), 1)
	mockService.AssertExpectations(t)
}

func TestAuthHandler_signin_BadCredentials(t *testing.T) {
	mockService := &MockAuthUseCase{}
	handler := NewAuthHandler(mockService, 3600)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	input := auth.SigninInput{Email: "alice@example.com", Password: "wrong"}
	body, _ := json.Marshal(input)
	c.Request = httptest.NewRequest("POST", "/auth/signin", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Signin", c.Request.Context(), input).Return(nil, "", domain.ErrInvalidCredentials)

	handler.signin(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}
