package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"snake-arena/internal/entity"
	"snake-arena/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthUseCase is a mock implementation of usecase.AuthUseCase
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) SignUp(username, email, plainPassword string) (*entity.User, string, error) {
	args := m.Called(username, email, plainPassword)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) Login(email, plainPassword string) (*entity.User, string, error) {
	args := m.Called(email, plainPassword)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) GetUserByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestSignUp_Created(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/auth/signup", handler.SignUp)

	user := &entity.User{ID: "u1", Username: "A", Email: "a@x.com"}
	mockUseCase.On("SignUp", "AAA", "a@x.com", "abcdef").Return(user, "token-123", nil)

	body := `{"username":"AAA","email":"a@x.com","password":"abcdef"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/signup", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response AuthResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "token-123", response.Token)
	assert.Equal(t, "a@x.com", response.User.Email)

	mockUseCase.AssertExpectations(t)
}

func TestSignUp_ShortPassword(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/auth/signup", handler.SignUp)

	body := `{"username":"AAA","email":"a@x.com","password":"abc"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/signup", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything, mock.Anything)
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/auth/signup", handler.SignUp)

	mockUseCase.On("SignUp", "AAA", "a@x.com", "abcdef").
		Return(nil, "", errors.New("email already registered"))

	body := `{"username":"AAA","email":"a@x.com","password":"abcdef"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/signup", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email already registered")
}

func TestLogin_Success(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/auth/login", handler.Login)

	user := &entity.User{ID: "u1", Username: "SnakeMaster", Email: "snakemaster@game.com"}
	mockUseCase.On("Login", "snakemaster@game.com", "password123").Return(user, "token-123", nil)

	body := `{"email":"snakemaster@game.com","password":"password123"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response AuthResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "SnakeMaster", response.User.Username)
	assert.Equal(t, "token-123", response.Token)
}

func TestLogin_BadCredentials(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/auth/login", handler.Login)

	mockUseCase.On("Login", "snakemaster@game.com", "wrong").
		Return(nil, "", errors.New("invalid email or password"))

	body := `{"email":"snakemaster@game.com","password":"wrong"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout(t *testing.T) {
	handler := NewAuthHandler(new(MockAuthUseCase))

	router := setupTestRouter()
	router.POST("/auth/logout", handler.Logout)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/logout", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Successfully logged out")
}

func TestMe_Success(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/auth/me", func(c *gin.Context) {
		c.Set("user_email", "a@x.com")
		handler.Me(c)
	})

	user := &entity.User{ID: "u1", Username: "A", Email: "a@x.com"}
	mockUseCase.On("GetUserByEmail", "a@x.com").Return(user, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/auth/me", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"A"`)
}

func TestMe_NoContext(t *testing.T) {
	handler := NewAuthHandler(new(MockAuthUseCase))

	router := setupTestRouter()
	router.GET("/auth/me", handler.Me)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/auth/me", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
