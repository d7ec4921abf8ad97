package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"snake-arena/internal/entity"
	"snake-arena/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUserUseCase is a mock implementation of usecase.UserUseCase
type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) GetStats(userID string) (*entity.UserStats, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserStats), args.Error(1)
}

func (m *MockUserUseCase) UpdateProfile(userEmail string, username, avatar *string) (*entity.User, error) {
	args := m.Called(userEmail, username, avatar)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) UploadAvatar(userEmail string, fileReader io.Reader, fileKey, contentType string) (*entity.User, error) {
	args := m.Called(userEmail, fileReader, fileKey, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

var _ usecase.UserUseCase = (*MockUserUseCase)(nil)

func TestGetStats(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	handler := NewUserHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/users/:id/stats", handler.GetStats)

	stats := &entity.UserStats{HighScore: 2500, GamesPlayed: 47, Rank: 1}
	mockUseCase.On("GetStats", "u1").Return(stats, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/u1/stats", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response entity.UserStats
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, 2500, response.HighScore)
	assert.Equal(t, 1, response.Rank)
}

func TestGetStats_NotFound(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	handler := NewUserHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/users/:id/stats", handler.GetStats)

	mockUseCase.On("GetStats", "nope").Return(nil, errors.New("user not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/nope/stats", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProfile_Username(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	handler := NewUserHandler(mockUseCase)

	router := setupTestRouter()
	router.PATCH("/users/profile", func(c *gin.Context) {
		c.Set("user_email", "a@x.com")
		handler.UpdateProfile(c)
	})

	updated := &entity.User{ID: "u1", Username: "NewName", Email: "a@x.com"}
	mockUseCase.On("UpdateProfile", "a@x.com", mock.MatchedBy(func(u *string) bool {
		return u != nil && *u == "NewName"
	}), (*string)(nil)).Return(updated, nil)

	body := `{"username":"NewName"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/users/profile", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "NewName")
}

func TestUpdateProfile_UsernameTaken(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	handler := NewUserHandler(mockUseCase)

	router := setupTestRouter()
	router.PATCH("/users/profile", func(c *gin.Context) {
		c.Set("user_email", "a@x.com")
		handler.UpdateProfile(c)
	})

	mockUseCase.On("UpdateProfile", "a@x.com", mock.Anything, mock.Anything).
		Return(nil, errors.New("username already taken"))

	body := `{"username":"Taken"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/users/profile", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProfile_NoAuth(t *testing.T) {
	handler := NewUserHandler(new(MockUserUseCase))

	router := setupTestRouter()
	router.PATCH("/users/profile", handler.UpdateProfile)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/users/profile", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUploadAvatar(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	handler := NewUserHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/users/avatar", func(c *gin.Context) {
		c.Set("user_email", "a@x.com")
		handler.UploadAvatar(c)
	})

	updated := &entity.User{ID: "u1", Username: "A", Email: "a@x.com", Avatar: "http://files/avatars/x.png"}
	mockUseCase.On("UploadAvatar", "a@x.com", mock.Anything, mock.MatchedBy(func(key string) bool {
		return len(key) > 0
	}), mock.Anything).Return(updated, nil)

	buf := new(bytes.Buffer)
	writer := multipart.NewWriter(buf)
	part, _ := writer.CreateFormFile("avatar", "me.png")
	part.Write([]byte("not-really-a-png"))
	writer.Close()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users/avatar", buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "avatars/x.png")
}

func TestUploadAvatar_BadExtension(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	handler := NewUserHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/users/avatar", func(c *gin.Context) {
		c.Set("user_email", "a@x.com")
		handler.UploadAvatar(c)
	})

	buf := new(bytes.Buffer)
	writer := multipart.NewWriter(buf)
	part, _ := writer.CreateFormFile("avatar", "evil.exe")
	part.Write([]byte("nope"))
	writer.Close()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users/avatar", buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "UploadAvatar", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
