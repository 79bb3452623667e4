package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	usecase "rest-user-service/internal/usecase/user"
	apperrors "rest-user-service/pkg/errors"
)

// MockUserUsecase is a mock implementation of user.Usecase
type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) CreateUser(ctx context.Context, req usecase.CreateUserRequest) (*usecase.CreateUserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.CreateUserResponse), args.Error(1)
}

func (m *MockUserUsecase) DeleteUser(ctx context.Context, req usecase.DeleteUserRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockUserUsecase) GetUser(ctx context.Context, req usecase.GetUserRequest) (*usecase.GetUserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.GetUserResponse), args.Error(1)
}

func (m *MockUserUsecase) ListUsers(ctx context.Context, req usecase.ListUsersRequest) (*usecase.ListUsersResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.ListUsersResponse), args.Error(1)
}

func setupTest(t *testing.T) (*gin.Engine, *UserHandler, *MockUserUsecase) {
	gin.SetMode(gin.TestMode)
	mockUsecase := new(MockUserUsecase)
	logger := zaptest.NewLogger(t)
	handler := NewUserHandler(mockUsecase, logger)

	r := gin.New()
	return r, handler, mockUsecase
}

func strPtr(s string) *string {
	return &s
}

func TestListUsers(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, handler, mockUsecase := setupTest(t)
		r.GET("/user/", handler.ListUsers)

		mockUsecase.On("ListUsers", mock.Anything, usecase.ListUsersRequest{}).Return(&usecase.ListUsersResponse{
			Users: []usecase.User{
				{
					ID:        1,
					FirstName: strPtr("Ada"),
					LastName:  strPtr("Lovelace"),
					FullName:  "Ada Lovelace",
					Email:     "Ada.Lovelace@tudublin.ie",
				},
			},
		}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/user/", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp []UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, int64(1), resp[0].ID)
		assert.Equal(t, "Ada Lovelace", resp[0].FullName)
		assert.Equal(t, "Ada.Lovelace@tudublin.ie", resp[0].Email)
	})

	t.Run("Empty Store", func(t *testing.T) {
		r, handler, mockUsecase := setupTest(t)
		r.GET("/user/", handler.ListUsers)

		mockUsecase.On("ListUsers", mock.Anything, mock.Anything).Return(&usecase.ListUsersResponse{}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/user/", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("Store Error", func(t *testing.T) {
		r, handler, mockUsecase := setupTest(t)
		r.GET("/user/", handler.ListUsers)

		mockUsecase.On("ListUsers", mock.Anything, mock.Anything).
			Return(nil, apperrors.NewStoreError("list users", assert.AnError))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/user/", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Error)
	})
}

func TestCreateUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, handler, mockUsecase := setupTest(t)
		r.POST("/user/", handler.CreateUser)

		mockUsecase.On("CreateUser", mock.Anything, mock.MatchedBy(func(req usecase.CreateUserRequest) bool {
			return req.Fields.FirstName != nil && *req.Fields.FirstName == "Ada"
		})).Return(&usecase.CreateUserResponse{ID: 1}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/user/", strings.NewReader(`{"first_name":"Ada","last_name":"Lovelace"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		// Created with an empty body: callers re-fetch to learn the id
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("Invalid Request Body", func(t *testing.T) {
		r, handler, mockUsecase := setupTest(t)
		r.POST("/user/", handler.CreateUser)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/user/", strings.NewReader("invalid json"))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUsecase.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Field", func(t *testing.T) {
		r, handler, mockUsecase := setupTest(t)
		r.POST("/user/", handler.CreateUser)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/user/", strings.NewReader(`{"first_name":"Ada","nickname":"Countess"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp.Error, "nickname")
		mockUsecase.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("Usecase Error", func(t *testing.T) {
		r, handler, mockUsecase := setupTest(t)
		r.POST("/user/", handler.CreateUser)

		mockUsecase.On("CreateUser", mock.Anything, mock.Anything).
			Return(nil, apperrors.NewStoreError("create user", assert.AnError))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/user/", strings.NewReader(`{"first_name":"Ada"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, handler, mockUsecase := setupTest(t)
		r.GET("/user/:id/", handler.GetUser)

		mockUsecase.On("GetUser", mock.Anything, usecase.GetUserRequest{ID: 1}).Return(&usecase.GetUserResponse{
			User: usecase.User{
				ID:        1,
				FirstName: strPtr("Ada"),
				LastName:  strPtr("Lovelace"),
				FullName:  "Ada Lovelace",
				Email:     "Ada.Lovelace@tudublin.ie",
			},
		}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/user/1/", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "Ada Lovelace", resp.FullName)
	})

	t.Run("Null Names Serialize As Null", func(t *testing.T) {
		r, handler, mockUsecase := setupTest(t)
		r.GET("/user/:id/", handler.GetUser)

		mockUsecase.On("GetUser", mock.Anything, usecase.GetUserRequest{ID: 2}).Return(&usecase.GetUserResponse{
			User: usecase.User{ID: 2, FullName: " ", Email: ".@tudublin.ie"},
		}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/user/2/", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"first_name":null`)
		assert.Contains(t, w.Body.String(), `"last_name":null`)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		r, handler, mockUsecase := setupTest(t)
		r.GET("/user/:id/", handler.GetUser)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/user/abc/", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUsecase.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
	})

	t.Run("Not Found Is 400", func(t *testing.T) {
		r, handler, mockUsecase := setupTest(t)
		r.GET("/user/:id/", handler.GetUser)

		mockUsecase.On("GetUser", mock.Anything, usecase.GetUserRequest{ID: 999}).
			Return(nil, apperrors.NewNotFoundError("user", 999))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/user/999/", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error": "Couldn't find user with id, 999"}`, w.Body.String())
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, handler, mockUsecase := setupTest(t)
		r.DELETE("/user/:id/", handler.DeleteUser)

		mockUsecase.On("DeleteUser", mock.Anything, usecase.DeleteUserRequest{ID: 1}).Return(nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("DELETE", "/user/1/", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("Not Found Is 400", func(t *testing.T) {
		r, handler, mockUsecase := setupTest(t)
		r.DELETE("/user/:id/", handler.DeleteUser)

		mockUsecase.On("DeleteUser", mock.Anything, usecase.DeleteUserRequest{ID: 5}).
			Return(apperrors.NewNotFoundError("user", 5))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("DELETE", "/user/5/", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Couldn't find user with id, 5", resp.Error)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		r, handler, mockUsecase := setupTest(t)
		r.DELETE("/user/:id/", handler.DeleteUser)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("DELETE", "/user/abc/", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUsecase.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
	})
}

func TestGreeting(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", NewRootHandler().Greeting)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["message"], "Welcome to my World! It is now ")
}
