package controllers

import (
	"net/http"
	"testing"

	"blogapi/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserController_CreateUser(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)

	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantBody   string
	}{
		{"missing username", gin.H{"email": "a@example.com"}, http.StatusBadRequest, `{"message":"Username is required"}`},
		{"malformed body", `{"username":`, http.StatusBadRequest, `{"message":"Invalid request body"}`},
		{"created", gin.H{"username": "alice", "email": "a@example.com"}, http.StatusCreated, `{"message":"User created successfully!"}`},
		{"duplicate email", gin.H{"username": "bob", "email": "a@example.com"}, http.StatusBadRequest, `{"message":"Email already exists"}`},
		{"duplicate username", gin.H{"username": "alice"}, http.StatusBadRequest, `{"message":"Username already exists"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/user", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUserController_GetUsers(t *testing.T) {
	r := newTestRouter(newTestDB(t))

	w := doJSON(t, r, http.MethodGet, "/users", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	doJSON(t, r, http.MethodPost, "/user", gin.H{"username": "alice", "email": "a@example.com"})
	doJSON(t, r, http.MethodPost, "/user", gin.H{"username": "bob"})

	w = doJSON(t, r, http.MethodGet, "/users", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"id":1,"username":"alice","email":"a@example.com"},
		{"id":2,"username":"bob","email":null}
	]`, w.Body.String())
}

func TestUserController_GetUser(t *testing.T) {
	r := newTestRouter(newTestDB(t))
	doJSON(t, r, http.MethodPost, "/user", gin.H{"username": "alice"})

	w := doJSON(t, r, http.MethodGet, "/user/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"username":"alice","email":null}`, w.Body.String())

	for _, path := range []string{"/user/2", "/user/abc", "/user/0"} {
		w = doJSON(t, r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}

func TestUserController_UpdateUser(t *testing.T) {
	r := newTestRouter(newTestDB(t))
	doJSON(t, r, http.MethodPost, "/user", gin.H{"username": "alice", "email": "a@example.com"})
	doJSON(t, r, http.MethodPost, "/user", gin.H{"username": "bob", "email": "b@example.com"})

	w := doJSON(t, r, http.MethodPut, "/user/1", gin.H{"username": "alicia"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"User updated successfully!"}`, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/user/1", nil)
	assert.JSONEq(t, `{"username":"alicia","email":"a@example.com"}`, w.Body.String())

	w = doJSON(t, r, http.MethodPut, "/user/1", gin.H{"email": "b@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/user/9", gin.H{"username": "ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserController_DeleteUser(t *testing.T) {
	r := newTestRouter(newTestDB(t))
	doJSON(t, r, http.MethodPost, "/user", gin.H{"username": "alice"})
	doJSON(t, r, http.MethodPost, "/post", gin.H{"title": "t1", "content": "c", "user_id": 1})
	doJSON(t, r, http.MethodPost, "/post", gin.H{"title": "t2", "content": "c", "user_id": 1})

	w := doJSON(t, r, http.MethodDelete, "/user/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"User deleted successfully!"}`, w.Body.String())

	for _, path := range []string{"/user/1", "/post/1", "/post/2"} {
		w = doJSON(t, r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}

	w = doJSON(t, r, http.MethodDelete, "/user/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"User not found!"}`, w.Body.String())
}
