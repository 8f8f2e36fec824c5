package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogapi/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.OpenInMemory(t.Name())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func newTestRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()

	uc := NewUserController(db)
	r.POST("/user", uc.CreateUser)
	r.GET("/users", uc.GetUsers)
	r.GET("/user/:id", uc.GetUser)
	r.PUT("/user/:id", uc.UpdateUser)
	r.DELETE("/user/:id", uc.DeleteUser)

	pc := NewPostController(db)
	r.POST("/post", pc.CreatePost)
	r.GET("/post/:id", pc.GetPost)
	r.PUT("/post/:id", pc.UpdatePost)
	r.DELETE("/post/:id", pc.DeletePost)

	cc := NewCommentController(db)
	r.POST("/post/:id/comments", cc.CreateComment)
	r.GET("/post/:id/comments", cc.GetComments)

	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
