package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"artisan-connect.backend/internal/domain/entities"
	"artisan-connect.backend/internal/infrastructure/registry"
	"artisan-connect.backend/internal/usecases"
	"artisan-connect.backend/pkg/jwt"
)

func newAdminRouter(t *testing.T) (*gin.Engine, *registry.UserRegistry, *registry.ContentRegistry) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := registry.NewUserRegistry()
	content := registry.NewContentRegistry()
	jwtSvc := jwt.NewJWTService("test-secret", time.Hour, 2*time.Hour)
	authUC := usecases.NewAuthUsecase(users, jwtSvc, nil, "5422")
	modUC := usecases.NewModerationUsecase(users, content)
	h := NewAdminHandler(authUC, modUC)

	r := gin.New()
	r.POST("/admin/create-admin", h.CreateAdmin)
	r.POST("/admin/users", h.CreateUser)
	r.GET("/admin/users", h.ListUsers)
	r.GET("/admin/posts", h.ListPosts)
	r.POST("/admin/user-action", h.UserAction)
	r.POST("/admin/post-action", h.PostAction)
	return r, users, content
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminHandler_CreateAdmin_CodeGate(t *testing.T) {
	r, users, _ := newAdminRouter(t)

	w := postJSON(r, "/admin/create-admin",
		`{"email":"admin@x.com","username":"admin","password":"Password123!","adminCode":"wrong"}`)
	require.Equal(t, http.StatusForbidden, w.Code)

	// the failed attempt must not have written anything
	all, err := users.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, all)

	w = postJSON(r, "/admin/create-admin",
		`{"email":"admin@x.com","username":"admin","password":"Password123!","adminCode":"5422"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), `"role":"admin"`)
	require.NotContains(t, w.Body.String(), "Password123!")
}

func TestAdminHandler_CreateUser(t *testing.T) {
	r, _, _ := newAdminRouter(t)

	w := postJSON(r, "/admin/users", "{")
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/admin/users",
		`{"email":"maya@x.com","username":"maya_crafts","password":"Password123!"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), `"role":"member"`)

	w = postJSON(r, "/admin/users",
		`{"email":"maya@x.com","username":"other","password":"Password123!"}`)
	require.Equal(t, http.StatusConflict, w.Code)

	w = postJSON(r, "/admin/users",
		`{"email":"odd@x.com","username":"odd","password":"Password123!","role":"superuser"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminHandler_UserAction(t *testing.T) {
	r, users, _ := newAdminRouter(t)

	target, err := users.Create(context.Background(), &entities.User{
		Email:    "maya@x.com",
		Username: "maya_crafts",
		Role:     entities.UserRoleMember,
		Status:   entities.UserStatusActive,
	})
	require.NoError(t, err)

	w := postJSON(r, "/admin/user-action", "{")
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/admin/user-action",
		`{"userId":"not-a-uuid","action":"ban"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/admin/user-action",
		`{"userId":"`+target.ID.String()+`","action":"promote"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/admin/user-action",
		`{"userId":"`+uuid.NewString()+`","action":"ban"}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = postJSON(r, "/admin/user-action",
		`{"userId":"`+target.ID.String()+`","action":"ban"}`)
	require.Equal(t, http.StatusOK, w.Code)

	banned, err := users.GetByID(context.Background(), target.ID)
	require.NoError(t, err)
	require.Equal(t, entities.UserStatusBanned, banned.Status)

	w = postJSON(r, "/admin/user-action",
		`{"userId":"`+target.ID.String()+`","action":"restrict","days":3}`)
	require.Equal(t, http.StatusOK, w.Code)

	restricted, err := users.GetByID(context.Background(), target.ID)
	require.NoError(t, err)
	require.Equal(t, entities.UserStatusRestricted, restricted.Status)
	require.True(t, restricted.RestrictedUntil.Valid)

	w = postJSON(r, "/admin/user-action",
		`{"userId":"`+target.ID.String()+`","action":"delete"}`)
	require.Equal(t, http.StatusOK, w.Code)

	_, err = users.GetByID(context.Background(), target.ID)
	require.Error(t, err)
}

func TestAdminHandler_PostAction(t *testing.T) {
	r, _, content := newAdminRouter(t)

	post, err := content.CreatePost(context.Background(), &entities.Post{
		AuthorID: uuid.New(),
		Content:  "hello",
	})
	require.NoError(t, err)

	w := postJSON(r, "/admin/post-action",
		`{"postId":"`+post.ID.String()+`","action":"restrict"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/admin/post-action",
		`{"postId":"`+post.ID.String()+`","action":"ban"}`)
	require.Equal(t, http.StatusOK, w.Code)

	bannedPost, err := content.GetPost(context.Background(), post.ID)
	require.NoError(t, err)
	require.Equal(t, entities.PostStatusBanned, bannedPost.Status)

	w = postJSON(r, "/admin/post-action",
		`{"postId":"`+post.ID.String()+`","action":"delete"}`)
	require.Equal(t, http.StatusOK, w.Code)

	_, err = content.GetPost(context.Background(), post.ID)
	require.Error(t, err)

	w = postJSON(r, "/admin/post-action",
		`{"postId":"`+post.ID.String()+`","action":"ban"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminHandler_ListSnapshots(t *testing.T) {
	r, users, content := newAdminRouter(t)

	_, err := users.Create(context.Background(), &entities.User{
		Email:    "maya@x.com",
		Username: "maya_crafts",
		Status:   entities.UserStatusBanned,
	})
	require.NoError(t, err)
	_, err = content.CreatePost(context.Background(), &entities.Post{
		AuthorID: uuid.New(),
		Content:  "hidden",
		Status:   entities.PostStatusBanned,
	})
	require.NoError(t, err)

	// admin snapshots include moderated records
	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "maya_crafts")

	req = httptest.NewRequest(http.MethodGet, "/admin/posts", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "hidden")
}
