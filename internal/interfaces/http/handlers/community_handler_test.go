package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"artisan-connect.backend/internal/domain/entities"
	"artisan-connect.backend/internal/infrastructure/registry"
	"artisan-connect.backend/internal/usecases"
)

func newCommunityRouter(t *testing.T) (*gin.Engine, *registry.UserRegistry, *registry.ContentRegistry) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := registry.NewUserRegistry()
	content := registry.NewContentRegistry()
	h := NewCommunityHandler(
		usecases.NewFeedUsecase(users, content),
		usecases.NewStatsUsecase(users, content),
	)

	r := gin.New()
	r.GET("/community/posts", h.Posts)
	r.GET("/community/stats", h.Stats)
	r.GET("/community/artisans", h.Artisans)
	return r, users, content
}

func seedCommunity(t *testing.T, users *registry.UserRegistry, content *registry.ContentRegistry, n int) {
	t.Helper()
	author, err := users.Create(context.Background(), &entities.User{
		Email:     "maya@x.com",
		Username:  "maya_crafts",
		FirstName: "Maya",
		LastName:  "Patel",
		Role:      entities.UserRoleMember,
		Status:    entities.UserStatusActive,
	})
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		_, err := content.CreatePost(context.Background(), &entities.Post{
			AuthorID: author.ID,
			Content:  "post content",
			Category: "pottery",
			Likes:    i,
		})
		require.NoError(t, err)
	}
}

func getPath(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCommunityHandler_Posts_DefaultReturnsAll(t *testing.T) {
	r, users, content := newCommunityRouter(t)
	seedCommunity(t, users, content, 3)

	w := getPath(r, "/community/posts")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"name":"Maya Patel"`)
	require.Contains(t, w.Body.String(), `"totalCount":3`)
	require.Contains(t, w.Body.String(), `"totalPages":1`)
}

func TestCommunityHandler_Posts_Pagination(t *testing.T) {
	r, users, content := newCommunityRouter(t)
	seedCommunity(t, users, content, 5)

	w := getPath(r, "/community/posts?page=2&limit=2")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"page":2`)
	require.Contains(t, w.Body.String(), `"limit":2`)
	require.Contains(t, w.Body.String(), `"totalCount":5`)
	require.Contains(t, w.Body.String(), `"totalPages":3`)
}

func TestCommunityHandler_Posts_SearchAndCategory(t *testing.T) {
	r, users, content := newCommunityRouter(t)
	seedCommunity(t, users, content, 1)

	w := getPath(r, "/community/posts?search=nomatch-term")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"totalCount":0`)

	w = getPath(r, "/community/posts?category=POTTERY")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"totalCount":1`)
}

func TestCommunityHandler_Stats(t *testing.T) {
	r, users, content := newCommunityRouter(t)
	seedCommunity(t, users, content, 2)

	w := getPath(r, "/community/stats")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"activeArtisans":1`)
	require.Contains(t, w.Body.String(), `"postsToday":2`)
	require.Contains(t, w.Body.String(), `"nftsMinted":0`)
}

func TestCommunityHandler_Artisans_ExcludesBanned(t *testing.T) {
	r, users, content := newCommunityRouter(t)
	seedCommunity(t, users, content, 0)

	_, err := users.Create(context.Background(), &entities.User{
		Email:    "banned@x.com",
		Username: "banned_user",
		Role:     entities.UserRoleMember,
		Status:   entities.UserStatusBanned,
	})
	require.NoError(t, err)

	w := getPath(r, "/community/artisans")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "maya_crafts")
	require.NotContains(t, w.Body.String(), "banned_user")
}
