package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"artisan-connect.backend/internal/domain/entities"
	"artisan-connect.backend/internal/infrastructure/ai"
	"artisan-connect.backend/internal/infrastructure/assets"
	"artisan-connect.backend/internal/infrastructure/registry"
	"artisan-connect.backend/internal/interfaces/http/middleware"
	"artisan-connect.backend/internal/usecases"
	"artisan-connect.backend/pkg/jwt"
)

func newCraftRouter(t *testing.T) (*gin.Engine, *registry.UserRegistry, *registry.ContentRegistry, *jwt.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := registry.NewUserRegistry()
	content := registry.NewContentRegistry()
	jwtSvc := jwt.NewJWTService("test-secret", time.Hour, 2*time.Hour)

	craftUC := usecases.NewCraftUsecase(
		users,
		content,
		ai.NewSimulatedReviewer(1),
		assets.NewPlaceholderStore(),
		usecases.ZeroEngagementSeeder{},
	)
	craftH := NewCraftHandler(craftUC)
	nftH := NewNFTHandler(usecases.NewMintUsecase(content))

	r := gin.New()
	authed := r.Group("/", middleware.AuthMiddleware(jwtSvc))
	authed.POST("/crafts/upload", craftH.Upload)
	authed.GET("/crafts/mine", craftH.ListMine)
	authed.POST("/nft/mint", nftH.Mint)
	return r, users, content, jwtSvc
}

func bearerFor(t *testing.T, jwtSvc *jwt.JWTService, user *entities.User) string {
	t.Helper()
	pair, err := jwtSvc.GenerateTokenPair(user.ID, user.Username, string(user.Role))
	require.NoError(t, err)
	return "Bearer " + pair.AccessToken
}

func authedJSON(r *gin.Engine, method, path, bearer, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCraftHandler_UploadThenMint(t *testing.T) {
	r, users, _, jwtSvc := newCraftRouter(t)

	owner, err := users.Create(context.Background(), &entities.User{
		Email:     "maya@x.com",
		Username:  "maya_crafts",
		FirstName: "Maya",
		Role:      entities.UserRoleMember,
		Status:    entities.UserStatusActive,
	})
	require.NoError(t, err)
	bearer := bearerFor(t, jwtSvc, owner)

	w := authedJSON(r, http.MethodPost, "/crafts/upload", bearer,
		`{"title":"Bandhani Dupatta","price":"2500","description":"Hand-tied in Kutch"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var uploaded struct {
		Craft struct {
			ID      string `json:"id"`
			CanMint bool   `json:"canMintNFT"`
		} `json:"craft"`
		Post struct {
			Content string `json:"content"`
		} `json:"post"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &uploaded))
	require.True(t, uploaded.Craft.CanMint)
	require.Equal(t, "Just finished this beautiful bandhani dupatta! Hand-tied in Kutch", uploaded.Post.Content)

	w = authedJSON(r, http.MethodGet, "/crafts/mine", bearer, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Bandhani Dupatta")

	w = authedJSON(r, http.MethodPost, "/nft/mint", bearer,
		`{"craftId":"`+uploaded.Craft.ID+`"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"tokenId":"nft-`)
	require.Contains(t, w.Body.String(), `"network":"Ethereum"`)

	// second mint of the same craft must fail
	w = authedJSON(r, http.MethodPost, "/nft/mint", bearer,
		`{"craftId":"`+uploaded.Craft.ID+`"}`)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestCraftHandler_UploadValidation(t *testing.T) {
	r, users, _, jwtSvc := newCraftRouter(t)

	owner, err := users.Create(context.Background(), &entities.User{
		Email:    "maya@x.com",
		Username: "maya_crafts",
		Status:   entities.UserStatusActive,
	})
	require.NoError(t, err)
	bearer := bearerFor(t, jwtSvc, owner)

	w := authedJSON(r, http.MethodPost, "/crafts/upload", bearer, "{")
	require.Equal(t, http.StatusBadRequest, w.Code)

	// whitespace-only fields pass binding but fail the usecase check
	w = authedJSON(r, http.MethodPost, "/crafts/upload", bearer,
		`{"title":"  ","price":"2500","description":"x"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCraftHandler_RequiresAuth(t *testing.T) {
	r, _, _, _ := newCraftRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/crafts/upload", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNFTHandler_MintUnknownCraft(t *testing.T) {
	r, users, _, jwtSvc := newCraftRouter(t)

	owner, err := users.Create(context.Background(), &entities.User{
		Email:    "maya@x.com",
		Username: "maya_crafts",
		Status:   entities.UserStatusActive,
	})
	require.NoError(t, err)
	bearer := bearerFor(t, jwtSvc, owner)

	w := authedJSON(r, http.MethodPost, "/nft/mint", bearer,
		`{"craftId":"aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = authedJSON(r, http.MethodPost, "/nft/mint", bearer, `{"craftId":"not-a-uuid"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
