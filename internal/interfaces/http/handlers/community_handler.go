package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"artisan-connect.backend/internal/interfaces/http/response"
	"artisan-connect.backend/internal/usecases"
	"artisan-connect.backend/pkg/utils"
)

// CommunityHandler handles the public community read endpoints
type CommunityHandler struct {
	feedUsecase  *usecases.FeedUsecase
	statsUsecase *usecases.StatsUsecase
}

// NewCommunityHandler creates a new community handler
func NewCommunityHandler(feedUsecase *usecases.FeedUsecase, statsUsecase *usecases.StatsUsecase) *CommunityHandler {
	return &CommunityHandler{
		feedUsecase:  feedUsecase,
		statsUsecase: statsUsecase,
	}
}

// Posts returns the composed community feed
// GET /api/v1/community/posts?search=&category=&page=&limit=
func (h *CommunityHandler) Posts(c *gin.Context) {
	items, err := h.feedUsecase.Compose(c.Request.Context(), c.Query("search"), c.Query("category"))
	if err != nil {
		response.Error(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	params := utils.GetPaginationParams(page, limit)

	response.Success(c, http.StatusOK, gin.H{
		"posts":      utils.Slice(items, params),
		"pagination": utils.CalculateMeta(len(items), params.Page, params.Limit),
	})
}

// Stats returns the derived community counters
// GET /api/v1/community/stats
func (h *CommunityHandler) Stats(c *gin.Context) {
	stats, err := h.statsUsecase.Compute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

// Artisans returns the active member profiles
// GET /api/v1/community/artisans
func (h *CommunityHandler) Artisans(c *gin.Context) {
	artisans, err := h.statsUsecase.Artisans(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"artisans": artisans})
}
