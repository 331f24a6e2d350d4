package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"artisan-connect.backend/internal/domain/entities"
	domainerrors "artisan-connect.backend/internal/domain/errors"
	"artisan-connect.backend/internal/interfaces/http/middleware"
	"artisan-connect.backend/internal/interfaces/http/response"
	"artisan-connect.backend/internal/usecases"
)

// CraftHandler handles craft upload and listing endpoints
type CraftHandler struct {
	craftUsecase *usecases.CraftUsecase
}

// NewCraftHandler creates a new craft handler
func NewCraftHandler(craftUsecase *usecases.CraftUsecase) *CraftHandler {
	return &CraftHandler{craftUsecase: craftUsecase}
}

// Upload creates a craft and its paired community post
// POST /api/v1/crafts/upload
func (h *CraftHandler) Upload(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	var input entities.UploadCraftInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	resp, err := h.craftUsecase.Upload(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// ListMine returns the caller's crafts
// GET /api/v1/crafts/mine
func (h *CraftHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	crafts, err := h.craftUsecase.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"creations": crafts})
}
