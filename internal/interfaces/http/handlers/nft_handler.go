package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"artisan-connect.backend/internal/domain/entities"
	domainerrors "artisan-connect.backend/internal/domain/errors"
	"artisan-connect.backend/internal/interfaces/http/response"
	"artisan-connect.backend/internal/usecases"
)

// NFTHandler handles the simulated mint endpoint
type NFTHandler struct {
	mintUsecase *usecases.MintUsecase
}

// NewNFTHandler creates a new NFT handler
func NewNFTHandler(mintUsecase *usecases.MintUsecase) *NFTHandler {
	return &NFTHandler{mintUsecase: mintUsecase}
}

// Mint mints a craft at most once
// POST /api/v1/nft/mint
func (h *NFTHandler) Mint(c *gin.Context) {
	var input entities.MintInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	receipt, err := h.mintUsecase.MintCraft(c.Request.Context(), input.CraftID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"nft":     receipt,
		"message": "NFT minted successfully!",
	})
}
