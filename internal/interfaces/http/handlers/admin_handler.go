package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"artisan-connect.backend/internal/domain/entities"
	domainerrors "artisan-connect.backend/internal/domain/errors"
	"artisan-connect.backend/internal/interfaces/http/response"
	"artisan-connect.backend/internal/usecases"
)

// AdminHandler handles administrative endpoints: account creation,
// registry snapshots and moderation actions.
type AdminHandler struct {
	authUsecase       *usecases.AuthUsecase
	moderationUsecase *usecases.ModerationUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(authUsecase *usecases.AuthUsecase, moderationUsecase *usecases.ModerationUsecase) *AdminHandler {
	return &AdminHandler{
		authUsecase:       authUsecase,
		moderationUsecase: moderationUsecase,
	}
}

// ListUsers returns the full user snapshot
// GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.moderationUsecase.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users})
}

// ListPosts returns the full post snapshot
// GET /api/v1/admin/posts
func (h *AdminHandler) ListPosts(c *gin.Context) {
	posts, err := h.moderationUsecase.ListPosts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"posts": posts})
}

// CreateUser creates an account on behalf of an administrator
// POST /api/v1/admin/users
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var input entities.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.authUsecase.CreateUser(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"success": true,
		"message": "User created successfully",
		"user":    user,
	})
}

// CreateAdmin creates an administrator, gated by the shared admin code
// POST /api/v1/admin/create-admin
func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var input entities.CreateAdminInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.authUsecase.CreateAdmin(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"success": true,
		"message": "Admin created successfully",
		"user":    user,
	})
}

// UserAction applies a moderation action to a user
// POST /api/v1/admin/user-action
func (h *AdminHandler) UserAction(c *gin.Context) {
	var input entities.UserActionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, err := uuid.Parse(input.UserID)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user id"))
		return
	}

	action, err := entities.ParseUserAction(input.Action)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.moderationUsecase.ApplyUserAction(c.Request.Context(), userID, action, input.Days); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"message": "User " + input.Action + " applied successfully",
	})
}

// PostAction applies a moderation action to a post
// POST /api/v1/admin/post-action
func (h *AdminHandler) PostAction(c *gin.Context) {
	var input entities.PostActionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	postID, err := uuid.Parse(input.PostID)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid post id"))
		return
	}

	action, err := entities.ParsePostAction(input.Action)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.moderationUsecase.ApplyPostAction(c.Request.Context(), postID, action); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"message": "Post " + input.Action + " applied successfully",
	})
}
