package repositories

import (
	"context"

	"github.com/google/uuid"
	"artisan-connect.backend/internal/domain/entities"
)

// ContentRegistry owns all post and craft records for the process. Same
// contract as UserRegistry: per-record atomic mutation, snapshot reads.
type ContentRegistry interface {
	CreatePost(ctx context.Context, post *entities.Post) (*entities.Post, error)
	GetPost(ctx context.Context, id uuid.UUID) (*entities.Post, error)
	ListPosts(ctx context.Context) ([]*entities.Post, error)
	ListActivePosts(ctx context.Context) ([]*entities.Post, error)
	SetPostStatus(ctx context.Context, id uuid.UUID, status entities.PostStatus) error
	DeletePost(ctx context.Context, id uuid.UUID) error

	CreateCraft(ctx context.Context, craft *entities.Craft) (*entities.Craft, error)
	GetCraft(ctx context.Context, id uuid.UUID) (*entities.Craft, error)
	ListCraftsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Craft, error)
	ListCrafts(ctx context.Context) ([]*entities.Craft, error)

	// ClaimMint atomically checks eligibility and records the token id.
	// Concurrent claims on the same craft yield exactly one success; the
	// rest fail with ErrNotEligible.
	ClaimMint(ctx context.Context, craftID uuid.UUID, tokenID string) (*entities.Craft, error)
}
