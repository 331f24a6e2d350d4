package usecases

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"artisan-connect.backend/internal/domain/entities"
	domainerrors "artisan-connect.backend/internal/domain/errors"
	"artisan-connect.backend/internal/domain/repositories"
	"artisan-connect.backend/internal/infrastructure/ai"
	"artisan-connect.backend/internal/infrastructure/assets"
	"artisan-connect.backend/pkg/logger"
)

// CraftUsecase handles the craft upload flow: one upload creates exactly
// one craft and one community post carrying its snapshot.
type CraftUsecase struct {
	users    repositories.UserRegistry
	content  repositories.ContentRegistry
	reviewer ai.Reviewer
	assets   assets.Store
	seeder   EngagementSeeder
}

// NewCraftUsecase creates a new craft usecase
func NewCraftUsecase(
	users repositories.UserRegistry,
	content repositories.ContentRegistry,
	reviewer ai.Reviewer,
	assetStore assets.Store,
	seeder EngagementSeeder,
) *CraftUsecase {
	return &CraftUsecase{
		users:    users,
		content:  content,
		reviewer: reviewer,
		assets:   assetStore,
		seeder:   seeder,
	}
}

// Upload creates a craft and its paired community post for the caller.
// The post embeds a snapshot of the craft captured now; later craft
// changes (minting included) do not touch it.
func (u *CraftUsecase) Upload(ctx context.Context, ownerID uuid.UUID, input *entities.UploadCraftInput) (*entities.UploadCraftResponse, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Price) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, domainerrors.BadRequest("missing required fields")
	}

	owner, err := u.users.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	images := make([]string, 0, len(input.FileNames))
	for _, name := range input.FileNames {
		url, err := u.assets.DisplayURL(ctx, input.Title, name)
		if err != nil {
			return nil, err
		}
		images = append(images, url)
	}
	if len(images) == 0 {
		url, err := u.assets.DisplayURL(ctx, input.Title, "")
		if err != nil {
			return nil, err
		}
		images = append(images, url)
	}

	review, err := u.reviewer.ReviewCraft(ctx, input.Title, input.Description)
	if err != nil {
		return nil, err
	}

	likes, comments, views := u.seeder.SeedCraft()
	craft := &entities.Craft{
		OwnerID:     owner.ID,
		Title:       input.Title,
		Price:       input.Price,
		Description: input.Description,
		Status:      entities.CraftStatusActive,
		Likes:       likes,
		Comments:    comments,
		Views:       views,
		Tags:        craftTags(input.Title),
		AIScore:     review.Score,
		Suggestions: review.Suggestions,
		CanMint:     true,
		Category:    "Handmade",
		Images:      images,
		MainImage:   images[0],
	}

	createdCraft, err := u.content.CreateCraft(ctx, craft)
	if err != nil {
		return nil, err
	}

	pLikes, pComments, pShares, pViews := u.seeder.SeedPost()
	post := &entities.Post{
		AuthorID: owner.ID,
		Content:  "Just finished this beautiful " + strings.ToLower(input.Title) + "! " + input.Description,
		Category: "Handmade",
		Status:   entities.PostStatusActive,
		Likes:    pLikes,
		Comments: pComments,
		Shares:   pShares,
		Views:    pViews,
		Hashtags: postHashtags(input.Title),
		Craft:    createdCraft.Snapshot(),
	}

	createdPost, err := u.content.CreatePost(ctx, post)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "craft uploaded",
		zap.String("craft_id", createdCraft.ID.String()),
		zap.String("post_id", createdPost.ID.String()),
		zap.String("owner_id", owner.ID.String()),
	)

	return &entities.UploadCraftResponse{
		Craft:   createdCraft,
		Post:    createdPost,
		Message: "Craft uploaded successfully and shared to community",
	}, nil
}

// ListByOwner returns the caller's crafts
func (u *CraftUsecase) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Craft, error) {
	return u.content.ListCraftsByOwner(ctx, ownerID)
}

func craftTags(title string) []string {
	return []string{"#Handmade", "#" + firstWord(title), "#ArtisanMade"}
}

func postHashtags(title string) []string {
	return []string{"#Handmade", "#ArtisanMade", "#" + firstWord(title), "#Craft", "#Traditional", "#Creative"}
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return s
	}
	return fields[0]
}
