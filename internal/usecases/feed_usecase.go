package usecases

import (
	"context"
	"errors"
	"sort"
	"strings"

	"artisan-connect.backend/internal/domain/entities"
	domainerrors "artisan-connect.backend/internal/domain/errors"
	"artisan-connect.backend/internal/domain/repositories"
)

// FeedUsecase is the read-only feed composer: it joins active posts with
// their authors, filters, ranks and flattens them into value items.
type FeedUsecase struct {
	users   repositories.UserRegistry
	content repositories.ContentRegistry
}

// NewFeedUsecase creates a new feed usecase
func NewFeedUsecase(users repositories.UserRegistry, content repositories.ContentRegistry) *FeedUsecase {
	return &FeedUsecase{users: users, content: content}
}

// Compose builds the ranked feed. A post is dropped when its status is not
// active or its author no longer resolves (deleted user, dangling id).
// searchTerm matches content, author display name, craft title and
// hashtags case-insensitively; category is an exact case-insensitive match.
func (u *FeedUsecase) Compose(ctx context.Context, searchTerm, category string) ([]*entities.FeedItem, error) {
	posts, err := u.content.ListActivePosts(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*entities.FeedItem, 0, len(posts))
	for _, post := range posts {
		author, err := u.users.GetByID(ctx, post.AuthorID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				continue
			}
			return nil, err
		}

		if category != "" && !strings.EqualFold(post.Category, category) {
			continue
		}
		if searchTerm != "" && !matchesSearch(post, author.DisplayName(), searchTerm) {
			continue
		}
		items = append(items, buildFeedItem(post, author))
	}

	// Engagement descending, newest first on ties. SliceStable keeps equal
	// keys deterministic.
	sort.SliceStable(items, func(i, j int) bool {
		ei := items[i].Likes + items[i].Comments
		ej := items[j].Likes + items[j].Comments
		if ei != ej {
			return ei > ej
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	return items, nil
}

func buildFeedItem(post *entities.Post, author *entities.User) *entities.FeedItem {
	specialty := "Artisan"
	if len(author.Profile.Specialties) > 0 {
		specialty = author.Profile.Specialties[0]
	}
	location := author.Profile.Location
	if location == "" {
		location = "India"
	}

	itemType := "discussion"
	if post.Craft != nil {
		itemType = "creation"
	}

	name := author.DisplayName()
	return &entities.FeedItem{
		ID: post.ID,
		Author: entities.FeedAuthor{
			Name:      name,
			Location:  location,
			Specialty: specialty,
			Avatar:    avatarInitials(name),
			Verified:  true,
		},
		Content:   post.Content,
		Category:  post.Category,
		Likes:     post.Likes,
		Comments:  post.Comments,
		Shares:    post.Shares,
		Views:     post.Views,
		Hashtags:  append([]string(nil), post.Hashtags...),
		Type:      itemType,
		Craft:     post.Craft,
		CreatedAt: post.CreatedAt,
	}
}

func matchesSearch(post *entities.Post, authorName, term string) bool {
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(post.Content), term) {
		return true
	}
	if strings.Contains(strings.ToLower(authorName), term) {
		return true
	}
	if post.Craft != nil && strings.Contains(strings.ToLower(post.Craft.Title), term) {
		return true
	}
	for _, tag := range post.Hashtags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func avatarInitials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		r := []rune(part)
		if len(r) > 0 {
			b.WriteRune(r[0])
		}
	}
	return b.String()
}
