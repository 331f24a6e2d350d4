package usecases

import (
	"context"
	"time"

	"artisan-connect.backend/internal/domain/entities"
	"artisan-connect.backend/internal/domain/repositories"
)

// StatsUsecase computes derived community counters. Everything is
// recomputed from the registries on each call, nothing is cached.
type StatsUsecase struct {
	users   repositories.UserRegistry
	content repositories.ContentRegistry
	now     func() time.Time
}

// NewStatsUsecase creates a new stats usecase
func NewStatsUsecase(users repositories.UserRegistry, content repositories.ContentRegistry) *StatsUsecase {
	return &StatsUsecase{
		users:   users,
		content: content,
		now:     time.Now,
	}
}

// Compute derives the community counters from the current registry state
func (u *StatsUsecase) Compute(ctx context.Context) (*entities.CommunityStats, error) {
	users, err := u.users.List(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := u.content.ListActivePosts(ctx)
	if err != nil {
		return nil, err
	}
	crafts, err := u.content.ListCrafts(ctx)
	if err != nil {
		return nil, err
	}

	activeArtisans := 0
	for _, user := range users {
		if user.Status == entities.UserStatusActive && user.Role == entities.UserRoleMember {
			activeArtisans++
		}
	}

	// Calendar-date equality, not a rolling 24h window.
	today := u.now()
	y, m, d := today.Date()
	postsToday := 0
	for _, post := range posts {
		py, pm, pd := post.CreatedAt.Date()
		if py == y && pm == m && pd == d {
			postsToday++
		}
	}

	minted := 0
	totalCreations := 0
	totalViews := 0
	totalLikes := 0
	for _, craft := range crafts {
		if !craft.CanMint {
			minted++
		}
		if craft.Status == entities.CraftStatusActive {
			totalCreations++
		}
		totalViews += craft.Views
		totalLikes += craft.Likes
	}

	return &entities.CommunityStats{
		ActiveArtisans: activeArtisans,
		PostsToday:     postsToday,
		NFTsMinted:     minted,
		SuccessStories: activeArtisans * 30 / 100,
		TotalCreations: totalCreations,
		TotalViews:     totalViews,
		TotalLikes:     totalLikes,
	}, nil
}

// Artisans returns the active member profiles for the community page
func (u *StatsUsecase) Artisans(ctx context.Context) ([]*entities.User, error) {
	users, err := u.users.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*entities.User, 0, len(users))
	for _, user := range users {
		if user.Status == entities.UserStatusActive && user.Role == entities.UserRoleMember {
			out = append(out, user)
		}
	}
	return out, nil
}
