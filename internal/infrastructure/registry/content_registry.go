package registry

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"artisan-connect.backend/internal/domain/entities"
	domainerrors "artisan-connect.backend/internal/domain/errors"
	"artisan-connect.backend/internal/domain/repositories"
)

// ContentRegistry is the in-memory post and craft store. One RWMutex covers
// both collections; at this scale the coarse lock is the whole concurrency
// story, including the mint claim.
type ContentRegistry struct {
	mu     sync.RWMutex
	posts  []*entities.Post
	crafts []*entities.Craft
}

// NewContentRegistry creates an empty content registry
func NewContentRegistry() *ContentRegistry {
	return &ContentRegistry{}
}

var _ repositories.ContentRegistry = (*ContentRegistry)(nil)

// CreatePost inserts a new post. Counter seeds come from the caller (the
// upload flow seeds pseudo-engagement); negative seeds are rejected so the
// never-negative invariant holds from the first write.
func (r *ContentRegistry) CreatePost(ctx context.Context, post *entities.Post) (*entities.Post, error) {
	if post.Likes < 0 || post.Comments < 0 || post.Shares < 0 || post.Views < 0 {
		return nil, domainerrors.ErrValidation
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := clonePost(post)
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	if stored.Status == "" {
		stored.Status = entities.PostStatusActive
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	r.posts = append(r.posts, stored)

	return clonePost(stored), nil
}

// GetPost returns a copy of the post with the given id
func (r *ContentRegistry) GetPost(ctx context.Context, id uuid.UUID) (*entities.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p := r.findPostLocked(id)
	if p == nil {
		return nil, domainerrors.ErrNotFound
	}
	return clonePost(p), nil
}

// ListPosts returns a snapshot of all posts in insertion order
func (r *ContentRegistry) ListPosts(ctx context.Context) ([]*entities.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, clonePost(p))
	}
	return out, nil
}

// ListActivePosts returns a snapshot of posts with status active. The
// snapshot is taken under one read lock so it never reflects half of an
// in-flight write.
func (r *ContentRegistry) ListActivePosts(ctx context.Context) ([]*entities.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.Post, 0, len(r.posts))
	for _, p := range r.posts {
		if p.Status == entities.PostStatusActive {
			out = append(out, clonePost(p))
		}
	}
	return out, nil
}

// SetPostStatus transitions the post's moderation status atomically
func (r *ContentRegistry) SetPostStatus(ctx context.Context, id uuid.UUID, status entities.PostStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.findPostLocked(id)
	if p == nil {
		return domainerrors.ErrNotFound
	}
	p.Status = status
	return nil
}

// DeletePost removes the post permanently. The originating craft, if any,
// is not touched: no cascade on mint eligibility or status.
func (r *ContentRegistry) DeletePost(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.posts {
		if p.ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return domainerrors.ErrNotFound
}

// CreateCraft inserts a new craft, eligible to mint until claimed
func (r *ContentRegistry) CreateCraft(ctx context.Context, craft *entities.Craft) (*entities.Craft, error) {
	if craft.Likes < 0 || craft.Comments < 0 || craft.Views < 0 {
		return nil, domainerrors.ErrValidation
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneCraft(craft)
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	if stored.Status == "" {
		stored.Status = entities.CraftStatusActive
	}
	stored.CanMint = true
	stored.TokenID = null.String{}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	r.crafts = append(r.crafts, stored)

	return cloneCraft(stored), nil
}

// GetCraft returns a copy of the craft with the given id
func (r *ContentRegistry) GetCraft(ctx context.Context, id uuid.UUID) (*entities.Craft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := r.findCraftLocked(id)
	if c == nil {
		return nil, domainerrors.ErrNotFound
	}
	return cloneCraft(c), nil
}

// ListCraftsByOwner returns a snapshot of the owner's crafts in insertion order
func (r *ContentRegistry) ListCraftsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Craft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.Craft, 0)
	for _, c := range r.crafts {
		if c.OwnerID == ownerID {
			out = append(out, cloneCraft(c))
		}
	}
	return out, nil
}

// ListCrafts returns a snapshot of all crafts in insertion order
func (r *ContentRegistry) ListCrafts(ctx context.Context) ([]*entities.Craft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.Craft, 0, len(r.crafts))
	for _, c := range r.crafts {
		out = append(out, cloneCraft(c))
	}
	return out, nil
}

// ClaimMint performs the check-then-set of the eligibility flag as one step
// under the write lock. Exactly one concurrent claim per craft can succeed;
// after any outcome the flag is false and a token id is present.
func (r *ContentRegistry) ClaimMint(ctx context.Context, craftID uuid.UUID, tokenID string) (*entities.Craft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.findCraftLocked(craftID)
	if c == nil {
		return nil, domainerrors.ErrNotFound
	}
	if !c.CanMint {
		return nil, domainerrors.ErrNotEligible
	}

	c.CanMint = false
	c.TokenID = null.StringFrom(tokenID)
	return cloneCraft(c), nil
}

func (r *ContentRegistry) findPostLocked(id uuid.UUID) *entities.Post {
	for _, p := range r.posts {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (r *ContentRegistry) findCraftLocked(id uuid.UUID) *entities.Craft {
	for _, c := range r.crafts {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func clonePost(p *entities.Post) *entities.Post {
	c := *p
	c.Hashtags = append([]string(nil), p.Hashtags...)
	if p.Craft != nil {
		snap := *p.Craft
		snap.Tags = append([]string(nil), p.Craft.Tags...)
		snap.Images = append([]string(nil), p.Craft.Images...)
		c.Craft = &snap
	}
	return &c
}

func cloneCraft(cr *entities.Craft) *entities.Craft {
	c := *cr
	c.Tags = append([]string(nil), cr.Tags...)
	c.Suggestions = append([]string(nil), cr.Suggestions...)
	c.Images = append([]string(nil), cr.Images...)
	return &c
}
