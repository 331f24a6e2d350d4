package entities

import (
	"time"

	"github.com/google/uuid"
)

// PostStatus represents the moderation status of a community post
type PostStatus string

const (
	PostStatusActive PostStatus = "active"
	PostStatusBanned PostStatus = "banned"
)

// CraftSnapshot is the denormalized craft summary embedded in a post at
// creation time. It is never live-updated when the craft changes.
type CraftSnapshot struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Price       string    `json:"price"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	AIScore     int       `json:"aiScore"`
	Images      []string  `json:"images"`
	MainImage   string    `json:"mainImage"`
}

// Post represents a community feed entry
type Post struct {
	ID        uuid.UUID      `json:"id"`
	AuthorID  uuid.UUID      `json:"authorId"`
	Content   string         `json:"content"`
	Category  string         `json:"category"`
	Status    PostStatus     `json:"status"`
	Likes     int            `json:"likes"`
	Comments  int            `json:"comments"`
	Shares    int            `json:"shares"`
	Views     int            `json:"views"`
	Hashtags  []string       `json:"hashtags"`
	Craft     *CraftSnapshot `json:"craft,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Engagement is the feed ranking key.
func (p *Post) Engagement() int {
	return p.Likes + p.Comments
}

// FeedAuthor is the flattened author view carried by a feed item
type FeedAuthor struct {
	Name      string `json:"name"`
	Location  string `json:"location"`
	Specialty string `json:"specialty"`
	Avatar    string `json:"avatar"`
	Verified  bool   `json:"verified"`
}

// FeedItem is a value view of a post joined with its author, returned by
// the feed composer. It never aliases a live registry record.
type FeedItem struct {
	ID        uuid.UUID      `json:"id"`
	Author    FeedAuthor     `json:"author"`
	Content   string         `json:"content"`
	Category  string         `json:"category"`
	Likes     int            `json:"likes"`
	Comments  int            `json:"comments"`
	Shares    int            `json:"shares"`
	Views     int            `json:"views"`
	Hashtags  []string       `json:"hashtags"`
	Type      string         `json:"type"`
	Craft     *CraftSnapshot `json:"craft,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// CommunityStats holds the derived community counters
type CommunityStats struct {
	ActiveArtisans int `json:"activeArtisans"`
	PostsToday     int `json:"postsToday"`
	NFTsMinted     int `json:"nftsMinted"`
	SuccessStories int `json:"successStories"`
	TotalCreations int `json:"totalCreations"`
	TotalViews     int `json:"totalViews"`
	TotalLikes     int `json:"totalLikes"`
}
