package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// CraftStatus represents the listing status of a craft
type CraftStatus string

const (
	CraftStatusActive   CraftStatus = "active"
	CraftStatusInactive CraftStatus = "inactive"
)

// Craft represents a marketplace listing owned by a user
type Craft struct {
	ID          uuid.UUID   `json:"id"`
	OwnerID     uuid.UUID   `json:"ownerId"`
	Title       string      `json:"title"`
	Price       string      `json:"price"`
	Description string      `json:"description"`
	Status      CraftStatus `json:"status"`
	Likes       int         `json:"likes"`
	Comments    int         `json:"comments"`
	Views       int         `json:"views"`
	Tags        []string    `json:"tags"`
	AIScore     int         `json:"aiScore"`
	Suggestions []string    `json:"suggestions,omitempty"`
	// CanMint flips to false exactly once, when TokenID is assigned.
	CanMint   bool        `json:"canMintNFT"`
	TokenID   null.String `json:"tokenId,omitempty"`
	Category  string      `json:"category"`
	Images    []string    `json:"images"`
	MainImage string      `json:"mainImage"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Snapshot captures the craft summary embedded into its paired post.
func (c *Craft) Snapshot() *CraftSnapshot {
	tags := make([]string, len(c.Tags))
	copy(tags, c.Tags)
	images := make([]string, len(c.Images))
	copy(images, c.Images)
	return &CraftSnapshot{
		ID:          c.ID,
		Title:       c.Title,
		Price:       c.Price,
		Description: c.Description,
		Tags:        tags,
		AIScore:     c.AIScore,
		Images:      images,
		MainImage:   c.MainImage,
	}
}

// UploadCraftInput represents input for the craft upload flow
type UploadCraftInput struct {
	Title       string   `json:"title" binding:"required,min=1,max=200"`
	Price       string   `json:"price" binding:"required"`
	Description string   `json:"description" binding:"required"`
	FileNames   []string `json:"fileNames"`
}

// UploadCraftResponse carries both records created by one upload
type UploadCraftResponse struct {
	Craft   *Craft `json:"craft"`
	Post    *Post  `json:"post"`
	Message string `json:"message"`
}

// MintInput represents input for minting a craft
type MintInput struct {
	CraftID uuid.UUID `json:"craftId" binding:"required"`
}

// MintReceipt is the result of a successful mint
type MintReceipt struct {
	TokenID         string    `json:"tokenId"`
	ContractAddress string    `json:"contractAddress"`
	TransactionHash string    `json:"transactionHash"`
	CraftID         uuid.UUID `json:"craftId"`
	OwnerID         uuid.UUID `json:"ownerId"`
	Network         string    `json:"network"`
	MintedAt        time.Time `json:"mintedAt"`
}
