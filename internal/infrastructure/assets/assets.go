package assets

import (
	"context"
	"net/url"
)

// Store is the port to upload handling: it turns an uploaded asset into a
// display URL. File persistence itself lives outside the core.
type Store interface {
	DisplayURL(ctx context.Context, title, fileName string) (string, error)
}

// PlaceholderStore produces deterministic placeholder URLs instead of
// storing files, mirroring the product's stub upload pipeline.
type PlaceholderStore struct{}

// NewPlaceholderStore creates a placeholder asset store
func NewPlaceholderStore() *PlaceholderStore {
	return &PlaceholderStore{}
}

// DisplayURL returns a placeholder image URL labeled with the craft title
func (s *PlaceholderStore) DisplayURL(ctx context.Context, title, fileName string) (string, error) {
	label := title
	if len(label) > 20 {
		label = label[:20]
	}
	return "https://via.placeholder.com/400x400/6366f1/ffffff?text=" + url.QueryEscape(label), nil
}
