package ai

import (
	"context"
	"math/rand"
	"sync"
)

// CraftReview is the generative collaborator's verdict on an uploaded craft
type CraftReview struct {
	Score       int
	Suggestions []string
}

// Reviewer is the port to the external generative-text service. The core
// treats it as an opaque score/describe function that may fail.
type Reviewer interface {
	ReviewCraft(ctx context.Context, title, description string) (*CraftReview, error)
}

// SimulatedReviewer stands in for the real service: scores land in the
// 75-95 band and suggestions come from a fixed pool, matching the product's
// stub behavior.
type SimulatedReviewer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulatedReviewer creates a reviewer with the given seed
func NewSimulatedReviewer(seed int64) *SimulatedReviewer {
	return &SimulatedReviewer{rng: rand.New(rand.NewSource(seed))}
}

var defaultSuggestions = []string{
	"Consider adding more detailed photos",
	"Highlight unique crafting techniques",
	"Add seasonal collection tags",
}

// ReviewCraft returns a simulated quality score and improvement suggestions
func (r *SimulatedReviewer) ReviewCraft(ctx context.Context, title, description string) (*CraftReview, error) {
	r.mu.Lock()
	score := 75 + r.rng.Intn(21)
	r.mu.Unlock()

	suggestions := make([]string, len(defaultSuggestions))
	copy(suggestions, defaultSuggestions)

	return &CraftReview{Score: score, Suggestions: suggestions}, nil
}
