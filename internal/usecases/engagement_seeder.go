package usecases

import (
	"math/rand"
	"sync"
)

// EngagementSeeder supplies the initial engagement counters for a freshly
// uploaded craft and its paired post. Seeding is a product choice, not a
// correctness requirement; counters must only be non-negative.
type EngagementSeeder interface {
	SeedCraft() (likes, comments, views int)
	SeedPost() (likes, comments, shares, views int)
}

// RandomEngagementSeeder reproduces the product's pseudo-engagement ranges
type RandomEngagementSeeder struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomEngagementSeeder creates a seeder with the given seed
func NewRandomEngagementSeeder(seed int64) *RandomEngagementSeeder {
	return &RandomEngagementSeeder{rng: rand.New(rand.NewSource(seed))}
}

// SeedCraft returns likes in [5,24], comments in [1,10], views in [20,119]
func (s *RandomEngagementSeeder) SeedCraft() (int, int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(20) + 5, s.rng.Intn(10) + 1, s.rng.Intn(100) + 20
}

// SeedPost returns likes in [3,17], comments in [1,8], shares in [1,5],
// views in [10,59]
func (s *RandomEngagementSeeder) SeedPost() (int, int, int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(15) + 3, s.rng.Intn(8) + 1, s.rng.Intn(5) + 1, s.rng.Intn(50) + 10
}

// ZeroEngagementSeeder starts every counter at zero
type ZeroEngagementSeeder struct{}

// SeedCraft returns all-zero craft counters
func (ZeroEngagementSeeder) SeedCraft() (int, int, int) { return 0, 0, 0 }

// SeedPost returns all-zero post counters
func (ZeroEngagementSeeder) SeedPost() (int, int, int, int) { return 0, 0, 0, 0 }
