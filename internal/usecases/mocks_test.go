package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"artisan-connect.backend/internal/domain/entities"
)

// MockUserRegistry is a testify mock of repositories.UserRegistry
type MockUserRegistry struct {
	mock.Mock
}

func (m *MockUserRegistry) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRegistry) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRegistry) GetByEmailOrUsername(ctx context.Context, identifier string) (*entities.User, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRegistry) List(ctx context.Context) ([]*entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *MockUserRegistry) SetStatus(ctx context.Context, id uuid.UUID, status entities.UserStatus, restrictedUntil *time.Time) error {
	args := m.Called(ctx, id, status, restrictedUntil)
	return args.Error(0)
}

func (m *MockUserRegistry) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockContentRegistry is a testify mock of repositories.ContentRegistry
type MockContentRegistry struct {
	mock.Mock
}

func (m *MockContentRegistry) CreatePost(ctx context.Context, post *entities.Post) (*entities.Post, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Post), args.Error(1)
}

func (m *MockContentRegistry) GetPost(ctx context.Context, id uuid.UUID) (*entities.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Post), args.Error(1)
}

func (m *MockContentRegistry) ListPosts(ctx context.Context) ([]*entities.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Post), args.Error(1)
}

func (m *MockContentRegistry) ListActivePosts(ctx context.Context) ([]*entities.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Post), args.Error(1)
}

func (m *MockContentRegistry) SetPostStatus(ctx context.Context, id uuid.UUID, status entities.PostStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockContentRegistry) DeletePost(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentRegistry) CreateCraft(ctx context.Context, craft *entities.Craft) (*entities.Craft, error) {
	args := m.Called(ctx, craft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Craft), args.Error(1)
}

func (m *MockContentRegistry) GetCraft(ctx context.Context, id uuid.UUID) (*entities.Craft, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Craft), args.Error(1)
}

func (m *MockContentRegistry) ListCraftsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Craft, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Craft), args.Error(1)
}

func (m *MockContentRegistry) ListCrafts(ctx context.Context) ([]*entities.Craft, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Craft), args.Error(1)
}

func (m *MockContentRegistry) ClaimMint(ctx context.Context, craftID uuid.UUID, tokenID string) (*entities.Craft, error) {
	args := m.Called(ctx, craftID, tokenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Craft), args.Error(1)
}
