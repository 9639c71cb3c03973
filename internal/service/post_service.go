package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"blogapi/internal/cache"
	apperrors "blogapi/internal/errors"
	"blogapi/internal/model"
	"blogapi/internal/repository"
)

const postCacheTTL = 5 * time.Minute

// PostUpdate is the whitelisted set of fields an owner may replace.
// OwnerID is deliberately absent; ownership never transfers.
type PostUpdate struct {
	Title   string
	Content string
	Image   string
}

// PostService exposes post CRUD with ownership enforcement.
type PostService interface {
	ListPosts(ctx context.Context) ([]model.Post, error)
	GetPost(ctx context.Context, id uuid.UUID) (*model.Post, error)
	CreatePost(ctx context.Context, ownerID uuid.UUID, title, content, image string) (*model.Post, error)
	UpdatePost(ctx context.Context, actorID, postID uuid.UUID, update PostUpdate) (*model.Post, error)
	DeletePost(ctx context.Context, actorID, postID uuid.UUID) error
}

type postService struct {
	posts repository.PostRepository
	users repository.UserRepository
	cache *cache.Client
}

// NewPostService builds a PostService with repositories and cache.
func NewPostService(posts repository.PostRepository, users repository.UserRepository, cache *cache.Client) PostService {
	return &postService{posts: posts, users: users, cache: cache}
}

func (s *postService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("post:%s", id)
}

func (s *postService) ListPosts(ctx context.Context) ([]model.Post, error) {
	return s.posts.List(ctx)
}

// GetPost returns a post by id, serving from cache when possible.
func (s *postService) GetPost(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	var cached model.Post
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}

	s.cache.SetJSON(ctx, s.cacheKey(id), post, postCacheTTL)
	return post, nil
}

// CreatePost persists a new post owned by ownerID. The owner must still
// exist; a stale token referencing a deleted user cannot create posts.
func (s *postService) CreatePost(ctx context.Context, ownerID uuid.UUID, title, content, image string) (*model.Post, error) {
	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find owner: %w", err)
	}

	post := &model.Post{
		ID:      uuid.New(),
		Title:   title,
		Content: content,
		Image:   image,
		OwnerID: ownerID,
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	return post, nil
}

// UpdatePost replaces the whitelisted fields of a post. Only the owner
// may update; the check runs against a fresh read every time.
func (s *postService) UpdatePost(ctx context.Context, actorID, postID uuid.UUID, update PostUpdate) (*model.Post, error) {
	post, err := s.fetchOwned(ctx, actorID, postID)
	if err != nil {
		return nil, err
	}

	post.Title = update.Title
	post.Content = update.Content
	post.Image = update.Image
	if post.Image == "" {
		post.Image = model.DefaultPostImage
	}

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(postID))
	return post, nil
}

// DeletePost removes a post after the same ownership check as UpdatePost.
func (s *postService) DeletePost(ctx context.Context, actorID, postID uuid.UUID) error {
	post, err := s.fetchOwned(ctx, actorID, postID)
	if err != nil {
		return err
	}

	if err := s.posts.Delete(ctx, post.ID); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(postID))
	return nil
}

// fetchOwned reads the post directly from the store (never the cache,
// ownership must not be decided on stale data) and verifies the actor
// owns it.
func (s *postService) fetchOwned(ctx context.Context, actorID, postID uuid.UUID) (*model.Post, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}

	if post.OwnerID != actorID {
		return nil, apperrors.ErrNotPostOwner
	}

	return post, nil
}
