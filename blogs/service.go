package blogs

import (
	"context"

	"github.com/Zamizmi/fullstack-blogi/apperror"
)

// OwnershipRecorder mirrors a freshly created blog id onto the owning
// user's record. The user service satisfies it.
type OwnershipRecorder interface {
	RecordOwnership(ctx context.Context, userID, blogID int) error
}

// Service implements the record store operations and the ownership gate in
// front of the mutating ones.
type Service struct {
	repo  Repository
	users OwnershipRecorder
}

// NewService creates a blog Service.
func NewService(repo Repository, users OwnershipRecorder) *Service {
	return &Service{repo: repo, users: users}
}

// List returns all blogs with their owner summaries.
func (s *Service) List(ctx context.Context) ([]Blog, error) {
	return s.repo.List(ctx)
}

// Get returns a single blog by id.
func (s *Service) Get(ctx context.Context, id int) (*Blog, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the payload, persists the blog under the caller's
// ownership, and records the new id on the caller's user record.
func (s *Service) Create(ctx context.Context, callerID int, req NewBlogRequest) (*Blog, error) {
	if req.Title == "" || req.URL == "" {
		return nil, apperror.NewValidationError("title or url missing", nil)
	}

	likes := 0
	if req.Likes != nil {
		likes = *req.Likes
	}
	if likes < 0 {
		return nil, apperror.NewValidationError("likes must not be negative", nil)
	}

	blog := &Blog{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  likes,
		UserID: &callerID,
	}

	created, err := s.repo.Create(ctx, blog)
	if err != nil {
		return nil, err
	}

	if err := s.users.RecordOwnership(ctx, callerID, created.ID); err != nil {
		return nil, err
	}

	return created, nil
}

// Update merges the provided fields over the existing record and persists
// the result. It performs no authentication or ownership check whatsoever;
// see the route registration for why.
func (s *Service) Update(ctx context.Context, id int, req UpdateBlogRequest) (*Blog, error) {
	blog, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.Author != nil {
		blog.Author = *req.Author
	}
	if req.URL != nil {
		blog.URL = *req.URL
	}
	if req.Likes != nil {
		if *req.Likes < 0 {
			return nil, apperror.NewValidationError("likes must not be negative", nil)
		}
		blog.Likes = *req.Likes
	}

	return s.repo.Update(ctx, blog)
}

// Delete removes a blog if and only if the caller owns it. The comparison
// is integer identity of the owner id; a blog with no recorded owner never
// matches any caller. Ownership cannot change between the read and the
// delete because nothing ever reassigns it.
func (s *Service) Delete(ctx context.Context, callerID, id int) error {
	blog, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if blog.UserID == nil || *blog.UserID != callerID {
		return apperror.NewForbiddenError("you can only delete your own blogs", nil)
	}

	return s.repo.Delete(ctx, id)
}
