package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/boardflab/boardflab-backend/internal/common"
	"github.com/boardflab/boardflab-backend/internal/domain"
	"github.com/boardflab/boardflab-backend/internal/repository"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// PostService business logic for posts.
// username is the authenticated caller; an empty string means anonymous.
type PostService interface {
	CreatePost(ctx context.Context, req *domain.CreatePostRequest, username string) (uint64, error)
	ListPosts(ctx context.Context, req *domain.ListPostsRequest) ([]*domain.PostSummary, error)
	GetPost(ctx context.Context, postID uint64, username string) (*domain.PostDetail, error)
	UpdatePost(ctx context.Context, postID uint64, req *domain.UpdatePostRequest, username string) error
	DeletePost(ctx context.Context, postID uint64, req *domain.DeletePostRequest, username string) error
	IsLoginRequired(ctx context.Context, postID uint64) (bool, error)
}

type postService struct {
	posts  repository.PostRepository
	users  repository.UserRepository
	boards repository.BoardRepository
	images repository.ImageRepository
}

// NewPostService creates a new PostService
func NewPostService(
	posts repository.PostRepository,
	users repository.UserRepository,
	boards repository.BoardRepository,
	images repository.ImageRepository,
) PostService {
	return &postService{posts: posts, users: users, boards: boards, images: images}
}

// CreatePost creates a post and returns its ID.
// A caller that resolves to a user writes a member post; anyone else must
// supply a guest nickname and password.
func (s *postService) CreatePost(ctx context.Context, req *domain.CreatePostRequest, username string) (uint64, error) {
	userID, err := s.resolveUserID(ctx, username)
	if err != nil {
		return 0, err
	}

	if _, err := s.boards.FindByID(ctx, req.BoardID); err != nil {
		return 0, err
	}

	var author domain.Author
	if userID != 0 {
		if req.HasGuestCredentials() {
			return 0, common.ErrInvalidInput
		}
		author, err = domain.NewMemberAuthor(userID)
	} else {
		author, err = domain.NewGuestAuthor(req.NonMemNick, req.NonMemPw)
	}
	if errors.Is(err, domain.ErrInvalidAuthor) {
		return 0, common.ErrInvalidInput
	}
	if err != nil {
		return 0, fmt.Errorf("build author: %w", err)
	}

	post := domain.NewPost(req.BoardID, req.Title, req.Content, author)
	if err := s.posts.Create(ctx, post); err != nil {
		return 0, fmt.Errorf("create post: %w", err)
	}

	return post.ID, nil
}

// ListPosts retrieves a page of a board, newest first
func (s *postService) ListPosts(ctx context.Context, req *domain.ListPostsRequest) ([]*domain.PostSummary, error) {
	limit := req.Limit
	if limit < 1 || limit > maxListLimit {
		limit = defaultListLimit
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	return s.posts.ListByBoard(ctx, req.BoardID, limit, offset)
}

// GetPost retrieves a single post and counts the view.
// The returned Views already includes this read.
func (s *postService) GetPost(ctx context.Context, postID uint64, username string) (*domain.PostDetail, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	loginRequired, err := s.boards.IsLoginRequired(ctx, post.BoardID)
	if err != nil {
		return nil, err
	}
	if loginRequired && username == "" {
		return nil, common.ErrLoginRequired
	}

	images, err := s.images.GetIDs(ctx, post.ID)
	if err != nil {
		return nil, fmt.Errorf("get images: %w", err)
	}

	writer, updatable, err := s.describeAuthor(ctx, post, username)
	if err != nil {
		return nil, err
	}

	views, err := s.posts.IncrementViews(ctx, post.ID)
	if err != nil {
		return nil, err
	}

	return &domain.PostDetail{
		ID:        post.ID,
		BoardID:   post.BoardID,
		Title:     post.Title,
		Writer:    writer,
		Contents:  post.Content,
		Views:     views,
		Images:    images,
		Updatable: updatable,
		UpdatedAt: post.UpdatedAt,
	}, nil
}

// UpdatePost replaces the content of a post
func (s *postService) UpdatePost(ctx context.Context, postID uint64, req *domain.UpdatePostRequest, username string) error {
	post, err := s.posts.FindByID(ctx, postID)
	if errors.Is(err, common.ErrPostNotFound) {
		return common.ErrPostGone
	}
	if err != nil {
		return err
	}

	ok, err := s.isModifiable(ctx, post, req.NonMemPw, username)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrNoPermission
	}

	affected, err := s.posts.UpdateContent(ctx, post.ID, req.Content)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if affected != 1 {
		return common.ErrPostGone
	}

	return nil
}

// DeletePost deletes a post. Attached images are left in place.
func (s *postService) DeletePost(ctx context.Context, postID uint64, req *domain.DeletePostRequest, username string) error {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}

	ok, err := s.isModifiable(ctx, post, req.NonMemPw, username)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrNoPermission
	}

	affected, err := s.posts.Delete(ctx, post.ID)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if affected == 0 {
		return common.ErrPostGone
	}

	return nil
}

// IsLoginRequired reports whether the board of the post requires login
func (s *postService) IsLoginRequired(ctx context.Context, postID uint64) (bool, error) {
	return s.posts.IsLoginRequired(ctx, postID)
}

// isModifiable guest posts: password match; member posts: caller is the author
func (s *postService) isModifiable(ctx context.Context, post *domain.Post, attemptedPassword, username string) (bool, error) {
	switch author := post.Author().(type) {
	case domain.GuestAuthor:
		return author.VerifyPassword(attemptedPassword), nil
	case domain.MemberAuthor:
		callerID, err := s.resolveUserID(ctx, username)
		if err != nil {
			return false, err
		}
		return callerID != 0 && callerID == author.UserID, nil
	default:
		return false, nil
	}
}

// describeAuthor returns the display name and whether the caller may see edit controls
func (s *postService) describeAuthor(ctx context.Context, post *domain.Post, username string) (string, bool, error) {
	switch author := post.Author().(type) {
	case domain.GuestAuthor:
		return author.Nickname, true, nil
	case domain.MemberAuthor:
		user, err := s.users.FindByID(ctx, author.UserID)
		if errors.Is(err, common.ErrUserNotFound) {
			return "", false, nil
		}
		if err != nil {
			return "", false, fmt.Errorf("find author: %w", err)
		}
		return user.Nickname, username != "" && user.Username == username, nil
	default:
		return "", false, nil
	}
}

// resolveUserID maps a username to its id; 0 when the caller is anonymous or unknown
func (s *postService) resolveUserID(ctx context.Context, username string) (uint64, error) {
	if username == "" {
		return 0, nil
	}
	id, err := s.users.GetID(ctx, username)
	if errors.Is(err, common.ErrUserNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("resolve user: %w", err)
	}
	return id, nil
}
