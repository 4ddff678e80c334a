package service

import (
	"context"

	"github.com/FerdyAtmaja/forum-api-V2/shared/domain"
)

type CommentService interface {
	Create(ctx context.Context, newComment domain.NewComment, threadId domain.ThreadId, owner domain.UserId) (domain.AddedComment, error)
	Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error
}

type Comment struct {
	threads   ThreadStorage
	comments  CommentStorage
	validator ContentValidator
}

type CommentStorage interface {
	AddComment(ctx context.Context, newComment domain.NewComment, threadId domain.ThreadId, owner domain.UserId) (domain.AddedComment, error)
	VerifyCommentExists(ctx context.Context, id domain.CommentId) error
	VerifyCommentOwner(ctx context.Context, id domain.CommentId, owner domain.UserId) error
	// DeleteComment sets the deletion flag, content is kept. Deleting twice is not an error.
	DeleteComment(ctx context.Context, id domain.CommentId) error
	// GetCommentsByThreadId returns deleted comments too, oldest first.
	GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.Comment, error)
	GetLikeCountByCommentId(ctx context.Context, id domain.CommentId) (int, error)
}

func NewComment(threads ThreadStorage, comments CommentStorage, validator ContentValidator) CommentService {
	return &Comment{
		threads:   threads,
		comments:  comments,
		validator: validator,
	}
}

func (s *Comment) Create(ctx context.Context, newComment domain.NewComment, threadId domain.ThreadId, owner domain.UserId) (domain.AddedComment, error) {
	if err := newComment.Validate(); err != nil {
		return domain.AddedComment{}, err
	}
	if err := s.validator.Content(newComment.Content); err != nil {
		return domain.AddedComment{}, err
	}
	if err := requireExisting(threadExists(s.threads, threadId)).run(ctx); err != nil {
		return domain.AddedComment{}, err
	}

	return s.comments.AddComment(ctx, newComment, threadId, owner)
}

// Delete soft-deletes the comment. Thread and comment must exist before
// ownership is looked at.
func (s *Comment) Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error {
	err := requireExisting(
		threadExists(s.threads, threadId),
		commentExists(s.comments, commentId),
	).ownedBy(commentOwnedBy(s.comments, commentId, owner)).run(ctx)
	if err != nil {
		return err
	}

	return s.comments.DeleteComment(ctx, commentId)
}
