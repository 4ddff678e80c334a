package service

import (
	"context"

	"github.com/FerdyAtmaja/forum-api-V2/shared/domain"
)

type LikeService interface {
	Toggle(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error
}

type Like struct {
	threads  ThreadStorage
	comments CommentStorage
	likes    LikeStorage
}

// LikeStorage keeps at most one like per (comment, owner) pair.
type LikeStorage interface {
	VerifyLikeExists(ctx context.Context, commentId domain.CommentId, owner domain.UserId) (bool, error)
	AddLike(ctx context.Context, commentId domain.CommentId, owner domain.UserId) error
	DeleteLike(ctx context.Context, commentId domain.CommentId, owner domain.UserId) error
}

func NewLike(threads ThreadStorage, comments CommentStorage, likes LikeStorage) LikeService {
	return &Like{
		threads:  threads,
		comments: comments,
		likes:    likes,
	}
}

// Toggle removes owner's like on the comment if there is one, otherwise adds it.
// Liking a deleted comment is allowed.
func (s *Like) Toggle(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error {
	err := requireExisting(
		threadExists(s.threads, threadId),
		commentExists(s.comments, commentId),
	).run(ctx)
	if err != nil {
		return err
	}

	liked, err := s.likes.VerifyLikeExists(ctx, commentId, owner)
	if err != nil {
		return err
	}
	if liked {
		return s.likes.DeleteLike(ctx, commentId, owner)
	}
	return s.likes.AddLike(ctx, commentId, owner)
}
