package service

import (
	"context"

	"github.com/FerdyAtmaja/forum-api-V2/shared/domain"
)

type ReplyService interface {
	Create(ctx context.Context, newReply domain.NewReply, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) (domain.AddedReply, error)
	Delete(ctx context.Context, target ReplyTarget, owner domain.UserId) error
}

// ReplyTarget addresses a reply. ThreadId and CommentId are optional, an
// empty one skips its existence check.
type ReplyTarget struct {
	ThreadId  domain.ThreadId
	CommentId domain.CommentId
	ReplyId   domain.ReplyId
}

type Reply struct {
	threads   ThreadStorage
	comments  CommentStorage
	replies   ReplyStorage
	validator ContentValidator
}

type ReplyStorage interface {
	AddReply(ctx context.Context, newReply domain.NewReply, commentId domain.CommentId, owner domain.UserId) (domain.AddedReply, error)
	VerifyReplyExists(ctx context.Context, id domain.ReplyId) error
	VerifyReplyOwner(ctx context.Context, id domain.ReplyId, owner domain.UserId) error
	DeleteReply(ctx context.Context, id domain.ReplyId) error
	// GetRepliesByCommentId returns deleted replies too, oldest first.
	GetRepliesByCommentId(ctx context.Context, commentId domain.CommentId) ([]domain.Reply, error)
}

func NewReply(threads ThreadStorage, comments CommentStorage, replies ReplyStorage, validator ContentValidator) ReplyService {
	return &Reply{
		threads:   threads,
		comments:  comments,
		replies:   replies,
		validator: validator,
	}
}

func (s *Reply) Create(ctx context.Context, newReply domain.NewReply, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) (domain.AddedReply, error) {
	if err := newReply.Validate(); err != nil {
		return domain.AddedReply{}, err
	}
	if err := s.validator.Content(newReply.Content); err != nil {
		return domain.AddedReply{}, err
	}
	err := requireExisting(
		threadExists(s.threads, threadId),
		commentExists(s.comments, commentId),
	).run(ctx)
	if err != nil {
		return domain.AddedReply{}, err
	}

	return s.replies.AddReply(ctx, newReply, commentId, owner)
}

func (s *Reply) Delete(ctx context.Context, target ReplyTarget, owner domain.UserId) error {
	var existence []check
	if target.ThreadId != "" {
		existence = append(existence, threadExists(s.threads, target.ThreadId))
	}
	if target.CommentId != "" {
		existence = append(existence, commentExists(s.comments, target.CommentId))
	}
	existence = append(existence, replyExists(s.replies, target.ReplyId))

	err := requireExisting(existence...).
		ownedBy(replyOwnedBy(s.replies, target.ReplyId, owner)).
		run(ctx)
	if err != nil {
		return err
	}

	return s.replies.DeleteReply(ctx, target.ReplyId)
}
