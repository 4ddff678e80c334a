package service

import (
	"context"

	"github.com/FerdyAtmaja/forum-api-V2/shared/domain"
)

// check is a single precondition. It returns nil or a taxonomy error
// (NotFound, Forbidden) and never mutates anything.
type check func(ctx context.Context) error

// verification runs existence checks in the order given, then the ownership
// check if there is one. The first failure aborts the rest, so an operation
// on a missing resource reports NotFound even when the caller does not own
// it, and a non-owner never reaches the mutation.
type verification struct {
	existence []check
	ownership check
}

func requireExisting(checks ...check) *verification {
	return &verification{existence: checks}
}

// ownedBy sets the ownership check. It always runs after every existence check.
func (v *verification) ownedBy(c check) *verification {
	v.ownership = c
	return v
}

func (v *verification) run(ctx context.Context) error {
	for _, c := range v.existence {
		if err := c(ctx); err != nil {
			return err
		}
	}
	if v.ownership != nil {
		return v.ownership(ctx)
	}
	return nil
}

type threadVerifier interface {
	VerifyThreadExists(ctx context.Context, id domain.ThreadId) error
}

type commentVerifier interface {
	VerifyCommentExists(ctx context.Context, id domain.CommentId) error
	VerifyCommentOwner(ctx context.Context, id domain.CommentId, owner domain.UserId) error
}

type replyVerifier interface {
	VerifyReplyExists(ctx context.Context, id domain.ReplyId) error
	VerifyReplyOwner(ctx context.Context, id domain.ReplyId, owner domain.UserId) error
}

func threadExists(s threadVerifier, id domain.ThreadId) check {
	return func(ctx context.Context) error {
		return s.VerifyThreadExists(ctx, id)
	}
}

func commentExists(s commentVerifier, id domain.CommentId) check {
	return func(ctx context.Context) error {
		return s.VerifyCommentExists(ctx, id)
	}
}

func commentOwnedBy(s commentVerifier, id domain.CommentId, owner domain.UserId) check {
	return func(ctx context.Context) error {
		return s.VerifyCommentOwner(ctx, id, owner)
	}
}

func replyExists(s replyVerifier, id domain.ReplyId) check {
	return func(ctx context.Context) error {
		return s.VerifyReplyExists(ctx, id)
	}
}

func replyOwnedBy(s replyVerifier, id domain.ReplyId, owner domain.UserId) check {
	return func(ctx context.Context) error {
		return s.VerifyReplyOwner(ctx, id, owner)
	}
}
