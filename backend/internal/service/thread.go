package service

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/FerdyAtmaja/forum-api-V2/shared/domain"
)

// maxCommentFetches bounds the per-comment lookups a single thread detail runs at once.
const maxCommentFetches = 8

type ThreadService interface {
	Create(ctx context.Context, newThread domain.NewThread, owner domain.UserId) (domain.AddedThread, error)
	Detail(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error)
}

type Thread struct {
	threads   ThreadStorage
	comments  CommentStorage
	replies   ReplyStorage
	validator ContentValidator
}

type ThreadStorage interface {
	AddThread(ctx context.Context, newThread domain.NewThread, owner domain.UserId) (domain.AddedThread, error)
	VerifyThreadExists(ctx context.Context, id domain.ThreadId) error
	GetThreadById(ctx context.Context, id domain.ThreadId) (domain.Thread, error)
}

type ContentValidator interface {
	Title(title string) error
	Content(content string) error
}

func NewThread(threads ThreadStorage, comments CommentStorage, replies ReplyStorage, validator ContentValidator) ThreadService {
	return &Thread{
		threads:   threads,
		comments:  comments,
		replies:   replies,
		validator: validator,
	}
}

func (s *Thread) Create(ctx context.Context, newThread domain.NewThread, owner domain.UserId) (domain.AddedThread, error) {
	if err := newThread.Validate(); err != nil {
		return domain.AddedThread{}, err
	}
	if err := s.validator.Title(newThread.Title); err != nil {
		return domain.AddedThread{}, err
	}
	if err := s.validator.Content(newThread.Body); err != nil {
		return domain.AddedThread{}, err
	}

	return s.threads.AddThread(ctx, newThread, owner)
}

// Detail assembles the thread with every comment, each comment's replies and
// like count. Deleted comments and replies stay in place with masked content.
// Per-comment lookups run concurrently, order follows the stored dates.
func (s *Thread) Detail(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error) {
	if err := requireExisting(threadExists(s.threads, id)).run(ctx); err != nil {
		return domain.ThreadDetail{}, err
	}

	thread, err := s.threads.GetThreadById(ctx, id)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	comments, err := s.comments.GetCommentsByThreadId(ctx, id)
	if err != nil {
		return domain.ThreadDetail{}, err
	}
	slices.SortStableFunc(comments, func(a, b domain.Comment) int {
		return a.Date.Compare(b.Date)
	})

	details := make([]domain.CommentDetail, len(comments))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxCommentFetches)
	for i, comment := range comments {
		i, comment := i, comment
		g.Go(func() error {
			replies, err := s.replies.GetRepliesByCommentId(gctx, comment.Id)
			if err != nil {
				return err
			}
			likeCount, err := s.comments.GetLikeCountByCommentId(gctx, comment.Id)
			if err != nil {
				return err
			}
			details[i] = commentDetail(comment, replies, likeCount)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.ThreadDetail{}, err
	}

	return domain.ThreadDetail{
		Id:       thread.Id,
		Title:    thread.Title,
		Body:     thread.Body,
		Date:     thread.Date,
		Username: thread.Username,
		Comments: details,
	}, nil
}

func commentDetail(comment domain.Comment, replies []domain.Reply, likeCount int) domain.CommentDetail {
	slices.SortStableFunc(replies, func(a, b domain.Reply) int {
		return a.Date.Compare(b.Date)
	})

	replyDetails := make([]domain.ReplyDetail, 0, len(replies))
	for _, reply := range replies {
		replyDetails = append(replyDetails, domain.ReplyDetail{
			Id:       reply.Id,
			Content:  MaskContent(ReplyContent, reply.Content, reply.IsDeleted),
			Date:     reply.Date,
			Username: reply.Username,
		})
	}

	return domain.CommentDetail{
		Id:        comment.Id,
		Username:  comment.Username,
		Date:      comment.Date,
		Content:   MaskContent(CommentContent, comment.Content, comment.IsDeleted),
		LikeCount: likeCount,
		Replies:   replyDetails,
	}
}
