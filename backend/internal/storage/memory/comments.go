package memory

import (
	"context"

	"github.com/FerdyAtmaja/forum-api-V2/shared/domain"
	"github.com/FerdyAtmaja/forum-api-V2/shared/errors"
	"github.com/FerdyAtmaja/forum-api-V2/shared/idgen"
)

func (s *Storage) AddComment(ctx context.Context, newComment domain.NewComment, threadId domain.ThreadId, owner domain.UserId) (domain.AddedComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment := domain.Comment{
		Id:       idgen.Prefixed(domain.CommentIdPrefix, s.newId),
		ThreadId: threadId,
		Owner:    owner,
		Content:  newComment.Content,
		Date:     s.now(),
	}
	added := domain.AddedComment{Id: comment.Id, Content: comment.Content, Owner: owner}
	if err := domain.ValidateStored(added); err != nil {
		return domain.AddedComment{}, err
	}
	s.comments[comment.Id] = comment
	s.commentsOrder = append(s.commentsOrder, comment.Id)

	return added, nil
}

// VerifyCommentExists counts soft-deleted comments as existing.
func (s *Storage) VerifyCommentExists(ctx context.Context, id domain.CommentId) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.comments[id]; !ok {
		return errors.NotFound("comment not found")
	}
	return nil
}

func (s *Storage) VerifyCommentOwner(ctx context.Context, id domain.CommentId, owner domain.UserId) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comment, ok := s.comments[id]
	if !ok {
		return errors.NotFound("comment not found")
	}
	if comment.Owner != owner {
		return errors.Forbidden("you are not the owner of this comment")
	}
	return nil
}

func (s *Storage) DeleteComment(ctx context.Context, id domain.CommentId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok := s.comments[id]
	if !ok {
		return errors.NotFound("comment not found")
	}
	comment.IsDeleted = true
	s.comments[id] = comment
	return nil
}

// GetCommentsByThreadId returns comments in insertion order, which is date order.
func (s *Storage) GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comments := []domain.Comment{}
	for _, id := range s.commentsOrder {
		comment := s.comments[id]
		if comment.ThreadId != threadId {
			continue
		}
		comment.Username = s.usernameOf(comment.Owner)
		comments = append(comments, comment)
	}
	return comments, nil
}
