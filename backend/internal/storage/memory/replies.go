package memory

import (
	"context"

	"github.com/FerdyAtmaja/forum-api-V2/shared/domain"
	"github.com/FerdyAtmaja/forum-api-V2/shared/errors"
	"github.com/FerdyAtmaja/forum-api-V2/shared/idgen"
)

func (s *Storage) AddReply(ctx context.Context, newReply domain.NewReply, commentId domain.CommentId, owner domain.UserId) (domain.AddedReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reply := domain.Reply{
		Id:        idgen.Prefixed(domain.ReplyIdPrefix, s.newId),
		CommentId: commentId,
		Owner:     owner,
		Content:   newReply.Content,
		Date:      s.now(),
	}
	added := domain.AddedReply{Id: reply.Id, Content: reply.Content, Owner: owner}
	if err := domain.ValidateStored(added); err != nil {
		return domain.AddedReply{}, err
	}
	s.replies[reply.Id] = reply
	s.repliesOrder = append(s.repliesOrder, reply.Id)

	return added, nil
}

func (s *Storage) VerifyReplyExists(ctx context.Context, id domain.ReplyId) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.replies[id]; !ok {
		return errors.NotFound("reply not found")
	}
	return nil
}

func (s *Storage) VerifyReplyOwner(ctx context.Context, id domain.ReplyId, owner domain.UserId) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reply, ok := s.replies[id]
	if !ok {
		return errors.NotFound("reply not found")
	}
	if reply.Owner != owner {
		return errors.Forbidden("you are not the owner of this reply")
	}
	return nil
}

func (s *Storage) DeleteReply(ctx context.Context, id domain.ReplyId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reply, ok := s.replies[id]
	if !ok {
		return errors.NotFound("reply not found")
	}
	reply.IsDeleted = true
	s.replies[id] = reply
	return nil
}

func (s *Storage) GetRepliesByCommentId(ctx context.Context, commentId domain.CommentId) ([]domain.Reply, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	replies := []domain.Reply{}
	for _, id := range s.repliesOrder {
		reply := s.replies[id]
		if reply.CommentId != commentId {
			continue
		}
		reply.Username = s.usernameOf(reply.Owner)
		replies = append(replies, reply)
	}
	return replies, nil
}
