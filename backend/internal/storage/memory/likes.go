package memory

import (
	"context"

	"github.com/FerdyAtmaja/forum-api-V2/shared/domain"
)

func (s *Storage) VerifyLikeExists(ctx context.Context, commentId domain.CommentId, owner domain.UserId) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.likes[likeKey{commentId, owner}]
	return ok, nil
}

// AddLike is a set insert, a second add for the same pair is a no-op.
func (s *Storage) AddLike(ctx context.Context, commentId domain.CommentId, owner domain.UserId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.likes[likeKey{commentId, owner}] = struct{}{}
	return nil
}

func (s *Storage) DeleteLike(ctx context.Context, commentId domain.CommentId, owner domain.UserId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.likes, likeKey{commentId, owner})
	return nil
}

func (s *Storage) GetLikeCountByCommentId(ctx context.Context, commentId domain.CommentId) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for key := range s.likes {
		if key.commentId == commentId {
			count++
		}
	}
	return count, nil
}
