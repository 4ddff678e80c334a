package pg

import (
	"context"
	"fmt"

	"github.com/FerdyAtmaja/forum-api-V2/shared/domain"
	"github.com/FerdyAtmaja/forum-api-V2/shared/idgen"
	"github.com/FerdyAtmaja/forum-api-V2/shared/logger"
	sharedpg "github.com/FerdyAtmaja/forum-api-V2/shared/storage/pg"
)

func (s *Storage) VerifyLikeExists(ctx context.Context, commentId domain.CommentId, owner domain.UserId) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM comment_likes WHERE comment_id = $1 AND owner = $2)",
		commentId, owner,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return exists, nil
}

// AddLike inserts the like row. Losing a race against a concurrent toggle
// trips the (comment_id, owner) constraint; the like exists either way.
func (s *Storage) AddLike(ctx context.Context, commentId domain.CommentId, owner domain.UserId) error {
	id := idgen.Prefixed(domain.LikeIdPrefix, s.newId)
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO comment_likes (id, comment_id, owner) VALUES ($1, $2, $3)",
		id, commentId, owner,
	)
	if err != nil {
		if sharedpg.IsUniqueViolation(err) {
			logger.Log.Debug("like already present", "comment_id", commentId, "owner", owner)
			return nil
		}
		return fmt.Errorf("failed to insert like: %w", err)
	}
	return nil
}

func (s *Storage) DeleteLike(ctx context.Context, commentId domain.CommentId, owner domain.UserId) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM comment_likes WHERE comment_id = $1 AND owner = $2", commentId, owner)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}
