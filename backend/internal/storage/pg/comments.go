package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/FerdyAtmaja/forum-api-V2/shared/domain"
	internal_errors "github.com/FerdyAtmaja/forum-api-V2/shared/errors"
	"github.com/FerdyAtmaja/forum-api-V2/shared/idgen"
)

// AddComment commits only when the returned row forms a valid AddedComment.
func (s *Storage) AddComment(ctx context.Context, newComment domain.NewComment, threadId domain.ThreadId, owner domain.UserId) (domain.AddedComment, error) {
	var added domain.AddedComment
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		added, err = s.addComment(ctx, tx, newComment, threadId, owner)
		if err != nil {
			return err
		}
		return domain.ValidateStored(added)
	})
	if err != nil {
		return domain.AddedComment{}, err
	}
	return added, nil
}

// VerifyCommentExists counts soft-deleted comments as existing.
func (s *Storage) VerifyCommentExists(ctx context.Context, id domain.CommentId) error {
	return verifyExists(ctx, s.db, "SELECT EXISTS (SELECT 1 FROM comments WHERE id = $1)", id, "comment not found")
}

func (s *Storage) VerifyCommentOwner(ctx context.Context, id domain.CommentId, owner domain.UserId) error {
	return verifyOwner(ctx, s.db, "SELECT owner FROM comments WHERE id = $1", id, owner, "comment")
}

func (s *Storage) DeleteComment(ctx context.Context, id domain.CommentId) error {
	return softDelete(ctx, s.db, "UPDATE comments SET is_delete = TRUE WHERE id = $1", id, "comment not found")
}

func (s *Storage) GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.Comment, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT c.id, c.thread_id, c.owner, COALESCE(u.username, ''), c.content, c.date, c.is_delete
        FROM comments c
        LEFT JOIN users u ON u.id = c.owner
        WHERE c.thread_id = $1
        ORDER BY c.date ASC
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.Id, &c.ThreadId, &c.Owner, &c.Username, &c.Content, &c.Date, &c.IsDeleted); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return comments, nil
}

func (s *Storage) GetLikeCountByCommentId(ctx context.Context, id domain.CommentId) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM comment_likes WHERE comment_id = $1", id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}

// verifyOwner reads the owner column selected by query. A missing row is
// NotFound, a different owner is Forbidden.
func verifyOwner(ctx context.Context, q Querier, query string, id string, owner domain.UserId, kind string) error {
	var actual domain.UserId
	err := q.QueryRowContext(ctx, query, id).Scan(&actual)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound(kind + " not found")
		}
		return fmt.Errorf("failed to fetch %s owner: %w", kind, err)
	}
	if actual != owner {
		return internal_errors.Forbidden("you are not the owner of this " + kind)
	}
	return nil
}

// softDelete runs an UPDATE that sets is_delete. Re-deleting matches the row
// again, so only an absent row is an error.
func softDelete(ctx context.Context, q Querier, query string, id string, notFound string) error {
	result, err := q.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to soft delete: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return internal_errors.NotFound(notFound)
	}
	return nil
}

func (s *Storage) addComment(ctx context.Context, q Querier, newComment domain.NewComment, threadId domain.ThreadId, owner domain.UserId) (domain.AddedComment, error) {
	id := idgen.Prefixed(domain.CommentIdPrefix, s.newId)
	var added domain.AddedComment
	err := q.QueryRowContext(ctx,
		"INSERT INTO comments (id, thread_id, owner, content) VALUES ($1, $2, $3, $4) RETURNING id, content, owner",
		id, threadId, owner, newComment.Content,
	).Scan(&added.Id, &added.Content, &added.Owner)
	if err != nil {
		return domain.AddedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	return added, nil
}
