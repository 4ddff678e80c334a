package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/FerdyAtmaja/forum-api-V2/shared/domain"
	"github.com/FerdyAtmaja/forum-api-V2/shared/idgen"
)

// AddReply commits only when the returned row forms a valid AddedReply.
func (s *Storage) AddReply(ctx context.Context, newReply domain.NewReply, commentId domain.CommentId, owner domain.UserId) (domain.AddedReply, error) {
	var added domain.AddedReply
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		added, err = s.addReply(ctx, tx, newReply, commentId, owner)
		if err != nil {
			return err
		}
		return domain.ValidateStored(added)
	})
	if err != nil {
		return domain.AddedReply{}, err
	}
	return added, nil
}

func (s *Storage) VerifyReplyExists(ctx context.Context, id domain.ReplyId) error {
	return verifyExists(ctx, s.db, "SELECT EXISTS (SELECT 1 FROM replies WHERE id = $1)", id, "reply not found")
}

func (s *Storage) VerifyReplyOwner(ctx context.Context, id domain.ReplyId, owner domain.UserId) error {
	return verifyOwner(ctx, s.db, "SELECT owner FROM replies WHERE id = $1", id, owner, "reply")
}

func (s *Storage) DeleteReply(ctx context.Context, id domain.ReplyId) error {
	return softDelete(ctx, s.db, "UPDATE replies SET is_delete = TRUE WHERE id = $1", id, "reply not found")
}

func (s *Storage) GetRepliesByCommentId(ctx context.Context, commentId domain.CommentId) ([]domain.Reply, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT r.id, r.comment_id, r.owner, COALESCE(u.username, ''), r.content, r.date, r.is_delete
        FROM replies r
        LEFT JOIN users u ON u.id = r.owner
        WHERE r.comment_id = $1
        ORDER BY r.date ASC
    `, commentId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch replies: %w", err)
	}
	defer rows.Close()

	replies := []domain.Reply{}
	for rows.Next() {
		var r domain.Reply
		if err := rows.Scan(&r.Id, &r.CommentId, &r.Owner, &r.Username, &r.Content, &r.Date, &r.IsDeleted); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		replies = append(replies, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return replies, nil
}

func (s *Storage) addReply(ctx context.Context, q Querier, newReply domain.NewReply, commentId domain.CommentId, owner domain.UserId) (domain.AddedReply, error) {
	id := idgen.Prefixed(domain.ReplyIdPrefix, s.newId)
	var added domain.AddedReply
	err := q.QueryRowContext(ctx,
		"INSERT INTO replies (id, comment_id, owner, content) VALUES ($1, $2, $3, $4) RETURNING id, content, owner",
		id, commentId, owner, newReply.Content,
	).Scan(&added.Id, &added.Content, &added.Owner)
	if err != nil {
		return domain.AddedReply{}, fmt.Errorf("failed to insert reply: %w", err)
	}
	return added, nil
}
