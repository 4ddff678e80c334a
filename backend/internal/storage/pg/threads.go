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

// AddThread commits only when the returned row forms a valid AddedThread.
func (s *Storage) AddThread(ctx context.Context, newThread domain.NewThread, owner domain.UserId) (domain.AddedThread, error) {
	var added domain.AddedThread
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		added, err = s.addThread(ctx, tx, newThread, owner)
		if err != nil {
			return err
		}
		return domain.ValidateStored(added)
	})
	if err != nil {
		return domain.AddedThread{}, err
	}
	return added, nil
}

func (s *Storage) VerifyThreadExists(ctx context.Context, id domain.ThreadId) error {
	return verifyExists(ctx, s.db, "SELECT EXISTS (SELECT 1 FROM threads WHERE id = $1)", id, "thread not found")
}

func (s *Storage) GetThreadById(ctx context.Context, id domain.ThreadId) (domain.Thread, error) {
	var thread domain.Thread
	err := s.db.QueryRowContext(ctx, `
        SELECT t.id, t.title, t.body, t.date, t.owner, COALESCE(u.username, '')
        FROM threads t
        LEFT JOIN users u ON u.id = t.owner
        WHERE t.id = $1
    `, id).Scan(&thread.Id, &thread.Title, &thread.Body, &thread.Date, &thread.Owner, &thread.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, internal_errors.NotFound("thread not found")
		}
		return domain.Thread{}, fmt.Errorf("failed to fetch thread: %w", err)
	}
	return thread, nil
}

// verifyExists runs an EXISTS query with a single id argument and maps false to NotFound.
func verifyExists(ctx context.Context, q Querier, query string, id string, notFound string) error {
	var exists bool
	if err := q.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check existence: %w", err)
	}
	if !exists {
		return internal_errors.NotFound(notFound)
	}
	return nil
}

func (s *Storage) addThread(ctx context.Context, q Querier, newThread domain.NewThread, owner domain.UserId) (domain.AddedThread, error) {
	id := idgen.Prefixed(domain.ThreadIdPrefix, s.newId)
	var added domain.AddedThread
	err := q.QueryRowContext(ctx,
		"INSERT INTO threads (id, title, body, owner) VALUES ($1, $2, $3, $4) RETURNING id, title, owner",
		id, newThread.Title, newThread.Body, owner,
	).Scan(&added.Id, &added.Title, &added.Owner)
	if err != nil {
		return domain.AddedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	return added, nil
}
