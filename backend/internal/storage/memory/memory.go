// Package memory is a process-local implementation of every storage
// capability. Data is lost on restart. It backs the "memory" storage mode and
// end-to-end tests that do not need postgres.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/FerdyAtmaja/forum-api-V2/shared/domain"
	"github.com/FerdyAtmaja/forum-api-V2/shared/idgen"
)

type likeKey struct {
	commentId domain.CommentId
	owner     domain.UserId
}

// Storage guards all collections with one lock, so every method observes and
// leaves a consistent snapshot.
type Storage struct {
	mu    sync.RWMutex
	newId idgen.Generator
	now   func() time.Time

	users         map[domain.UserId]domain.User
	userByName    map[domain.Username]domain.UserId
	tokens        map[string]struct{}
	threads       map[domain.ThreadId]domain.Thread
	comments      map[domain.CommentId]domain.Comment
	commentsOrder []domain.CommentId
	replies       map[domain.ReplyId]domain.Reply
	repliesOrder  []domain.ReplyId
	likes         map[likeKey]struct{}
}

func New(newId idgen.Generator) *Storage {
	return &Storage{
		newId:      newId,
		now:        func() time.Time { return time.Now().UTC() },
		users:      make(map[domain.UserId]domain.User),
		userByName: make(map[domain.Username]domain.UserId),
		tokens:     make(map[string]struct{}),
		threads:    make(map[domain.ThreadId]domain.Thread),
		comments:   make(map[domain.CommentId]domain.Comment),
		replies:    make(map[domain.ReplyId]domain.Reply),
		likes:      make(map[likeKey]struct{}),
	}
}

// Ping always succeeds, it exists so readiness checks treat both backends alike.
func (s *Storage) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Storage) Cleanup() error {
	return nil
}

// usernameOf mirrors a left join on users: an unknown owner yields "".
// Callers must hold s.mu.
func (s *Storage) usernameOf(id domain.UserId) domain.Username {
	return s.users[id].Username
}
