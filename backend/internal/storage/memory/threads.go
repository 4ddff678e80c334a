package memory

import (
	"context"

	"github.com/FerdyAtmaja/forum-api-V2/shared/domain"
	"github.com/FerdyAtmaja/forum-api-V2/shared/errors"
	"github.com/FerdyAtmaja/forum-api-V2/shared/idgen"
)

func (s *Storage) AddThread(ctx context.Context, newThread domain.NewThread, owner domain.UserId) (domain.AddedThread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	thread := domain.Thread{
		Id:    idgen.Prefixed(domain.ThreadIdPrefix, s.newId),
		Title: newThread.Title,
		Body:  newThread.Body,
		Date:  s.now(),
		Owner: owner,
	}
	added := domain.AddedThread{Id: thread.Id, Title: thread.Title, Owner: owner}
	if err := domain.ValidateStored(added); err != nil {
		return domain.AddedThread{}, err
	}
	s.threads[thread.Id] = thread

	return added, nil
}

func (s *Storage) VerifyThreadExists(ctx context.Context, id domain.ThreadId) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.threads[id]; !ok {
		return errors.NotFound("thread not found")
	}
	return nil
}

func (s *Storage) GetThreadById(ctx context.Context, id domain.ThreadId) (domain.Thread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	thread, ok := s.threads[id]
	if !ok {
		return domain.Thread{}, errors.NotFound("thread not found")
	}
	thread.Username = s.usernameOf(thread.Owner)
	return thread, nil
}
