package memory

import (
	"context"

	"github.com/FerdyAtmaja/forum-api-V2/shared/domain"
	"github.com/FerdyAtmaja/forum-api-V2/shared/errors"
	"github.com/FerdyAtmaja/forum-api-V2/shared/idgen"
)

func (s *Storage) VerifyAvailableUsername(ctx context.Context, username domain.Username) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, taken := s.userByName[username]; taken {
		return errors.Conflict("username not available")
	}
	return nil
}

// AddUser re-checks availability under the write lock, so two concurrent
// registrations of one name cannot both succeed.
func (s *Storage) AddUser(ctx context.Context, user domain.User) (domain.RegisteredUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.userByName[user.Username]; taken {
		return domain.RegisteredUser{}, errors.Conflict("username not available")
	}

	user.Id = idgen.Prefixed(domain.UserIdPrefix, s.newId)
	s.users[user.Id] = user
	s.userByName[user.Username] = user.Id

	return domain.RegisteredUser{Id: user.Id, Username: user.Username, Fullname: user.Fullname}, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username domain.Username) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.userByName[username]
	if !ok {
		return domain.User{}, errors.NotFound("user not found")
	}
	return s.users[id], nil
}

func (s *Storage) AddToken(ctx context.Context, tokenHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[tokenHash] = struct{}{}
	return nil
}

func (s *Storage) VerifyTokenExists(ctx context.Context, tokenHash string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.tokens[tokenHash]; !ok {
		return errors.NotFound("refresh token not found")
	}
	return nil
}

func (s *Storage) DeleteToken(ctx context.Context, tokenHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens, tokenHash)
	return nil
}
