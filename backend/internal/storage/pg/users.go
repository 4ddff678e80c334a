package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/FerdyAtmaja/forum-api-V2/shared/domain"
	internal_errors "github.com/FerdyAtmaja/forum-api-V2/shared/errors"
	"github.com/FerdyAtmaja/forum-api-V2/shared/idgen"
	sharedpg "github.com/FerdyAtmaja/forum-api-V2/shared/storage/pg"
)

// =========================================================================
// Public Methods (satisfy service.UserStorage and service.TokenStorage)
// =========================================================================

func (s *Storage) VerifyAvailableUsername(ctx context.Context, username domain.Username) error {
	return s.verifyAvailableUsername(ctx, s.db, username)
}

// AddUser checks availability and inserts inside one transaction. The unique
// index still decides when two registrations race.
func (s *Storage) AddUser(ctx context.Context, user domain.User) (domain.RegisteredUser, error) {
	var registered domain.RegisteredUser
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.verifyAvailableUsername(ctx, tx, user.Username); err != nil {
			return err
		}
		var err error
		registered, err = s.addUser(ctx, tx, user)
		return err
	})
	return registered, err
}

func (s *Storage) GetUserByUsername(ctx context.Context, username domain.Username) (domain.User, error) {
	return s.getUserByUsername(ctx, s.db, username)
}

func (s *Storage) AddToken(ctx context.Context, tokenHash string) error {
	_, err := s.db.ExecContext(ctx, "INSERT INTO authentications (token) VALUES ($1) ON CONFLICT DO NOTHING", tokenHash)
	if err != nil {
		return fmt.Errorf("failed to insert token: %w", err)
	}
	return nil
}

func (s *Storage) VerifyTokenExists(ctx context.Context, tokenHash string) error {
	var exists bool
	err := s.db.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM authentications WHERE token = $1)", tokenHash).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to query token: %w", err)
	}
	if !exists {
		return internal_errors.NotFound("refresh token not found")
	}
	return nil
}

func (s *Storage) DeleteToken(ctx context.Context, tokenHash string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM authentications WHERE token = $1", tokenHash); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}

// =========================================================================
// Internal Methods (Core Database Logic)
// These methods accept a Querier and are transaction-agnostic.
// =========================================================================

func (s *Storage) verifyAvailableUsername(ctx context.Context, q Querier, username domain.Username) error {
	var taken bool
	err := q.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)", username).Scan(&taken)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return internal_errors.Conflict("username not available")
	}
	return nil
}

func (s *Storage) addUser(ctx context.Context, q Querier, user domain.User) (domain.RegisteredUser, error) {
	id := idgen.Prefixed(domain.UserIdPrefix, s.newId)
	var registered domain.RegisteredUser
	err := q.QueryRowContext(ctx,
		"INSERT INTO users (id, username, password, fullname) VALUES ($1, $2, $3, $4) RETURNING id, username, fullname",
		id, user.Username, user.PassHash, user.Fullname,
	).Scan(&registered.Id, &registered.Username, &registered.Fullname)
	if err != nil {
		if sharedpg.IsUniqueViolation(err) {
			return domain.RegisteredUser{}, internal_errors.Conflict("username not available")
		}
		return domain.RegisteredUser{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return registered, nil
}

func (s *Storage) getUserByUsername(ctx context.Context, q Querier, username domain.Username) (domain.User, error) {
	var user domain.User
	err := q.QueryRowContext(ctx,
		"SELECT id, username, password, fullname FROM users WHERE username = $1", username,
	).Scan(&user.Id, &user.Username, &user.PassHash, &user.Fullname)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound("user not found")
		}
		return domain.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}
