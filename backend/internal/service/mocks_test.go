package service

import (
	"context"
	"sync"

	"github.com/FerdyAtmaja/forum-api-V2/shared/domain"
)

// callLog records storage calls across every mock of a test, in call order.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) record(name string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, name)
}

func (l *callLog) Calls() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

func (l *callLog) Called(name string) bool {
	for _, c := range l.Calls() {
		if c == name {
			return true
		}
	}
	return false
}

// --- Thread storage ---

type MockThreadStorage struct {
	log *callLog

	addThreadFunc          func(newThread domain.NewThread, owner domain.UserId) (domain.AddedThread, error)
	verifyThreadExistsFunc func(id domain.ThreadId) error
	getThreadByIdFunc      func(id domain.ThreadId) (domain.Thread, error)
}

func (m *MockThreadStorage) AddThread(ctx context.Context, newThread domain.NewThread, owner domain.UserId) (domain.AddedThread, error) {
	m.log.record("AddThread")
	if m.addThreadFunc != nil {
		return m.addThreadFunc(newThread, owner)
	}
	return domain.AddedThread{Id: "thread-123", Title: newThread.Title, Owner: owner}, nil
}

func (m *MockThreadStorage) VerifyThreadExists(ctx context.Context, id domain.ThreadId) error {
	m.log.record("VerifyThreadExists")
	if m.verifyThreadExistsFunc != nil {
		return m.verifyThreadExistsFunc(id)
	}
	return nil
}

func (m *MockThreadStorage) GetThreadById(ctx context.Context, id domain.ThreadId) (domain.Thread, error) {
	m.log.record("GetThreadById")
	if m.getThreadByIdFunc != nil {
		return m.getThreadByIdFunc(id)
	}
	return domain.Thread{Id: id, Title: "title", Body: "body", Owner: "user-1", Username: "dicoding"}, nil
}

// --- Comment storage ---

type MockCommentStorage struct {
	log *callLog

	addCommentFunc            func(newComment domain.NewComment, threadId domain.ThreadId, owner domain.UserId) (domain.AddedComment, error)
	verifyCommentExistsFunc   func(id domain.CommentId) error
	verifyCommentOwnerFunc    func(id domain.CommentId, owner domain.UserId) error
	deleteCommentFunc         func(id domain.CommentId) error
	getCommentsByThreadIdFunc func(threadId domain.ThreadId) ([]domain.Comment, error)
	getLikeCountFunc          func(id domain.CommentId) (int, error)
}

func (m *MockCommentStorage) AddComment(ctx context.Context, newComment domain.NewComment, threadId domain.ThreadId, owner domain.UserId) (domain.AddedComment, error) {
	m.log.record("AddComment")
	if m.addCommentFunc != nil {
		return m.addCommentFunc(newComment, threadId, owner)
	}
	return domain.AddedComment{Id: "comment-123", Content: newComment.Content, Owner: owner}, nil
}

func (m *MockCommentStorage) VerifyCommentExists(ctx context.Context, id domain.CommentId) error {
	m.log.record("VerifyCommentExists")
	if m.verifyCommentExistsFunc != nil {
		return m.verifyCommentExistsFunc(id)
	}
	return nil
}

func (m *MockCommentStorage) VerifyCommentOwner(ctx context.Context, id domain.CommentId, owner domain.UserId) error {
	m.log.record("VerifyCommentOwner")
	if m.verifyCommentOwnerFunc != nil {
		return m.verifyCommentOwnerFunc(id, owner)
	}
	return nil
}

func (m *MockCommentStorage) DeleteComment(ctx context.Context, id domain.CommentId) error {
	m.log.record("DeleteComment")
	if m.deleteCommentFunc != nil {
		return m.deleteCommentFunc(id)
	}
	return nil
}

func (m *MockCommentStorage) GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.Comment, error) {
	m.log.record("GetCommentsByThreadId")
	if m.getCommentsByThreadIdFunc != nil {
		return m.getCommentsByThreadIdFunc(threadId)
	}
	return nil, nil
}

func (m *MockCommentStorage) GetLikeCountByCommentId(ctx context.Context, id domain.CommentId) (int, error) {
	m.log.record("GetLikeCountByCommentId")
	if m.getLikeCountFunc != nil {
		return m.getLikeCountFunc(id)
	}
	return 0, nil
}

// --- Reply storage ---

type MockReplyStorage struct {
	log *callLog

	addReplyFunc              func(newReply domain.NewReply, commentId domain.CommentId, owner domain.UserId) (domain.AddedReply, error)
	verifyReplyExistsFunc     func(id domain.ReplyId) error
	verifyReplyOwnerFunc      func(id domain.ReplyId, owner domain.UserId) error
	deleteReplyFunc           func(id domain.ReplyId) error
	getRepliesByCommentIdFunc func(commentId domain.CommentId) ([]domain.Reply, error)
}

func (m *MockReplyStorage) AddReply(ctx context.Context, newReply domain.NewReply, commentId domain.CommentId, owner domain.UserId) (domain.AddedReply, error) {
	m.log.record("AddReply")
	if m.addReplyFunc != nil {
		return m.addReplyFunc(newReply, commentId, owner)
	}
	return domain.AddedReply{Id: "reply-123", Content: newReply.Content, Owner: owner}, nil
}

func (m *MockReplyStorage) VerifyReplyExists(ctx context.Context, id domain.ReplyId) error {
	m.log.record("VerifyReplyExists")
	if m.verifyReplyExistsFunc != nil {
		return m.verifyReplyExistsFunc(id)
	}
	return nil
}

func (m *MockReplyStorage) VerifyReplyOwner(ctx context.Context, id domain.ReplyId, owner domain.UserId) error {
	m.log.record("VerifyReplyOwner")
	if m.verifyReplyOwnerFunc != nil {
		return m.verifyReplyOwnerFunc(id, owner)
	}
	return nil
}

func (m *MockReplyStorage) DeleteReply(ctx context.Context, id domain.ReplyId) error {
	m.log.record("DeleteReply")
	if m.deleteReplyFunc != nil {
		return m.deleteReplyFunc(id)
	}
	return nil
}

func (m *MockReplyStorage) GetRepliesByCommentId(ctx context.Context, commentId domain.CommentId) ([]domain.Reply, error) {
	m.log.record("GetRepliesByCommentId")
	if m.getRepliesByCommentIdFunc != nil {
		return m.getRepliesByCommentIdFunc(commentId)
	}
	return nil, nil
}

// --- Like storage ---

type MockLikeStorage struct {
	log *callLog

	verifyLikeExistsFunc func(commentId domain.CommentId, owner domain.UserId) (bool, error)
	addLikeFunc          func(commentId domain.CommentId, owner domain.UserId) error
	deleteLikeFunc       func(commentId domain.CommentId, owner domain.UserId) error
}

func (m *MockLikeStorage) VerifyLikeExists(ctx context.Context, commentId domain.CommentId, owner domain.UserId) (bool, error) {
	m.log.record("VerifyLikeExists")
	if m.verifyLikeExistsFunc != nil {
		return m.verifyLikeExistsFunc(commentId, owner)
	}
	return false, nil
}

func (m *MockLikeStorage) AddLike(ctx context.Context, commentId domain.CommentId, owner domain.UserId) error {
	m.log.record("AddLike")
	if m.addLikeFunc != nil {
		return m.addLikeFunc(commentId, owner)
	}
	return nil
}

func (m *MockLikeStorage) DeleteLike(ctx context.Context, commentId domain.CommentId, owner domain.UserId) error {
	m.log.record("DeleteLike")
	if m.deleteLikeFunc != nil {
		return m.deleteLikeFunc(commentId, owner)
	}
	return nil
}

// --- Validator ---

type MockContentValidator struct {
	titleFunc   func(title string) error
	contentFunc func(content string) error
}

func (m *MockContentValidator) Title(title string) error {
	if m.titleFunc != nil {
		return m.titleFunc(title)
	}
	return nil
}

func (m *MockContentValidator) Content(content string) error {
	if m.contentFunc != nil {
		return m.contentFunc(content)
	}
	return nil
}

// --- Auth ---

type MockUserStorage struct {
	log *callLog

	verifyAvailableUsernameFunc func(username domain.Username) error
	addUserFunc                 func(user domain.User) (domain.RegisteredUser, error)
	getUserByUsernameFunc       func(username domain.Username) (domain.User, error)
}

func (m *MockUserStorage) VerifyAvailableUsername(ctx context.Context, username domain.Username) error {
	m.log.record("VerifyAvailableUsername")
	if m.verifyAvailableUsernameFunc != nil {
		return m.verifyAvailableUsernameFunc(username)
	}
	return nil
}

func (m *MockUserStorage) AddUser(ctx context.Context, user domain.User) (domain.RegisteredUser, error) {
	m.log.record("AddUser")
	if m.addUserFunc != nil {
		return m.addUserFunc(user)
	}
	return domain.RegisteredUser{Id: "user-123", Username: user.Username, Fullname: user.Fullname}, nil
}

func (m *MockUserStorage) GetUserByUsername(ctx context.Context, username domain.Username) (domain.User, error) {
	m.log.record("GetUserByUsername")
	if m.getUserByUsernameFunc != nil {
		return m.getUserByUsernameFunc(username)
	}
	return domain.User{}, nil
}

type MockTokenStorage struct {
	log *callLog

	addTokenFunc          func(tokenHash string) error
	verifyTokenExistsFunc func(tokenHash string) error
	deleteTokenFunc       func(tokenHash string) error
}

func (m *MockTokenStorage) AddToken(ctx context.Context, tokenHash string) error {
	m.log.record("AddToken")
	if m.addTokenFunc != nil {
		return m.addTokenFunc(tokenHash)
	}
	return nil
}

func (m *MockTokenStorage) VerifyTokenExists(ctx context.Context, tokenHash string) error {
	m.log.record("VerifyTokenExists")
	if m.verifyTokenExistsFunc != nil {
		return m.verifyTokenExistsFunc(tokenHash)
	}
	return nil
}

func (m *MockTokenStorage) DeleteToken(ctx context.Context, tokenHash string) error {
	m.log.record("DeleteToken")
	if m.deleteTokenFunc != nil {
		return m.deleteTokenFunc(tokenHash)
	}
	return nil
}

type MockJwt struct {
	newTokenFunc func(userId domain.UserId) (string, error)
	userIdFunc   func(jwtStr string) (domain.UserId, error)
}

func (m *MockJwt) NewToken(userId domain.UserId) (string, error) {
	if m.newTokenFunc != nil {
		return m.newTokenFunc(userId)
	}
	return "token-for-" + userId, nil
}

func (m *MockJwt) UserId(jwtStr string) (domain.UserId, error) {
	if m.userIdFunc != nil {
		return m.userIdFunc(jwtStr)
	}
	return "user-123", nil
}
