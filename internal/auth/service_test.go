package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labelforge/annotate-backend/internal/apperr"
	"github.com/labelforge/annotate-backend/internal/users"
)

// fakeUserStore keeps users in memory keyed by username.
type fakeUserStore struct {
	byUsername map[string]*users.User
	nextID     int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byUsername: map[string]*users.User{}, nextID: 1}
}

func (f *fakeUserStore) Create(_ context.Context, username, email, passwordHash string) (*users.User, error) {
	if _, ok := f.byUsername[username]; ok {
		return nil, users.ErrUsernameTaken
	}
	for _, u := range f.byUsername {
		if u.Email == email {
			return nil, users.ErrEmailTaken
		}
	}

	u := &users.User{ID: f.nextID, Username: username, Email: email, PasswordHash: passwordHash}
	f.nextID++
	f.byUsername[username] = u
	return u, nil
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*users.User, error) {
	if u, ok := f.byUsername[username]; ok {
		return u, nil
	}
	return nil, users.ErrNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*users.User, error) {
	for _, u := range f.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, users.ErrNotFound
}

func newTestService() (*Service, *fakeUserStore) {
	store := newFakeUserStore()
	return NewService(store, "test-secret", time.Minute, time.Hour), store
}

func TestSignup(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	u, err := svc.Signup(ctx, "alice", "alice@example.com", "longenough1")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.NotEqual(t, "longenough1", u.PasswordHash)
}

func TestSignupRejectsWeakPasswords(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, "alice", "alice@example.com", "short1")
	assert.Error(t, err)

	_, err = svc.Signup(ctx, "alice", "alice@example.com", "longenough")
	assert.Error(t, err)

	assert.Empty(t, store.byUsername)
}

func TestSignupDuplicateUsername(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, "alice", "alice@example.com", "longenough1")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "alice", "other@example.com", "longenough1")
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeConflict, appErr.Code)
	assert.Equal(t, "Username already taken.", appErr.Message)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, "alice", "alice@example.com", "longenough1")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "bob", "alice@example.com", "longenough1")
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeConflict, appErr.Code)
	assert.Equal(t, "Email already in use.", appErr.Message)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, "alice", "alice@example.com", "longenough1")
	require.NoError(t, err)

	pair, err := svc.Login(ctx, "alice", "longenough1")
	require.NoError(t, err)

	userID, tokenType, err := ParseToken(pair.Access, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), userID)
	assert.Equal(t, TokenTypeAccess, tokenType)
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, "alice", "alice@example.com", "longenough1")
	require.NoError(t, err)

	var appErr *apperr.Error

	_, err = svc.Login(ctx, "alice", "wrongpassword1")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeUnauthorized, appErr.Code)

	_, err = svc.Login(ctx, "nobody", "longenough1")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeUnauthorized, appErr.Code)
}

func TestRefresh(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, "alice", "alice@example.com", "longenough1")
	require.NoError(t, err)

	pair, err := svc.Login(ctx, "alice", "longenough1")
	require.NoError(t, err)

	fresh, err := svc.Refresh(ctx, pair.Refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.Access)

	// An access token must not be accepted as a refresh token.
	_, err = svc.Refresh(ctx, pair.Access)
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeUnauthorized, appErr.Code)
}
