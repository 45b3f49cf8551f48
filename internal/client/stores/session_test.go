package stores

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/obfuscate"
)

func TestRegisterThenLogin_Succeeds(t *testing.T) {
	s := NewSessionStore(newTestRepo(t), newTestLogger())
	ctx := context.Background()

	require.NoError(t, s.Register(ctx, "alice", "alice@example.org", "secret"))
	require.NoError(t, s.Login(ctx, "alice@example.org", "secret"))

	require.True(t, s.IsAuthenticated())
	current := s.Current()
	require.NotNil(t, current)
	assert.Equal(t, "alice", current.Username)
	assert.Equal(t, "alice@example.org", current.Email)
	assert.NotZero(t, current.ID)
}

func TestLogin_UnknownEmail_ReturnsUserNotFound(t *testing.T) {
	s := NewSessionStore(newTestRepo(t), newTestLogger())
	ctx := context.Background()

	err := s.Login(ctx, "ghost@example.org", "whatever")
	require.ErrorIs(t, err, common.ErrUserNotFound)
	require.False(t, s.IsAuthenticated())
}

func TestLogin_WrongPassword_ReturnsInvalidPassword(t *testing.T) {
	s := NewSessionStore(newTestRepo(t), newTestLogger())
	ctx := context.Background()

	require.NoError(t, s.Register(ctx, "alice", "alice@example.org", "secret"))

	err := s.Login(ctx, "alice@example.org", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidPassword)
	require.NotErrorIs(t, err, common.ErrUserNotFound)
	require.False(t, s.IsAuthenticated())
}

func TestRegister_DuplicateEmail_KeepsExistingRecord(t *testing.T) {
	s := NewSessionStore(newTestRepo(t), newTestLogger())
	ctx := context.Background()

	require.NoError(t, s.Register(ctx, "alice", "alice@example.org", "secret"))

	err := s.Register(ctx, "impostor", "alice@example.org", "other")
	require.ErrorIs(t, err, common.ErrDuplicateIdentity)

	// the original credentials still work
	require.NoError(t, s.Login(ctx, "alice@example.org", "secret"))
	assert.Equal(t, "alice", s.Current().Username)
}

func TestRegister_BlankField_FailsBeforeAnyWrite(t *testing.T) {
	repo := newTestRepo(t)
	s := NewSessionStore(repo, newTestLogger())
	ctx := context.Background()

	for _, tt := range []struct{ username, email, password string }{
		{"", "a@b.c", "pw"},
		{"a", "", "pw"},
		{"a", "a@b.c", ""},
	} {
		require.ErrorIs(t, s.Register(ctx, tt.username, tt.email, tt.password), common.ErrMissingField)
	}

	data, err := repo.Get(ctx, keyUsers)
	require.NoError(t, err)
	require.Nil(t, data, "no credential collection may be created")
}

func TestRegister_DoesNotCreateSession(t *testing.T) {
	s := NewSessionStore(newTestRepo(t), newTestLogger())

	require.NoError(t, s.Register(context.Background(), "alice", "alice@example.org", "secret"))
	require.False(t, s.IsAuthenticated())
}

func TestRegister_StoresObfuscatedCredentials(t *testing.T) {
	repo := newTestRepo(t)
	s := NewSessionStore(repo, newTestLogger())
	ctx := context.Background()

	require.NoError(t, s.Register(ctx, "alice", "alice@example.org", "secret"))

	data, err := repo.Get(ctx, keyUsers)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "alice@example.org")
	assert.NotContains(t, string(data), "secret")
	assert.Contains(t, string(data), obfuscate.Shift("alice@example.org"))
}

func TestRestore_RoundTripsSession(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	s := NewSessionStore(repo, newTestLogger())
	require.NoError(t, s.Register(ctx, "alice", "alice@example.org", "secret"))
	require.NoError(t, s.Login(ctx, "alice@example.org", "secret"))
	want := s.Current()

	// simulate a process restart
	restarted := NewSessionStore(repo, newTestLogger())
	restarted.Restore(ctx)

	require.True(t, restarted.IsAuthenticated())
	assert.Equal(t, want, restarted.Current())
}

func TestRestore_CorruptSession_StaysLoggedOut(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Set(ctx, keySession, []byte("{not json")))

	s := NewSessionStore(repo, newTestLogger())
	s.Restore(ctx)

	require.False(t, s.IsAuthenticated())
}

func TestLogout_RemovesPersistedSession(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	s := NewSessionStore(repo, newTestLogger())
	require.NoError(t, s.Register(ctx, "alice", "alice@example.org", "secret"))
	require.NoError(t, s.Login(ctx, "alice@example.org", "secret"))

	s.Logout(ctx)

	require.False(t, s.IsAuthenticated())
	data, err := repo.Get(ctx, keySession)
	require.NoError(t, err)
	require.Nil(t, data)
}

func TestToggleNotifications_PersistsAcrossRestart(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	s := NewSessionStore(repo, newTestLogger())
	s.Restore(ctx)
	require.True(t, s.NotificationsEnabled())

	require.NoError(t, s.ToggleNotifications(ctx))
	require.False(t, s.NotificationsEnabled())

	restarted := NewSessionStore(repo, newTestLogger())
	restarted.Restore(ctx)
	require.False(t, restarted.NotificationsEnabled())

	require.NoError(t, restarted.ToggleNotifications(ctx))
	require.True(t, restarted.NotificationsEnabled())
}

func TestRegister_IDsAreUniqueAndIncreasing(t *testing.T) {
	s := NewSessionStore(newTestRepo(t), newTestLogger())
	ctx := context.Background()

	require.NoError(t, s.Register(ctx, "a", "a@example.org", "pw"))
	require.NoError(t, s.Register(ctx, "b", "b@example.org", "pw"))
	require.NoError(t, s.Register(ctx, "c", "c@example.org", "pw"))

	var ids []int64
	for _, email := range []string{"a@example.org", "b@example.org", "c@example.org"} {
		require.NoError(t, s.Login(ctx, email, "pw"))
		ids = append(ids, s.Current().ID)
	}

	require.Less(t, ids[0], ids[1])
	require.Less(t, ids[1], ids[2])
}
