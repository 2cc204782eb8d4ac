package persist

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryLogin_UnknownAccountAutoRegisters(t *testing.T) {
	f := newFixture(t)

	ok, err := f.store.TryLogin("newuser", "pw")
	require.NoError(t, err)
	assert.True(t, ok, "first login for an unknown name creates the account")

	ok, err = f.store.TryLogin("newuser", "wrongpw")
	require.NoError(t, err)
	assert.False(t, ok, "wrong password against the created account")

	ok, err = f.store.TryLogin("newuser", "pw")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTryLogin_BlankCredentialsRejected(t *testing.T) {
	f := newFixture(t)

	ok, err := f.store.TryLogin("", "pw")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.store.TryLogin("user", "   ")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTryLogin_BannedAccountRejected(t *testing.T) {
	f := newFixture(t)

	ok, err := f.store.TryLogin("baduser", "pw")
	require.NoError(t, err)
	require.True(t, ok)

	_, err = f.store.Exec(f.store.db,
		"UPDATE accounts SET banned = 1 WHERE name = @name",
		map[string]interface{}{"name": "baduser"})
	require.NoError(t, err)

	ok, err = f.store.TryLogin("baduser", "pw")
	require.NoError(t, err)
	assert.False(t, ok, "banned accounts cannot log in even with the right password")
}

func TestTryLogin_RateLimited(t *testing.T) {
	f := newFixture(t)
	f.store.cfg.LoginRateBurst = 2

	ok, err := f.store.TryLogin("burst", "pw")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.store.TryLogin("burst", "pw")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.store.TryLogin("burst", "pw")
	require.NoError(t, err)
	assert.False(t, ok, "third attempt within the window is throttled")
}

func TestLoginLimiterMapBounded(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < maxLoginLimiters+10; i++ {
		f.store.loginLimiter(fmt.Sprintf("acct%d", i))
	}

	f.store.limiterMu.Lock()
	defer f.store.limiterMu.Unlock()
	assert.LessOrEqual(t, len(f.store.limiters), maxLoginLimiters,
		"limiter map never outgrows its cap")
}
