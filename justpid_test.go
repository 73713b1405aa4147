package justpid

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szymonlipinski/justpid/internal/testutil"
)

func TestPIDPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filepath.Join("/tmp/work", ".pid"), PIDPath("/tmp/work"))
}

func TestPackageLevelFunctions(t *testing.T) {
	t.Parallel()

	// The package-level surface runs against the real process table with the
	// current PID, so the whole flow is exercised end to end.
	dir := t.TempDir()

	locked, err := IsLocked(dir)
	require.NoError(t, err)
	require.False(t, locked)

	require.NoError(t, Lock(dir))
	assert.Equal(t, strconv.Itoa(os.Getpid()), testutil.ReadSentinel(t, dir))

	self, err := IsLockedBySelf(dir)
	require.NoError(t, err)
	assert.True(t, self)

	require.NoError(t, Unlock(dir))
	assert.False(t, testutil.SentinelExists(t, dir))

	ran := false
	require.NoError(t, With(dir, func() error {
		ran = true

		locked, err := IsLocked(dir)
		require.NoError(t, err)
		assert.True(t, locked)

		return nil
	}))
	assert.True(t, ran)
	assert.False(t, testutil.SentinelExists(t, dir))
}
