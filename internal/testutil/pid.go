// Package testutil provides shared fixtures for pid file locking tests:
// planting and inspecting raw pid files without going through the locking
// API, and finding PIDs that are guaranteed to name no running process.
package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/shirou/gopsutil/v4/process"
	"github.com/stretchr/testify/require"
)

// WriteSentinel plants raw content as dir's pid file, bypassing the locking
// API, and returns the file's path.
func WriteSentinel(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, ".pid")
	err := os.WriteFile(path, []byte(content), 0o644)
	require.NoError(t, err)

	return path
}

// ReadSentinel returns the raw content of dir's pid file.
func ReadSentinel(t *testing.T, dir string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(dir, ".pid"))
	require.NoError(t, err)

	return string(data)
}

// SentinelExists reports whether dir currently contains a pid file.
func SentinelExists(t *testing.T, dir string) bool {
	t.Helper()

	_, err := os.Stat(filepath.Join(dir, ".pid"))
	if os.IsNotExist(err) {
		return false
	}
	require.NoError(t, err)

	return true
}

// UnusedPID returns a PID that belongs to no running process, found by
// locating a gap in the live process table.
func UnusedPID(t *testing.T) int {
	t.Helper()

	pids, err := process.Pids()
	require.NoError(t, err)
	require.NotEmpty(t, pids, "process table should list at least this test process")

	sort.Slice(pids, func(i, j int) bool { return pids[i] < pids[j] })

	for i := 1; i < len(pids); i++ {
		if candidate := pids[i-1] + 1; candidate != pids[i] {
			return int(candidate)
		}
	}

	return int(pids[len(pids)-1] + 1)
}
