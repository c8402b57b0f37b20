//go:build !windows

package ipc

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSocketPathEnvOverride(t *testing.T) {
	t.Setenv("SLUICE_SOCKET", "/tmp/custom.sock")
	assert.Equal(t, "/tmp/custom.sock", SocketPath())
}

func TestSocketPathDefault(t *testing.T) {
	t.Setenv("SLUICE_SOCKET", "")
	assert.Equal(t, "sluice.sock", filepath.Base(SocketPath()))
}

func TestListenAndProbe(t *testing.T) {
	t.Setenv("SLUICE_SOCKET", filepath.Join(t.TempDir(), "s.sock"))

	assert.False(t, IsRunning())

	ln, err := Listen()
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err == nil {
			_ = conn.Close()
		}
	}()

	assert.True(t, IsRunning())
}

// A stale socket file from a crashed daemon must not block the next start.
func TestListenRemovesStaleSocket(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.sock")
	t.Setenv("SLUICE_SOCKET", path)

	ln, err := Listen()
	require.NoError(t, err)
	ln.Close()

	ln, err = Listen()
	require.NoError(t, err)
	ln.Close()
}
