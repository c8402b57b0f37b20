// Package ipc provides the local IPC channel the CLI tools
// (bind/unbind/paste/status) use to talk to a running sluice daemon.
//
// The channel carries the newline-delimited JSON control protocol from
// internal/message, unencrypted — the endpoint is local and owner-restricted
// by the OS. Unix platforms use a socket under $XDG_RUNTIME_DIR (or the temp
// dir), Windows a named pipe; $SLUICE_SOCKET overrides either.
package ipc

import (
	"net"
	"os"
)

// SocketPath returns the platform-appropriate IPC endpoint.
func SocketPath() string {
	if s := os.Getenv("SLUICE_SOCKET"); s != "" {
		return s
	}
	return socketPath()
}

// IsRunning reports whether a sluice daemon appears to be listening on the
// IPC endpoint. It does a cheap dial-and-close; no data is exchanged.
func IsRunning() bool {
	c, err := dialIPC(SocketPath())
	if err != nil {
		return false
	}
	_ = c.Close()
	return true
}

// Listen creates a net.Listener on the IPC endpoint, removing any stale
// socket file from a previous (crashed) run first.
func Listen() (net.Listener, error) {
	path := SocketPath()
	_ = os.Remove(path)
	return listenIPC(path)
}

// Dial connects to the daemon's IPC endpoint.
func Dial() (net.Conn, error) {
	return dialIPC(SocketPath())
}
