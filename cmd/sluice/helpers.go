package main

import (
	"encoding/base64"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/viper"

	"go.klb.dev/sluice/internal/crypto"
	"go.klb.dev/sluice/internal/ipc"
	"go.klb.dev/sluice/internal/message"
	"go.klb.dev/sluice/internal/wire"
)

const dialTimeout = 3 * time.Second

// defaultSource returns a human-readable identifier for this host.
func defaultSource() string {
	if v := os.Getenv("SLUICE_SOURCE"); v != "" {
		return v
	}
	if h, err := os.Hostname(); err == nil {
		return h
	}
	return "unknown"
}

// dialControl connects to the daemon: the local IPC socket unless --addr
// names a TCP endpoint. TCP connections authenticate with the token and are
// secretbox-encrypted when a token is set.
func dialControl(v *viper.Viper) (*wire.Conn, error) {
	addr := v.GetString("addr")
	if addr == "" {
		conn, err := ipc.Dial()
		if err != nil {
			return nil, fmt.Errorf("no sluice daemon on %s — start one with \"sluice daemon\"", ipc.SocketPath())
		}
		return wire.New(conn, nil), nil
	}

	token := v.GetString("token")
	var key *[32]byte
	if token != "" {
		var err error
		key, err = crypto.DeriveKey(token)
		if err != nil {
			return nil, fmt.Errorf("key derivation: %w", err)
		}
	}
	conn, err := net.DialTimeout("tcp", addr, dialTimeout)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	wc := wire.New(conn, key)
	if token != "" {
		if err := wc.WriteMsg(&message.Message{
			Type:    message.TypeAuth,
			Source:  defaultSource(),
			Payload: base64.StdEncoding.EncodeToString([]byte(token)),
		}); err != nil {
			wc.Close()
			return nil, fmt.Errorf("auth: %w", err)
		}
	}
	return wc, nil
}

// roundTrip sends one request and reads one response.
func roundTrip(v *viper.Viper, req *message.Message) (*message.Message, error) {
	wc, err := dialControl(v)
	if err != nil {
		return nil, err
	}
	defer wc.Close()

	if err := wc.WriteMsg(req); err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}
	resp, err := wc.ReadMsg()
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if resp.Type == message.TypeError {
		return nil, fmt.Errorf("daemon: %s", resp.Error)
	}
	return resp, nil
}

// printResult renders a RESULT envelope and returns an error for the
// non-zero exit when the operation failed.
func printResult(resp *message.Message) error {
	if resp.Detail != "" {
		fmt.Println(resp.Detail)
	}
	if !resp.OK {
		return fmt.Errorf("operation failed")
	}
	return nil
}
