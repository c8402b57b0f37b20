package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/sluice/internal/crypto"
	"go.klb.dev/sluice/internal/destination"
	"go.klb.dev/sluice/internal/execrunner"
	"go.klb.dev/sluice/internal/hostbridge"
	"go.klb.dev/sluice/internal/ipc"
	"go.klb.dev/sluice/internal/message"
	"go.klb.dev/sluice/internal/panels"
	"go.klb.dev/sluice/internal/router"
	"go.klb.dev/sluice/internal/sysclip"
	"go.klb.dev/sluice/internal/tmuxterm"
	"go.klb.dev/sluice/internal/wire"
)

const authTimeout = 10 * time.Second

func newDaemonCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Run the paste-destination router",
		Long: `Starts the sluice daemon. It owns the destination bindings and serves the
control protocol on a local socket; pass --addr to additionally listen on TCP
(use --token so the connection is authenticated and encrypted).

Panel command rankings come from the [panels] and [commands] sections of the
config file and overlay the built-in defaults.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runDaemon(v) },
	}

	f := cmd.Flags()
	f.String("addr", "", "optional TCP listen address (empty = IPC socket only)")
	f.String("token", "", "shared secret for TCP connections (empty = no auth, no encryption)")
	f.String("host-socket", "", "editor host bridge socket (empty = no editor destinations)")
	f.Int("settle-delay-ms", 150, "wait between panel focus and paste, in milliseconds")
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runDaemon(v *viper.Viper) error {
	setupLogging(v)

	addr := v.GetString("addr")
	token := v.GetString("token")
	hostSocket := v.GetString("host-socket")
	settle := time.Duration(v.GetInt("settle-delay-ms")) * time.Millisecond

	var key *[32]byte
	if token != "" {
		var err error
		key, err = crypto.DeriveKey(token)
		if err != nil {
			return fmt.Errorf("key derivation: %w", err)
		}
	}

	reg, err := loadPanelRegistry(v)
	if err != nil {
		return err
	}

	clip := sysclip.New()
	defer clip.Close()

	destReg := &destination.Registry{
		Clipboard:   clip,
		Runner:      execrunner.New(reg.Commands),
		Panels:      reg,
		SettleDelay: settle,
	}
	if hostSocket != "" {
		destReg.Editors = hostbridge.New(hostSocket)
	}
	rt := router.New(destReg, destReg.Editors)

	slog.Info("sluice daemon starting",
		"version", Version,
		"addr", addr,
		"clipboard", clip.Name(),
		"editor_host", hostSocket != "",
		"tmux", tmuxterm.Available(),
		"encrypted", key != nil,
	)

	srv := &controlServer{router: rt, clip: clip}

	ipcLn, err := ipc.Listen()
	if err != nil {
		return fmt.Errorf("ipc listen: %w", err)
	}
	slog.Info("IPC socket listening", "path", ipc.SocketPath())

	if addr != "" {
		tcpLn, err := net.Listen("tcp", addr)
		if err != nil {
			return fmt.Errorf("listen %s: %w", addr, err)
		}
		slog.Info("listening", "addr", tcpLn.Addr())
		go srv.serve(tcpLn, key, token)
	}

	srv.serve(ipcLn, nil, "")
	return nil
}

// loadPanelRegistry overlays the config file's panel and command tables onto
// the built-in defaults.
func loadPanelRegistry(v *viper.Viper) (panels.Registry, error) {
	var override panels.Registry
	if err := v.UnmarshalKey("panels", &override.Panels); err != nil {
		return panels.Registry{}, fmt.Errorf("panels config: %w", err)
	}
	if err := v.UnmarshalKey("commands", &override.Commands); err != nil {
		return panels.Registry{}, fmt.Errorf("commands config: %w", err)
	}
	return panels.Merge(panels.DefaultRegistry(), override), nil
}

// controlServer serves the control protocol on a listener.
type controlServer struct {
	router *router.Router
	clip   sysclip.Backend
}

func (s *controlServer) serve(ln net.Listener, key *[32]byte, token string) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			slog.Error("accept failed", "err", err)
			return
		}
		go s.handle(wire.New(conn, key), token)
	}
}

// handle authenticates if a token is required, then answers requests until
// the peer hangs up.
func (s *controlServer) handle(wc *wire.Conn, token string) {
	defer wc.Close()
	log := slog.With("peer", wc.RemoteAddr().String())

	if token != "" {
		wc.SetReadDeadline(authTimeout)
		msg, err := wc.ReadMsg()
		if err != nil {
			log.Warn("auth read failed", "err", err)
			return
		}
		wc.SetReadDeadline(0)

		tokenBytes, _ := base64.StdEncoding.DecodeString(msg.Payload)
		if msg.Type != message.TypeAuth || string(tokenBytes) != token {
			log.Warn("auth failed")
			_ = wc.WriteMsg(&message.Message{Type: message.TypeError, Error: "auth_failed"})
			return
		}
		log.Info("authenticated", "source", msg.Source)
	}

	for {
		msg, err := wc.ReadMsg()
		if err != nil {
			return
		}
		if resp := s.dispatch(msg, log); resp != nil {
			if err := wc.WriteMsg(resp); err != nil {
				log.Warn("write failed", "err", err)
				return
			}
		}
	}
}

func (s *controlServer) dispatch(msg *message.Message, log *slog.Logger) *message.Message {
	ctx := context.Background()

	switch msg.Type {
	case message.TypeBind:
		req, err := s.bindRequest(msg)
		if err != nil {
			return &message.Message{Type: message.TypeResult, OK: false, Detail: err.Error()}
		}
		info, err := s.router.Bind(ctx, req)
		if err != nil {
			return &message.Message{Type: message.TypeResult, OK: false, Detail: err.Error()}
		}
		return &message.Message{
			Type: message.TypeResult, OK: true,
			Detail: fmt.Sprintf("bound %s to %s", info.Kind, info.Resource),
		}

	case message.TypeUnbind:
		res := s.router.Unbind(destination.Kind(msg.Kind))
		return &message.Message{Type: message.TypeResult, OK: res.OK, Detail: res.Detail}

	case message.TypePaste:
		res := s.router.Paste(ctx, destination.Kind(msg.Kind), msg.Text, msg.Link)
		return &message.Message{Type: message.TypeResult, OK: res.OK, Detail: res.Detail}

	case message.TypeStatus:
		bindings, panelsOut := s.router.Status()
		return &message.Message{
			Type:     message.TypeStatusResponse,
			Bindings: bindings,
			Panels:   panelsOut,
		}

	case message.TypePing:
		return &message.Message{Type: message.TypePong}

	default:
		log.Warn("unexpected message type", "type", msg.Type)
		return &message.Message{Type: message.TypeError, Error: "unexpected message type"}
	}
}

// bindRequest maps a BIND envelope onto a destination bind request.
func (s *controlServer) bindRequest(msg *message.Message) (destination.BindRequest, error) {
	kind := destination.Kind(msg.Kind)
	switch {
	case kind == destination.KindTerminal:
		if !tmuxterm.ValidTarget(msg.Pane) {
			return destination.BindRequest{}, fmt.Errorf("terminal bind requires --pane")
		}
		return destination.BindRequest{
			Kind:     kind,
			Terminal: tmuxterm.New(msg.Pane, s.clip),
		}, nil
	case kind == destination.KindEditor:
		if msg.DocURI == "" {
			return destination.BindRequest{}, fmt.Errorf("editor bind requires --doc")
		}
		return destination.BindRequest{Kind: kind, DocURI: msg.DocURI}, nil
	case kind.IsPanel():
		return destination.BindRequest{Kind: kind}, nil
	default:
		return destination.BindRequest{}, fmt.Errorf("unknown destination kind %q", msg.Kind)
	}
}
