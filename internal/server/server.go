// Package server exposes the remindctl daemon over JSON-RPC 2.0. Clients
// connect through a Unix socket (named pipe on Windows) or the TCP
// fallback; each connection gets its own jrpc2 server with push enabled,
// so attached clients receive reminder notifications on the same wire.
package server

import (
	"context"
	"net"
	"sync"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/channel"
	"github.com/creachadair/jrpc2/handler"

	"github.com/remindctl/remindctl/pkg/logger"
)

// Server accepts RPC connections from CLI and UI clients and dispatches
// requests to the registered method handlers.
type Server struct {
	log      logger.Logger
	methods  handler.Map
	notifier *RPCNotifier
	onAttach func()
	port     int

	mu       sync.Mutex
	listener net.Listener
	closed   bool
}

// NewServer creates a Server dispatching to methods. onAttach, if
// non-nil, runs every time a client connects; the daemon uses it to poke
// the scheduler for a catch-up tick.
func NewServer(l logger.Logger, methods handler.Map, port int, onAttach func()) *Server {
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &Server{
		log:      l,
		methods:  methods,
		notifier: NewRPCNotifier(l),
		onAttach: onAttach,
		port:     port,
	}
}

// Notifier returns the push notifier broadcasting to attached clients.
func (s *Server) Notifier() *RPCNotifier {
	return s.notifier
}

// Start begins accepting connections and blocks until ctx is cancelled
// or the listener fails. Each connection is served in its own goroutine.
func (s *Server) Start(ctx context.Context) error {
	l, err := s.createListener()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.listener = l
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		_ = s.Shutdown()
	}()

	s.log.Info("listening on %s", l.Addr())

	for {
		conn, err := l.Accept()
		if err != nil {
			s.mu.Lock()
			closed := s.closed
			s.mu.Unlock()
			if closed {
				return nil
			}
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			s.log.Error("accept failed: %v", err)
			continue
		}
		go s.serveConn(conn)
	}
}

// Shutdown stops accepting connections and removes the socket file.
// Already-established connections drain on their own.
func (s *Server) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.listener != nil {
		if err := s.listener.Close(); err != nil {
			s.log.Warning("closing listener: %v", err)
		}
		s.listener = nil
	}
	cleanupListener()
	return nil
}

// serveConn runs a jrpc2 server over the connection with push enabled,
// registers it for reminder broadcasts, and requests a catch-up tick.
func (s *Server) serveConn(conn net.Conn) {
	srv := jrpc2.NewServer(s.methods, &jrpc2.ServerOptions{AllowPush: true})
	srv.Start(channel.Line(conn, conn))

	s.notifier.Register(srv)
	if s.onAttach != nil {
		s.onAttach()
	}

	_ = srv.Wait()
	s.notifier.Unregister(srv)
	_ = conn.Close()
}
