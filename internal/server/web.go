package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	cws "github.com/coder/websocket"
	"github.com/creachadair/jrpc2"

	"github.com/remindctl/remindctl/common"
	"github.com/remindctl/remindctl/pkg/logger"
)

// WebServer bridges browser and UI clients onto the same RPC surface
// over WebSocket. Each connection gets its own jrpc2 server with push
// enabled, so web clients receive reminder notifications too.
type WebServer struct {
	log      logger.Logger
	methods  jrpc2.Assigner
	notifier *RPCNotifier
	onAttach func()
	port     int

	mu     sync.Mutex
	server *http.Server
}

// NewWebServer creates a WebSocket bridge sharing the Server's method
// map, notifier and attach hook.
func NewWebServer(l logger.Logger, s *Server, port int) *WebServer {
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &WebServer{
		log:      l,
		methods:  s.methods,
		notifier: s.notifier,
		onAttach: s.onAttach,
		port:     port,
	}
}

// Start serves the /ws endpoint until ctx is cancelled. It blocks.
func (w *WebServer) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", w.handleWS)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", common.TCPHost, w.port),
		Handler: mux,
	}
	w.mu.Lock()
	w.server = srv
	w.mu.Unlock()

	go func() {
		<-ctx.Done()
		_ = w.Shutdown()
	}()

	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the HTTP server, giving in-flight requests a moment to
// finish.
func (w *WebServer) Shutdown() error {
	w.mu.Lock()
	srv := w.server
	w.server = nil
	w.mu.Unlock()
	if srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

func (w *WebServer) handleWS(rw http.ResponseWriter, req *http.Request) {
	conn, err := cws.Accept(rw, req, nil)
	if err != nil {
		w.log.Warning("websocket accept failed: %v", err)
		return
	}

	ch := &wsChannel{conn: conn, ctx: req.Context()}
	srv := jrpc2.NewServer(w.methods, &jrpc2.ServerOptions{AllowPush: true})
	srv.Start(ch)

	w.notifier.Register(srv)
	if w.onAttach != nil {
		w.onAttach()
	}

	_ = srv.Wait()
	w.notifier.Unregister(srv)
	_ = conn.Close(cws.StatusNormalClosure, "")
}

// wsChannel adapts a coder/websocket.Conn to the jrpc2 Channel interface.
type wsChannel struct {
	conn *cws.Conn
	ctx  context.Context
}

// Send writes a JSON-RPC message to the WebSocket connection.
func (c *wsChannel) Send(data []byte) error {
	return c.conn.Write(c.ctx, cws.MessageText, data)
}

// Recv reads a JSON-RPC message from the WebSocket connection.
func (c *wsChannel) Recv() ([]byte, error) {
	_, data, err := c.conn.Read(c.ctx)
	return data, err
}

// Close shuts down the WebSocket connection with a normal closure status.
func (c *wsChannel) Close() error {
	return c.conn.Close(cws.StatusNormalClosure, "")
}
