// Package remindcli is the client library for the remindctl daemon. It
// wraps a JSON-RPC 2.0 connection with typed method calls and dispatches
// push notifications to registered handlers.
package remindcli

import (
	"context"
	"net"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/channel"
)

// Client is a connection to the remindctl daemon.
type Client struct {
	conn    net.Conn
	cli     *jrpc2.Client
	d       *Dispatcher
	stopped chan struct{}
}

// NewClient dials the daemon and returns a connected client.
func NewClient() (*Client, error) {
	conn, err := dial()
	if err != nil {
		return nil, err
	}
	return newClientConn(conn), nil
}

// newClientConn wraps an established connection. Split out so tests can
// drive a client over an in-memory pipe.
func newClientConn(conn net.Conn) *Client {
	d := NewDispatcher()
	stopped := make(chan struct{})
	cli := jrpc2.NewClient(channel.Line(conn, conn), &jrpc2.ClientOptions{
		OnNotify: d.Dispatch,
		OnStop:   func(*jrpc2.Client, error) { close(stopped) },
	})
	return &Client{conn: conn, cli: cli, d: d, stopped: stopped}
}

// Listen blocks until the connection to the daemon goes away. Push
// notifications keep arriving through the registered handlers while it
// waits.
func (c *Client) Listen() error {
	<-c.stopped
	return nil
}

// OnNotify registers a handler for a push notification method,
// replacing any previous handler for that method.
func (c *Client) OnNotify(method string, h Handler) {
	c.d.Register(method, h)
}

// Close tears down the connection.
func (c *Client) Close() error {
	err := c.cli.Close()
	_ = c.conn.Close()
	return err
}

// invoke performs a call and unmarshals the result into out when out is
// non-nil.
func (c *Client) invoke(method string, params, out any) error {
	rsp, err := c.cli.Call(context.Background(), method, params)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return rsp.UnmarshalResult(out)
}
