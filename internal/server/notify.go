package server

import (
	"context"
	"errors"
	"sync"

	"github.com/creachadair/jrpc2"

	"github.com/remindctl/remindctl/common"
	"github.com/remindctl/remindctl/pkg/logger"
	"github.com/remindctl/remindctl/pkg/remindlib"
)

// ErrNoReceivers reports that no client was attached to deliver to.
// The scheduler treats it as "channel unavailable" and retries the
// reminder at the next tick.
var ErrNoReceivers = errors.New("no attached notification receivers")

// ErrAllPushesFailed reports that every attached client rejected the push.
var ErrAllPushesFailed = errors.New("notification push failed for every receiver")

// RPCNotifier implements remindlib.Notifier by broadcasting a JSON-RPC
// push notification to every attached client connection.
type RPCNotifier struct {
	mu      sync.RWMutex
	servers map[*jrpc2.Server]struct{}
	log     logger.Logger
}

// NewRPCNotifier creates an empty notifier.
func NewRPCNotifier(l logger.Logger) *RPCNotifier {
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &RPCNotifier{
		servers: make(map[*jrpc2.Server]struct{}),
		log:     l,
	}
}

// Register adds a connection's server to the broadcast set.
func (n *RPCNotifier) Register(srv *jrpc2.Server) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.servers[srv] = struct{}{}
}

// Unregister removes a connection's server from the broadcast set.
func (n *RPCNotifier) Unregister(srv *jrpc2.Server) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.servers, srv)
}

// Count returns the number of attached receivers.
func (n *RPCNotifier) Count() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.servers)
}

// Notify broadcasts the notification to every attached client. Delivery
// succeeds when at least one client accepted the push; with no clients
// attached it fails with ErrNoReceivers so the caller can retry later.
// Clients that fail to receive are dropped from the broadcast set.
func (n *RPCNotifier) Notify(note remindlib.Notification) error {
	method := common.NotifyReminderSet
	if note.Kind == remindlib.KindTrigger {
		method = common.NotifyReminderTrigger
	}
	payload := &common.ReminderNotification{
		Kind:    string(note.Kind),
		Message: note.Message,
		DueAt:   note.DueAt,
	}

	n.mu.RLock()
	servers := make([]*jrpc2.Server, 0, len(n.servers))
	for srv := range n.servers {
		servers = append(servers, srv)
	}
	n.mu.RUnlock()

	if len(servers) == 0 {
		return ErrNoReceivers
	}

	var delivered int
	var failed []*jrpc2.Server
	for _, srv := range servers {
		if err := srv.Notify(context.Background(), method, payload); err != nil {
			n.log.Warning("push failed, dropping receiver: %v", err)
			failed = append(failed, srv)
			continue
		}
		delivered++
	}

	if len(failed) > 0 {
		n.mu.Lock()
		for _, srv := range failed {
			delete(n.servers, srv)
		}
		n.mu.Unlock()
	}

	if delivered == 0 {
		return ErrAllPushesFailed
	}
	return nil
}

var _ remindlib.Notifier = (*RPCNotifier)(nil)
