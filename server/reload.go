package server

import (
	"sync"
)

// reloadNotifier fans change notifications out to any number of open
// /dev/reload connections. Each subscriber owns a buffered channel that
// receives one signal per change.
type reloadNotifier struct {
	mu      sync.Mutex
	closed  bool
	nextID  int
	clients map[int]chan struct{}
}

func newReloadNotifier() *reloadNotifier {
	return &reloadNotifier{
		clients: make(map[int]chan struct{}),
	}
}

// Subscribe registers a listener and returns a cancel func plus the signal
// channel. After Close the returned channel is already closed so callers can
// fail fast.
func (n *reloadNotifier) Subscribe() (func(), <-chan struct{}) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		ch := make(chan struct{})
		close(ch)
		return func() {}, ch
	}

	id := n.nextID
	n.nextID++

	ch := make(chan struct{}, 1)
	n.clients[id] = ch

	return func() {
		n.unsubscribe(id)
	}, ch
}

func (n *reloadNotifier) unsubscribe(id int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if ch, ok := n.clients[id]; ok {
		close(ch)
		delete(n.clients, id)
	}
}

// Notify broadcasts without blocking on slow readers; a listener with a
// pending signal keeps it.
func (n *reloadNotifier) Notify() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}

	for _, ch := range n.clients {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (n *reloadNotifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}
	n.closed = true

	for id, ch := range n.clients {
		close(ch)
		delete(n.clients, id)
	}
}
